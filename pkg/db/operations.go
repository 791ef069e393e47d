package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/beatscope/models"
)

// AnalysisRecord is the persisted form of one classification.
type AnalysisRecord struct {
	AnalysisID         int64
	URL                string
	Title              string
	Byline             string
	ContentHash        string
	Language           string
	LanguageConfidence float64
	Analysis           models.BeatAnalysis
	EvidenceCount      int
	CreatedAt          time.Time
}

// BeatStat aggregates stored analyses for one beat.
type BeatStat struct {
	Beat          string
	Total         int
	PrimaryCount  int
	AvgConfidence float64
}

// InsertAnalysis stores an analysis and its per-beat rows, returning the
// analysis_id.
func (db *DB) InsertAnalysis(rec AnalysisRecord) (int64, error) {
	primaryJSON, err := json.Marshal(emptyIfNil(rec.Analysis.PrimaryBeats))
	if err != nil {
		return 0, fmt.Errorf("failed to marshal primary beats: %w", err)
	}
	secondaryJSON, err := json.Marshal(emptyIfNil(rec.Analysis.SecondaryBeats))
	if err != nil {
		return 0, fmt.Errorf("failed to marshal secondary beats: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO analyses (url, title, byline, content_hash, language, language_confidence,
		                      primary_beats, secondary_beats, confidence, reasoning, evidence_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.URL, rec.Title, rec.Byline, rec.ContentHash, rec.Language, rec.LanguageConfidence,
		string(primaryJSON), string(secondaryJSON), rec.Analysis.Confidence, rec.Analysis.Reasoning, rec.EvidenceCount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	analysisID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis ID: %w", err)
	}

	for i, beat := range rec.Analysis.PrimaryBeats {
		if _, err := tx.Exec(`
			INSERT INTO analysis_beats (analysis_id, beat, rank, position)
			VALUES (?, ?, 'primary', ?)
		`, analysisID, beat, i); err != nil {
			return 0, fmt.Errorf("failed to insert primary beat: %w", err)
		}
	}
	for i, beat := range rec.Analysis.SecondaryBeats {
		if _, err := tx.Exec(`
			INSERT INTO analysis_beats (analysis_id, beat, rank, position)
			VALUES (?, ?, 'secondary', ?)
		`, analysisID, beat, i); err != nil {
			return 0, fmt.Errorf("failed to insert secondary beat: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit analysis: %w", err)
	}

	return analysisID, nil
}

// GetAnalysisByID loads one stored analysis.
func (db *DB) GetAnalysisByID(analysisID int64) (*AnalysisRecord, error) {
	row := db.QueryRow(`
		SELECT analysis_id, url, title, byline, content_hash, language, language_confidence,
		       primary_beats, secondary_beats, confidence, reasoning, evidence_count, created_at
		FROM analyses WHERE analysis_id = ?
	`, analysisID)

	rec, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("analysis %d not found", analysisID)
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return rec, nil
}

// RecentAnalyses returns the most recently stored analyses, newest first.
func (db *DB) RecentAnalyses(limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT analysis_id, url, title, byline, content_hash, language, language_confidence,
		       primary_beats, secondary_beats, confidence, reasoning, evidence_count, created_at
		FROM analyses ORDER BY created_at DESC, analysis_id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return records, nil
}

// BeatStats aggregates stored analyses per beat, most covered first.
func (db *DB) BeatStats() ([]BeatStat, error) {
	rows, err := db.Query(`
		SELECT ab.beat,
		       COUNT(*) AS total,
		       SUM(CASE WHEN ab.rank = 'primary' THEN 1 ELSE 0 END) AS primary_count,
		       AVG(a.confidence) AS avg_confidence
		FROM analysis_beats ab
		JOIN analyses a ON a.analysis_id = ab.analysis_id
		GROUP BY ab.beat
		ORDER BY total DESC, ab.beat ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query beat stats: %w", err)
	}
	defer rows.Close()

	var stats []BeatStat
	for rows.Next() {
		var s BeatStat
		if err := rows.Scan(&s.Beat, &s.Total, &s.PrimaryCount, &s.AvgConfidence); err != nil {
			return nil, fmt.Errorf("failed to scan beat stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate beat stats: %w", err)
	}
	return stats, nil
}

// CountAnalyses returns the number of stored analyses.
func (db *DB) CountAnalyses() (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM analyses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysis(s scanner) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var url, title, byline, contentHash, lang, reasoning sql.NullString
	var langConf sql.NullFloat64
	var primaryJSON, secondaryJSON string

	err := s.Scan(&rec.AnalysisID, &url, &title, &byline, &contentHash, &lang, &langConf,
		&primaryJSON, &secondaryJSON, &rec.Analysis.Confidence, &reasoning, &rec.EvidenceCount, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	rec.URL = url.String
	rec.Title = title.String
	rec.Byline = byline.String
	rec.ContentHash = contentHash.String
	rec.Language = lang.String
	rec.LanguageConfidence = langConf.Float64
	rec.Analysis.Reasoning = reasoning.String

	if err := json.Unmarshal([]byte(primaryJSON), &rec.Analysis.PrimaryBeats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal primary beats: %w", err)
	}
	if err := json.Unmarshal([]byte(secondaryJSON), &rec.Analysis.SecondaryBeats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal secondary beats: %w", err)
	}

	return &rec, nil
}

func emptyIfNil(beats []string) []string {
	if beats == nil {
		return []string{}
	}
	return beats
}
