package classify

import (
	"sort"

	"github.com/dtnitsch/beatscope/models"
)

type Job struct {
	Index   int
	Label   string
	URL     string // source page URL, when the content came from one
	Content models.Content
}

// Result holds the outcome of a processed job.
type Result struct {
	Index              int
	Label              string
	URL                string
	Content            models.Content
	Analysis           models.BeatAnalysis
	Language           string
	LanguageConfidence float64
	AnalysisID         int64
	Error              error
	ErrorType          string
}

// ResultSummary is the structured output for a single document.
type ResultSummary struct {
	Label              string   `json:"label,omitempty"`
	Status             string   `json:"status"`
	Error              string   `json:"error,omitempty"`
	ErrorType          string   `json:"error_type,omitempty"`
	PrimaryBeats       []string `json:"primary_beats,omitempty"`
	SecondaryBeats     []string `json:"secondary_beats,omitempty"`
	Confidence         float64  `json:"confidence"`
	Reasoning          string   `json:"reasoning,omitempty"`
	Language           string   `json:"language,omitempty"`
	LanguageConfidence float64  `json:"language_confidence,omitempty"`
	AnalysisID         int64    `json:"analysis_id,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string          `json:"status"`
	Results []ResultSummary `json:"results"`
	Stats   Stats           `json:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalDocuments   int      `json:"total_documents"`
	Successful       int      `json:"successful"`
	Failed           int      `json:"failed"`
	WithPrimaryBeats int      `json:"with_primary_beats"`
	TotalTimeSeconds float64  `json:"total_time_seconds"`
	TopBeats         []string `json:"top_beats,omitempty"`
}

// BuildSummary converts a worker result to its output form.
func BuildSummary(r Result) ResultSummary {
	summary := ResultSummary{
		Label:              r.Label,
		Language:           r.Language,
		LanguageConfidence: r.LanguageConfidence,
		AnalysisID:         r.AnalysisID,
	}
	if r.Error != nil {
		summary.Status = "failed"
		summary.Error = r.Error.Error()
		summary.ErrorType = r.ErrorType
		return summary
	}
	summary.Status = "success"
	summary.PrimaryBeats = r.Analysis.PrimaryBeats
	summary.SecondaryBeats = r.Analysis.SecondaryBeats
	summary.Confidence = r.Analysis.Confidence
	summary.Reasoning = r.Analysis.Reasoning
	return summary
}

// BuildStats aggregates run statistics, including the most frequent
// primary beats across all successful documents.
func BuildStats(results []Result, elapsed float64) Stats {
	stats := Stats{
		TotalDocuments:   len(results),
		TotalTimeSeconds: elapsed,
	}
	beatCounts := make(map[string]int)
	for _, r := range results {
		if r.Error != nil {
			stats.Failed++
			continue
		}
		stats.Successful++
		if len(r.Analysis.PrimaryBeats) > 0 {
			stats.WithPrimaryBeats++
		}
		for _, beat := range r.Analysis.PrimaryBeats {
			beatCounts[beat]++
		}
	}
	stats.TopBeats = topBeats(beatCounts, 5)
	return stats
}

func topBeats(counts map[string]int, limit int) []string {
	type kv struct {
		beat  string
		count int
	}
	sorted := make([]kv, 0, len(counts))
	for b, c := range counts {
		sorted = append(sorted, kv{beat: b, count: c})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].beat < sorted[j].beat
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	beats := make([]string, 0, len(sorted))
	for _, item := range sorted {
		beats = append(beats, item.beat)
	}
	return beats
}
