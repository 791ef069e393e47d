package classify

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/dtnitsch/beatscope/internal/common"
	"github.com/dtnitsch/beatscope/models"
	"github.com/dtnitsch/beatscope/pkg/db"
	"github.com/dtnitsch/beatscope/pkg/engine"
	"github.com/dtnitsch/beatscope/pkg/language"
)

// Run classifies a batch of content descriptors through a worker pool.
// Classification itself cannot fail; only persistence can, so a failed
// result always carries a store error. Results come back in job order.
func Run(logger *slog.Logger, eng *engine.Engine, docs []Job, workerCount int, detector *language.Detector, database *db.DB) []Result {
	if workerCount <= 0 {
		workerCount = 4
	}

	logger.Info("Starting classification phase", "document_count", len(docs), "workers", workerCount, "store", database != nil)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(docs))
	results := make(chan Result, len(docs))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, eng, detector, database, &wg, jobs, results)
	}

	for _, job := range docs {
		jobs <- job
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All classification workers finished")

	collected := make([]Result, 0, len(docs))
	for result := range results {
		collected = append(collected, result)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Index < collected[j].Index
	})
	return collected
}

// worker is a goroutine that processes jobs from the jobs channel
// and sends results to the results channel.
func worker(id int, logger *slog.Logger, eng *engine.Engine, detector *language.Detector, database *db.DB, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "label", job.Label)
		result := Result{
			Index:   job.Index,
			Label:   job.Label,
			URL:     job.URL,
			Content: job.Content,
		}

		result.Analysis = eng.Analyze(job.Content)

		if detector != nil {
			result.Language, result.LanguageConfidence = detector.Detect(job.Content.Text())
		}

		if database != nil {
			analysisID, err := storeResult(database, result)
			if err != nil {
				logger.Error("Failed to store analysis", "worker_id", id, "label", job.Label, "error", err)
				result.Error = err
				result.ErrorType = "store_error"
				results <- result
				continue
			}
			result.AnalysisID = analysisID
		}

		results <- result
		logger.Info("Worker finished job", "worker_id", id, "label", job.Label,
			"primary_beats", result.Analysis.PrimaryBeats, "confidence", result.Analysis.Confidence)
	}
}

func storeResult(database *db.DB, r Result) (int64, error) {
	rec := db.AnalysisRecord{
		URL:                r.URL,
		Title:              r.Content.Title,
		Byline:             r.Content.Byline,
		ContentHash:        common.ContentHash([]byte(r.Content.Text())),
		Language:           r.Language,
		LanguageConfidence: r.LanguageConfidence,
		Analysis:           r.Analysis,
		EvidenceCount:      evidenceCount(r.Analysis),
	}
	analysisID, err := database.InsertAnalysis(rec)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return analysisID, nil
}

// evidenceCount recovers the audit-view item count from the analysis.
func evidenceCount(a models.BeatAnalysis) int {
	return len(a.Sources.SectionBased) + len(a.Sources.KeywordBased) + len(a.Sources.ContextBased)
}

// LoadDocuments reads a JSON array of content descriptors from a file's
// bytes and labels each for output.
func LoadDocuments(data []byte) ([]Job, error) {
	var docs []models.Content
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}

	jobs := make([]Job, 0, len(docs))
	for i, doc := range docs {
		label := doc.Title
		if label == "" {
			label = doc.SectionPath
		}
		if label == "" {
			label = fmt.Sprintf("document %d", i+1)
		}
		jobs = append(jobs, Job{Index: i, Label: label, Content: doc})
	}
	return jobs, nil
}
