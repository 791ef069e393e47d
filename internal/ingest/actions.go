// Package ingest implements the `ingest` command: fetch article URLs,
// extract their content, classify, and store the analyses.
package ingest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dtnitsch/beatscope/internal/classify"
	"github.com/dtnitsch/beatscope/internal/common"
	"github.com/dtnitsch/beatscope/pkg/article"
	"github.com/dtnitsch/beatscope/pkg/fetcher"
	"github.com/dtnitsch/beatscope/pkg/language"
	"github.com/urfave/cli/v2"
)

func IngestAction(c *cli.Context) error {
	logger := classify.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	urlsStr := c.String("urls")
	if urlsStr == "" {
		return fmt.Errorf("no URLs provided via --urls flag")
	}
	urls, invalid := common.SanitizeAndValidateURLs(strings.Split(urlsStr, ","))
	for _, bad := range invalid {
		logger.Error("Skipping invalid URL", "url", bad)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no valid URLs to ingest")
	}

	eng, err := classify.NewEngine(c)
	if err != nil {
		return err
	}

	database, err := classify.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	f := fetcher.NewFetcher()
	detector := language.NewDetector()

	// Fetch and extract sequentially; the classification worker pool
	// handles the fan-out once content is in memory.
	var jobs []classify.Job
	var failed []classify.Result
	for i, url := range urls {
		logger.Info("Fetching URL", "url", url)
		html, err := f.Get(c.Context, url)
		if err != nil {
			logger.Error("Failed to fetch URL", "url", url, "error", err)
			failed = append(failed, classify.Result{
				Index: i, Label: url, URL: url,
				Error: err, ErrorType: "fetch_error",
			})
			continue
		}

		extraction, err := article.FromHTML(url, html)
		if err != nil {
			logger.Error("Failed to extract article", "url", url, "error", err)
			failed = append(failed, classify.Result{
				Index: i, Label: url, URL: url,
				Error: err, ErrorType: "extract_error",
			})
			continue
		}

		label := extraction.Content.Title
		if label == "" {
			label = url
		}
		jobs = append(jobs, classify.Job{
			Index:   i,
			Label:   label,
			URL:     url,
			Content: extraction.Content,
		})
	}

	results := classify.Run(logger, eng, jobs, c.Int("workers"), detector, database)
	results = append(results, failed...)
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	finalOutput := &classify.FinalOutput{Status: "success"}
	for _, r := range results {
		finalOutput.Results = append(finalOutput.Results, classify.BuildSummary(r))
	}
	finalOutput.Stats = classify.BuildStats(results, time.Since(startTime).Seconds())
	if finalOutput.Stats.Failed > 0 {
		finalOutput.Status = "partial_failure"
	}

	return classify.PrintJSON(finalOutput)
}
