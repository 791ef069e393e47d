package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/beatscope/internal/classify"
	"github.com/urfave/cli/v2"
)

// RecentAction lists the most recently stored analyses in a table.
func RecentAction(c *cli.Context) error {
	database, err := classify.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	records, err := database.RecentAnalyses(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No analyses found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-10s %-8s %-30s %-40s\n",
		"ID", "Created", "Lang", "Conf", "Primary Beats", "Title")
	fmt.Println(strings.Repeat("-", 120))

	for _, r := range records {
		fmt.Printf("%-6d %-20s %-10s %-8.2f %-30s %-40s\n",
			r.AnalysisID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Language,
			r.Analysis.Confidence,
			truncate(strings.Join(r.Analysis.PrimaryBeats, ", "), 30),
			truncate(r.Title, 40),
		)
	}

	fmt.Printf("\nTotal: %d analyses\n", len(records))
	fmt.Printf("\nTip: Use 'beatscope db show <id>' to see details\n")

	return nil
}

// ShowAction prints the full detail of one stored analysis.
func ShowAction(c *cli.Context) error {
	database, err := classify.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if c.NArg() == 0 {
		return fmt.Errorf("no analysis ID provided")
	}
	analysisID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid analysis ID: %s", c.Args().First())
	}

	record, err := database.GetAnalysisByID(analysisID)
	if err != nil {
		return err
	}

	fmt.Printf("Analysis %d\n", record.AnalysisID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
	if record.URL != "" {
		fmt.Printf("URL:         %s\n", record.URL)
	}
	if record.Title != "" {
		fmt.Printf("Title:       %s\n", record.Title)
	}
	if record.Byline != "" {
		fmt.Printf("Byline:      %s\n", record.Byline)
	}
	if record.Language != "" {
		fmt.Printf("Language:    %s (%.2f)\n", record.Language, record.LanguageConfidence)
	}
	fmt.Printf("Confidence:  %.2f\n", record.Analysis.Confidence)
	fmt.Printf("Primary:     %s\n", strings.Join(record.Analysis.PrimaryBeats, ", "))
	fmt.Printf("Secondary:   %s\n", strings.Join(record.Analysis.SecondaryBeats, ", "))
	fmt.Printf("Evidence:    %d items\n", record.EvidenceCount)
	fmt.Printf("Reasoning:   %s\n", record.Analysis.Reasoning)

	return nil
}

// StatsAction prints per-beat aggregates over the stored analyses.
func StatsAction(c *cli.Context) error {
	database, err := classify.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	total, err := database.CountAnalyses()
	if err != nil {
		return fmt.Errorf("failed to count analyses: %w", err)
	}

	stats, err := database.BeatStats()
	if err != nil {
		return fmt.Errorf("failed to get beat stats: %w", err)
	}

	fmt.Printf("Stored analyses: %d\n\n", total)
	if len(stats) == 0 {
		fmt.Println("No beats recorded yet")
		return nil
	}

	fmt.Printf("%-25s %-8s %-10s %-10s\n", "Beat", "Total", "Primary", "Avg Conf")
	fmt.Println(strings.Repeat("-", 60))
	for _, s := range stats {
		fmt.Printf("%-25s %-8d %-10d %-10.2f\n", s.Beat, s.Total, s.PrimaryCount, s.AvgConfidence)
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
