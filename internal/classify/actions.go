package classify

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/beatscope/models"
	dbpkg "github.com/dtnitsch/beatscope/pkg/db"
	"github.com/dtnitsch/beatscope/pkg/engine"
	"github.com/dtnitsch/beatscope/pkg/language"
	"github.com/dtnitsch/beatscope/pkg/taxonomy"
	"github.com/urfave/cli/v2"
)

// NewLogger builds the JSON logger the CLI actions share. --quiet raises
// the level so only errors reach stderr.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// NewEngine builds the classification engine from CLI flags: the built-in
// taxonomy unless --taxonomy points at a YAML file.
func NewEngine(c *cli.Context) (*engine.Engine, error) {
	opts := models.DefaultOptions()
	taxonomyPath := c.String("taxonomy")
	if taxonomyPath == "" {
		return engine.New(taxonomy.Default(), opts), nil
	}

	tax, err := taxonomy.Load(taxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return engine.New(tax, opts), nil
}

// OpenDatabase opens the analysis store, honoring an explicit --db path.
func OpenDatabase(c *cli.Context) (*dbpkg.DB, error) {
	if path := c.String("db"); path != "" {
		return dbpkg.OpenPath(path)
	}
	return dbpkg.Open()
}

func ClassifyAction(c *cli.Context) error {
	logger := NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	eng, err := NewEngine(c)
	if err != nil {
		return err
	}

	jobs, err := collectJobs(c)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no content provided: use --input or the --section-path/--title/--body/--byline flags")
	}

	var database *dbpkg.DB
	if c.Bool("store") {
		database, err = OpenDatabase(c)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()
	}

	var detector *language.Detector
	if c.Bool("detect-language") {
		detector = language.NewDetector()
	}

	results := Run(logger, eng, jobs, c.Int("workers"), detector, database)

	finalOutput := &FinalOutput{Status: "success"}
	for _, r := range results {
		finalOutput.Results = append(finalOutput.Results, BuildSummary(r))
	}
	finalOutput.Stats = BuildStats(results, time.Since(startTime).Seconds())
	if finalOutput.Stats.Failed > 0 {
		finalOutput.Status = "partial_failure"
	}

	return PrintJSON(finalOutput)
}

// collectJobs builds the work list from --input or the inline flags.
func collectJobs(c *cli.Context) ([]Job, error) {
	if inputPath := c.String("input"); inputPath != "" {
		data, err := os.ReadFile(filepath.Clean(inputPath))
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return LoadDocuments(data)
	}

	content := models.Content{
		SectionPath: c.String("section-path"),
		Title:       c.String("title"),
		Body:        c.String("body"),
		Byline:      c.String("byline"),
	}
	if content.Empty() {
		return nil, nil
	}

	label := content.Title
	if label == "" {
		label = "inline"
	}
	return []Job{{Index: 0, Label: label, Content: content}}, nil
}

func MergeAction(c *cli.Context) error {
	eng, err := NewEngine(c)
	if err != nil {
		return err
	}

	analyses, err := loadAnalyses(c.String("input"))
	if err != nil {
		return err
	}

	merged := eng.Merge(analyses)
	return PrintJSON(merged)
}

func CompareAction(c *cli.Context) error {
	analyses, err := loadAnalyses(c.String("input"))
	if err != nil {
		return err
	}
	if len(analyses) != 2 {
		return fmt.Errorf("compare expects exactly 2 analyses, got %d", len(analyses))
	}

	eng, err := NewEngine(c)
	if err != nil {
		return err
	}

	chosen := eng.Compare(analyses[0], analyses[1])
	return PrintJSON(chosen)
}

func loadAnalyses(inputPath string) ([]models.BeatAnalysis, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("no input file provided via --input flag")
	}
	data, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var analyses []models.BeatAnalysis
	if err := json.Unmarshal(data, &analyses); err != nil {
		return nil, fmt.Errorf("failed to parse analyses JSON: %w", err)
	}
	return analyses, nil
}

// PrintJSON writes indented JSON to stdout; all commands share it so
// output stays machine-readable.
func PrintJSON(v interface{}) error {
	outputData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(outputData))
	return nil
}
