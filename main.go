package main

import (
	"log"
	"os"

	"github.com/dtnitsch/beatscope/internal/classify"
	dbcmd "github.com/dtnitsch/beatscope/internal/db"
	"github.com/dtnitsch/beatscope/internal/ingest"
	taxonomycmd "github.com/dtnitsch/beatscope/internal/taxonomy"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "beatscope",
		Usage: "classify editorial content into topical beats",
		Commands: []*cli.Command{
			{
				Name:  "classify",
				Usage: "Classify content descriptors into ranked beats",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "section-path", Usage: "URL or section path, e.g. /technology/ai"},
					&cli.StringFlag{Name: "title", Usage: "Content title"},
					&cli.StringFlag{Name: "body", Usage: "Content body text"},
					&cli.StringFlag{Name: "byline", Usage: "Author byline"},
					&cli.StringFlag{Name: "input", Usage: "JSON file with an array of content descriptors"},
					&cli.IntFlag{Name: "workers", Value: 4, Usage: "Worker pool size for batch input"},
					&cli.BoolFlag{Name: "store", Usage: "Persist analyses to the database"},
					&cli.BoolFlag{Name: "detect-language", Usage: "Detect content language"},
				}, commonFlags()...),
				Action: classify.ClassifyAction,
			},
			{
				Name:  "ingest",
				Usage: "Fetch article URLs, extract content, classify, and store",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "urls", Usage: "Comma-separated article URLs", Required: true},
					&cli.IntFlag{Name: "workers", Value: 4, Usage: "Worker pool size"},
				}, commonFlags()...),
				Action: ingest.IngestAction,
			},
			{
				Name:  "merge",
				Usage: "Merge completed analyses into one weighted synthesis",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "input", Usage: "JSON file with an array of analyses", Required: true},
				}, commonFlags()...),
				Action: classify.MergeAction,
			},
			{
				Name:  "compare",
				Usage: "Pick the more reliable of two analyses",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "input", Usage: "JSON file with exactly two analyses", Required: true},
				}, commonFlags()...),
				Action: classify.CompareAction,
			},
			{
				Name:  "db",
				Usage: "Browse stored analyses",
				Subcommands: []*cli.Command{
					{
						Name:  "recent",
						Usage: "List recent analyses",
						Flags: append([]cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "Maximum rows to list"},
						}, commonFlags()...),
						Action: dbcmd.RecentAction,
					},
					{
						Name:      "show",
						Usage:     "Show one analysis in full",
						ArgsUsage: "<analysis-id>",
						Flags:     commonFlags(),
						Action:    dbcmd.ShowAction,
					},
					{
						Name:   "stats",
						Usage:  "Per-beat aggregates over stored analyses",
						Flags:  commonFlags(),
						Action: dbcmd.StatsAction,
					},
				},
			},
			{
				Name:  "taxonomy",
				Usage: "Inspect and validate taxonomies",
				Subcommands: []*cli.Command{
					{
						Name:      "check",
						Usage:     "Validate a taxonomy YAML file (or report on the built-in one)",
						ArgsUsage: "[taxonomy.yaml]",
						Action:    taxonomycmd.CheckAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// commonFlags are shared by every command that touches the engine or the
// database.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "taxonomy", Usage: "YAML taxonomy file (defaults to the built-in taxonomy)"},
		&cli.StringFlag{Name: "db", Usage: "SQLite database path (defaults to next to the binary)"},
		&cli.BoolFlag{Name: "quiet", Usage: "Only log errors"},
	}
}
