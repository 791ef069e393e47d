package taxonomy

import (
	"fmt"
	"strings"

	taxonomypkg "github.com/dtnitsch/beatscope/pkg/taxonomy"
	"github.com/urfave/cli/v2"
)

// CheckAction loads and validates a taxonomy file, reporting its shape.
// With no file argument it reports on the built-in taxonomy.
func CheckAction(c *cli.Context) error {
	var tax *taxonomypkg.Taxonomy
	var source string

	if c.NArg() > 0 {
		path := c.Args().First()
		loaded, err := taxonomypkg.Load(path)
		if err != nil {
			return fmt.Errorf("taxonomy validation failed: %w", err)
		}
		tax = loaded
		source = path
	} else {
		tax = taxonomypkg.Default()
		source = "built-in"
	}

	fmt.Printf("Taxonomy: %s\n", source)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Distinct beats:       %d\n", tax.BeatCount())
	fmt.Printf("Section segments:     %d\n", len(tax.SectionSegments()))
	fmt.Printf("Keyword beats:        %d\n", len(tax.KeywordBeats()))
	fmt.Printf("Context beats:        %d\n", len(tax.ContextBeats()))
	fmt.Printf("Byline rules:         %d\n", len(tax.BylineRules()))

	patternCount := 0
	for _, beat := range tax.KeywordBeats() {
		patternCount += len(tax.KeywordPatterns(beat))
	}
	indicatorCount := 0
	for _, beat := range tax.ContextBeats() {
		indicatorCount += len(tax.ContextIndicators(beat))
	}
	fmt.Printf("Keyword patterns:     %d\n", patternCount)
	fmt.Printf("Context indicators:   %d\n", indicatorCount)

	fmt.Println("\nOK: taxonomy is valid")
	return nil
}
