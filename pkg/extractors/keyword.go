package extractors

import (
	"fmt"

	"github.com/dtnitsch/beatscope/models"
	"github.com/dtnitsch/beatscope/pkg/taxonomy"
)

// Keyword matches the taxonomy's keyword patterns against title+body.
// Every matching pattern emits its own item, so multiple distinct matches
// for one beat are additive toward that beat's score.
func Keyword(tax *taxonomy.Taxonomy, opts models.Options, title, body string) []models.Evidence {
	text := title + " " + body
	if text == " " {
		return nil
	}

	var items []models.Evidence
	for _, beat := range tax.KeywordBeats() {
		for _, pattern := range tax.KeywordPatterns(beat) {
			match := pattern.FindString(text)
			if match == "" {
				continue
			}
			items = append(items, models.Evidence{
				Beat:       beat,
				Source:     models.SourceKeyword,
				Confidence: keywordConfidence,
				Weight:     opts.KeywordWeight,
				Evidence:   fmt.Sprintf("Keyword match: %q", match),
			})
		}
	}
	return items
}
