package extractors

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/beatscope/models"
	"github.com/dtnitsch/beatscope/pkg/taxonomy"
)

// Context counts co-occurring topical indicator words in title+body.
// A beat only fires once at least ContextMinMatches distinct indicators
// are present; a single incidental word never triggers a beat. Confidence
// grows with the match count and is clamped to 1.0.
func Context(tax *taxonomy.Taxonomy, opts models.Options, title, body string) []models.Evidence {
	text := strings.ToLower(title + " " + body)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var items []models.Evidence
	for _, beat := range tax.ContextBeats() {
		var matched []string
		for _, word := range tax.ContextIndicators(beat) {
			if strings.Contains(text, word) {
				matched = append(matched, word)
			}
		}
		if len(matched) < opts.ContextMinMatches {
			continue
		}

		confidence := contextBaseConfidence + contextConfidenceStep*float64(len(matched))
		if confidence > 1 {
			confidence = 1
		}
		items = append(items, models.Evidence{
			Beat:       beat,
			Source:     models.SourceContext,
			Confidence: confidence,
			Weight:     opts.ContextWeight,
			Evidence:   fmt.Sprintf("Context indicators: %s", strings.Join(matched, ", ")),
		})
	}
	return items
}
