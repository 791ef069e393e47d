package extractors

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/beatscope/models"
	"github.com/dtnitsch/beatscope/pkg/taxonomy"
)

// Byline matches the taxonomy's role-keyword rules against the author
// byline. A byline can match multiple rules (a dual-beat reporter emits
// one item per matching rule).
func Byline(tax *taxonomy.Taxonomy, opts models.Options, byline string) []models.Evidence {
	byline = strings.TrimSpace(byline)
	if byline == "" {
		return nil
	}

	var items []models.Evidence
	for _, rule := range tax.BylineRules() {
		if !rule.Pattern.MatchString(byline) {
			continue
		}
		items = append(items, models.Evidence{
			Beat:       rule.Beat,
			Source:     models.SourceByline,
			Confidence: bylineConfidence,
			Weight:     opts.BylineWeight,
			Evidence:   fmt.Sprintf("Byline mention: %q", byline),
		})
	}
	return items
}
