// Package extractors produces beat evidence from the individual fields of
// a content descriptor. Each extractor is a pure function of the taxonomy,
// the options, and its input: no state, no I/O, no failure modes. Empty or
// missing input yields an empty evidence list, never an error.
package extractors

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dtnitsch/beatscope/models"
	"github.com/dtnitsch/beatscope/pkg/taxonomy"
)

// Per-item confidence levels by extractor class. Weights live in
// models.Options; these certainty floors are fixed properties of how
// trustworthy each match kind is.
const (
	sectionExactConfidence   = 0.9
	sectionPartialConfidence = 0.7
	keywordConfidence        = 0.6
	contextBaseConfidence    = 0.4
	contextConfidenceStep    = 0.1
	bylineConfidence         = 0.5
)

// Section extracts evidence from a URL or section path. Each path segment
// is matched exactly against the section table, and additionally by
// symmetric substring containment against every section key. Both can fire
// for the same segment; the over-generation is resolved by score folding
// in the synthesizer, not suppressed here.
func Section(tax *taxonomy.Taxonomy, opts models.Options, path string) []models.Evidence {
	segments := pathSegments(path)
	if len(segments) == 0 {
		return nil
	}

	var items []models.Evidence
	for _, segment := range segments {
		for _, beat := range tax.SectionBeats(segment) {
			items = append(items, models.Evidence{
				Beat:       beat,
				Source:     models.SourceSection,
				Confidence: sectionExactConfidence,
				Weight:     opts.SectionWeight,
				Evidence:   fmt.Sprintf("Section path: /%s", segment),
			})
		}
		for _, key := range tax.SectionSegments() {
			if !strings.Contains(segment, key) && !strings.Contains(key, segment) {
				continue
			}
			for _, beat := range tax.SectionBeats(key) {
				items = append(items, models.Evidence{
					Beat:       beat,
					Source:     models.SourceSection,
					Confidence: sectionPartialConfidence,
					Weight:     opts.SectionPartialWeight,
					Evidence:   fmt.Sprintf("Section path contains: %s", key),
				})
			}
		}
	}
	return items
}

// pathSegments lowercases and splits a path into non-empty segments.
// Full URLs are reduced to their path component first.
func pathSegments(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if strings.Contains(path, "://") {
		if u, err := url.Parse(path); err == nil {
			path = u.Path
		}
	}

	var segments []string
	for _, seg := range strings.Split(strings.ToLower(path), "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
