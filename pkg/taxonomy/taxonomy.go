// Package taxonomy holds the static lookup tables the extractors match
// content against: section segments, keyword patterns, context indicator
// words, and byline role rules. A Taxonomy is validated and compiled once
// at construction and is immutable afterwards, so it is safe to share
// across goroutines.
package taxonomy

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Definition is the raw, serializable form of a taxonomy. It is what a
// YAML taxonomy file unmarshals into; New validates and compiles it.
type Definition struct {
	// Sections maps a lowercased section segment to the beats it implies.
	Sections map[string][]string `yaml:"sections"`
	// Keywords maps a beat to regex patterns matched case-insensitively
	// anywhere in title+body.
	Keywords map[string][]string `yaml:"keywords"`
	// Contexts maps a beat to plain indicator words matched by
	// case-insensitive substring containment.
	Contexts map[string][]string `yaml:"contexts"`
	// Bylines are role-keyword rules matched against the author byline.
	Bylines []BylineDefinition `yaml:"bylines"`
}

// BylineDefinition is one byline rule in raw form.
type BylineDefinition struct {
	Pattern string `yaml:"pattern"`
	Beat    string `yaml:"beat"`
}

// BylineRule is a compiled byline rule.
type BylineRule struct {
	Pattern *regexp.Regexp
	Beat    string
}

// Taxonomy is the compiled, immutable lookup structure.
type Taxonomy struct {
	sections map[string][]string
	keywords map[string][]*regexp.Regexp
	contexts map[string][]string
	bylines  []BylineRule

	// Sorted key slices so iteration order is stable across runs.
	sectionKeys []string
	keywordKeys []string
	contextKeys []string
}

// New validates a definition and compiles it into a Taxonomy.
// Invalid regexes, empty beat labels, and empty pattern lists are
// construction errors; a built Taxonomy can never fail at match time.
func New(def Definition) (*Taxonomy, error) {
	t := &Taxonomy{
		sections: make(map[string][]string, len(def.Sections)),
		keywords: make(map[string][]*regexp.Regexp, len(def.Keywords)),
		contexts: make(map[string][]string, len(def.Contexts)),
	}

	for segment, beats := range def.Sections {
		segment = strings.ToLower(strings.TrimSpace(segment))
		if segment == "" {
			return nil, fmt.Errorf("taxonomy: empty section segment")
		}
		if len(beats) == 0 {
			return nil, fmt.Errorf("taxonomy: section %q maps to no beats", segment)
		}
		cleaned, err := cleanBeats("section", segment, beats)
		if err != nil {
			return nil, err
		}
		t.sections[segment] = cleaned
		t.sectionKeys = append(t.sectionKeys, segment)
	}

	for beat, patterns := range def.Keywords {
		beat = strings.TrimSpace(beat)
		if beat == "" {
			return nil, fmt.Errorf("taxonomy: keyword entry with empty beat label")
		}
		if len(patterns) == 0 {
			return nil, fmt.Errorf("taxonomy: beat %q has no keyword patterns", beat)
		}
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("taxonomy: invalid keyword pattern %q for beat %q: %w", p, beat, err)
			}
			compiled = append(compiled, re)
		}
		t.keywords[beat] = compiled
		t.keywordKeys = append(t.keywordKeys, beat)
	}

	for beat, words := range def.Contexts {
		beat = strings.TrimSpace(beat)
		if beat == "" {
			return nil, fmt.Errorf("taxonomy: context entry with empty beat label")
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("taxonomy: beat %q has no context indicators", beat)
		}
		lowered := make([]string, 0, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				return nil, fmt.Errorf("taxonomy: beat %q has an empty context indicator", beat)
			}
			lowered = append(lowered, w)
		}
		t.contexts[beat] = lowered
		t.contextKeys = append(t.contextKeys, beat)
	}

	for _, b := range def.Bylines {
		beat := strings.TrimSpace(b.Beat)
		if beat == "" {
			return nil, fmt.Errorf("taxonomy: byline rule %q with empty beat label", b.Pattern)
		}
		re, err := regexp.Compile("(?i)" + b.Pattern)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: invalid byline pattern %q: %w", b.Pattern, err)
		}
		t.bylines = append(t.bylines, BylineRule{Pattern: re, Beat: beat})
	}

	sort.Strings(t.sectionKeys)
	sort.Strings(t.keywordKeys)
	sort.Strings(t.contextKeys)

	return t, nil
}

// SectionBeats returns the beats a section segment maps to, or nil.
func (t *Taxonomy) SectionBeats(segment string) []string {
	return t.sections[segment]
}

// SectionSegments returns all section keys in sorted order.
func (t *Taxonomy) SectionSegments() []string {
	return t.sectionKeys
}

// KeywordBeats returns all beats with keyword patterns in sorted order.
func (t *Taxonomy) KeywordBeats() []string {
	return t.keywordKeys
}

// KeywordPatterns returns the compiled patterns for a beat.
func (t *Taxonomy) KeywordPatterns(beat string) []*regexp.Regexp {
	return t.keywords[beat]
}

// ContextBeats returns all beats with context indicators in sorted order.
func (t *Taxonomy) ContextBeats() []string {
	return t.contextKeys
}

// ContextIndicators returns the lowercased indicator words for a beat.
func (t *Taxonomy) ContextIndicators(beat string) []string {
	return t.contexts[beat]
}

// BylineRules returns the compiled byline rules in definition order.
func (t *Taxonomy) BylineRules() []BylineRule {
	return t.bylines
}

// BeatCount returns the number of distinct beats named anywhere in the
// taxonomy. Used by `taxonomy check` reporting.
func (t *Taxonomy) BeatCount() int {
	beats := make(map[string]struct{})
	for _, list := range t.sections {
		for _, b := range list {
			beats[b] = struct{}{}
		}
	}
	for b := range t.keywords {
		beats[b] = struct{}{}
	}
	for b := range t.contexts {
		beats[b] = struct{}{}
	}
	for _, r := range t.bylines {
		beats[r.Beat] = struct{}{}
	}
	return len(beats)
}

func cleanBeats(kind, key string, beats []string) ([]string, error) {
	cleaned := make([]string, 0, len(beats))
	for _, b := range beats {
		b = strings.TrimSpace(b)
		if b == "" {
			return nil, fmt.Errorf("taxonomy: %s %q maps to an empty beat label", kind, key)
		}
		cleaned = append(cleaned, b)
	}
	return cleaned, nil
}
