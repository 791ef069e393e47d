package models

// EvidenceSource tags which extractor class produced an evidence item.
type EvidenceSource string

const (
	SourceSection EvidenceSource = "section"
	SourceKeyword EvidenceSource = "keyword"
	SourceContext EvidenceSource = "context"
	SourceByline  EvidenceSource = "byline"
)

// Evidence is one weighted, confidence-scored observation linking content
// to a candidate beat. Items are value objects: produced once by an
// extractor, consumed once by the synthesizer, never mutated.
type Evidence struct {
	Beat       string         `json:"beat"`
	Source     EvidenceSource `json:"source"`
	Confidence float64        `json:"confidence"` // 0-1
	Weight     float64        `json:"weight"`     // extractor-class authority, > 0
	Evidence   string         `json:"evidence"`   // human-readable match description
}

// Score is the item's contribution to its beat's total.
func (e Evidence) Score() float64 {
	return e.Confidence * e.Weight
}

// SourceSummary groups beat labels by originating extractor class.
// Labels are not deduplicated; this is a coarse audit view, independent
// from the ranked primary/secondary sets.
type SourceSummary struct {
	SectionBased []string `json:"section_based,omitempty"`
	KeywordBased []string `json:"keyword_based,omitempty"`
	ContextBased []string `json:"context_based,omitempty"`
}

// BeatAnalysis is the synthesized classification for one piece of content.
// It is a terminal, read-only artifact: comparisons and merges consume
// existing analyses and produce new ones.
type BeatAnalysis struct {
	PrimaryBeats   []string      `json:"primary_beats"`
	SecondaryBeats []string      `json:"secondary_beats"`
	Confidence     float64       `json:"confidence"` // 0-1
	Sources        SourceSummary `json:"sources"`
	Reasoning      string        `json:"reasoning"`
}
