package models

// Options is the tunable surface of the engine besides the taxonomy
// tables: extractor-class weights, score thresholds, and result caps.
type Options struct {
	// Extractor-class weights.
	SectionWeight        float64 `yaml:"section_weight"`
	SectionPartialWeight float64 `yaml:"section_partial_weight"` // substring section matches
	KeywordWeight        float64 `yaml:"keyword_weight"`
	ContextWeight        float64 `yaml:"context_weight"`
	BylineWeight         float64 `yaml:"byline_weight"`

	// Score thresholds for the primary/secondary split.
	PrimaryThreshold   float64 `yaml:"primary_threshold"`
	SecondaryThreshold float64 `yaml:"secondary_threshold"`

	// ContextMinMatches is the multiplicity gate: a beat needs at least
	// this many distinct indicator words before context evidence fires.
	ContextMinMatches int `yaml:"context_min_matches"`

	// Result caps.
	MaxPrimary   int `yaml:"max_primary"`
	MaxSecondary int `yaml:"max_secondary"`
}

// DefaultOptions returns the reference scoring configuration.
func DefaultOptions() Options {
	return Options{
		SectionWeight:        10,
		SectionPartialWeight: 8,
		KeywordWeight:        5,
		ContextWeight:        3,
		BylineWeight:         4,
		PrimaryThreshold:     5,
		SecondaryThreshold:   2,
		ContextMinMatches:    2,
		MaxPrimary:           3,
		MaxSecondary:         5,
	}
}
