// Package language detects the language of ingested article text so
// stored analyses can record it. The taxonomy is English; callers use the
// detected language to discount classifications of non-English content.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua language detector over the languages this tool
// commonly ingests. Building the detector loads language models, so build
// one and reuse it.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector for English plus the common European
// languages seen in media-contact sources.
func NewDetector() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Portuguese,
		lingua.Italian,
		lingua.Dutch,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the ISO-639-1 code and confidence for text.
// Empty or undetectable text returns ("", 0).
func (d *Detector) Detect(text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return "", 0
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}
	confidence := d.detector.ComputeLanguageConfidence(text, lang)
	return strings.ToLower(lang.IsoCode639_1().String()), confidence
}
