package synthesis

import "github.com/dtnitsch/beatscope/models"

// Compare picks the more reliable of two analyses. Section-sourced
// evidence is the strongest signal, so the analysis with more
// section-based labels wins; ties fall back to overall confidence, and a
// full tie deterministically returns the first argument. The chosen input
// is returned unchanged.
func Compare(a, b models.BeatAnalysis) models.BeatAnalysis {
	if len(a.Sources.SectionBased) > len(b.Sources.SectionBased) {
		return a
	}
	if len(b.Sources.SectionBased) > len(a.Sources.SectionBased) {
		return b
	}
	if b.Confidence > a.Confidence {
		return b
	}
	return a
}
