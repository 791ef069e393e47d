package synthesis

import (
	"fmt"

	"github.com/dtnitsch/beatscope/models"
)

// MergeEmptyReasoning is the rationale for merging an empty input list.
const MergeEmptyReasoning = "No analyses to merge"

// Merge combines completed analyses into a fresh one. Each input's
// primary beats are re-emitted as section-sourced synthetic evidence
// (they already survived one synthesis pass, so they carry the highest
// trust) and secondary beats as keyword-sourced evidence, both weighted
// by how confident the contributing analysis was. The synthetic items are
// then run back through Synthesize, which makes merging N analyses
// equivalent to re-synthesizing their summarized outputs.
//
// A single analysis is returned unchanged; inputs are never mutated.
func Merge(opts models.Options, analyses []models.BeatAnalysis) models.BeatAnalysis {
	switch len(analyses) {
	case 0:
		return models.BeatAnalysis{Reasoning: MergeEmptyReasoning}
	case 1:
		return analyses[0]
	}

	var items []models.Evidence
	for _, a := range analyses {
		for _, beat := range a.PrimaryBeats {
			items = append(items, models.Evidence{
				Beat:       beat,
				Source:     models.SourceSection,
				Confidence: a.Confidence,
				Weight:     opts.SectionWeight * a.Confidence,
				Evidence:   fmt.Sprintf("Merged primary beat (analysis confidence %.2f)", a.Confidence),
			})
		}
		for _, beat := range a.SecondaryBeats {
			items = append(items, models.Evidence{
				Beat:       beat,
				Source:     models.SourceKeyword,
				Confidence: a.Confidence * 0.8,
				Weight:     opts.KeywordWeight * a.Confidence,
				Evidence:   fmt.Sprintf("Merged secondary beat (analysis confidence %.2f)", a.Confidence),
			})
		}
	}
	return Synthesize(opts, items)
}
