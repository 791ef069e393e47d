// Package synthesis folds extractor evidence into a ranked beat analysis,
// and provides the compare/merge operations over completed analyses.
package synthesis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dtnitsch/beatscope/models"
)

// EmptyReasoning is the rationale attached when no evidence was produced.
// Absence of evidence is a valid, representable outcome, not an error.
const EmptyReasoning = "No clear beat indicators found in content."

// maxItemScore is the theoretical per-item contribution used to normalize
// analysis confidence: full certainty at the highest class weight.
const maxItemScore = 10

// accumulator collects the per-beat running totals during the fold.
// Transient: built from the evidence list, discarded after synthesis.
type accumulator struct {
	beat          string
	totalScore    float64
	items         []models.Evidence
	maxConfidence float64
}

// Synthesize aggregates evidence items from any combination of extractors
// into a single BeatAnalysis. It is deterministic: ties on total score are
// broken by ascending beat label rather than map iteration order.
func Synthesize(opts models.Options, items []models.Evidence) models.BeatAnalysis {
	if len(items) == 0 {
		return models.BeatAnalysis{Reasoning: EmptyReasoning}
	}

	byBeat := make(map[string]*accumulator)
	for _, item := range items {
		acc := byBeat[item.Beat]
		if acc == nil {
			acc = &accumulator{beat: item.Beat}
			byBeat[item.Beat] = acc
		}
		acc.totalScore += item.Score()
		acc.items = append(acc.items, item)
		if item.Confidence > acc.maxConfidence {
			acc.maxConfidence = item.Confidence
		}
	}

	ranked := make([]*accumulator, 0, len(byBeat))
	for _, acc := range byBeat {
		ranked = append(ranked, acc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].totalScore != ranked[j].totalScore {
			return ranked[i].totalScore > ranked[j].totalScore
		}
		return ranked[i].beat < ranked[j].beat
	})

	analysis := models.BeatAnalysis{
		Sources: summarizeSources(items),
	}

	var totalScore float64
	for _, acc := range ranked {
		totalScore += acc.totalScore
		switch {
		case len(analysis.PrimaryBeats) < opts.MaxPrimary && acc.totalScore >= opts.PrimaryThreshold:
			analysis.PrimaryBeats = append(analysis.PrimaryBeats, acc.beat)
		case len(analysis.SecondaryBeats) < opts.MaxSecondary && acc.totalScore >= opts.SecondaryThreshold:
			analysis.SecondaryBeats = append(analysis.SecondaryBeats, acc.beat)
		}
	}

	analysis.Confidence = totalScore / (float64(len(items)) * maxItemScore)
	if analysis.Confidence > 1 {
		analysis.Confidence = 1
	}

	analysis.Reasoning = buildReasoning(ranked[0], analysis)
	return analysis
}

// summarizeSources groups beat labels by extractor class in input order.
// Byline evidence contributes to scoring but not to this audit view.
func summarizeSources(items []models.Evidence) models.SourceSummary {
	var summary models.SourceSummary
	for _, item := range items {
		switch item.Source {
		case models.SourceSection:
			summary.SectionBased = append(summary.SectionBased, item.Beat)
		case models.SourceKeyword:
			summary.KeywordBased = append(summary.KeywordBased, item.Beat)
		case models.SourceContext:
			summary.ContextBased = append(summary.ContextBased, item.Beat)
		}
	}
	return summary
}

// buildReasoning describes what drove the top-ranked beat, preferring the
// most trusted evidence class that contributed to it.
func buildReasoning(top *accumulator, analysis models.BeatAnalysis) string {
	detail := "context analysis"
	if ev, ok := firstBySource(top.items, models.SourceSection); ok {
		detail = ev.Evidence
	} else if ev, ok := firstBySource(top.items, models.SourceKeyword); ok {
		detail = ev.Evidence
	}

	reasoning := fmt.Sprintf("Top beat %q based on %s", top.beat, detail)

	qualified := append([]string{}, analysis.PrimaryBeats...)
	qualified = append(qualified, analysis.SecondaryBeats...)
	if len(qualified) >= 2 {
		reasoning += fmt.Sprintf("; secondary: %s", strings.Join(qualified[1:], ", "))
	}
	return reasoning
}

func firstBySource(items []models.Evidence, source models.EvidenceSource) (models.Evidence, bool) {
	for _, item := range items {
		if item.Source == source {
			return item, true
		}
	}
	return models.Evidence{}, false
}
