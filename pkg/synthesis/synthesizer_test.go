package synthesis

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/beatscope/models"
)

func item(beat string, source models.EvidenceSource, confidence, weight float64) models.Evidence {
	return models.Evidence{
		Beat:       beat,
		Source:     source,
		Confidence: confidence,
		Weight:     weight,
		Evidence:   "test evidence for " + beat,
	}
}

func TestSynthesize_Empty(t *testing.T) {
	analysis := Synthesize(models.DefaultOptions(), nil)

	if len(analysis.PrimaryBeats) != 0 {
		t.Errorf("PrimaryBeats = %v, want empty", analysis.PrimaryBeats)
	}
	if len(analysis.SecondaryBeats) != 0 {
		t.Errorf("SecondaryBeats = %v, want empty", analysis.SecondaryBeats)
	}
	if analysis.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", analysis.Confidence)
	}
	if analysis.Reasoning != EmptyReasoning {
		t.Errorf("Reasoning = %q, want %q", analysis.Reasoning, EmptyReasoning)
	}
}

func TestSynthesize_ScoreFolding(t *testing.T) {
	opts := models.DefaultOptions()

	// Two items for one beat accumulate: 0.9*10 + 0.6*5 = 12.
	items := []models.Evidence{
		item("technology", models.SourceSection, 0.9, 10),
		item("technology", models.SourceKeyword, 0.6, 5),
	}
	analysis := Synthesize(opts, items)

	if want := []string{"technology"}; !reflect.DeepEqual(analysis.PrimaryBeats, want) {
		t.Errorf("PrimaryBeats = %v, want %v", analysis.PrimaryBeats, want)
	}
	// confidence = 12 / (2 items * 10)
	if want := 0.6; math.Abs(analysis.Confidence-want) > 1e-9 {
		t.Errorf("Confidence = %v, want %v", analysis.Confidence, want)
	}
}

func TestSynthesize_PrimarySecondarySplit(t *testing.T) {
	opts := models.DefaultOptions()

	items := []models.Evidence{
		item("technology", models.SourceSection, 0.9, 10), // 9
		item("finance", models.SourceKeyword, 0.6, 5),     // 3
		item("science", models.SourceContext, 0.5, 3),     // 1.5, below secondary threshold
	}
	analysis := Synthesize(opts, items)

	if want := []string{"technology"}; !reflect.DeepEqual(analysis.PrimaryBeats, want) {
		t.Errorf("PrimaryBeats = %v, want %v", analysis.PrimaryBeats, want)
	}
	if want := []string{"finance"}; !reflect.DeepEqual(analysis.SecondaryBeats, want) {
		t.Errorf("SecondaryBeats = %v, want %v", analysis.SecondaryBeats, want)
	}
}

func TestSynthesize_CapEnforcement(t *testing.T) {
	opts := models.DefaultOptions()

	// Six beats all above the primary threshold; the overflow lands in
	// secondary rather than being dropped.
	items := []models.Evidence{
		item("a", models.SourceSection, 1.0, 10),  // 10
		item("b", models.SourceSection, 0.9, 10),  // 9
		item("c", models.SourceSection, 0.8, 10),  // 8
		item("d", models.SourceSection, 0.7, 10),  // 7
		item("e", models.SourceSection, 0.6, 10),  // 6
		item("f", models.SourceSection, 0.55, 10), // 5.5
	}
	analysis := Synthesize(opts, items)

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(analysis.PrimaryBeats, want) {
		t.Errorf("PrimaryBeats = %v, want %v", analysis.PrimaryBeats, want)
	}
	if want := []string{"d", "e", "f"}; !reflect.DeepEqual(analysis.SecondaryBeats, want) {
		t.Errorf("SecondaryBeats = %v, want %v", analysis.SecondaryBeats, want)
	}
}

func TestSynthesize_TieBreakByLabel(t *testing.T) {
	opts := models.DefaultOptions()

	items := []models.Evidence{
		item("zebra", models.SourceSection, 0.9, 10),
		item("apple", models.SourceSection, 0.9, 10),
	}

	analysis := Synthesize(opts, items)
	if want := []string{"apple", "zebra"}; !reflect.DeepEqual(analysis.PrimaryBeats, want) {
		t.Errorf("PrimaryBeats = %v, want label-ordered %v", analysis.PrimaryBeats, want)
	}

	// Input order must not change the outcome.
	reversed := Synthesize(opts, []models.Evidence{items[1], items[0]})
	if !reflect.DeepEqual(reversed.PrimaryBeats, analysis.PrimaryBeats) {
		t.Errorf("tie-break depends on input order: %v vs %v", reversed.PrimaryBeats, analysis.PrimaryBeats)
	}
}

func TestSynthesize_ConfidenceClamped(t *testing.T) {
	opts := models.DefaultOptions()

	// A single item scoring above the per-item normalizer.
	items := []models.Evidence{item("technology", models.SourceSection, 1.0, 25)}
	analysis := Synthesize(opts, items)
	if analysis.Confidence != 1 {
		t.Errorf("Confidence = %v, want clamp at 1", analysis.Confidence)
	}
}

func TestSynthesize_SourceSummary(t *testing.T) {
	opts := models.DefaultOptions()

	items := []models.Evidence{
		item("technology", models.SourceSection, 0.9, 10),
		item("technology", models.SourceKeyword, 0.6, 5),
		item("finance", models.SourceKeyword, 0.6, 5),
		item("finance", models.SourceContext, 0.6, 3),
		item("sports", models.SourceByline, 0.5, 4),
	}
	analysis := Synthesize(opts, items)

	if want := []string{"technology"}; !reflect.DeepEqual(analysis.Sources.SectionBased, want) {
		t.Errorf("SectionBased = %v, want %v", analysis.Sources.SectionBased, want)
	}
	if want := []string{"technology", "finance"}; !reflect.DeepEqual(analysis.Sources.KeywordBased, want) {
		t.Errorf("KeywordBased = %v, want %v", analysis.Sources.KeywordBased, want)
	}
	if want := []string{"finance"}; !reflect.DeepEqual(analysis.Sources.ContextBased, want) {
		t.Errorf("ContextBased = %v, want %v", analysis.Sources.ContextBased, want)
	}
}

func TestSynthesize_ReasoningPrefersSectionEvidence(t *testing.T) {
	opts := models.DefaultOptions()

	items := []models.Evidence{
		{Beat: "technology", Source: models.SourceKeyword, Confidence: 0.6, Weight: 5, Evidence: `Keyword match: "software"`},
		{Beat: "technology", Source: models.SourceSection, Confidence: 0.9, Weight: 10, Evidence: "Section path: /technology"},
		{Beat: "finance", Source: models.SourceKeyword, Confidence: 0.6, Weight: 5, Evidence: `Keyword match: "ipo"`},
	}
	analysis := Synthesize(opts, items)

	if !strings.Contains(analysis.Reasoning, "Section path: /technology") {
		t.Errorf("Reasoning = %q, want section evidence cited", analysis.Reasoning)
	}
	if !strings.Contains(analysis.Reasoning, "secondary: finance") {
		t.Errorf("Reasoning = %q, want secondary beats appended", analysis.Reasoning)
	}
}

func TestSynthesize_ReasoningFallsBackToKeyword(t *testing.T) {
	opts := models.DefaultOptions()

	items := []models.Evidence{
		{Beat: "finance", Source: models.SourceKeyword, Confidence: 0.6, Weight: 5, Evidence: `Keyword match: "ipo"`},
		{Beat: "finance", Source: models.SourceContext, Confidence: 0.6, Weight: 3, Evidence: "Context indicators: investment, funding"},
	}
	analysis := Synthesize(opts, items)
	if !strings.Contains(analysis.Reasoning, `Keyword match: "ipo"`) {
		t.Errorf("Reasoning = %q, want keyword evidence cited", analysis.Reasoning)
	}

	contextOnly := Synthesize(opts, items[1:])
	if !strings.Contains(contextOnly.Reasoning, "context analysis") {
		t.Errorf("Reasoning = %q, want context analysis fallback", contextOnly.Reasoning)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	opts := models.DefaultOptions()
	items := []models.Evidence{
		item("technology", models.SourceSection, 0.9, 10),
		item("finance", models.SourceKeyword, 0.6, 5),
		item("science", models.SourceContext, 0.6, 3),
		item("technology", models.SourceByline, 0.5, 4),
	}

	first := Synthesize(opts, items)
	for i := 0; i < 10; i++ {
		if got := Synthesize(opts, items); !reflect.DeepEqual(got, first) {
			t.Fatalf("Synthesize() not deterministic: %+v vs %+v", got, first)
		}
	}
}
