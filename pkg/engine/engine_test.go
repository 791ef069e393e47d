package engine

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/beatscope/models"
	"github.com/dtnitsch/beatscope/pkg/synthesis"
)

func TestAnalyze_EmptyContent(t *testing.T) {
	eng := Default()

	analysis := eng.Analyze(models.Content{})

	if len(analysis.PrimaryBeats) != 0 || len(analysis.SecondaryBeats) != 0 {
		t.Errorf("Analyze({}) beats = %v / %v, want empty", analysis.PrimaryBeats, analysis.SecondaryBeats)
	}
	if analysis.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", analysis.Confidence)
	}
	if analysis.Reasoning != synthesis.EmptyReasoning {
		t.Errorf("Reasoning = %q, want %q", analysis.Reasoning, synthesis.EmptyReasoning)
	}
}

func TestAnalyze_SectionPriority(t *testing.T) {
	eng := Default()

	// Section evidence alone clears the primary threshold: 0.9*10 = 9 >= 5.
	analysis := eng.Analyze(models.Content{SectionPath: "/technology/ai"})

	if !contains(analysis.PrimaryBeats, "technology") {
		t.Errorf("PrimaryBeats = %v, want technology", analysis.PrimaryBeats)
	}
	if len(analysis.Sources.SectionBased) == 0 {
		t.Error("Sources.SectionBased is empty, want section provenance recorded")
	}
}

func TestAnalyze_IndependentBeatScores(t *testing.T) {
	eng := Default()

	// "AI" hits the artificial intelligence keyword table and "startup"
	// hits technology's; each beat accumulates its own score.
	analysis := eng.Analyze(models.Content{Title: "AI startup raises funding"})

	all := append(append([]string{}, analysis.PrimaryBeats...), analysis.SecondaryBeats...)
	if !contains(all, "artificial intelligence") {
		t.Errorf("ranked beats = %v, want artificial intelligence", all)
	}
	if !contains(all, "technology") {
		t.Errorf("ranked beats = %v, want technology", all)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	eng := Default()
	content := models.Content{
		SectionPath: "/business/markets",
		Title:       "Markets rally as tech IPO prices above range",
		Body: "The software company's shares opened higher after strong " +
			"investor demand. Venture funding across the sector has doubled.",
		Byline: "Casey Morgan, Finance Desk",
	}

	first := eng.Analyze(content)
	for i := 0; i < 25; i++ {
		if got := eng.Analyze(content); !reflect.DeepEqual(got, first) {
			t.Fatalf("Analyze() run %d differs:\n got %+v\nwant %+v", i, got, first)
		}
	}
}

func TestExtract_JoinsAllExtractorClasses(t *testing.T) {
	eng := Default()
	content := models.Content{
		SectionPath: "/technology",
		Title:       "Startup ships new software platform",
		Body:        "The app gives every developer cloud access.",
		Byline:      "Riley Kim, Technology Reporter",
	}

	items := eng.Extract(content)

	seen := make(map[models.EvidenceSource]bool)
	for _, item := range items {
		seen[item.Source] = true
	}
	for _, source := range []models.EvidenceSource{
		models.SourceSection, models.SourceKeyword, models.SourceContext, models.SourceByline,
	} {
		if !seen[source] {
			t.Errorf("Extract() produced no %s evidence", source)
		}
	}
}

func TestAnalyze_BylineOnly(t *testing.T) {
	eng := Default()

	// Byline evidence alone scores 0.5*4 = 2: secondary, never primary.
	analysis := eng.Analyze(models.Content{Byline: "Dana Flores, Sports Columnist"})

	if len(analysis.PrimaryBeats) != 0 {
		t.Errorf("PrimaryBeats = %v, want empty for byline-only input", analysis.PrimaryBeats)
	}
	if !contains(analysis.SecondaryBeats, "sports") {
		t.Errorf("SecondaryBeats = %v, want sports", analysis.SecondaryBeats)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
