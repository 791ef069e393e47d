package taxonomy

import (
	"reflect"
	"sort"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	// Default panics on an invalid built-in definition; constructing it
	// through New surfaces the error instead.
	tax, err := New(DefaultDefinition())
	if err != nil {
		t.Fatalf("New(DefaultDefinition()) error = %v", err)
	}
	if tax.BeatCount() == 0 {
		t.Error("built-in taxonomy has no beats")
	}
	if len(tax.BylineRules()) == 0 {
		t.Error("built-in taxonomy has no byline rules")
	}
}

func TestNew_SortedKeys(t *testing.T) {
	tax := Default()

	for name, keys := range map[string][]string{
		"SectionSegments": tax.SectionSegments(),
		"KeywordBeats":    tax.KeywordBeats(),
		"ContextBeats":    tax.ContextBeats(),
	} {
		if !sort.StringsAreSorted(keys) {
			t.Errorf("%s not sorted: %v", name, keys)
		}
	}
}

func TestNew_SectionLookupLowercased(t *testing.T) {
	tax, err := New(Definition{
		Sections: map[string][]string{"Tech": {"technology"}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := tax.SectionBeats("tech"); !reflect.DeepEqual(got, []string{"technology"}) {
		t.Errorf("SectionBeats(tech) = %v, want [technology]", got)
	}
}

func TestNew_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{
			name: "empty section segment",
			def:  Definition{Sections: map[string][]string{"  ": {"technology"}}},
		},
		{
			name: "section with no beats",
			def:  Definition{Sections: map[string][]string{"tech": {}}},
		},
		{
			name: "section with empty beat label",
			def:  Definition{Sections: map[string][]string{"tech": {" "}}},
		},
		{
			name: "invalid keyword regex",
			def:  Definition{Keywords: map[string][]string{"technology": {`\b(unclosed`}}},
		},
		{
			name: "keyword with empty beat",
			def:  Definition{Keywords: map[string][]string{"": {`\btech\b`}}},
		},
		{
			name: "beat with no keyword patterns",
			def:  Definition{Keywords: map[string][]string{"technology": {}}},
		},
		{
			name: "empty context indicator",
			def:  Definition{Contexts: map[string][]string{"finance": {"investment", " "}}},
		},
		{
			name: "invalid byline pattern",
			def:  Definition{Bylines: []BylineDefinition{{Pattern: `(bad`, Beat: "technology"}}},
		},
		{
			name: "byline rule without beat",
			def:  Definition{Bylines: []BylineDefinition{{Pattern: `tech`, Beat: ""}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.def); err == nil {
				t.Error("New() error = nil, want validation error")
			}
		})
	}
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
sections:
  gaming: [entertainment, technology]
keywords:
  gaming:
    - '\bconsole\b'
    - '\besports\b'
contexts:
  gaming: [players, studio]
bylines:
  - pattern: gaming|games
    beat: gaming
`)
	tax, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := tax.SectionBeats("gaming"); !reflect.DeepEqual(got, []string{"entertainment", "technology"}) {
		t.Errorf("SectionBeats(gaming) = %v", got)
	}
	if got := len(tax.KeywordPatterns("gaming")); got != 2 {
		t.Errorf("KeywordPatterns(gaming) = %d patterns, want 2", got)
	}
	if !tax.KeywordPatterns("gaming")[0].MatchString("The Console Wars") {
		t.Error("keyword pattern not case-insensitive")
	}
	if got := tax.ContextIndicators("gaming"); !reflect.DeepEqual(got, []string{"players", "studio"}) {
		t.Errorf("ContextIndicators(gaming) = %v", got)
	}
	if len(tax.BylineRules()) != 1 || tax.BylineRules()[0].Beat != "gaming" {
		t.Errorf("BylineRules() = %v, want one gaming rule", tax.BylineRules())
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("sections: [not, a, map]")); err == nil {
		t.Error("Parse() error = nil, want YAML error")
	}
}
