// Package engine wires the taxonomy, the four evidence extractors, and
// the synthesizer into a single classification entry point.
package engine

import (
	"sync"

	"github.com/dtnitsch/beatscope/models"
	"github.com/dtnitsch/beatscope/pkg/extractors"
	"github.com/dtnitsch/beatscope/pkg/synthesis"
	"github.com/dtnitsch/beatscope/pkg/taxonomy"
)

// Engine classifies content descriptors against one taxonomy and one set
// of scoring options. Both are immutable after construction, so a single
// Engine is safe for concurrent use.
type Engine struct {
	tax  *taxonomy.Taxonomy
	opts models.Options
}

// New builds an engine from a compiled taxonomy and options.
func New(tax *taxonomy.Taxonomy, opts models.Options) *Engine {
	return &Engine{tax: tax, opts: opts}
}

// Default builds an engine with the built-in taxonomy and the reference
// scoring configuration.
func Default() *Engine {
	return New(taxonomy.Default(), models.DefaultOptions())
}

// Options returns the engine's scoring configuration.
func (e *Engine) Options() models.Options {
	return e.opts
}

// Analyze runs extraction and synthesis over one content descriptor.
// Deterministic for a fixed taxonomy and input; never fails — empty input
// produces the canonical zero-confidence analysis.
func (e *Engine) Analyze(content models.Content) models.BeatAnalysis {
	return synthesis.Synthesize(e.opts, e.Extract(content))
}

// Extract runs the four extractors concurrently and joins their output.
// Extractors are pure and independent, so the only coordination is the
// join; the joined list keeps a fixed class order (section, keyword,
// context, byline) regardless of completion order so synthesis input is
// deterministic.
func (e *Engine) Extract(content models.Content) []models.Evidence {
	var lists [4][]models.Evidence
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		lists[0] = extractors.Section(e.tax, e.opts, content.SectionPath)
	}()
	go func() {
		defer wg.Done()
		lists[1] = extractors.Keyword(e.tax, e.opts, content.Title, content.Body)
	}()
	go func() {
		defer wg.Done()
		lists[2] = extractors.Context(e.tax, e.opts, content.Title, content.Body)
	}()
	go func() {
		defer wg.Done()
		lists[3] = extractors.Byline(e.tax, e.opts, content.Byline)
	}()
	wg.Wait()

	var items []models.Evidence
	for _, list := range lists {
		items = append(items, list...)
	}
	return items
}

// Compare picks the more reliable of two completed analyses.
func (e *Engine) Compare(a, b models.BeatAnalysis) models.BeatAnalysis {
	return synthesis.Compare(a, b)
}

// Merge combines completed analyses into a fresh one using the engine's
// scoring options.
func (e *Engine) Merge(analyses []models.BeatAnalysis) models.BeatAnalysis {
	return synthesis.Merge(e.opts, analyses)
}
