package glyph

import (
	"math"

	"github.com/gaffkit/screenstats/internal/imaging"
)

// DefaultAcceptanceThreshold is the minimum match score for a
// classification to be accepted. Below it the glyph is reported as
// unclassified rather than guessed.
const DefaultAcceptanceThreshold = 0.5

// Result is the outcome of classifying one segmented glyph.
//
// When Unclassified is true, Symbol and Confidence still carry the best
// candidate and its score for diagnostics, but the assembler must not use
// them as a reading.
type Result struct {
	Symbol       Symbol
	Confidence   float64
	Unclassified bool
}

// Classifier matches segmented glyph bitmaps against a template registry.
// It is stateless beyond its configuration and safe for concurrent use.
type Classifier struct {
	registry  *Registry
	threshold float64
}

// NewClassifier wraps a registry with an acceptance threshold. A
// non-positive threshold selects DefaultAcceptanceThreshold.
func NewClassifier(registry *Registry, threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultAcceptanceThreshold
	}
	return &Classifier{registry: registry, threshold: threshold}
}

// Registry returns the template library the classifier matches against.
func (c *Classifier) Registry() *Registry { return c.registry }

// Classify scores a glyph bitmap against every template and returns the
// best-scoring symbol with its score as confidence.
//
// The glyph is first resampled onto the template raster. Scoring is
// normalised cross-correlation over the binary rasters; an exact template
// match scores 1.0 and uncorrelated rasters score 0. Symbols are visited in
// ascending ordinal order with a strictly-greater comparison, so score ties
// always resolve to the first-loaded template of the lowest symbol ordinal.
func (c *Classifier) Classify(bm *imaging.Bitmap) Result {
	norm := imaging.ResampleBitmap(bm, TemplateWidth, TemplateHeight)

	best := Result{Unclassified: true}
	bestScore := -1.0
	for _, sym := range c.registry.Symbols() {
		for _, tpl := range c.registry.Templates(sym) {
			score := crossCorrelate(norm, tpl.Bitmap)
			if score > bestScore {
				bestScore = score
				best = Result{Symbol: sym, Confidence: score}
			}
		}
	}

	if bestScore < c.threshold {
		best.Unclassified = true
	}
	return best
}

// crossCorrelate computes the normalised cross-correlation of two binary
// rasters of identical size, clamped to [0, 1]. A raster with zero variance
// (all foreground or all background) correlates with nothing.
func crossCorrelate(a, b *imaging.Bitmap) float64 {
	w, h := a.Width(), a.Height()
	if w != b.Width() || h != b.Height() || w == 0 || h == 0 {
		return 0
	}

	n := w * h
	var sumA, sumB, sumAB int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			av, bv := 0, 0
			if a.At(x, y) {
				av = 1
			}
			if b.At(x, y) {
				bv = 1
			}
			sumA += av
			sumB += bv
			sumAB += av * bv
		}
	}

	varA := float64(n*sumA - sumA*sumA)
	varB := float64(n*sumB - sumB*sumB)
	if varA == 0 || varB == 0 {
		return 0
	}

	r := float64(n*sumAB-sumA*sumB) / math.Sqrt(varA*varB)
	if r < 0 {
		return 0
	}
	return r
}
