package extract

import (
	"fmt"
	"image"

	"github.com/gaffkit/screenstats/internal/config"
	"github.com/gaffkit/screenstats/internal/glyph"
	"github.com/gaffkit/screenstats/internal/imaging"
	"github.com/gaffkit/screenstats/internal/segment"
)

// TextReader reads free text from a capture region. Numeric regions never
// use it; it exists for text-kind stats such as club or player names.
type TextReader interface {
	ReadRegion(img image.Image, region image.Rectangle) (string, float64, error)
}

// Options tunes the pipeline. The zero value selects the defaults every
// stage documents for itself.
type Options struct {
	// Threshold is the classifier acceptance threshold. Non-positive
	// selects glyph.DefaultAcceptanceThreshold.
	Threshold float64

	// Segmentation overrides the glyph plausibility envelope. The zero
	// value selects segment.DefaultOptions.
	Segmentation segment.Options

	// TextReader, when set, handles text-kind stats instead of the
	// symbol pipeline.
	TextReader TextReader
}

// Extractor reads declared stats out of screen captures. It is immutable
// after construction and safe for concurrent use.
type Extractor struct {
	classifier *glyph.Classifier
	seg        segment.Options
	text       TextReader
}

// NewExtractor builds an extractor over a template registry.
func NewExtractor(registry *glyph.Registry, opts Options) *Extractor {
	seg := opts.Segmentation
	if seg == (segment.Options{}) {
		seg = segment.DefaultOptions()
	}
	return &Extractor{
		classifier: glyph.NewClassifier(registry, opts.Threshold),
		seg:        seg,
		text:       opts.TextReader,
	}
}

// StatResult is one stat's reading within a batch.
type StatResult struct {
	Key   string
	Kind  config.ValueKind
	Value Value
}

// BatchResult holds one screen's readings in the coordinate map's
// declaration order. Every declared stat is present whether or not it was
// recognised.
type BatchResult struct {
	Screen string
	Stats  []StatResult
}

// Get looks a reading up by stat key.
func (b *BatchResult) Get(key string) (Value, bool) {
	for _, s := range b.Stats {
		if s.Key == key {
			return s.Value, true
		}
	}
	return Value{}, false
}

// Recognized counts the stats that produced a reading.
func (b *BatchResult) Recognized() int {
	n := 0
	for _, s := range b.Stats {
		if s.Value.Recognized {
			n++
		}
	}
	return n
}

// Extract reads every stat the named screen declares from a capture.
//
// Regions are processed independently; a region that cannot be read
// appears in the batch as unrecognised with a reason while the rest read
// normally. The returned error is reserved for configuration faults: a nil
// capture, an unknown screen, or a screen with nothing to read.
func (e *Extractor) Extract(img image.Image, m *config.Map, screen string) (*BatchResult, error) {
	if img == nil {
		return nil, fmt.Errorf("no capture image")
	}
	layout, ok := m.Screen(screen)
	if !ok {
		return nil, fmt.Errorf("screen %q not in coordinate map", screen)
	}

	batch := &BatchResult{
		Screen: screen,
		Stats:  make([]StatResult, 0, len(layout.Stats)),
	}
	for _, stat := range layout.Stats {
		batch.Stats = append(batch.Stats, StatResult{
			Key:   stat.Key,
			Kind:  stat.Kind,
			Value: e.extractStat(img, stat),
		})
	}
	return batch, nil
}

// extractStat runs the pipeline for a single region. It never fails; every
// outcome is a Value.
func (e *Extractor) extractStat(img image.Image, stat config.Stat) Value {
	if stat.Kind == config.KindText && e.text != nil {
		text, conf, err := e.text.ReadRegion(img, stat.Rect.Bounds())
		if err != nil {
			return unrecognised("", 0, ReasonTextUnreadable)
		}
		return Value{Raw: text, Text: text, Confidence: conf, Recognized: true}
	}

	// The map validated rects against declared capture dimensions, but the
	// capture actually supplied may be smaller. Clamp rather than fail.
	region, ok := imaging.CropROI(img, stat.Rect.Bounds())
	if !ok {
		return unrecognised("", 0, ReasonDegenerateRegion)
	}

	bm := imaging.Binarize(region, stat.Profile())
	glyphs := segment.Segment(bm, e.seg)
	if len(glyphs) == 0 {
		return unrecognised("", 0, ReasonNoGlyphs)
	}

	classified := make([]ClassifiedGlyph, 0, len(glyphs))
	for _, g := range glyphs {
		cg := ClassifiedGlyph{Glyph: g}
		if !g.Punct {
			cg.Result = e.classifier.Classify(g.Bitmap)
		}
		classified = append(classified, cg)
	}
	return Assemble(stat.Kind, classified)
}
