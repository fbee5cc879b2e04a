package extract

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"reflect"
	"testing"

	"github.com/gaffkit/screenstats/internal/config"
	"github.com/gaffkit/screenstats/internal/glyph"
)

const (
	stampWidth  = 15
	stampHeight = 21
	stampGap    = 3
	stampPad    = 4
)

// newCapture returns a dark capture the size the tests declare.
func newCapture(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{16, 16, 16, 255}), image.Point{}, draw.Src)
	return img
}

// stampText draws a symbol sequence into a region using the builtin glyph
// rasters, simulating what the game renders at a stat position.
func stampText(t *testing.T, img *image.RGBA, region image.Rectangle, text string, col color.Color) {
	t.Helper()
	x := region.Min.X + stampPad
	for _, r := range text {
		bm, ok := glyph.RenderSymbol(glyph.Symbol(r), stampWidth, stampHeight)
		if !ok {
			t.Fatalf("no raster for %q", r)
		}
		for dy := 0; dy < bm.Height(); dy++ {
			for dx := 0; dx < bm.Width(); dx++ {
				if bm.At(dx, dy) {
					img.Set(x+dx, region.Min.Y+stampPad+dy, col)
				}
			}
		}
		x += stampWidth + stampGap
	}
}

var white = color.RGBA{255, 255, 255, 255}

func parseMap(t *testing.T, doc string) *config.Map {
	t.Helper()
	m, err := config.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("coordinate map: %v", err)
	}
	return m
}

func builtinExtractor() *Extractor {
	return NewExtractor(glyph.Builtin(), Options{})
}

func TestExtract_IntegerReadsPositionally(t *testing.T) {
	img := newCapture(200, 60)
	stampText(t, img, image.Rect(10, 10, 80, 40), "72", white)

	m := parseMap(t, `
screens:
  s:
    stats:
      shots: {rect: {x: 10, y: 10, w: 70, h: 30}}
`)
	batch, err := builtinExtractor().Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	v, ok := batch.Get("shots")
	if !ok || !v.Recognized {
		t.Fatalf("shots not read: %+v", v)
	}
	if v.Number != 72 {
		t.Errorf("got %v (raw %q), want 72", v.Number, v.Raw)
	}
}

func TestExtract_DecimalPointPosition(t *testing.T) {
	img := newCapture(200, 120)
	stampText(t, img, image.Rect(10, 10, 80, 40), "0.4", white)
	stampText(t, img, image.Rect(10, 60, 80, 90), "7.2", white)

	m := parseMap(t, `
screens:
  s:
    stats:
      xg:     {rect: {x: 10, y: 10, w: 70, h: 30}, kind: decimal}
      rating: {rect: {x: 10, y: 60, w: 70, h: 30}, kind: decimal}
`)
	batch, err := builtinExtractor().Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if v, _ := batch.Get("xg"); v.Number != 0.4 {
		t.Errorf("xg: got %v (raw %q), want 0.4", v.Number, v.Raw)
	}
	if v, _ := batch.Get("rating"); v.Number != 7.2 {
		t.Errorf("rating: got %v (raw %q), want 7.2", v.Number, v.Raw)
	}
}

func TestExtract_Percentage(t *testing.T) {
	img := newCapture(200, 60)
	stampText(t, img, image.Rect(10, 10, 90, 40), "45%", white)

	m := parseMap(t, `
screens:
  s:
    stats:
      possession: {rect: {x: 10, y: 10, w: 80, h: 30}, kind: percentage}
`)
	batch, err := builtinExtractor().Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if v, _ := batch.Get("possession"); !v.Recognized || v.Number != 45 {
		t.Errorf("possession: got %+v, want 45", v)
	}
}

func TestExtract_ColorProfile(t *testing.T) {
	green := color.RGBA{0x30, 0xD0, 0x40, 255}
	img := newCapture(200, 60)
	stampText(t, img, image.Rect(10, 10, 80, 40), "84", green)

	m := parseMap(t, `
screens:
  s:
    stats:
      pace:    {rect: {x: 10, y: 10, w: 70, h: 30}, color: "#30D040"}
      stamina: {rect: {x: 100, y: 10, w: 70, h: 30}, color: "#30D040"}
`)
	batch, err := builtinExtractor().Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	// Digits in the target colour match the mask.
	if v, _ := batch.Get("pace"); !v.Recognized || v.Number != 84 {
		t.Errorf("pace: got %+v, want 84", v)
	}
	// A region with no pixels near the target produces nothing to read.
	if v, _ := batch.Get("stamina"); v.Recognized || v.Reason != ReasonNoGlyphs {
		t.Errorf("stamina: got %+v, want no-glyphs failure", v)
	}
}

func TestExtract_ColorMaskRejectsWrongColor(t *testing.T) {
	// White digits under a green mask must not read at all.
	img := newCapture(200, 60)
	stampText(t, img, image.Rect(10, 10, 80, 40), "84", white)

	m := parseMap(t, `
screens:
  s:
    stats:
      pace: {rect: {x: 10, y: 10, w: 70, h: 30}, color: "#30D040"}
`)
	batch, err := builtinExtractor().Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if v, _ := batch.Get("pace"); v.Recognized {
		t.Errorf("pace: got %+v, want unrecognised", v)
	}
}

func TestExtract_BatchIsolatesFailures(t *testing.T) {
	img := newCapture(300, 200)
	stampText(t, img, image.Rect(10, 10, 80, 40), "9", white)
	// second region left blank
	stampText(t, img, image.Rect(10, 100, 80, 130), "4.2", white) // integer kind, malformed
	stampText(t, img, image.Rect(100, 10, 170, 40), "3.5", white)

	m := parseMap(t, `
screens:
  s:
    stats:
      goals:  {rect: {x: 10, y: 10, w: 70, h: 30}}
      blank:  {rect: {x: 10, y: 55, w: 70, h: 30}}
      bad:    {rect: {x: 10, y: 100, w: 70, h: 30}}
      gone:   {rect: {x: 1000, y: 10, w: 70, h: 30}}
      rating: {rect: {x: 100, y: 10, w: 70, h: 30}, kind: decimal}
`)
	batch, err := builtinExtractor().Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(batch.Stats) != 5 {
		t.Fatalf("batch covers %d stats, want 5", len(batch.Stats))
	}
	wantOrder := []string{"goals", "blank", "bad", "gone", "rating"}
	for i, key := range wantOrder {
		if batch.Stats[i].Key != key {
			t.Fatalf("stat %d: got %q, want %q", i, batch.Stats[i].Key, key)
		}
	}

	if v, _ := batch.Get("goals"); !v.Recognized || v.Number != 9 {
		t.Errorf("goals: got %+v, want 9", v)
	}
	if v, _ := batch.Get("blank"); v.Reason != ReasonNoGlyphs {
		t.Errorf("blank: got %+v, want no-glyphs failure", v)
	}
	if v, _ := batch.Get("bad"); v.Reason != ReasonMalformed {
		t.Errorf("bad: got %+v, want malformed failure", v)
	}
	if v, _ := batch.Get("gone"); v.Reason != ReasonDegenerateRegion {
		t.Errorf("gone: got %+v, want degenerate-region failure", v)
	}
	if v, _ := batch.Get("rating"); !v.Recognized || v.Number != 3.5 {
		t.Errorf("rating: got %+v, want 3.5", v)
	}

	if got := batch.Recognized(); got != 2 {
		t.Errorf("recognized count: got %d, want 2", got)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	img := newCapture(200, 60)
	stampText(t, img, image.Rect(10, 10, 90, 40), "6.8", white)

	m := parseMap(t, `
screens:
  s:
    stats:
      rating: {rect: {x: 10, y: 10, w: 80, h: 30}, kind: decimal}
`)
	e := builtinExtractor()

	first, err := e.Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	second, err := e.Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat extraction differs:\n%+v\n%+v", first, second)
	}
}

func TestExtract_ExactGlyphConfidence(t *testing.T) {
	// A crop that lands exactly on the template raster scores 1.0.
	img := newCapture(100, 60)
	bm, _ := glyph.RenderSymbol('8', glyph.TemplateWidth, glyph.TemplateHeight)
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if bm.At(x, y) {
				img.Set(12+x, 8+y, white)
			}
		}
	}

	m := parseMap(t, `
screens:
  s:
    stats:
      n: {rect: {x: 8, y: 4, w: 40, h: 44}}
`)
	batch, err := builtinExtractor().Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	v, _ := batch.Get("n")
	if !v.Recognized || v.Number != 8 {
		t.Fatalf("got %+v, want 8", v)
	}
	if v.Confidence < 0.999 {
		t.Errorf("confidence: got %f, want 1.0 on exact raster", v.Confidence)
	}
}

func TestExtract_ConfigurationErrors(t *testing.T) {
	m := parseMap(t, `
screens:
  s:
    stats:
      n: {rect: {x: 0, y: 0, w: 10, h: 10}}
`)
	e := builtinExtractor()

	if _, err := e.Extract(nil, m, "s"); err == nil {
		t.Error("nil capture should fail")
	}
	if _, err := e.Extract(newCapture(10, 10), m, "other"); err == nil {
		t.Error("unknown screen should fail")
	}
}

type fakeTextReader struct {
	text string
	conf float64
	err  error
}

func (f fakeTextReader) ReadRegion(img image.Image, region image.Rectangle) (string, float64, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	return fmt.Sprintf("%s@%v", f.text, region.Min), f.conf, nil
}

func TestExtract_TextReaderRouting(t *testing.T) {
	img := newCapture(200, 60)
	m := parseMap(t, `
screens:
  s:
    stats:
      club: {rect: {x: 10, y: 10, w: 100, h: 30}, kind: text}
`)

	e := NewExtractor(glyph.Builtin(), Options{
		TextReader: fakeTextReader{text: "AFC Richmond", conf: 0.88},
	})
	batch, err := e.Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	v, _ := batch.Get("club")
	if !v.Recognized || v.Text != "AFC Richmond@(10,10)" {
		t.Errorf("club: got %+v", v)
	}
	if v.Confidence != 0.88 {
		t.Errorf("confidence: got %f", v.Confidence)
	}

	// Reader failure is a per-stat outcome, not an extraction error.
	e = NewExtractor(glyph.Builtin(), Options{
		TextReader: fakeTextReader{err: errors.New("engine unavailable")},
	})
	batch, err = e.Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if v, _ := batch.Get("club"); v.Recognized || v.Reason != ReasonTextUnreadable {
		t.Errorf("club: got %+v, want text-unreadable failure", v)
	}
}

func TestExtract_TextWithoutReaderUsesTemplates(t *testing.T) {
	// Without a text reader, text regions fall back to the symbol
	// pipeline, which reads whatever the registry covers.
	img := newCapture(200, 60)
	stampText(t, img, image.Rect(10, 10, 80, 40), "10", white)

	m := parseMap(t, `
screens:
  s:
    stats:
      shirt: {rect: {x: 10, y: 10, w: 70, h: 30}, kind: text}
`)
	batch, err := builtinExtractor().Extract(img, m, "s")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if v, _ := batch.Get("shirt"); !v.Recognized || v.Text != "10" {
		t.Errorf("shirt: got %+v, want text 10", v)
	}
}
