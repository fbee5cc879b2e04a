package imaging

import (
	"image"
	"image/color"
	"testing"
)

// fillImage creates a solid colour test image.
func fillImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBinarize_DefaultProfile(t *testing.T) {
	img := fillImage(20, 10, color.Black)
	// White block in the middle, like a glyph stroke.
	for y := 2; y < 8; y++ {
		for x := 5; x < 15; x++ {
			img.Set(x, y, color.White)
		}
	}

	bm := Binarize(img, DefaultProfile())

	if bm.Width() != 20 || bm.Height() != 10 {
		t.Fatalf("bitmap size: got %dx%d, want 20x10", bm.Width(), bm.Height())
	}
	if !bm.At(10, 5) {
		t.Error("white pixel should be foreground")
	}
	if bm.At(0, 0) {
		t.Error("black pixel should be background")
	}
	if got := bm.Foreground(); got != 60 {
		t.Errorf("foreground count: got %d, want 60", got)
	}
}

func TestBinarize_Deterministic(t *testing.T) {
	img := fillImage(30, 12, color.RGBA{R: 30, G: 30, B: 30, A: 255})
	for x := 3; x < 9; x++ {
		img.Set(x, 6, color.White)
	}

	a := Binarize(img, DefaultProfile())
	b := Binarize(img, DefaultProfile())

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("binarisation not deterministic at (%d,%d)", x, y)
			}
		}
	}
}

func TestBinarize_ColorProfile(t *testing.T) {
	green := color.RGBA{R: 40, G: 200, B: 60, A: 255}
	img := fillImage(20, 10, color.RGBA{R: 20, G: 20, B: 20, A: 255})
	for y := 3; y < 7; y++ {
		for x := 8; x < 12; x++ {
			img.Set(x, y, green)
		}
	}

	bm := Binarize(img, ColorProfile(green, 0.1))

	if !bm.At(10, 5) {
		t.Error("green pixel should match green profile")
	}
	if bm.At(0, 0) {
		t.Error("dark pixel should not match green profile")
	}
	if got := bm.Foreground(); got != 16 {
		t.Errorf("foreground count: got %d, want 16", got)
	}
}

func TestBinarize_ColorProfile_WrongTarget(t *testing.T) {
	green := color.RGBA{R: 40, G: 200, B: 60, A: 255}
	red := color.RGBA{R: 220, G: 40, B: 40, A: 255}
	img := fillImage(20, 10, color.Black)
	for x := 5; x < 15; x++ {
		img.Set(x, 5, green)
	}

	// Masking for red in a green-digit region must survive nothing.
	bm := Binarize(img, ColorProfile(red, 0.1))

	if bm.Foreground() != 0 {
		t.Errorf("wrong colour profile should yield no foreground, got %d", bm.Foreground())
	}
	if !bm.Empty() {
		t.Error("bitmap with no foreground should report Empty")
	}
}

func TestBinarize_Degenerate(t *testing.T) {
	if bm := Binarize(nil, DefaultProfile()); !bm.Empty() {
		t.Error("nil image should binarise to an empty bitmap")
	}

	zero := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if bm := Binarize(zero, DefaultProfile()); !bm.Empty() {
		t.Error("zero-area image should binarise to an empty bitmap")
	}
}

func TestBinarize_UniformRegion(t *testing.T) {
	// A uniform bright panel binarises to solid foreground; Empty must
	// flag it as carrying no glyph information.
	img := fillImage(16, 8, color.White)
	bm := Binarize(img, DefaultProfile())

	if bm.Foreground() != 16*8 {
		t.Fatalf("uniform white should be all foreground, got %d", bm.Foreground())
	}
	if !bm.Empty() {
		t.Error("uniform region should report Empty")
	}
}

func TestProfile_IsDefault(t *testing.T) {
	if !DefaultProfile().IsDefault() {
		t.Error("DefaultProfile should report IsDefault")
	}
	if ColorProfile(color.White, 0.1).IsDefault() {
		t.Error("colour profile should not report IsDefault")
	}
}

func TestColorProfile_ToleranceFallback(t *testing.T) {
	p := ColorProfile(color.White, 0)
	if p.Tolerance != DefaultColorTolerance {
		t.Errorf("tolerance fallback: got %v, want %v", p.Tolerance, DefaultColorTolerance)
	}
}
