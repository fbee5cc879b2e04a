package imaging

import (
	"image"
	"testing"
)

func TestBitmap_SetAt(t *testing.T) {
	bm := NewBitmap(10, 5)

	bm.Set(3, 2, true)
	if !bm.At(3, 2) {
		t.Error("pixel set should read back foreground")
	}
	if bm.At(4, 2) {
		t.Error("unset pixel should be background")
	}

	// Out-of-range access must be safe and read as background.
	bm.Set(-1, 0, true)
	bm.Set(10, 0, true)
	if bm.At(-1, 0) || bm.At(10, 0) || bm.At(0, 5) {
		t.Error("out-of-range pixels should be background")
	}
}

func TestBitmap_Empty(t *testing.T) {
	if !NewBitmap(0, 0).Empty() {
		t.Error("zero-sized bitmap should be empty")
	}
	if !NewBitmap(4, 4).Empty() {
		t.Error("all-background bitmap should be empty")
	}

	bm := NewBitmap(4, 4)
	bm.Set(1, 1, true)
	if bm.Empty() {
		t.Error("bitmap with foreground should not be empty")
	}

	full := NewBitmap(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			full.Set(x, y, true)
		}
	}
	if !full.Empty() {
		t.Error("all-foreground bitmap should be empty (uniform region)")
	}
}

func TestBitmap_Crop(t *testing.T) {
	bm := NewBitmap(10, 10)
	bm.Set(4, 4, true)
	bm.Set(5, 5, true)

	crop := bm.Crop(image.Rect(4, 4, 6, 6))
	if crop.Width() != 2 || crop.Height() != 2 {
		t.Fatalf("crop size: got %dx%d, want 2x2", crop.Width(), crop.Height())
	}
	if !crop.At(0, 0) || !crop.At(1, 1) {
		t.Error("crop should carry foreground pixels")
	}
	if crop.At(0, 1) {
		t.Error("crop should not invent foreground pixels")
	}

	// Crop clamps to bounds; a fully-outside rect is empty.
	outside := bm.Crop(image.Rect(20, 20, 30, 30))
	if outside.Width() != 0 || outside.Height() != 0 {
		t.Errorf("outside crop: got %dx%d, want 0x0", outside.Width(), outside.Height())
	}
}

func TestBitmap_GrayRoundTrip(t *testing.T) {
	bm := NewBitmap(6, 3)
	bm.Set(0, 0, true)
	bm.Set(5, 2, true)

	back := BitmapFromGray(bm.ToGray(), 128)
	if back.Width() != 6 || back.Height() != 3 {
		t.Fatalf("round-trip size: got %dx%d", back.Width(), back.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if back.At(x, y) != bm.At(x, y) {
				t.Fatalf("round-trip mismatch at (%d,%d)", x, y)
			}
		}
	}
}
