package imaging

import (
	"image"
	"image/color"
)

// Bitmap is a binary (foreground/background) raster produced by Binarize.
//
// Foreground pixels are glyph pixels. The zero-value Bitmap is empty.
// Bitmaps are never mutated after the preprocessing stage; the segmenter
// and classifier treat them as read-only.
type Bitmap struct {
	width  int
	height int
	pixels []bool
}

// NewBitmap creates an all-background bitmap of the given size.
// Non-positive dimensions yield a zero-sized bitmap.
func NewBitmap(width, height int) *Bitmap {
	if width <= 0 || height <= 0 {
		return &Bitmap{}
	}
	return &Bitmap{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// At reports whether the pixel at (x, y) is foreground.
// Out-of-range coordinates are background.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.pixels[y*b.width+x]
}

// Set marks the pixel at (x, y) as foreground (true) or background (false).
// Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int, fg bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pixels[y*b.width+x] = fg
}

// Foreground returns the number of foreground pixels.
func (b *Bitmap) Foreground() int {
	n := 0
	for _, p := range b.pixels {
		if p {
			n++
		}
	}
	return n
}

// Empty reports whether the bitmap carries no usable glyph information:
// it is zero-sized, has no foreground pixels, or is entirely foreground
// (a uniform region binarised to a solid block).
func (b *Bitmap) Empty() bool {
	if b.width == 0 || b.height == 0 {
		return true
	}
	fg := b.Foreground()
	return fg == 0 || fg == b.width*b.height
}

// Crop returns a new bitmap containing the pixels of r, clamped to the
// bitmap bounds. A crop with no overlap returns an empty bitmap.
func (b *Bitmap) Crop(r image.Rectangle) *Bitmap {
	r = r.Intersect(image.Rect(0, 0, b.width, b.height))
	out := NewBitmap(r.Dx(), r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out.Set(x-r.Min.X, y-r.Min.Y, b.At(x, y))
		}
	}
	return out
}

// ToGray renders the bitmap as a grayscale image with foreground pixels
// white (255) and background black (0). Used for resampling and debug dumps.
func (b *Bitmap) ToGray() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.At(x, y) {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}

// BitmapFromGray builds a bitmap from a grayscale image, treating pixels at
// or above threshold as foreground.
func BitmapFromGray(img *image.Gray, threshold uint8) *Bitmap {
	bounds := img.Bounds()
	out := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			if img.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y >= threshold {
				out.Set(x, y, true)
			}
		}
	}
	return out
}
