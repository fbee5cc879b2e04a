package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// BitmapFromImage binarises an arbitrary image by BT.601 luminance,
// treating pixels at or above threshold as foreground.
func BitmapFromImage(img image.Image, threshold uint8) *Bitmap {
	bounds := img.Bounds()
	out := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			if lum >= float64(threshold) {
				out.Set(x, y, true)
			}
		}
	}
	return out
}

// ResampleBitmap stretches a bitmap onto a width×height raster using
// nearest-neighbour sampling, which keeps the result strictly binary and
// deterministic. A bitmap already at the target size is returned as is.
func ResampleBitmap(bm *Bitmap, width, height int) *Bitmap {
	if bm == nil || bm.Width() == 0 || bm.Height() == 0 {
		return NewBitmap(width, height)
	}
	if bm.Width() == width && bm.Height() == height {
		return bm
	}
	resized := imaging.Resize(bm.ToGray(), width, height, imaging.NearestNeighbor)
	return BitmapFromImage(resized, 128)
}

// ResampleToBitmap scales an image onto a width×height raster with Lanczos
// resampling and binarises the result. Used when loading glyph template
// images, whose source crops come in at whatever size the capture produced.
func ResampleToBitmap(img image.Image, width, height int, threshold uint8) *Bitmap {
	resized := imaging.Resize(img, width, height, imaging.Lanczos)
	return BitmapFromImage(resized, threshold)
}
