package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// CropROI extracts a rectangular region from a capture, defensively clamped
// to the capture bounds. Coordinate maps are authored against a reference
// resolution, so a rectangle may spill over the edge of a smaller capture;
// the overlap is still usable.
//
// ok is false when the clamped region is empty (zero-area rectangle, or a
// rectangle fully outside the capture). That is a per-stat degenerate-region
// condition, not an error: the caller records the stat as unrecognised and
// continues with the rest of the batch.
func CropROI(img image.Image, r image.Rectangle) (image.Image, bool) {
	clamped := r.Intersect(img.Bounds())
	if clamped.Dx() <= 0 || clamped.Dy() <= 0 {
		return nil, false
	}
	return imaging.Crop(img, clamped), true
}

// ScaleRegion resizes a region by the given factor using Lanczos resampling.
// Factors at or below zero, or exactly 1, return the input unchanged.
// Used by the inspection tooling to enlarge small ROIs for review.
func ScaleRegion(img image.Image, scale float64) image.Image {
	if scale <= 0 || scale == 1.0 {
		return img
	}
	w := int(float64(img.Bounds().Dx()) * scale)
	h := int(float64(img.Bounds().Dy()) * scale)
	if w <= 0 || h <= 0 {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
