package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/segment"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultThreshold is the luminance cut-off for the default (white-on-dark)
// colour profile. Stat digits are rendered near full white, so a mid-range
// fixed threshold separates them cleanly at any capture resolution.
const DefaultThreshold uint8 = 128

// DefaultColorTolerance is the CIE-Lab distance within which a pixel counts
// as matching an explicit target colour. Tuned against attribute-screen
// captures; override per ROI in the coordinate map when a theme differs.
const DefaultColorTolerance = 0.12

// Profile selects which pixels of a region count as glyph foreground.
//
// The zero value is the default profile: greyscale conversion followed by a
// fixed luminance threshold, which suits white-on-dark stat text. Setting
// Target switches to colour masking for digits rendered in a non-white
// colour (attribute ratings); a pixel is foreground when its perceptual
// distance to Target is at most Tolerance.
type Profile struct {
	Target    color.Color
	Tolerance float64
}

// DefaultProfile returns the white-on-dark luminance profile.
func DefaultProfile() Profile { return Profile{} }

// ColorProfile returns a profile masking pixels near the target colour.
// A non-positive tolerance falls back to DefaultColorTolerance.
func ColorProfile(target color.Color, tolerance float64) Profile {
	if tolerance <= 0 {
		tolerance = DefaultColorTolerance
	}
	return Profile{Target: target, Tolerance: tolerance}
}

// IsDefault reports whether the profile is the plain luminance threshold.
func (p Profile) IsDefault() bool { return p.Target == nil }

// Binarize converts a cropped region into a binary bitmap under the given
// profile. The operation is deterministic: identical input and profile
// always produce an identical bitmap.
//
// Degenerate input (nil image, zero-area bounds) returns an empty bitmap,
// never an error; the caller treats that stat as unrecognised.
func Binarize(img image.Image, p Profile) *Bitmap {
	if img == nil {
		return NewBitmap(0, 0)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return NewBitmap(0, 0)
	}
	if p.IsDefault() {
		// segment.Threshold greyscales internally and emits 255/0 pixels.
		return BitmapFromGray(segment.Threshold(img, DefaultThreshold), DefaultThreshold)
	}
	return maskColor(img, p)
}

// maskColor selects pixels within the profile tolerance of the target
// colour, measured in CIE-Lab space.
func maskColor(img image.Image, p Profile) *Bitmap {
	bounds := img.Bounds()
	out := NewBitmap(bounds.Dx(), bounds.Dy())

	target, ok := colorful.MakeColor(p.Target)
	if !ok {
		// Fully transparent target can never match anything.
		return out
	}

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			px, ok := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
			if !ok {
				continue
			}
			if px.DistanceLab(target) <= p.Tolerance {
				out.Set(x, y, true)
			}
		}
	}
	return out
}
