package segment

import (
	"image"
	"sort"

	"github.com/gaffkit/screenstats/internal/imaging"
)

// Glyph is a single segmented character candidate within a ROI.
//
// Bounds are in ROI-bitmap coordinates. Index is the left-to-right reading
// rank after ordering. Punct marks a short, baseline-hugging component (a
// decimal point); the assembler treats its position as authoritative when
// splitting integer and fractional digits.
type Glyph struct {
	Bounds image.Rectangle
	Index  int
	Punct  bool
	Bitmap *imaging.Bitmap
}

// Options are the size-envelope heuristics that separate glyphs from noise.
// The fractions are relative so the same coordinate map works across capture
// resolutions; tune against reference screenshots rather than in the dark.
type Options struct {
	// MinPixels discards components below this pixel count as specks.
	MinPixels int

	// MinHeightFrac is the minimum component height, as a fraction of the
	// ROI height, for a component to count as a digit-scale glyph.
	MinHeightFrac float64

	// MaxWidthFrac discards components wider than this fraction of the ROI
	// as stray regions (panel borders, highlight bars).
	MaxWidthFrac float64

	// MaxAspect discards digit-scale components wider than MaxAspect times
	// their height.
	MaxAspect float64

	// PunctHeightFrac is the maximum size of a punctuation component,
	// as a fraction of the median digit height.
	PunctHeightFrac float64

	// BaselineFrac is how far down the ROI (fraction of its height) a
	// punctuation component's bottom edge must reach. Decimal points sit
	// on the baseline; specks elsewhere do not.
	BaselineFrac float64
}

// DefaultOptions returns the envelope used for the game's stat font.
func DefaultOptions() Options {
	return Options{
		MinPixels:       4,
		MinHeightFrac:   0.34,
		MaxWidthFrac:    0.9,
		MaxAspect:       1.6,
		PunctHeightFrac: 0.45,
		BaselineFrac:    0.55,
	}
}

// component is a connected group of foreground pixels found by flood fill.
type component struct {
	bounds image.Rectangle
	pixels []image.Point
}

// Segment finds the glyphs in a binarised ROI, ordered left to right.
//
// An empty bitmap produces zero glyphs and no error; the caller reports the
// stat as unrecognised. Components outside the Options envelope are dropped,
// except short baseline components between digit-scale siblings, which are
// kept and flagged as punctuation.
func Segment(bm *imaging.Bitmap, opts Options) []Glyph {
	if bm == nil || bm.Empty() {
		return nil
	}

	comps := findComponents(bm)

	width := bm.Width()
	height := bm.Height()

	var digits, small []component
	for _, c := range comps {
		if len(c.pixels) < opts.MinPixels {
			continue
		}
		w, h := c.bounds.Dx(), c.bounds.Dy()
		if float64(w) > opts.MaxWidthFrac*float64(width) {
			continue
		}
		if float64(h) >= opts.MinHeightFrac*float64(height) {
			if float64(w) > opts.MaxAspect*float64(h) {
				continue
			}
			digits = append(digits, c)
		} else {
			small = append(small, c)
		}
	}

	if len(digits) == 0 {
		return nil
	}

	median := medianHeight(digits)

	glyphs := make([]Glyph, 0, len(digits)+1)
	for _, c := range digits {
		glyphs = append(glyphs, Glyph{Bounds: c.bounds, Bitmap: componentBitmap(c)})
	}
	for _, c := range small {
		limit := opts.PunctHeightFrac * float64(median)
		if float64(c.bounds.Dy()) > limit || float64(c.bounds.Dx()) > limit {
			continue
		}
		if float64(c.bounds.Max.Y) < opts.BaselineFrac*float64(height) {
			continue
		}
		glyphs = append(glyphs, Glyph{Bounds: c.bounds, Punct: true, Bitmap: componentBitmap(c)})
	}

	// Left edge ascending establishes reading order. Ties (vertically
	// stacked components) break by top edge for determinism.
	sort.Slice(glyphs, func(i, j int) bool {
		if glyphs[i].Bounds.Min.X != glyphs[j].Bounds.Min.X {
			return glyphs[i].Bounds.Min.X < glyphs[j].Bounds.Min.X
		}
		return glyphs[i].Bounds.Min.Y < glyphs[j].Bounds.Min.Y
	})
	for i := range glyphs {
		glyphs[i].Index = i
	}
	return glyphs
}

// Boxes returns the bounding boxes of glyphs in reading order, for
// annotated debug rendering.
func Boxes(glyphs []Glyph) []image.Rectangle {
	boxes := make([]image.Rectangle, len(glyphs))
	for i, g := range glyphs {
		boxes[i] = g.Bounds
	}
	return boxes
}

// findComponents groups foreground pixels into 8-connected components.
func findComponents(bm *imaging.Bitmap) []component {
	width, height := bm.Width(), bm.Height()
	visited := make([]bool, width*height)

	var comps []component
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if bm.At(x, y) && !visited[y*width+x] {
				comps = append(comps, floodFill(bm, visited, x, y))
			}
		}
	}
	return comps
}

// floodFill collects one connected component starting at (startX, startY).
// Stack-based rather than recursive: glyph components on high-resolution
// captures run to thousands of pixels.
func floodFill(bm *imaging.Bitmap, visited []bool, startX, startY int) component {
	width, height := bm.Width(), bm.Height()
	stack := []image.Point{{X: startX, Y: startY}}

	c := component{bounds: image.Rect(startX, startY, startX+1, startY+1)}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y*width+p.X] || !bm.At(p.X, p.Y) {
			continue
		}
		visited[p.Y*width+p.X] = true
		c.pixels = append(c.pixels, p)
		c.bounds = c.bounds.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return c
}

// componentBitmap renders a component's pixels into a tight bitmap crop.
// Only the component's own pixels are carried over, so an overhanging
// neighbour cannot bleed into the classifier's view of this glyph.
func componentBitmap(c component) *imaging.Bitmap {
	out := imaging.NewBitmap(c.bounds.Dx(), c.bounds.Dy())
	for _, p := range c.pixels {
		out.Set(p.X-c.bounds.Min.X, p.Y-c.bounds.Min.Y, true)
	}
	return out
}

// medianHeight returns the median bounding-box height of the components.
func medianHeight(comps []component) int {
	heights := make([]int, len(comps))
	for i, c := range comps {
		heights[i] = c.bounds.Dy()
	}
	sort.Ints(heights)
	return heights[len(heights)/2]
}
