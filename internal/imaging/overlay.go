package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// AnnotateGlyphs renders a copy of a cropped region with a box drawn around
// each segmented glyph and its reading-order index labelled at the top-left
// corner. Box rectangles are in region-local coordinates.
//
// The output is the inspection tool's way of showing why a stat read the way
// it did: missing boxes mean the segmenter discarded a component, boxes in
// the wrong order mean the coordinate rectangle needs adjusting.
func AnnotateGlyphs(region image.Image, boxes []image.Rectangle, boxColorHex string) *image.RGBA {
	bounds := region.Bounds()

	boxColor, err := ParseHexColor(boxColorHex)
	if err != nil {
		boxColor = color.RGBA{R: 255, A: 255}
	}

	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), region, bounds.Min, draw.Src)

	labelColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelBg := color.RGBA{A: 180}

	for i, box := range boxes {
		drawBox(result, box, boxColor)
		drawLabel(result, box.Min.X, box.Min.Y-7, fmt.Sprintf("%d", i), labelColor, labelBg)
	}
	return result
}

// drawBox outlines a rectangle, clipped to the image bounds.
func drawBox(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	bounds := img.Bounds()
	for x := r.Min.X; x <= r.Max.X; x++ {
		setClipped(img, bounds, x, r.Min.Y, c)
		setClipped(img, bounds, x, r.Max.Y, c)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		setClipped(img, bounds, r.Min.X, y, c)
		setClipped(img, bounds, r.Max.X, y, c)
	}
}

func setClipped(img *image.RGBA, bounds image.Rectangle, x, y int, c color.RGBA) {
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		img.Set(x, y, c)
	}
}

// drawLabel draws a small numeric label using a 3x5 pixel font. Good enough
// for ordering indices on debug output; not a general text renderer.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			setClipped(img, bounds, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					setClipped(img, bounds, cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
