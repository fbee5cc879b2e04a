package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strconv"
)

// ParseHexColor parses a "#RRGGBB" or "#RRGGBBAA" colour string.
// The leading '#' is optional.
func ParseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// ColorFrequency is a quantized colour and how often it occurs in a region.
type ColorFrequency struct {
	Hex        string  `json:"hex"`
	Percentage float64 `json:"percentage"`
}

// DominantColors returns the count most frequent colours in a region,
// most common first.
//
// It exists for coordinate tuning: when an attribute digit is rendered in a
// rating colour, sampling the ROI's dominant colours tells the operator what
// target to declare in the coordinate map. RGB components are quantized to
// 16-unit buckets so anti-aliased shades group together.
func DominantColors(img image.Image, count int) []ColorFrequency {
	bounds := img.Bounds()
	colorCounts := make(map[string]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			r8 := uint8((r >> 8) / 16 * 16)
			g8 := uint8((g >> 8) / 16 * 16)
			b8 := uint8((b >> 8) / 16 * 16)
			key := fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
			colorCounts[key]++
			totalPixels++
		}
	}
	if totalPixels == 0 {
		return nil
	}

	colors := make([]ColorFrequency, 0, len(colorCounts))
	for hex, cnt := range colorCounts {
		colors = append(colors, ColorFrequency{
			Hex:        hex,
			Percentage: float64(cnt) / float64(totalPixels) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return colors
}
