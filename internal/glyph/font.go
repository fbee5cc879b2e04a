package glyph

import "github.com/gaffkit/screenstats/internal/imaging"

// builtinFont is a 5x7 pixel font covering the symbols the assembler can
// emit. Each digit touches all four edges of its cell so that a rendered
// glyph's tight bounding box equals the full cell and survives resampling
// without distortion.
var builtinFont = map[Symbol][]string{
	'0': {
		"01110",
		"10001",
		"10011",
		"10101",
		"11001",
		"10001",
		"01110",
	},
	'1': {
		"00100",
		"01100",
		"00100",
		"00100",
		"00100",
		"00100",
		"11111",
	},
	'2': {
		"01110",
		"10001",
		"00001",
		"00010",
		"00100",
		"01000",
		"11111",
	},
	'3': {
		"11111",
		"00010",
		"00100",
		"00010",
		"00001",
		"10001",
		"01110",
	},
	'4': {
		"00010",
		"00110",
		"01010",
		"10010",
		"11111",
		"00010",
		"00010",
	},
	'5': {
		"11111",
		"10000",
		"11110",
		"00001",
		"00001",
		"10001",
		"01110",
	},
	'6': {
		"00110",
		"01000",
		"10000",
		"11110",
		"10001",
		"10001",
		"01110",
	},
	'7': {
		"11111",
		"00001",
		"00010",
		"00100",
		"01000",
		"01000",
		"01000",
	},
	'8': {
		"01110",
		"10001",
		"10001",
		"01110",
		"10001",
		"10001",
		"01110",
	},
	'9': {
		"01110",
		"10001",
		"10001",
		"01111",
		"00001",
		"00010",
		"01100",
	},
	DecimalPoint: {
		"00000",
		"00000",
		"00000",
		"00000",
		"00000",
		"01100",
		"01100",
	},
	// One 8-connected stroke: the slash stays diagonally adjacent to both
	// squares so the glyph segments as a single component.
	Percent: {
		"11001",
		"11010",
		"00010",
		"00100",
		"01100",
		"01011",
		"10011",
	},
}

// Builtin returns a registry rendered from the embedded pixel font.
//
// It exists so the binary runs with no template assets on disk; real
// captures recognise far better with a directory of harvested templates
// (LoadDirectory), but the builtin set is exact for synthetic imagery and
// carries every symbol the assembler can emit.
func Builtin() *Registry {
	templates := make([]Template, 0, len(builtinFont))
	for sym, rows := range builtinFont {
		templates = append(templates, Template{
			Symbol: sym,
			Bitmap: renderRows(rows, TemplateWidth, TemplateHeight),
		})
	}
	reg, err := NewRegistry(templates...)
	if err != nil {
		// The font table is compile-time data; a bad entry is a programming
		// error, not a runtime condition.
		panic(err)
	}
	return reg
}

// RenderSymbol draws a font glyph onto an arbitrary-size bitmap, stretching
// each font cell uniformly. Used by the builtin registry and by synthetic
// test imagery.
func RenderSymbol(sym Symbol, width, height int) (*imaging.Bitmap, bool) {
	rows, ok := builtinFont[sym]
	if !ok {
		return nil, false
	}
	return renderRows(rows, width, height), true
}

// renderRows rasterises a font entry onto a width×height grid.
func renderRows(rows []string, width, height int) *imaging.Bitmap {
	bm := imaging.NewBitmap(width, height)
	cellW := width / len(rows[0])
	cellH := height / len(rows)
	for ry, row := range rows {
		for rx, px := range row {
			if px != '1' {
				continue
			}
			for dy := 0; dy < cellH; dy++ {
				for dx := 0; dx < cellW; dx++ {
					bm.Set(rx*cellW+dx, ry*cellH+dy, true)
				}
			}
		}
	}
	return bm
}
