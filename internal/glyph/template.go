package glyph

import (
	"fmt"
	"sort"

	"github.com/gaffkit/screenstats/internal/imaging"
)

// Template raster dimensions. Every reference glyph and every segmented crop
// is resampled onto this grid before comparison, so templates harvested at
// one capture resolution keep working at another.
const (
	TemplateWidth  = 30
	TemplateHeight = 35
)

// Template is one reference sample of a symbol on the template raster.
type Template struct {
	Symbol Symbol
	Bitmap *imaging.Bitmap
}

// Registry is the template library: the full set of reference glyphs the
// classifier matches against. It is immutable after construction and safe
// to share across concurrent extraction calls without locking.
type Registry struct {
	templates map[Symbol][]Template
	symbols   []Symbol
}

// NewRegistry builds a registry from explicit templates. Tests use this to
// substitute small synthetic template sets.
//
// Every template bitmap must already be on the template raster; at least one
// template is required.
func NewRegistry(templates ...Template) (*Registry, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("template registry requires at least one template")
	}

	bySymbol := make(map[Symbol][]Template)
	for _, tpl := range templates {
		if tpl.Bitmap == nil || tpl.Bitmap.Width() != TemplateWidth || tpl.Bitmap.Height() != TemplateHeight {
			return nil, fmt.Errorf("template for %q is not on the %dx%d raster",
				tpl.Symbol.String(), TemplateWidth, TemplateHeight)
		}
		bySymbol[tpl.Symbol] = append(bySymbol[tpl.Symbol], tpl)
	}

	symbols := make([]Symbol, 0, len(bySymbol))
	for sym := range bySymbol {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	return &Registry{templates: bySymbol, symbols: symbols}, nil
}

// Symbols returns the registered symbols in ascending ordinal order.
// The classifier iterates in this order, which is what makes its tie-break
// deterministic.
func (r *Registry) Symbols() []Symbol {
	out := make([]Symbol, len(r.symbols))
	copy(out, r.symbols)
	return out
}

// Templates returns the reference samples for a symbol, in load order.
func (r *Registry) Templates(sym Symbol) []Template {
	return r.templates[sym]
}

// Has reports whether the registry carries at least one template for sym.
func (r *Registry) Has(sym Symbol) bool {
	return len(r.templates[sym]) > 0
}

// Len returns the total number of templates.
func (r *Registry) Len() int {
	n := 0
	for _, ts := range r.templates {
		n += len(ts)
	}
	return n
}
