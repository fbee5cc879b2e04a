// Package segment isolates individual glyphs inside a binarised
// region-of-interest bitmap.
//
// Segmentation is connected-component analysis: foreground pixels are grouped
// into 8-connected components by flood fill, components outside a plausible
// glyph size envelope are discarded as noise or stray regions, and survivors
// are ordered by their left edge to establish reading order. That ordering is
// what the assembler relies on for digit-order correctness, so it lives here
// and nowhere else.
//
// A component much shorter than its siblings and sitting near the baseline is
// a decimal point, not noise: it is kept and flagged as punctuation so the
// assembler can split the digit sequence at its position.
package segment
