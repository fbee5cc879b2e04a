// Package glyph holds the template library and the template-matching
// classifier.
//
// The game renders every stat in one fixed, stylised font, so recognition is
// nearest-template classification rather than general OCR: each segmented
// glyph is resampled onto a fixed raster and scored against every reference
// template by normalised cross-correlation; the best-scoring symbol wins if
// its score clears an acceptance threshold.
//
// # Template Library
//
// A Registry is immutable once constructed and safe to share across any
// number of concurrent extraction calls. Templates come from one of three
// places: a directory of labelled reference crops harvested from real
// captures (LoadDirectory), the embedded pixel font (Builtin) so the binary
// works with no assets, or an explicit list (NewRegistry) for tests.
//
// # Failure Signalling
//
// A glyph that no template matches confidently is reported as unclassified,
// never as a forced best guess; the assembler turns any unclassified glyph
// into an unrecognised value so the validation UI shows a blank field
// instead of a plausible wrong number.
package glyph
