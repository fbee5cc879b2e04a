// Package imaging provides the image-side primitives of the extraction
// pipeline: screenshot loading with caching, defensive region-of-interest
// cropping, binarisation (the preprocessing stage), colour analysis, and
// annotated debug rendering.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Binary Bitmaps
//
// The pipeline's working representation is the Bitmap type: a fixed-size grid
// of foreground/background pixels produced by Binarize. Foreground pixels are
// glyph pixels; everything else is background. Binarisation is deterministic:
// the same region and colour profile always produce the same bitmap.
//
// # Colour Profiles
//
// Most on-screen stats are white text on a dark panel and binarise with a
// plain luminance threshold. Player attribute digits are rendered in rating
// colours (green, yellow, red); for those an explicit Profile selects pixels
// within a perceptual (CIE-Lab) distance of the declared target colour.
//
// # Error Handling
//
// Degenerate regions are not errors. A crop that falls outside the capture,
// or a region that binarises to nothing, yields an empty Bitmap; the caller
// reports the stat as unrecognised and carries on. Only I/O failures (file
// missing, undecodable image) surface as errors.
package imaging
