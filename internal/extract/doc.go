// Package extract runs the full reading pipeline for a capture: crop each
// declared region, binarise it, segment glyphs, classify them against the
// template registry and assemble the symbols into a typed value.
//
// Failure is data here. A region that cannot be read yields an
// unrecognised value with a reason, never an error, so one glare spot or a
// moved overlay cannot sink the rest of the screen. Errors are reserved
// for configuration problems such as an unknown screen name.
package extract
