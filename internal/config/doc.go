// Package config loads and validates the coordinate map that tells the
// extraction pipeline where each stat lives on each screen.
//
// The map is a YAML document keyed by screen name. Each screen declares its
// stats with a pixel rectangle, a value kind, and an optional colour
// profile. Validation happens once at load time; a map that passes Load is
// safe to hand to the extractor without further checks, apart from the
// defensive clamping the extractor applies against the capture it is given.
//
// Stat order within a screen is declaration order and is preserved through
// extraction, so batch results line up with the map as written.
package config
