package extract

import (
	"strconv"
	"strings"

	"github.com/gaffkit/screenstats/internal/config"
	"github.com/gaffkit/screenstats/internal/glyph"
	"github.com/gaffkit/screenstats/internal/segment"
)

// FailureReason explains why a region produced no reading.
type FailureReason string

const (
	ReasonNone             FailureReason = ""
	ReasonDegenerateRegion FailureReason = "region outside capture"
	ReasonNoGlyphs         FailureReason = "no glyphs found"
	ReasonLowConfidence    FailureReason = "below confidence threshold"
	ReasonMalformed        FailureReason = "symbols do not form a value"
	ReasonTextUnreadable   FailureReason = "text reader failed"
)

// Value is the reading for one region. When Recognized is false, Reason
// says why and the numeric fields are meaningless; Raw may still carry the
// best-guess symbols for diagnostics.
type Value struct {
	Raw        string
	Number     float64
	Text       string
	Confidence float64
	Recognized bool
	Reason     FailureReason
}

func unrecognised(raw string, conf float64, reason FailureReason) Value {
	return Value{Raw: raw, Confidence: conf, Reason: reason}
}

// ClassifiedGlyph pairs a segmented glyph with its classification.
type ClassifiedGlyph struct {
	Glyph  segment.Glyph
	Result glyph.Result
}

// Assemble turns an ordered glyph sequence into a typed value.
//
// Glyphs are consumed strictly in reading order, so digit placement is
// positional: the leftmost digit is the most significant, and a decimal
// point splits integer from fractional digits exactly where it sits in the
// sequence. Punctuation-shaped glyphs are taken as decimal points on
// position alone, without consulting the classifier.
//
// Any unclassified glyph makes the whole value unrecognised. A value is
// never guessed from a partial reading.
func Assemble(kind config.ValueKind, glyphs []ClassifiedGlyph) Value {
	if len(glyphs) == 0 {
		return unrecognised("", 0, ReasonNoGlyphs)
	}

	var sb strings.Builder
	conf := 1.0
	for _, cg := range glyphs {
		if cg.Glyph.Punct {
			sb.WriteRune(rune(glyph.DecimalPoint))
			continue
		}
		if cg.Result.Unclassified {
			// Keep the best candidates so a failed reading can be inspected.
			sb.WriteRune(rune(cg.Result.Symbol))
			return unrecognised(sb.String(), cg.Result.Confidence, ReasonLowConfidence)
		}
		sb.WriteRune(rune(cg.Result.Symbol))
		if cg.Result.Confidence < conf {
			conf = cg.Result.Confidence
		}
	}
	raw := sb.String()

	if kind == config.KindText {
		return Value{Raw: raw, Text: raw, Confidence: conf, Recognized: true}
	}

	number, ok := parseNumber(kind, raw)
	if !ok {
		return unrecognised(raw, conf, ReasonMalformed)
	}
	return Value{Raw: raw, Number: number, Confidence: conf, Recognized: true}
}

// parseNumber interprets an assembled symbol string under a numeric kind.
func parseNumber(kind config.ValueKind, raw string) (float64, bool) {
	s := raw
	if kind == config.KindPercentage {
		s = strings.TrimSuffix(s, string(glyph.Percent))
	}
	if s == "" || strings.ContainsRune(s, rune(glyph.Percent)) {
		return 0, false
	}

	dots := strings.Count(s, ".")
	if dots > 1 || (kind == config.KindInteger && dots > 0) {
		return 0, false
	}
	if s == "." {
		return 0, false
	}
	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return 0, false
		}
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
