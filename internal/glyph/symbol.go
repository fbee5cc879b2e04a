package glyph

// Symbol identifies a recognisable on-screen character: the digits 0-9,
// the decimal point, the percent sign, and letters where a template set
// provides them.
type Symbol rune

const (
	// DecimalPoint separates integer and fractional digits.
	DecimalPoint Symbol = '.'
	// Percent trails percentage stats and is stripped by the assembler.
	Percent Symbol = '%'
)

// String returns the symbol as text.
func (s Symbol) String() string { return string(rune(s)) }

// IsDigit reports whether the symbol is a decimal digit.
func (s Symbol) IsDigit() bool { return s >= '0' && s <= '9' }

// Digit returns the numeric value of a digit symbol.
func (s Symbol) Digit() (int, bool) {
	if !s.IsDigit() {
		return 0, false
	}
	return int(s - '0'), true
}
