package numeric

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter maps a value to its display label. Formatters must be pure and
// total over the domain and any free-entry value.
type Formatter func(float64) string

// DefaultFormat renders the canonical decimal string of v.
func DefaultFormat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PrecisionFormatter renders values with the given number of significant
// digits. digits <= 0 falls back to DefaultFormat.
func PrecisionFormatter(digits int) Formatter {
	if digits <= 0 {
		return DefaultFormat
	}
	return func(v float64) string {
		return strconv.FormatFloat(v, 'g', digits, 64)
	}
}

// SuffixFormatter appends suffix to the output of base, e.g. " °C".
func SuffixFormatter(base Formatter, suffix string) Formatter {
	if base == nil {
		base = DefaultFormat
	}
	return func(v float64) string {
		return base(v) + suffix
	}
}

// LocaleFormatter renders values with the grouping and decimal separators
// of tag, keeping at most maxFraction fraction digits.
func LocaleFormatter(tag language.Tag, maxFraction int) Formatter {
	p := message.NewPrinter(tag)
	if maxFraction < 0 {
		maxFraction = 0
	}
	return func(v float64) string {
		return p.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFraction)))
	}
}
