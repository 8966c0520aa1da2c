package prefs

import (
	"math"
	"strconv"
	"strings"
)

// BoundedOptions describes a numeric preference. Zero fields take the
// defaults: Min 1, Max 100, Default 10.
type BoundedOptions struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
}

// BoundedNumber reads a numeric preference and returns Default when it is
// missing, unparsable or outside [Min, Max].
func BoundedNumber(s Store, opts BoundedOptions) float64 {
	lo, hi, fallback := opts.Min, opts.Max, opts.Default
	if lo == 0 {
		lo = 1
	}
	if hi == 0 {
		hi = 100
	}
	if fallback == 0 {
		fallback = 10
	}
	if s == nil {
		return fallback
	}
	raw, err := s.Get(opts.Name)
	if err != nil {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || v < lo || v > hi {
		return fallback
	}
	return v
}
