// Package numeric builds and filters the value domain behind the numeric
// selector and tracks the live search/free-entry state of one selector
// instance.
//
// The package has no terminal or I/O dependencies; components under
// pkg/tui/components render what it computes.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// DefaultSteps is the number of steps used by a range without an explicit
// step count.
const DefaultSteps = 10

// Kind discriminates the ValueSpec variants.
type Kind int

const (
	// KindNone produces no candidates.
	KindNone Kind = iota
	// KindList carries an explicit ordered list of values.
	KindList
	// KindRange carries a start/stop range split into a number of steps.
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindRange:
		return "range"
	default:
		return "none"
	}
}

// ValueSpec describes where the candidate values of a selector come from.
// Use List, ParseList, Range or RangeSteps to construct one; the zero value
// is KindNone.
type ValueSpec struct {
	kind      Kind
	values    []float64
	malformed bool

	start    float64
	stop     float64
	steps    int
	stepsSet bool
}

// List returns a spec holding the given values in order. Duplicates are
// kept.
func List(values ...float64) ValueSpec {
	return ValueSpec{kind: KindList, values: append([]float64(nil), values...)}
}

// ParseList builds a list spec from comma or whitespace separated numbers.
// A token that is not a number marks the list malformed, which builds to an
// empty domain rather than an error.
func ParseList(text string) ValueSpec {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	spec := ValueSpec{kind: KindList, values: make([]float64, 0, len(fields))}
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			spec.malformed = true
			continue
		}
		spec.values = append(spec.values, v)
	}
	return spec
}

// Range returns a range spec using DefaultSteps.
func Range(start, stop float64) ValueSpec {
	return ValueSpec{kind: KindRange, start: start, stop: stop}
}

// RangeSteps returns a range spec split into steps intervals. A step count
// of zero or less fails when the spec is built.
func RangeSteps(start, stop float64, steps int) ValueSpec {
	return ValueSpec{kind: KindRange, start: start, stop: stop, steps: steps, stepsSet: true}
}

// Kind reports the variant.
func (s ValueSpec) Kind() Kind { return s.kind }

// Values returns a copy of the explicit list. It is nil for ranges.
func (s ValueSpec) Values() []float64 {
	if s.kind != KindList {
		return nil
	}
	return append([]float64(nil), s.values...)
}

// Bounds returns the range end points as given, before normalization.
func (s ValueSpec) Bounds() (start, stop float64) {
	return s.start, s.stop
}

// Steps returns the effective step count of a range.
func (s ValueSpec) Steps() int {
	if !s.stepsSet {
		return DefaultSteps
	}
	return s.steps
}

// wellFormed reports whether an explicit list consists solely of finite
// numbers.
func (s ValueSpec) wellFormed() bool {
	if s.malformed {
		return false
	}
	for _, v := range s.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
