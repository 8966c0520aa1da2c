package numeric

import "fmt"

// Boundary is one side of a constraint. The zero value of Exclusive means
// the limit itself is admitted.
type Boundary struct {
	Limit     float64
	Exclusive bool
}

// Inclusive reports whether the limit itself is admitted.
func (b Boundary) Inclusive() bool { return !b.Exclusive }

// AtLeast returns an inclusive lower boundary.
func AtLeast(limit float64) *Boundary { return &Boundary{Limit: limit} }

// Above returns an exclusive lower boundary.
func Above(limit float64) *Boundary { return &Boundary{Limit: limit, Exclusive: true} }

// AtMost returns an inclusive upper boundary.
func AtMost(limit float64) *Boundary { return &Boundary{Limit: limit} }

// Below returns an exclusive upper boundary.
func Below(limit float64) *Boundary { return &Boundary{Limit: limit, Exclusive: true} }

// Limits carries zero, one or two boundaries. The zero value admits every
// value. An inverted pair (Min above Max) admits nothing.
type Limits struct {
	Min *Boundary
	Max *Boundary
}

// IsZero reports whether no boundary is set.
func (l Limits) IsZero() bool { return l.Min == nil && l.Max == nil }

// Admits reports whether value satisfies every boundary in limits.
func Admits(value float64, limits Limits) bool {
	return limits.Admits(value)
}

// Admits reports whether value satisfies every boundary.
func (l Limits) Admits(value float64) bool {
	if l.Min != nil {
		if l.Min.Exclusive {
			if !(value > l.Min.Limit) {
				return false
			}
		} else if !(value >= l.Min.Limit) {
			return false
		}
	}
	if l.Max != nil {
		if l.Max.Exclusive {
			if !(value < l.Max.Limit) {
				return false
			}
		} else if !(value <= l.Max.Limit) {
			return false
		}
	}
	return true
}

// Filter returns the admitted values of domain in order.
func (l Limits) Filter(domain []float64) []float64 {
	out := make([]float64, 0, len(domain))
	for _, v := range domain {
		if l.Admits(v) {
			out = append(out, v)
		}
	}
	return out
}

// String renders the limits in interval notation, e.g. "[2, 8)".
func (l Limits) String() string {
	lo, hi := "(-inf", "+inf)"
	if l.Min != nil {
		bracket := "["
		if l.Min.Exclusive {
			bracket = "("
		}
		lo = fmt.Sprintf("%s%v", bracket, l.Min.Limit)
	}
	if l.Max != nil {
		bracket := "]"
		if l.Max.Exclusive {
			bracket = ")"
		}
		hi = fmt.Sprintf("%v%s", l.Max.Limit, bracket)
	}
	return lo + ", " + hi
}
