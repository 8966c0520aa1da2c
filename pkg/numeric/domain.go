package numeric

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidStep is returned when a range cannot produce a positive step.
	ErrInvalidStep = errors.New("numeric: step must be a positive number")
	// ErrInvalidRange is returned when a normalized range still has its
	// start above its stop.
	ErrInvalidRange = errors.New("numeric: minimum greater than maximum")
)

// Build turns spec into the ordered sequence of candidate values.
//
// Explicit lists are returned as-is (copied). A list containing NaN or
// infinite values, or one parsed from text with a bad token, yields an
// empty sequence. This is a permissive default for dynamically assembled
// lists, not a guarantee; callers should not rely on malformed input being
// silently accepted.
//
// Ranges fail with ErrInvalidStep when the step is not a positive finite
// number, including when stop-start overflows to infinity, and when the
// step is too small to advance a value at the magnitude of the bounds. A
// range never yields more than steps+1 values.
func Build(spec ValueSpec) ([]float64, error) {
	switch spec.kind {
	case KindList:
		if len(spec.values) == 0 && !spec.malformed {
			return []float64{}, nil
		}
		if !spec.wellFormed() {
			return []float64{}, nil
		}
		return append([]float64(nil), spec.values...), nil
	case KindRange:
		start, stop := spec.start, spec.stop
		if start > stop {
			start, stop = stop, start
		}
		steps := spec.Steps()
		if steps <= 0 {
			return nil, fmt.Errorf("%w: got %d steps", ErrInvalidStep, steps)
		}
		return numberSequence(start, stop, (stop-start)/float64(steps), steps+1)
	default:
		return []float64{}, nil
	}
}

// numberSequence accumulates step from start while the value stays at or
// below stop, returning at most limit values.
func numberSequence(start, stop, step float64, limit int) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: step size %v over [%v, %v]", ErrInvalidStep, step, start, stop)
	}
	if start > stop {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidRange, start, stop)
	}
	if limit <= 0 {
		limit = math.MaxInt
	}
	out := make([]float64, 0, min(limit, 1024))
	for v := start; v <= stop && len(out) < limit; {
		out = append(out, v)
		next := v + step
		if next <= v {
			return nil, fmt.Errorf("%w: step size %v vanishes at %v", ErrInvalidStep, step, v)
		}
		v = next
	}
	return out, nil
}
