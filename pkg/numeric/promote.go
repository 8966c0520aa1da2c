package numeric

// Promote returns domain with def moved to the front. Every value equal to
// def is removed and a single copy is prepended, whether or not it was
// present. A nil def returns a copy of domain.
func Promote(domain []float64, def *float64) []float64 {
	if def == nil {
		return append([]float64(nil), domain...)
	}
	out := make([]float64, 0, len(domain)+1)
	out = append(out, *def)
	for _, v := range domain {
		if v == *def {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Float returns a pointer to v, for Options.Default.
func Float(v float64) *float64 { return &v }
