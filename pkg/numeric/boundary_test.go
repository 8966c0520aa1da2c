package numeric

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdmitsMinBoundary(t *testing.T) {
	if !Admits(5, Limits{Min: &Boundary{Limit: 5}}) {
		t.Fatalf("expected inclusive min to admit its limit")
	}
	if Admits(5, Limits{Min: &Boundary{Limit: 5, Exclusive: true}}) {
		t.Fatalf("expected exclusive min to reject its limit")
	}
	if Admits(4.99, Limits{Min: AtLeast(5)}) {
		t.Fatalf("expected value below min to be rejected")
	}
	if !Admits(5.01, Limits{Min: Above(5)}) {
		t.Fatalf("expected value above exclusive min to be admitted")
	}
}

func TestAdmitsMaxBoundary(t *testing.T) {
	if !Admits(8, Limits{Max: AtMost(8)}) {
		t.Fatalf("expected inclusive max to admit its limit")
	}
	if Admits(8, Limits{Max: Below(8)}) {
		t.Fatalf("expected exclusive max to reject its limit")
	}
	if Admits(8.5, Limits{Max: AtMost(8)}) {
		t.Fatalf("expected value above max to be rejected")
	}
}

func TestAdmitsWithoutLimits(t *testing.T) {
	var limits Limits
	for _, v := range []float64{-1e12, 0, 3.5, 1e12} {
		if !Admits(v, limits) {
			t.Fatalf("expected %v to be admitted without limits", v)
		}
	}
}

func TestAdmitsMissingMinIsUnboundedBelow(t *testing.T) {
	limits := Limits{Max: AtMost(8)}
	for _, v := range []float64{-100, -0.5, 0, 8} {
		if !Admits(v, limits) {
			t.Fatalf("expected %v to be admitted when only max is set", v)
		}
	}
	domain, err := Domain(Options{Predefined: RangeSteps(-3, 10, 13), Limits: limits})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{-3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8}
	if diff := cmp.Diff(want, domain); diff != "" {
		t.Fatalf("domain mismatch (-want +got):\n%s", diff)
	}
}

func TestAdmitsInvertedPairAdmitsNothing(t *testing.T) {
	limits := Limits{Min: AtLeast(8), Max: AtMost(2)}
	for _, v := range []float64{0, 2, 5, 8, 10} {
		if Admits(v, limits) {
			t.Fatalf("expected inverted limits to reject %v", v)
		}
	}
	domain, err := Domain(Options{Predefined: RangeSteps(0, 10, 10), Limits: limits})
	if err != nil {
		t.Fatalf("inverted limits must not be an error, got %v", err)
	}
	if len(domain) != 0 {
		t.Fatalf("expected empty domain, got %v", domain)
	}
}

func TestLimitsString(t *testing.T) {
	cases := map[string]Limits{
		"(-inf, +inf)": {},
		"[2, 8]":       {Min: AtLeast(2), Max: AtMost(8)},
		"(2, 8)":       {Min: Above(2), Max: Below(8)},
		"(-inf, 8]":    {Max: AtMost(8)},
	}
	for want, limits := range cases {
		if got := limits.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
