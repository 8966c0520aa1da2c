package numeric

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func labels(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Label)
	}
	return out
}

func TestSelectorIdleShowsDomain(t *testing.T) {
	s, err := NewSelector(Options{Predefined: List(2, 3, 4), Default: Float(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mode() != ModeIdle {
		t.Fatalf("expected idle mode, got %v", s.Mode())
	}
	want := []string{"3 (Default)", "2", "4"}
	if diff := cmp.Diff(want, labels(s.Rows())); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if !s.Rows()[0].IsDefault {
		t.Fatalf("expected first row to be flagged default")
	}
}

func TestSelectorCustomMarker(t *testing.T) {
	s, err := NewSelector(Options{Predefined: List(1, 2), Default: Float(2), DefaultMarker: "*"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Rows()[0].Label; got != "2 *" {
		t.Fatalf("expected custom marker label, got %q", got)
	}
}

func TestSelectorFiltersBySubstring(t *testing.T) {
	s, err := NewSelector(Options{Predefined: List(1, 10, 11, 2, 21)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetSearchText(" 1 ")
	if s.Mode() != ModeFiltering {
		t.Fatalf("expected filtering mode")
	}
	if s.SearchText() != "1" {
		t.Fatalf("expected trimmed search text, got %q", s.SearchText())
	}
	if diff := cmp.Diff([]float64{1, 10, 11, 21}, s.State().Filtered); diff != "" {
		t.Fatalf("filtered mismatch (-want +got):\n%s", diff)
	}

	s.SetSearchText("")
	if s.Mode() != ModeIdle {
		t.Fatalf("expected idle mode after clearing")
	}
	if len(s.Rows()) != 5 {
		t.Fatalf("expected full domain after clearing, got %v", labels(s.Rows()))
	}
}

func TestSelectorFilterIsCaseSensitive(t *testing.T) {
	s, err := NewSelector(Options{
		Predefined: List(20, 21),
		Format:     SuffixFormatter(nil, " °C"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetSearchText("c")
	if len(s.Rows()) != 0 {
		t.Fatalf("expected no matches for lower-case query, got %v", labels(s.Rows()))
	}
	s.SetSearchText("C")
	if diff := cmp.Diff([]string{"20 °C", "21 °C"}, labels(s.Rows())); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectorFreeEntry(t *testing.T) {
	s, err := NewSelector(Options{
		Predefined:         RangeSteps(5, 10, 5),
		Limits:             Limits{Min: AtLeast(5), Max: AtMost(10)},
		EnableCustomNumber: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.SetSearchText("7.5")
	rows := s.Rows()
	if len(rows) == 0 || !rows[0].FreeEntry {
		t.Fatalf("expected synthesized entry first, got %+v", rows)
	}
	if rows[0].Label != "7.5" || rows[0].Value != 7.5 {
		t.Fatalf("unexpected free entry %+v", rows[0])
	}
	free := 0
	for _, r := range rows {
		if r.FreeEntry {
			free++
		}
	}
	if free != 1 {
		t.Fatalf("expected exactly one free entry, got %d", free)
	}

	s.SetSearchText("")
	for _, r := range s.Rows() {
		if r.FreeEntry {
			t.Fatalf("expected free entry to disappear after clearing")
		}
	}
}

func TestSelectorFreeEntryUsesFormatter(t *testing.T) {
	s, err := NewSelector(Options{
		Predefined:         RangeSteps(1, 10, 10),
		Format:             PrecisionFormatter(2),
		EnableCustomNumber: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetSearchText("7.25")
	rows := s.Rows()
	if !rows[0].FreeEntry || rows[0].Label != "7.2" {
		t.Fatalf("expected formatted free entry 7.2, got %+v", rows[0])
	}
}

func TestSelectorFreeEntryRejected(t *testing.T) {
	s, err := NewSelector(Options{
		Predefined:         List(1, 2, 3),
		Limits:             Limits{Max: AtMost(8)},
		EnableCustomNumber: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.SetSearchText("abc")
	if st := s.State(); st.HasFreeValue {
		t.Fatalf("expected no free value for non-numeric text")
	}

	s.SetSearchText("9")
	if st := s.State(); !st.HasFreeValue || st.FreeValue != 9 {
		t.Fatalf("expected parsed free value 9, got %+v", st)
	}
	for _, r := range s.Rows() {
		if r.FreeEntry {
			t.Fatalf("expected out of bounds free entry to be hidden")
		}
	}

	s.SetSearchText("-4")
	rows := s.Rows()
	if len(rows) == 0 || !rows[0].FreeEntry || rows[0].Value != -4 {
		t.Fatalf("expected negative free entry without min, got %+v", rows)
	}
}

func TestSelectorFreeEntryDisabled(t *testing.T) {
	s, err := NewSelector(Options{Predefined: List(1, 2, 3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetSearchText("2")
	for _, r := range s.Rows() {
		if r.FreeEntry {
			t.Fatalf("free entry must not appear when disabled")
		}
	}
}

func TestSelectorSelectGatesCallback(t *testing.T) {
	var got []float64
	s, err := NewSelector(Options{
		Predefined:     List(1, 5, 9),
		Limits:         Limits{Min: AtLeast(2), Max: Below(9)},
		OnValueChanged: func(v float64) { got = append(got, v) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Select(5) {
		t.Fatalf("expected 5 to be admitted")
	}
	if s.Select(9) {
		t.Fatalf("expected 9 to be rejected by exclusive max")
	}
	if s.Select(1) {
		t.Fatalf("expected 1 to be rejected by min")
	}
	if diff := cmp.Diff([]float64{5}, got); diff != "" {
		t.Fatalf("callback values mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectorStaleRowCannotCommit(t *testing.T) {
	calls := 0
	opts := Options{
		Predefined:     List(1, 2, 3),
		OnValueChanged: func(float64) { calls++ },
	}
	s, err := NewSelector(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stale := s.Rows()

	opts.Limits = Limits{Max: Below(3)}
	if err := s.SetOptions(opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Select(stale[2].Value) {
		t.Fatalf("expected stale row 3 to be rejected")
	}
	if calls != 0 {
		t.Fatalf("expected no callback, got %d", calls)
	}
}

func TestSelectorSetOptionsResetsState(t *testing.T) {
	s, err := NewSelector(Options{Predefined: List(1, 2, 3), EnableCustomNumber: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetSearchText("2")
	if err := s.SetOptions(Options{Predefined: List(4, 5)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mode() != ModeIdle || s.State().HasFreeValue {
		t.Fatalf("expected state reset, got %+v", s.State())
	}
	if diff := cmp.Diff([]float64{4, 5}, s.Domain()); diff != "" {
		t.Fatalf("domain mismatch (-want +got):\n%s", diff)
	}

	err = s.SetOptions(Options{Predefined: RangeSteps(1, 2, 0)})
	if !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}
	if diff := cmp.Diff([]float64{4, 5}, s.Domain()); diff != "" {
		t.Fatalf("failed SetOptions must keep the previous domain (-want +got):\n%s", diff)
	}
}

func TestNewSelectorPropagatesStepError(t *testing.T) {
	_, err := NewSelector(Options{Predefined: RangeSteps(0, 10, 0)})
	if !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}
}

func TestNilSelectorIsInert(t *testing.T) {
	var s *Selector
	s.SetSearchText("1")
	if s.Rows() != nil || s.Select(1) || s.Mode() != ModeIdle {
		t.Fatalf("nil selector should be inert")
	}
}

func TestLocaleFormatter(t *testing.T) {
	format := LocaleFormatter(language.German, 2)
	if got := format(1234.5); got != "1.234,5" {
		t.Fatalf("expected German formatting, got %q", got)
	}
	format = LocaleFormatter(language.English, 0)
	if got := format(1234567); got != "1,234,567" {
		t.Fatalf("expected English grouping, got %q", got)
	}
}
