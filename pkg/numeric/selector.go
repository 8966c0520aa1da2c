package numeric

import (
	"math"
	"strconv"
	"strings"
)

// DefaultMarker is appended to the label of the default value.
const DefaultMarker = "(Default)"

// Options is the caller-facing configuration of a selector.
type Options struct {
	// Predefined supplies the candidate values.
	Predefined ValueSpec
	// Limits restricts which values are admitted.
	Limits Limits
	// Default is pinned as the first entry when set.
	Default *float64
	// DefaultMarker is appended to the default entry's label. Empty means
	// DefaultMarker.
	DefaultMarker string
	// Format renders labels. Nil means DefaultFormat.
	Format Formatter
	// EnableCustomNumber offers the typed search text as a value when it
	// parses as a number.
	EnableCustomNumber bool
	// OnValueChanged is called once per admitted selection.
	OnValueChanged func(float64)
}

func (o Options) format() Formatter {
	if o.Format == nil {
		return DefaultFormat
	}
	return o.Format
}

func (o Options) marker() string {
	if o.DefaultMarker == "" {
		return DefaultMarker
	}
	return o.DefaultMarker
}

// Domain runs Build, Promote and the limits filter in that order.
func Domain(opts Options) ([]float64, error) {
	built, err := Build(opts.Predefined)
	if err != nil {
		return nil, err
	}
	return opts.Limits.Filter(Promote(built, opts.Default)), nil
}

// Mode is the search state of a selector.
type Mode int

const (
	// ModeIdle shows the full domain.
	ModeIdle Mode = iota
	// ModeFiltering shows the entries matching the search text.
	ModeFiltering
)

func (m Mode) String() string {
	if m == ModeFiltering {
		return "filtering"
	}
	return "idle"
}

// State is the transient search state of one selector.
type State struct {
	SearchText   string
	Filtered     []float64
	FreeValue    float64
	HasFreeValue bool
}

// Row is one selectable entry exposed to the renderer.
type Row struct {
	Label     string
	Value     float64
	FreeEntry bool
	IsDefault bool
}

// Selector holds the domain of one numeric selector and its search state.
// It is owned by a single component and is not safe for concurrent use.
type Selector struct {
	opts   Options
	domain []float64
	state  State
}

// NewSelector computes the domain for opts and starts in ModeIdle.
func NewSelector(opts Options) (*Selector, error) {
	s := &Selector{}
	if err := s.SetOptions(opts); err != nil {
		return nil, err
	}
	return s, nil
}

// SetOptions replaces the configuration, recomputes the domain and resets
// the search state. On error the previous configuration is kept.
func (s *Selector) SetOptions(opts Options) error {
	if s == nil {
		return nil
	}
	domain, err := Domain(opts)
	if err != nil {
		return err
	}
	s.opts = opts
	s.domain = domain
	s.reset()
	return nil
}

// Options returns the active configuration.
func (s *Selector) Options() Options {
	if s == nil {
		return Options{}
	}
	return s.opts
}

// Domain returns a copy of the computed domain.
func (s *Selector) Domain() []float64 {
	if s == nil {
		return nil
	}
	return append([]float64(nil), s.domain...)
}

// State returns a copy of the current search state.
func (s *Selector) State() State {
	if s == nil {
		return State{}
	}
	st := s.state
	st.Filtered = append([]float64(nil), s.state.Filtered...)
	return st
}

// Mode reports whether a search is active.
func (s *Selector) Mode() Mode {
	if s == nil || s.state.SearchText == "" {
		return ModeIdle
	}
	return ModeFiltering
}

// SearchText returns the trimmed search text.
func (s *Selector) SearchText() string {
	if s == nil {
		return ""
	}
	return s.state.SearchText
}

// SetSearchText applies a text-input event. The filtered view and the free
// value are recomputed synchronously; a text that does not parse as a
// number simply clears the free value.
func (s *Selector) SetSearchText(text string) {
	if s == nil {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		s.reset()
		return
	}
	format := s.opts.format()
	filtered := make([]float64, 0, len(s.domain))
	for _, v := range s.domain {
		if strings.Contains(format(v), text) {
			filtered = append(filtered, v)
		}
	}
	s.state = State{SearchText: text, Filtered: filtered}
	if s.opts.EnableCustomNumber {
		if v, ok := parseFree(text); ok {
			s.state.FreeValue = v
			s.state.HasFreeValue = true
		}
	}
}

// Rows returns the entries to render: the free entry first when present
// and admitted, then the filtered domain.
func (s *Selector) Rows() []Row {
	if s == nil {
		return nil
	}
	format := s.opts.format()
	marker := s.opts.marker()
	rows := make([]Row, 0, len(s.state.Filtered)+1)
	if s.state.HasFreeValue && s.opts.Limits.Admits(s.state.FreeValue) {
		rows = append(rows, Row{
			Label:     format(s.state.FreeValue),
			Value:     s.state.FreeValue,
			FreeEntry: true,
		})
	}
	for _, v := range s.state.Filtered {
		row := Row{Label: format(v), Value: v}
		if s.opts.Default != nil && v == *s.opts.Default {
			row.IsDefault = true
			row.Label += " " + marker
		}
		rows = append(rows, row)
	}
	return rows
}

// Select commits value. The callback runs only when value is admitted by
// the limits; otherwise Select is a no-op. It reports whether the value
// was admitted.
func (s *Selector) Select(value float64) bool {
	if s == nil {
		return false
	}
	if !s.opts.Limits.Admits(value) {
		return false
	}
	if s.opts.OnValueChanged != nil {
		s.opts.OnValueChanged(value)
	}
	return true
}

func (s *Selector) reset() {
	s.state = State{Filtered: append([]float64(nil), s.domain...)}
}

func parseFree(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
