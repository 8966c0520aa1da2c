package options

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"tableflip.dev/menukit/pkg/numeric"
)

// NumericOptions are the flags of the numeric command.
type NumericOptions struct {
	Title        string
	Values       string
	Start        float64
	Stop         float64
	Steps        int
	Min          float64
	MinExclusive bool
	Max          float64
	MaxExclusive bool
	Default      float64
	Marker       string
	Custom       bool
	Precision    int
	Suffix       string
	Locale       string
	Search       string
	List         bool

	flags *pflag.FlagSet
}

// AddNumericArgs registers the selector flags.
func AddNumericArgs(cmd *cobra.Command, o *NumericOptions) {
	f := cmd.Flags()
	f.StringVar(&o.Title, "title", "Select a value", "Title shown above the values.")
	f.StringVar(&o.Values, "values", "", "Explicit list of values, comma separated. Overrides the range flags.")
	f.Float64Var(&o.Start, "start", 1, "First value of the range.")
	f.Float64Var(&o.Stop, "stop", 10, "Last value of the range.")
	f.IntVar(&o.Steps, "steps", numeric.DefaultSteps, "Number of steps between start and stop.")
	f.Float64Var(&o.Min, "min", 0, "Smallest admitted value.")
	f.BoolVar(&o.MinExclusive, "min-exclusive", false, "Exclude --min itself.")
	f.Float64Var(&o.Max, "max", 0, "Largest admitted value.")
	f.BoolVar(&o.MaxExclusive, "max-exclusive", false, "Exclude --max itself.")
	f.Float64Var(&o.Default, "default", 0, "Value pinned first and marked as default.")
	f.StringVar(&o.Marker, "marker", "", "Marker appended to the default value.")
	f.BoolVar(&o.Custom, "custom", false, "Offer the typed search text as a value.")
	f.IntVar(&o.Precision, "precision", 0, "Significant digits in labels; 0 prints the shortest form.")
	f.StringVar(&o.Suffix, "suffix", "", "Unit appended to every label, e.g. ' °C'.")
	f.StringVar(&o.Locale, "locale", "", "Format labels for a BCP 47 locale, e.g. de-CH.")
	f.StringVar(&o.Search, "search", "", "Initial search text.")
	f.BoolVar(&o.List, "list", false, "Print the rows instead of opening the picker.")
	o.flags = f
}

func (o *NumericOptions) changed(name string) bool {
	return o.flags != nil && o.flags.Changed(name)
}

// Spec returns the candidate values from --values or the range flags.
func (o *NumericOptions) Spec() numeric.ValueSpec {
	if o.changed("values") {
		return numeric.ParseList(o.Values)
	}
	if o.changed("steps") {
		return numeric.RangeSteps(o.Start, o.Stop, o.Steps)
	}
	return numeric.Range(o.Start, o.Stop)
}

// Limits returns the boundaries that were set.
func (o *NumericOptions) Limits() numeric.Limits {
	var l numeric.Limits
	if o.changed("min") {
		l.Min = &numeric.Boundary{Limit: o.Min, Exclusive: o.MinExclusive}
	}
	if o.changed("max") {
		l.Max = &numeric.Boundary{Limit: o.Max, Exclusive: o.MaxExclusive}
	}
	return l
}

// Formatter combines --locale, --precision and --suffix.
func (o *NumericOptions) Formatter() (numeric.Formatter, error) {
	var base numeric.Formatter
	switch {
	case o.Locale != "":
		tag, err := language.Parse(o.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid --locale %q: %w", o.Locale, err)
		}
		digits := o.Precision
		if digits <= 0 {
			digits = 6
		}
		base = numeric.LocaleFormatter(tag, digits)
	case o.Precision > 0:
		base = numeric.PrecisionFormatter(o.Precision)
	}
	if o.Suffix != "" {
		return numeric.SuffixFormatter(base, o.Suffix), nil
	}
	return base, nil
}

// Selector builds the selector options. marker is the configured default
// marker used when --marker is not given.
func (o *NumericOptions) Selector(marker string, onChange func(float64)) (numeric.Options, error) {
	format, err := o.Formatter()
	if err != nil {
		return numeric.Options{}, err
	}
	opts := numeric.Options{
		Predefined:         o.Spec(),
		Limits:             o.Limits(),
		DefaultMarker:      marker,
		Format:             format,
		EnableCustomNumber: o.Custom,
		OnValueChanged:     onChange,
	}
	if o.Marker != "" {
		opts.DefaultMarker = o.Marker
	}
	if o.changed("default") {
		opts.Default = numeric.Float(o.Default)
	}
	return opts, nil
}
