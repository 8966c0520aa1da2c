// Package printers writes command output as coloured tables, JSON or YAML.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	"tableflip.dev/menukit/pkg/numeric"
)

// Format is an output format.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// ParseFormat accepts table, json or yaml; "" means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", Table:
		return Table, nil
	case JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("printers: unknown output format %q, expected table, json or yaml", s)
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case YAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// NumericRow is the serialised form of a selector row.
type NumericRow struct {
	Label     string  `json:"label" yaml:"label"`
	Value     float64 `json:"value" yaml:"value"`
	Default   bool    `json:"default,omitempty" yaml:"default,omitempty"`
	FreeEntry bool    `json:"freeEntry,omitempty" yaml:"freeEntry,omitempty"`
}

// ToNumericRows converts selector rows.
func ToNumericRows(rows []numeric.Row) []NumericRow {
	out := make([]NumericRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, NumericRow{Label: r.Label, Value: r.Value, Default: r.IsDefault, FreeEntry: r.FreeEntry})
	}
	return out
}

// NumericRows prints rows in format f. The table marks the default in bold
// and the free entry in italics.
func NumericRows(w io.Writer, title string, rows []numeric.Row, f Format) error {
	if f != Table {
		return Encode(w, ToNumericRows(rows), f)
	}
	bold := color.New(color.Bold)
	if title != "" {
		_, _ = color.New(color.Bold, color.Underline).Fprintln(w, title)
	}
	if len(rows) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(w, " none")
		return nil
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Label"), bold.Sprint("Value"))
	italic := color.New(color.Italic, color.FgHiMagenta)
	for i, r := range rows {
		label := r.Label
		switch {
		case r.FreeEntry:
			label = italic.Sprint(label)
		case r.IsDefault:
			label = bold.Sprint(label)
		}
		tbl.AddRow(i+1, label, r.Value)
	}
	tbl.RightAlign(0)
	_, err := fmt.Fprintln(w, tbl)
	return err
}

// Preference is one stored value.
type Preference struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Preferences prints preference values in format f.
func Preferences(w io.Writer, prefs []Preference, f Format) error {
	if f != Table {
		return Encode(w, prefs, f)
	}
	if len(prefs) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(w, " none")
		return nil
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Value"))
	for _, p := range prefs {
		tbl.AddRow(color.CyanString(p.Name), p.Value)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}
