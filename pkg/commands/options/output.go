// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/menukit/pkg/printers"
)

// OutputOptions selects how results and errors are printed.
type OutputOptions struct {
	JSON   bool
	Output string
}

// AddOutputArg registers --json and --output.
func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Output as JSON.")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "table",
		"Output format. One of 'table', 'json' or 'yaml'.")
}

// Format resolves the flags; --json wins over --output.
func (o *OutputOptions) Format() (printers.Format, error) {
	if o.JSON {
		return printers.JSON, nil
	}
	return printers.ParseFormat(o.Output)
}

// HandleError prints err as {"error": ...} in JSON mode and swallows it;
// otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil {
		return nil
	}
	if f, ferr := o.Format(); ferr != nil || f != printers.JSON {
		return err
	}
	b, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
