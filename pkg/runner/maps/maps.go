// Package maps opens or prints map links.
package maps

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/menukit/pkg/actions"
	"tableflip.dev/menukit/pkg/maps"
)

// Maps opens Query with the environment's opener.
type Maps struct {
	Query maps.Query
	// Print writes the link instead of opening it.
	Print bool
	Env   *actions.Env
	Out   io.Writer
}

// Do runs the "Open Maps" item, or prints its link.
func (m *Maps) Do(ctx context.Context) error {
	if m.Print {
		out := m.Out
		if out == nil {
			out = color.Output
		}
		_, err := fmt.Fprintln(out, m.Query.URL())
		return err
	}
	item := actions.OpenMaps(m.Env, m.Query)
	return item.OnAction(ctx)
}
