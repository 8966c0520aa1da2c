// Package clip copies text to the clipboard.
package clip

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/menukit/pkg/actions"
)

// Copy runs the "Copy To Clipboard" item over Text.
type Copy struct {
	Text []string
	Env  *actions.Env
}

// Do joins the words with spaces and copies them.
func (c *Copy) Do(ctx context.Context) error {
	content := strings.Join(c.Text, " ")
	if content == "" {
		return errors.New("nothing to copy")
	}
	return actions.CopyToClipboard(c.Env, content).OnAction(ctx)
}
