// Package launch starts another command through the launch action.
package launch

import (
	"context"

	"tableflip.dev/menukit/pkg/actions"
)

// Launch runs the "Launch Command" item.
type Launch struct {
	Options actions.LaunchOptions
	Env     *actions.Env
}

// Do launches Options.
func (l *Launch) Do(ctx context.Context) error {
	return actions.LaunchCommand(l.Env, l.Options).OnAction(ctx)
}
