package commands

import (
	"context"
	"os"
	"os/signal"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/menukit/pkg/actions"
	"tableflip.dev/menukit/pkg/commands/options"
	"tableflip.dev/menukit/pkg/prefs"
)

var (
	output  = &options.OutputOptions{}
	verbose = &options.VerboseOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "menukit",
		Short: base.Wrap80("Menus, numeric pickers and common actions for the terminal."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose.Logger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddVerboseArg(cmd, verbose)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addDemo(topLevel)
	addNumeric(topLevel)
	addMaps(topLevel)
	addCopy(topLevel)
	addLaunch(topLevel)
	addPrefs(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// signalContext is cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// environment loads the config and preference store and builds the
// action environment. Background mode logs notifications instead of
// printing them.
func environment() (*actions.Env, prefs.Config, error) {
	cfg, err := prefs.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := prefs.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger := verbose.Logger()
	env := &actions.Env{Prefs: store, Logger: logger}
	if cfg.Background() {
		env.Notifier = actions.LogNotifier{Logger: logger}
	} else {
		env.Notifier = actions.ConsoleNotifier{Out: os.Stdout, Err: os.Stderr}
	}
	return env, cfg, nil
}
