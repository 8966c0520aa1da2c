package options

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// VerboseOptions controls diagnostic logging.
type VerboseOptions struct {
	Verbose bool
}

// AddVerboseArg registers --verbose on every command.
func AddVerboseArg(cmd *cobra.Command, o *VerboseOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug information to stderr.")
}

// Logger returns a stderr text logger at debug level when verbose, warn
// level otherwise, and installs it as the default.
func (o *VerboseOptions) Logger() *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
