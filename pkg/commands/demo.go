package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/menukit/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open the sample menu",
		Example: `
menukit demo
menukit demo --verbose
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cfg, err := environment()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()
			d := demo.Demo{
				Env:     env,
				Store:   env.Prefs,
				Clip:    cfg.ClipLength(),
				Verbose: verbose.Verbose,
			}
			return d.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
