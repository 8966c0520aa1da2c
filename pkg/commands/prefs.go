package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/menukit/pkg/commands/options"
	"tableflip.dev/menukit/pkg/prefs"
	runner "tableflip.dev/menukit/pkg/runner/prefs"
)

func addPrefs(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read and write preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	base := func() (runner.Base, error) {
		f, err := output.Format()
		if err != nil {
			return runner.Base{}, err
		}
		s, err := prefs.Load(nil)
		if err != nil {
			return runner.Base{}, err
		}
		return runner.Base{Store: s, Format: f}, nil
	}

	get := &cobra.Command{
		Use:               "get <name>",
		Short:             "Print a preference",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: prefCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := base()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError((&runner.Get{Base: b, Name: args[0]}).Do(cmd.Context()))
		},
	}

	set := &cobra.Command{
		Use:               "set <name> <value>",
		Short:             "Store a preference",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: prefCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := base()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError((&runner.Set{Base: b, Name: args[0], Value: args[1]}).Do(cmd.Context()))
		},
	}

	rm := &cobra.Command{
		Use:               "rm <name>",
		Short:             "Delete a preference",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: prefCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := base()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError((&runner.Remove{Base: b, Name: args[0]}).Do(cmd.Context()))
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := base()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError((&runner.List{Base: b}).Do(cmd.Context()))
		},
	}

	bo := prefs.BoundedOptions{}
	bounded := &cobra.Command{
		Use:   "bounded <name>",
		Short: "Print a numeric preference, falling back when out of bounds",
		Example: `
menukit prefs bounded font-size --min 8 --max 32 --default 14
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: prefCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := base()
			if err != nil {
				return output.HandleError(err)
			}
			bo.Name = args[0]
			return output.HandleError((&runner.Bounded{Base: b, Options: bo}).Do(cmd.Context()))
		},
	}
	bounded.Flags().Float64Var(&bo.Min, "min", 1, "Smallest accepted value.")
	bounded.Flags().Float64Var(&bo.Max, "max", 100, "Largest accepted value.")
	bounded.Flags().Float64Var(&bo.Default, "default", 10, "Value used when the preference is missing or out of bounds.")

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Print preferences as they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := base()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()
			return (&runner.Watch{Base: b}).Do(ctx)
		},
	}

	open := &cobra.Command{
		Use:   "open",
		Short: "Open the preference directory in $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, _, err := environment()
			if err != nil {
				return err
			}
			return (&runner.Open{Env: env}).Do(cmd.Context())
		},
	}

	for _, sub := range []*cobra.Command{get, set, rm, list, bounded} {
		options.AddOutputArg(sub, output)
	}
	cmd.AddCommand(get, set, rm, list, bounded, watch, open)
	topLevel.AddCommand(cmd)
}
