package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/menukit/pkg/commands/options"
	"tableflip.dev/menukit/pkg/prefs"
	"tableflip.dev/menukit/pkg/runner/numeric"
)

func addNumeric(topLevel *cobra.Command) {
	no := &options.NumericOptions{}
	cmd := &cobra.Command{
		Use:   "numeric",
		Short: "Pick a number from a list or range",
		Example: `
menukit numeric --start 0 --stop 100 --steps 20 --default 50
menukit numeric --values 8,10,12,14 --custom --suffix " pt"
menukit numeric --start 0 --stop 1 --locale de-CH --list -o yaml
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.Format()
			if err != nil {
				return err
			}
			marker := ""
			if cfg, err := prefs.LoadConfig(); err == nil {
				marker = cfg.Marker()
			}
			sel, err := no.Selector(marker, nil)
			if err != nil {
				return output.HandleError(err)
			}
			ctx, cancel := signalContext()
			defer cancel()
			n := numeric.Numeric{
				Title:   no.Title,
				Options: sel,
				Search:  no.Search,
				List:    no.List,
				Format:  f,
			}
			return output.HandleError(n.Do(ctx))
		},
	}
	options.AddNumericArgs(cmd, no)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
