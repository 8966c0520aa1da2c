package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/menukit/pkg/commands/options"
	"tableflip.dev/menukit/pkg/runner/maps"
)

func addMaps(topLevel *cobra.Command) {
	mo := &options.MapsOptions{}
	cmd := &cobra.Command{
		Use:   "maps",
		Short: "Open a location in Apple Maps",
		Example: `
menukit maps --lat 47.3769 --long 8.5417 --type satellite
menukit maps --type transit --print
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := mo.Query()
			if err != nil {
				return err
			}
			m := maps.Maps{Query: q, Print: mo.Print}
			if !mo.Print {
				env, _, err := environment()
				if err != nil {
					return err
				}
				m.Env = env
			}
			return m.Do(cmd.Context())
		},
	}
	options.AddMapsArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
