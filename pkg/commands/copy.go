package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/menukit/pkg/runner/clip"
)

func addCopy(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "copy <text...>",
		Short: "Copy text to the clipboard",
		Example: `
menukit copy hello world
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, _, err := environment()
			if err != nil {
				return err
			}
			c := clip.Copy{Text: args, Env: env}
			return c.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
