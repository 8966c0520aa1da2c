package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/menukit/pkg/actions"
	"tableflip.dev/menukit/pkg/runner/launch"
)

func addLaunch(topLevel *cobra.Command) {
	var (
		background bool
		arguments  []string
		fallback   string
	)
	cmd := &cobra.Command{
		Use:   "launch <command> [args...]",
		Short: "Launch another command",
		Example: `
menukit launch git status
menukit launch --background --arg mode=fast ./sync.sh
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, _, err := environment()
			if err != nil {
				return err
			}
			opts := actions.LaunchOptions{
				Name:         args[0],
				Args:         args[1:],
				FallbackText: fallback,
				Type:         actions.UserInitiated,
			}
			if background {
				opts.Type = actions.Background
			}
			for _, a := range arguments {
				k, v, _ := strings.Cut(a, "=")
				if opts.Arguments == nil {
					opts.Arguments = map[string]string{}
				}
				opts.Arguments[k] = v
			}
			l := launch.Launch{Options: opts, Env: env}
			return l.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&background, "background", false, "Start the command without waiting for it.")
	cmd.Flags().StringArrayVar(&arguments, "arg", nil, "Argument passed as --key=value, repeatable.")
	cmd.Flags().StringVar(&fallback, "fallback-text", "", "Text passed as the last argument.")
	cmd.Flags().SetInterspersed(false)

	topLevel.AddCommand(cmd)
}
