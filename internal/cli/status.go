package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newStatusCmd creates the status command
func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the parsed working-tree status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Status(cmd.Context(), ops.StatusOptions{
				RepoPath: app.RepoPath(),
			})
			return app.print(res)
		},
	}
}
