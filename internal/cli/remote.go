package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newRemoteCmd creates the remote command
func newRemoteCmd(app *App) *cobra.Command {
	var (
		addName    string
		addURL     string
		removeName string
	)

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "List, add, or remove configured remotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Remote(cmd.Context(), ops.RemoteOptions{
				RepoPath:   app.RepoPath(),
				AddName:    addName,
				AddURL:     addURL,
				RemoveName: removeName,
			})
			return app.print(res)
		},
	}

	cmd.Flags().StringVar(&addName, "add", "", "Add a remote with this name")
	cmd.Flags().StringVar(&addURL, "url", "", "URL for the remote being added")
	cmd.Flags().StringVar(&removeName, "remove", "", "Remove the remote with this name")

	return cmd
}
