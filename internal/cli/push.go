package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newPushCmd creates the push command
func newPushCmd(app *App) *cobra.Command {
	var (
		remote      string
		branch      string
		force       bool
		setUpstream bool
		tags        bool
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the current or named branch to a remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if force && !app.confirm("Force push overwrites the remote branch. Continue?") {
				return errOperationFailed
			}
			res := app.Ops.Push(cmd.Context(), ops.PushOptions{
				RepoPath:    app.RepoPath(),
				Remote:      remote,
				Branch:      branch,
				Force:       force,
				SetUpstream: setUpstream,
				Tags:        tags,
			})
			return app.print(res)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "origin", "Remote to push to")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to push (default: current)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the remote branch")
	cmd.Flags().BoolVarP(&setUpstream, "set-upstream", "u", false, "Record the pushed branch as upstream")
	cmd.Flags().BoolVar(&tags, "tags", false, "Push tags as well")

	return cmd
}
