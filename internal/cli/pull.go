package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newPullCmd creates the pull command
func newPullCmd(app *App) *cobra.Command {
	var (
		remote string
		branch string
		rebase bool
		ffOnly bool
	)

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Fetch and integrate changes, reporting conflicts as structured data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Pull(cmd.Context(), ops.PullOptions{
				RepoPath:        app.RepoPath(),
				Remote:          remote,
				Branch:          branch,
				Rebase:          rebase,
				FastForwardOnly: ffOnly,
			})
			return app.print(res)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "origin", "Remote to pull from")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to pull (default: tracked branch)")
	cmd.Flags().BoolVar(&rebase, "rebase", false, "Rebase local commits on top of the fetched branch")
	cmd.Flags().BoolVar(&ffOnly, "ff-only", false, "Refuse to pull unless fast-forward is possible")

	return cmd
}

// newFetchCmd creates the fetch command
func newFetchCmd(app *App) *cobra.Command {
	var (
		remote string
		all    bool
		prune  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download refs from a remote without touching the working tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Fetch(cmd.Context(), ops.FetchOptions{
				RepoPath: app.RepoPath(),
				Remote:   remote,
				All:      all,
				Prune:    prune,
			})
			return app.print(res)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "origin", "Remote to fetch")
	cmd.Flags().BoolVar(&all, "all", false, "Fetch all configured remotes")
	cmd.Flags().BoolVar(&prune, "prune", false, "Remove remote-tracking refs deleted upstream")

	return cmd
}
