package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newMergeCmd creates the merge command
func newMergeCmd(app *App) *cobra.Command {
	var (
		noFF            bool
		abortOnConflict bool
	)

	cmd := &cobra.Command{
		Use:   "merge <branch>",
		Short: "Merge a branch, reporting conflicts as structured data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Merge(cmd.Context(), ops.MergeOptions{
				RepoPath:        app.RepoPath(),
				Branch:          args[0],
				NoFastForward:   noFF,
				AbortOnConflict: abortOnConflict,
			})
			return app.print(res)
		},
	}

	cmd.Flags().BoolVar(&noFF, "no-ff", false, "Always create a merge commit")
	cmd.Flags().BoolVar(&abortOnConflict, "abort-on-conflict", false, "Abort the merge if conflicts occur instead of leaving the tree conflicted")

	return cmd
}

// newAbortMergeCmd creates the abort-merge command
func newAbortMergeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abort-merge",
		Short: "Abort an in-progress merge and restore the pre-merge state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.AbortMerge(cmd.Context(), ops.AbortMergeOptions{
				RepoPath: app.RepoPath(),
			})
			return app.print(res)
		},
	}
}

// newContinueMergeCmd creates the continue-merge command
func newContinueMergeCmd(app *App) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "continue-merge",
		Short: "Complete an in-progress merge once all conflicts are resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.ContinueMerge(cmd.Context(), ops.ContinueMergeOptions{
				RepoPath: app.RepoPath(),
				Message:  message,
			})
			return app.print(res)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Override the merge commit message")

	return cmd
}
