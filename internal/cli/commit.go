package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newCommitCmd creates the commit command
func newCommitCmd(app *App) *cobra.Command {
	var (
		message    string
		all        bool
		amend      bool
		allowEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Create a commit and return its identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Commit(cmd.Context(), ops.CommitOptions{
				RepoPath:   app.RepoPath(),
				Message:    message,
				All:        all,
				Amend:      amend,
				AllowEmpty: allowEmpty,
			})
			return app.print(res)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Stage tracked-file changes before committing")
	cmd.Flags().BoolVar(&amend, "amend", false, "Replace the last commit")
	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "Permit a commit with no changes")

	return cmd
}

// newAddCmd creates the add command
func newAddCmd(app *App) *cobra.Command {
	var includeDeleted bool

	cmd := &cobra.Command{
		Use:   "add <file>...",
		Short: "Stage files and return the staged list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Add(cmd.Context(), ops.AddOptions{
				RepoPath:       app.RepoPath(),
				Files:          args,
				ExcludeDeleted: !includeDeleted,
			})
			return app.print(res)
		},
	}

	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", true, "Stage deletions as well as additions and modifications")

	return cmd
}
