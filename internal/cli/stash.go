package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newStashCmd creates the stash command
func newStashCmd(app *App) *cobra.Command {
	var (
		message          string
		ref              string
		includeUntracked bool
	)

	cmd := &cobra.Command{
		Use:       "stash <push|pop|apply|list|drop|clear>",
		Short:     "Shelve and restore uncommitted changes",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{ops.StashPush, ops.StashPop, ops.StashApply, ops.StashList, ops.StashDrop, ops.StashClear},
		RunE: func(cmd *cobra.Command, args []string) error {
			operation := args[0]
			if operation == ops.StashClear && !app.confirm("Clear all stash entries? This cannot be undone.") {
				return errOperationFailed
			}
			res := app.Ops.Stash(cmd.Context(), ops.StashOptions{
				RepoPath:         app.RepoPath(),
				Operation:        operation,
				Message:          message,
				Ref:              ref,
				IncludeUntracked: includeUntracked,
			})
			return app.print(res)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message for the stash entry (push)")
	cmd.Flags().StringVar(&ref, "ref", "", "Stash reference, e.g. stash@{1} (pop/apply/drop)")
	cmd.Flags().BoolVarP(&includeUntracked, "include-untracked", "u", false, "Stash untracked files too (push)")

	return cmd
}
