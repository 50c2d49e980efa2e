package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newConflictsCmd creates the conflicts command
func newConflictsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List conflicted files with their parsed marker sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Conflicts(cmd.Context(), ops.ConflictsOptions{
				RepoPath: app.RepoPath(),
			})
			return app.print(res)
		},
	}
}

// newResolveCmd creates the resolve command
func newResolveCmd(app *App) *cobra.Command {
	var (
		strategy string
		content  string
	)

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolve one conflicted file (ours, theirs, or manual) and stage it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ops.ResolveOptions{
				RepoPath: app.RepoPath(),
				FilePath: args[0],
				Strategy: strategy,
			}
			// Distinguish "no content given" from "empty content": an empty
			// resolution (delete everything between the markers) is valid.
			if cmd.Flags().Changed("content") {
				opts.ResolvedContent = &content
			}
			res := app.Ops.ResolveConflict(cmd.Context(), opts)
			return app.print(res)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Resolution strategy: ours, theirs, or manual")
	cmd.Flags().StringVar(&content, "content", "", "Replacement file content for the manual strategy")
	_ = cmd.MarkFlagRequired("strategy")

	return cmd
}
