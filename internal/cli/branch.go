package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newBranchCmd creates the branch command
func newBranchCmd(app *App) *cobra.Command {
	var (
		create        string
		remove        string
		force         bool
		includeRemote bool
	)

	cmd := &cobra.Command{
		Use:   "branch",
		Short: "List, create, or delete branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if remove != "" && force && !app.confirm("Force-delete branch "+remove+"?") {
				return errOperationFailed
			}
			res := app.Ops.Branch(cmd.Context(), ops.BranchOptions{
				RepoPath:      app.RepoPath(),
				NewBranch:     create,
				DeleteBranch:  remove,
				Force:         force,
				IncludeRemote: includeRemote,
			})
			return app.print(res)
		},
	}

	cmd.Flags().StringVarP(&create, "create", "c", "", "Create a branch with this name")
	cmd.Flags().StringVarP(&remove, "delete", "d", "", "Delete the branch with this name")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even if the branch is unmerged")
	cmd.Flags().BoolVarP(&includeRemote, "remotes", "r", false, "Include remote-tracking branches in the listing")

	return cmd
}

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(app *App) *cobra.Command {
	var (
		createBranch bool
		files        []string
	)

	cmd := &cobra.Command{
		Use:     "checkout <target>",
		Aliases: []string{"co"},
		Short:   "Switch to a branch or commit, or restore files from one",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Checkout(cmd.Context(), ops.CheckoutOptions{
				RepoPath:     app.RepoPath(),
				Target:       args[0],
				CreateBranch: createBranch,
				Files:        files,
			})
			return app.print(res)
		},
	}

	cmd.Flags().BoolVarP(&createBranch, "create", "b", false, "Create the target as a new branch")
	cmd.Flags().StringSliceVar(&files, "file", nil, "Restore only these paths from the target")

	return cmd
}
