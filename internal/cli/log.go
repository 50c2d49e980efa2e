package cli

import (
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/ops"
)

// newLogCmd creates the log command
func newLogCmd(app *App) *cobra.Command {
	var (
		maxCount int
		path     string
		author   string
		since    string
		oneLine  bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history as structured records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Log(cmd.Context(), ops.LogOptions{
				RepoPath: app.RepoPath(),
				MaxCount: maxCount,
				Path:     path,
				Author:   author,
				Since:    since,
				OneLine:  oneLine,
			})
			return app.print(res)
		},
	}

	cmd.Flags().IntVarP(&maxCount, "max-count", "n", 10, "Maximum number of commits")
	cmd.Flags().StringVar(&path, "path", "", "Only commits touching this path")
	cmd.Flags().StringVar(&author, "author", "", "Filter by author pattern")
	cmd.Flags().StringVar(&since, "since", "", "Only commits after this date expression")
	cmd.Flags().BoolVar(&oneLine, "oneline", false, "Compact hash+subject lines instead of structured records")

	return cmd
}

// newDiffCmd creates the diff command
func newDiffCmd(app *App) *cobra.Command {
	var (
		staged   bool
		file     string
		from     string
		to       string
		nameOnly bool
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show changes as capped diff text or a changed-file list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Ops.Diff(cmd.Context(), ops.DiffOptions{
				RepoPath: app.RepoPath(),
				Staged:   staged,
				File:     file,
				From:     from,
				To:       to,
				NameOnly: nameOnly,
			})
			return app.print(res)
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "Diff the index against HEAD")
	cmd.Flags().StringVar(&file, "file", "", "Restrict the diff to one path")
	cmd.Flags().StringVar(&from, "from", "", "Diff from this revision")
	cmd.Flags().StringVar(&to, "to", "", "Diff to this revision (with --from)")
	cmd.Flags().BoolVar(&nameOnly, "name-only", false, "List changed file names instead of diff text")

	return cmd
}
