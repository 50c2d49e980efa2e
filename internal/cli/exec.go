package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// execResult is the envelope for the low-level exec command.
type execResult struct {
	Success  bool   `json:"success"`
	ExitCode int    `json:"exitCode"`
	Output   string `json:"output,omitempty"`
	Errors   string `json:"errors,omitempty"`
}

func (r *execResult) Succeeded() bool { return r.Success }
func (r *execResult) Summary() string { return fmt.Sprintf("git exited %d", r.ExitCode) }
func (r *execResult) Detail() string {
	if r.Errors != "" {
		return r.Output + r.Errors
	}
	return r.Output
}

// newExecCmd creates the exec command: a raw git argument string run through
// the same runner the workflow operations use. No shell is involved; the
// string is word-split with shell quoting rules only.
func newExecCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <argstring>",
		Short: "Run a raw git argument string and return its captured result",
		Long: `Run a raw git argument string through gitwire's command runner, capturing
exit code, stdout, and stderr into a structured envelope. Useful for git
features gitwire does not wrap. The string is tokenized with shell quoting
rules but no shell runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdRes, err := app.Runner.RunString(cmd.Context(), app.RepoPath(), args[0])
			if err != nil {
				return err
			}
			return app.print(&execResult{
				Success:  cmdRes.Success,
				ExitCode: cmdRes.ExitCode,
				Output:   cmdRes.Stdout,
				Errors:   cmdRes.Stderr,
			})
		},
	}
}
