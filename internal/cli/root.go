// Package cli wires the workflow operations to a cobra command tree. Every
// command prints a result envelope: JSON when the caller is a program,
// colorized text when a human is at the terminal.
package cli

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gitwire.dev/gitwire/internal/config"
	"gitwire.dev/gitwire/internal/git"
	"gitwire.dev/gitwire/internal/ops"
	"gitwire.dev/gitwire/internal/output"
)

// errOperationFailed signals a printed failure envelope; the CLI exits 1
// without extra error output.
var errOperationFailed = errors.New("operation failed")

// App carries the pieces every command needs.
type App struct {
	Ops     *ops.Ops
	Printer *output.Printer
	Runner  *git.Runner

	repoPath string
	jsonOut  bool
	debug    bool
	yes      bool
}

// RepoPath returns the --repo flag value (empty means current directory).
func (a *App) RepoPath() string { return a.repoPath }

// print writes the envelope and converts a failure into the CLI failure
// sentinel.
func (a *App) print(res output.Envelope) error {
	if err := a.Printer.Print(res); err != nil {
		return err
	}
	if !res.Succeeded() {
		return errOperationFailed
	}
	return nil
}

// confirm asks before a destructive operation. Non-interactive callers (no
// TTY, or --yes) proceed without a prompt.
func (a *App) confirm(question string) bool {
	if a.yes || !isatty.IsTerminal(os.Stdin.Fd()) {
		return true
	}
	confirmed := false
	prompt := &survey.Confirm{Message: question}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false
	}
	return confirmed
}

// NewRootCmd creates the root cobra command.
func NewRootCmd(version, commit, date string) *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "gitwire",
		Short: "gitwire drives a git working tree with structured, machine-consumable results",
		Long: `gitwire exposes the day-to-day git workflow (status, stage, commit, branch,
merge, pull, push, conflict resolution, stashes, remotes) as commands that
return structured result envelopes, so an agent or script can drive a
repository without parsing human-oriented git output.`,
		Version:       version + " (" + commit + ", " + date + ")",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := output.NewLogger(cfg.LogFile, app.debug)
			app.Runner = &git.Runner{
				Binary:  cfg.GitBinary,
				Timeout: cfg.Timeout(),
			}
			app.Ops = ops.New(
				ops.WithRunner(app.Runner),
				ops.WithLogger(logger),
			)
			machine := app.jsonOut || !isatty.IsTerminal(os.Stdout.Fd())
			app.Printer = &output.Printer{
				Writer: cmd.OutOrStdout(),
				JSON:   machine,
				Color:  output.ColorEnabled(cfg.Color),
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.repoPath, "repo", "C", "", "Path to the repository (default: current directory)")
	flags.BoolVar(&app.jsonOut, "json", false, "Always print JSON envelopes, even on a terminal")
	flags.BoolVar(&app.debug, "debug", false, "Enable debug logging")
	flags.BoolVarP(&app.yes, "yes", "y", false, "Skip confirmation prompts for destructive operations")

	rootCmd.AddCommand(
		newStatusCmd(app),
		newPullCmd(app),
		newPushCmd(app),
		newCommitCmd(app),
		newAddCmd(app),
		newBranchCmd(app),
		newCheckoutCmd(app),
		newMergeCmd(app),
		newConflictsCmd(app),
		newResolveCmd(app),
		newAbortMergeCmd(app),
		newContinueMergeCmd(app),
		newLogCmd(app),
		newDiffCmd(app),
		newRemoteCmd(app),
		newFetchCmd(app),
		newStashCmd(app),
		newExecCmd(app),
	)

	return rootCmd
}
