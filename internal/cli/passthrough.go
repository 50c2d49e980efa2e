package cli

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
)

// Verbs gitwire does not wrap itself. Anything gitwire has a structured
// command for (status, commit, merge, ...) is handled by cobra instead, so
// callers get envelopes rather than raw git output.
var gitPassthroughAllowlist = []string{
	"am",
	"apply",
	"archive",
	"bisect",
	"blame",
	"bundle",
	"cherry-pick",
	"clean",
	"clone",
	"difftool",
	"format-patch",
	"fsck",
	"grep",
	"mv",
	"notes",
	"range-diff",
	"rebase",
	"reflog",
	"request-pull",
	"reset",
	"restore",
	"revert",
	"rm",
	"show",
	"send-email",
	"sparse-checkout",
	"submodule",
	"switch",
	"tag",
}

// HandlePassthrough checks if the command should be passed through to git
// and executes it if so. Returns true if the command was handled (and the
// program should exit).
func HandlePassthrough(args []string) bool {
	if len(args) < 2 {
		return false
	}

	command := args[1]
	if !slices.Contains(gitPassthroughAllowlist, command) {
		return false
	}

	gitArgs := args[1:]
	gitCmd := exec.Command("git", gitArgs...)
	gitCmd.Stdin = os.Stdin
	gitCmd.Stdout = os.Stdout
	gitCmd.Stderr = os.Stderr

	fmt.Fprintf(os.Stderr, "\033[90mPassing command through to git...\033[0m\n")
	fmt.Fprintf(os.Stderr, "\033[90mRunning: \"git %s\"\033[0m\n\n", strings.Join(gitArgs, " "))

	err := gitCmd.Run()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			os.Exit(exitError.ExitCode())
		}
		os.Exit(1)
	}
	os.Exit(0)
	return true
}
