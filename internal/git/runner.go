// Package git provides a wrapper around the git binary: a command runner with
// cancellation and timeout handling, and parsers that turn git's textual
// output into typed records.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	gitwireerrors "gitwire.dev/gitwire/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandResult is the outcome of one git invocation. Success is derived
// solely from the exit code, never inferred from output text.
type CommandResult struct {
	Success  bool
	ExitCode int
	Stdout   string
	Stderr   string
}

// CombinedOutput returns stdout and stderr joined for keyword inspection.
func (r *CommandResult) CombinedOutput() string {
	if r.Stderr == "" {
		return r.Stdout
	}
	if r.Stdout == "" {
		return r.Stderr
	}
	return r.Stdout + "\n" + r.Stderr
}

// Runner executes git commands in a target working directory.
type Runner struct {
	// Binary is the name or path of the git executable. Empty means "git".
	Binary string

	// Timeout bounds every command. Zero means DefaultCommandTimeout;
	// negative disables the timeout entirely.
	Timeout time.Duration

	// Env entries appended to the inherited environment on every command.
	Env []string
}

// NewRunner creates a Runner with the default binary and timeout.
func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) binary() string {
	if r.Binary != "" {
		return r.Binary
	}
	return "git"
}

// Run executes a single git command in dir and captures its full output.
//
// A non-zero exit is not an error: it comes back as a CommandResult with
// Success=false so callers can classify repository-level failures (merge
// conflict, nothing to commit) themselves. The returned error is non-nil only
// when the binary could not be spawned, the directory is missing, or the
// context was cancelled before the command finished.
func (r *Runner) Run(ctx context.Context, dir string, args ...string) (*CommandResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return nil, gitwireerrors.NewInvocationError(r.binary(), args,
				fmt.Errorf("working directory %q does not exist", dir))
		}
	}

	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultCommandTimeout
	}
	if timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
	}

	cmd := exec.CommandContext(ctx, r.binary(), args...)
	if dir != "" {
		cmd.Dir = dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	// Child gets its own process group so cancellation can take down helper
	// processes git spawns (credential helpers, ssh, hooks) along with git
	// itself. exec drains both pipes concurrently into the buffers.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	configureProcessGroup(cmd)
	cmd.Cancel = func() error {
		return terminateProcessTree(cmd)
	}
	cmd.WaitDelay = 5 * time.Second

	err := cmd.Run()
	result := &CommandResult{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	switch {
	case err == nil:
		result.Success = true
		return result, nil
	case ctx.Err() != nil:
		// Cancellation or timeout, not a repository-level failure.
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), ctx.Err())
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, gitwireerrors.NewInvocationError(r.binary(), args, err)
	}
}

// RunString tokenizes a fully composed argument string and runs it. No shell
// is involved; quoting follows /bin/sh word-splitting rules.
func (r *Runner) RunString(ctx context.Context, dir, argString string) (*CommandResult, error) {
	args, err := shellquote.Split(argString)
	if err != nil {
		return nil, gitwireerrors.NewValidationError("args", fmt.Sprintf("cannot tokenize %q: %v", argString, err))
	}
	if len(args) == 0 {
		return nil, gitwireerrors.NewValidationError("args", "empty command")
	}
	return r.Run(ctx, dir, args...)
}

// MustRun executes a command and converts a non-zero exit into a
// GitCommandError. For workflow steps where any failure is terminal.
func (r *Runner) MustRun(ctx context.Context, dir string, args ...string) (string, error) {
	result, err := r.Run(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	if !result.Success {
		return "", gitwireerrors.NewGitCommandError(args, result.ExitCode, result.Stdout, result.Stderr, nil)
	}
	return result.Stdout, nil
}

// Lines runs a command and splits its stdout into non-empty lines.
func (r *Runner) Lines(ctx context.Context, dir string, args ...string) ([]string, error) {
	out, err := r.MustRun(ctx, dir, args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return []string{}, nil
	}
	return strings.Split(out, "\n"), nil
}
