// Package errors provides sentinel errors and custom error types for gitwire.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepo indicates that a path is not inside a git working tree
	ErrNotARepo = errors.New("not a git repository")

	// ErrUnresolvedConflicts indicates that conflicted files remain in the working tree
	ErrUnresolvedConflicts = errors.New("unresolved conflicts")

	// ErrNoMergeInProgress indicates that no merge is currently in progress
	ErrNoMergeInProgress = errors.New("no merge in progress")
)

// InvocationError represents a failure to spawn the git binary at all.
// It is distinct from a command that ran and exited non-zero.
type InvocationError struct {
	Binary string
	Args   []string
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("failed to invoke %s %v: %v", e.Binary, e.Args, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// NewInvocationError creates a new InvocationError
func NewInvocationError(binary string, args []string, err error) *InvocationError {
	return &InvocationError{Binary: binary, Args: args, Err: err}
}

// GitCommandError represents a git command that ran but exited non-zero
type GitCommandError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed (exit %d): git %v", e.ExitCode, e.Args)
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(args []string, exitCode int, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}

// ValidationError represents a request rejected before any subprocess ran
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UnresolvedConflictsError carries the files still conflicted when an
// operation that requires a clean merge state was attempted.
type UnresolvedConflictsError struct {
	Files []string
}

func (e *UnresolvedConflictsError) Error() string {
	return fmt.Sprintf("%d files still have unresolved conflicts: %v", len(e.Files), e.Files)
}

// Is returns true if the target error is ErrUnresolvedConflicts
func (e *UnresolvedConflictsError) Is(target error) bool {
	return target == ErrUnresolvedConflicts
}

// NewUnresolvedConflictsError creates a new UnresolvedConflictsError
func NewUnresolvedConflictsError(files []string) *UnresolvedConflictsError {
	return &UnresolvedConflictsError{Files: files}
}
