package ops

import (
	"errors"
	"fmt"

	gitwireerrors "gitwire.dev/gitwire/internal/errors"
	"gitwire.dev/gitwire/internal/git"
)

// Result is the uniform envelope every operation returns. Operation-specific
// results embed it and add their typed payload, so callers pattern-match on a
// closed set of shapes instead of probing optional fields.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Output  string `json:"output,omitempty"`
	Errors  string `json:"errors,omitempty"`
}

// Succeeded reports whether the operation succeeded.
func (r *Result) Succeeded() bool { return r.Success }

// Summary returns the one-line human summary.
func (r *Result) Summary() string {
	if r.Message != "" {
		return r.Message
	}
	if r.Success {
		return "ok"
	}
	return "failed"
}

// Detail returns secondary output for human rendering.
func (r *Result) Detail() string {
	if !r.Success && r.Errors != "" && r.Errors != r.Message {
		return r.Errors
	}
	return r.Output
}

// fail marks the envelope failed with the error's message.
func (r *Result) fail(err error) {
	r.Success = false
	r.Errors = err.Error()
	var cmdErr *gitwireerrors.GitCommandError
	if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
		r.Message = cmdErr.Stderr
	} else {
		r.Message = err.Error()
	}
}

// failf marks the envelope failed with a formatted message.
func (r *Result) failf(format string, args ...any) {
	r.Success = false
	r.Message = fmt.Sprintf(format, args...)
	r.Errors = r.Message
}

// ok marks the envelope successful with a message.
func (r *Result) ok(message string) {
	r.Success = true
	r.Message = message
}

// fromCommand fills the envelope from a raw command result.
func (r *Result) fromCommand(res *git.CommandResult, okMessage string) {
	r.Success = res.Success
	r.Output = res.Stdout
	r.Errors = res.Stderr
	if res.Success {
		r.Message = okMessage
	} else {
		r.Message = res.Stderr
		if r.Message == "" {
			r.Message = res.Stdout
		}
	}
}

// StatusResult is the envelope for the status operation.
type StatusResult struct {
	Result
	Status *git.RepositoryStatus `json:"status,omitempty"`
}

// ConflictReport is the envelope for operations that detected, aborted, or
// inspected merge conflicts.
type ConflictReport struct {
	Result
	ConflictedFiles []string                         `json:"conflictedFiles,omitempty"`
	Sections        map[string][]git.ConflictSection `json:"sections,omitempty"`
	Previews        map[string]string                `json:"previews,omitempty"`
	Suggestions     []string                         `json:"suggestions,omitempty"`
	Aborted         bool                             `json:"aborted,omitempty"`
}

// CommitResult is the envelope for the commit operation.
type CommitResult struct {
	Result
	Hash      string `json:"hash,omitempty"`
	ShortHash string `json:"shortHash,omitempty"`
}

// FilesResult is the envelope for operations that return a list of paths.
type FilesResult struct {
	Result
	Files []string `json:"files,omitempty"`
}

// BranchListResult is the envelope for the branch listing operation.
type BranchListResult struct {
	Result
	Current  string   `json:"current,omitempty"`
	Branches []string `json:"branches,omitempty"`
}

// LogResult is the envelope for the log operation.
type LogResult struct {
	Result
	Commits []git.Commit `json:"commits,omitempty"`
	Lines   []string     `json:"lines,omitempty"`
}

// DiffResult is the envelope for the diff operation.
type DiffResult struct {
	Result
	Diff      string   `json:"diff,omitempty"`
	Stat      string   `json:"stat,omitempty"`
	Files     []string `json:"files,omitempty"`
	Truncated bool     `json:"truncated,omitempty"`
}

// RemoteListResult is the envelope for the remote listing operation.
type RemoteListResult struct {
	Result
	Remotes []git.RemoteEntry `json:"remotes,omitempty"`
}

// StashListResult is the envelope for the stash list operation.
type StashListResult struct {
	Result
	Stashes []git.StashEntry `json:"stashes,omitempty"`
}
