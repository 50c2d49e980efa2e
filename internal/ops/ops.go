// Package ops implements the workflow operations an external caller drives a
// working tree with: status, staging, commits, branches, merge/pull/push,
// conflict detection and resolution, stashes, and remotes. Every operation
// returns a typed result envelope and never lets a fault escape its boundary.
package ops

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"gitwire.dev/gitwire/internal/git"
	"gitwire.dev/gitwire/internal/workspace"
)

// Ops executes workflow operations. Zero-value fields are filled with
// defaults by New; construct with New unless a test needs to inject pieces.
type Ops struct {
	runner *git.Runner
	files  workspace.ContentWriter
	log    *slog.Logger
	guard  *repoGuard
}

// Option configures an Ops.
type Option func(*Ops)

// WithRunner replaces the command runner.
func WithRunner(r *git.Runner) Option {
	return func(o *Ops) { o.runner = r }
}

// WithContentWriter replaces the file-mutation collaborator used by manual
// conflict resolution.
func WithContentWriter(w workspace.ContentWriter) Option {
	return func(o *Ops) { o.files = w }
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Ops) { o.log = l }
}

// New creates an Ops with the default runner and disk content writer.
func New(options ...Option) *Ops {
	o := &Ops{
		runner: git.NewRunner(),
		files:  workspace.DiskWriter{},
		log:    slog.Default(),
		guard:  newRepoGuard(),
	}
	for _, opt := range options {
		opt(o)
	}
	return o
}

// begin validates the repository path and takes the per-repository lock.
// The returned dir is what every subprocess in the operation runs in.
func (o *Ops) begin(repoPath string) (dir string, unlock func(), err error) {
	dir, err = git.ResolveRepoPath(repoPath)
	if err != nil {
		return "", nil, err
	}
	unlock = o.guard.lock(dir)
	return dir, unlock, nil
}

// splitLines splits trimmed output into non-empty lines.
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

// truncate caps s at limit bytes, backing up so the cut never splits a
// UTF-8 rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// recoverInto converts a panic during argument construction or parsing into a
// failure envelope. Deferred at the top of every exported operation.
func (o *Ops) recoverInto(res *Result) {
	if r := recover(); r != nil {
		o.log.Error("operation panicked", "panic", r)
		res.Success = false
		res.Message = "internal error"
		res.Errors = fmt.Sprintf("%v", r)
	}
}
