package ops

import (
	"context"
	"fmt"

	"gitwire.dev/gitwire/internal/git"
)

// Stash verbs
const (
	StashPush  = "push"
	StashPop   = "pop"
	StashApply = "apply"
	StashList  = "list"
	StashDrop  = "drop"
	StashClear = "clear"
)

// StashOptions configures the stash operation.
type StashOptions struct {
	RepoPath string
	// Operation is one of push, pop, apply, list, drop, clear.
	Operation string
	// Message names the stash on push.
	Message string
	// Ref selects a stash (e.g. stash@{1}) for pop/apply/drop.
	Ref string
	// IncludeUntracked stashes untracked files too on push.
	IncludeUntracked bool
}

// Stash dispatches the stash verbs. "list" returns parsed entries; the rest
// pass through as raw result envelopes.
func (o *Ops) Stash(ctx context.Context, opts StashOptions) (res *StashListResult) {
	res = &StashListResult{}
	defer o.recoverInto(&res.Result)

	switch opts.Operation {
	case StashPush, StashPop, StashApply, StashList, StashDrop, StashClear:
	default:
		res.failf("unrecognized stash operation %q", opts.Operation)
		return res
	}
	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	if opts.Operation == StashList {
		out, err := o.runner.MustRun(ctx, dir, "stash", "list")
		if err != nil {
			res.fail(err)
			return res
		}
		res.Stashes = git.ParseStashList(out)
		res.Output = out
		res.ok(fmt.Sprintf("%d stash entries", len(res.Stashes)))
		return res
	}

	args := []string{"stash", opts.Operation}
	switch opts.Operation {
	case StashPush:
		if opts.IncludeUntracked {
			args = append(args, "--include-untracked")
		}
		if opts.Message != "" {
			args = append(args, "-m", opts.Message)
		}
	case StashPop, StashApply, StashDrop:
		if opts.Ref != "" {
			args = append(args, opts.Ref)
		}
	}

	cmdRes, err := o.runner.Run(ctx, dir, args...)
	if err != nil {
		res.fail(err)
		return res
	}
	res.fromCommand(cmdRes, fmt.Sprintf("stash %s complete", opts.Operation))
	return res
}
