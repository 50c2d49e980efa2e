package ops

import (
	"context"
	"fmt"
)

// PullOptions configures the pull operation.
type PullOptions struct {
	RepoPath string
	Remote   string
	Branch   string
	// Rebase replays local commits on top of the fetched branch.
	Rebase bool
	// FastForwardOnly refuses to pull when a merge commit would be needed.
	FastForwardOnly bool
}

// Pull fetches and integrates changes from a remote. When the underlying
// merge produces conflicts the result is a structured conflict report;
// keyword detection drives the messaging, but the success flag still requires
// a zero exit and no conflicts.
func (o *Ops) Pull(ctx context.Context, opts PullOptions) (res *ConflictReport) {
	res = &ConflictReport{}
	defer o.recoverInto(&res.Result)

	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	remote := opts.Remote
	if remote == "" {
		remote = "origin"
	}

	args := []string{"pull"}
	if opts.Rebase {
		args = append(args, "--rebase")
	}
	if opts.FastForwardOnly {
		args = append(args, "--ff-only")
	}
	args = append(args, remote)
	if opts.Branch != "" {
		args = append(args, opts.Branch)
	}

	cmdRes, err := o.runner.Run(ctx, dir, args...)
	if err != nil {
		res.fail(err)
		return res
	}

	if hasConflictOutput(cmdRes) {
		return o.conflictReport(ctx, dir, cmdRes)
	}

	res.fromCommand(cmdRes, fmt.Sprintf("pulled from %s", remote))
	return res
}

// FetchOptions configures the fetch operation.
type FetchOptions struct {
	RepoPath string
	Remote   string
	// All fetches every configured remote.
	All bool
	// Prune removes remote-tracking refs that no longer exist upstream.
	Prune bool
}

// Fetch downloads refs from a remote without touching the working tree.
func (o *Ops) Fetch(ctx context.Context, opts FetchOptions) (res *Result) {
	res = &Result{}
	defer o.recoverInto(res)

	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	args := []string{"fetch"}
	if opts.Prune {
		args = append(args, "--prune")
	}
	if opts.All {
		args = append(args, "--all")
	} else {
		remote := opts.Remote
		if remote == "" {
			remote = "origin"
		}
		args = append(args, remote)
	}

	cmdRes, err := o.runner.Run(ctx, dir, args...)
	if err != nil {
		res.fail(err)
		return res
	}
	res.fromCommand(cmdRes, "fetch complete")
	return res
}
