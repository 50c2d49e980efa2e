package ops

import (
	"context"
	"fmt"
)

// PushOptions configures the push operation.
type PushOptions struct {
	RepoPath string
	Remote   string
	Branch   string
	// Force overwrites the remote branch unconditionally.
	Force bool
	// SetUpstream records the remote branch as upstream (-u).
	SetUpstream bool
	// Tags pushes tags along with the branch.
	Tags bool
}

// Push uploads the current (or named) branch to a remote.
func (o *Ops) Push(ctx context.Context, opts PushOptions) (res *Result) {
	res = &Result{}
	defer o.recoverInto(res)

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

	args := []string{"push"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.Tags {
		args = append(args, "--tags")
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
	res.fromCommand(cmdRes, fmt.Sprintf("pushed to %s", remote))
	return res
}
