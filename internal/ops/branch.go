package ops

import (
	"context"
	"fmt"
)

// BranchOptions configures the branch operation. With neither NewBranch nor
// DeleteBranch set, the operation lists branches.
type BranchOptions struct {
	RepoPath     string
	NewBranch    string
	DeleteBranch string
	// Force deletes unmerged branches (-D instead of -d).
	Force bool
	// IncludeRemote lists remote-tracking branches too.
	IncludeRemote bool
}

// Branch lists, creates, or deletes branches.
func (o *Ops) Branch(ctx context.Context, opts BranchOptions) (res *BranchListResult) {
	res = &BranchListResult{}
	defer o.recoverInto(&res.Result)

	if opts.NewBranch != "" && opts.DeleteBranch != "" {
		res.failf("cannot create and delete a branch in one operation")
		return res
	}
	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	switch {
	case opts.NewBranch != "":
		cmdRes, err := o.runner.Run(ctx, dir, "branch", opts.NewBranch)
		if err != nil {
			res.fail(err)
			return res
		}
		res.fromCommand(cmdRes, fmt.Sprintf("created branch %s", opts.NewBranch))
		return res

	case opts.DeleteBranch != "":
		flag := "-d"
		if opts.Force {
			flag = "-D"
		}
		cmdRes, err := o.runner.Run(ctx, dir, "branch", flag, opts.DeleteBranch)
		if err != nil {
			res.fail(err)
			return res
		}
		res.fromCommand(cmdRes, fmt.Sprintf("deleted branch %s", opts.DeleteBranch))
		return res

	default:
		args := []string{"branch", "--format=%(refname:short)"}
		if opts.IncludeRemote {
			args = []string{"branch", "-a", "--format=%(refname:short)"}
		}
		branches, err := o.runner.Lines(ctx, dir, args...)
		if err != nil {
			res.fail(err)
			return res
		}
		current, err := o.runner.CurrentBranch(ctx, dir)
		if err != nil {
			res.fail(err)
			return res
		}
		res.Branches = branches
		res.Current = current
		res.ok(fmt.Sprintf("%d branch(es)", len(branches)))
		return res
	}
}

// CheckoutOptions configures the checkout operation.
type CheckoutOptions struct {
	RepoPath string
	// Target is a branch, tag, or commit to check out.
	Target string
	// CreateBranch creates Target as a new branch (-b).
	CreateBranch bool
	// Files restores the given paths from Target instead of switching.
	Files []string
}

// Checkout switches to a branch/commit, optionally creating the branch, or
// restores individual files.
func (o *Ops) Checkout(ctx context.Context, opts CheckoutOptions) (res *Result) {
	res = &Result{}
	defer o.recoverInto(res)

	if opts.Target == "" {
		res.failf("checkout requires a target")
		return res
	}
	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	args := []string{"checkout"}
	if opts.CreateBranch {
		args = append(args, "-b")
	}
	args = append(args, opts.Target)
	if len(opts.Files) > 0 {
		args = append(args, "--")
		args = append(args, opts.Files...)
	}

	cmdRes, err := o.runner.Run(ctx, dir, args...)
	if err != nil {
		res.fail(err)
		return res
	}
	res.fromCommand(cmdRes, fmt.Sprintf("checked out %s", opts.Target))
	return res
}
