package ops

import (
	"context"
	"fmt"
)

// CommitOptions configures the commit operation.
type CommitOptions struct {
	RepoPath string
	Message  string
	// All stages tracked-file changes before committing (-a).
	All bool
	// Amend replaces the last commit.
	Amend bool
	// AllowEmpty permits a commit with no changes.
	AllowEmpty bool
}

// Commit creates a commit and returns its full and short identifiers. The
// message travels as a single argument vector entry, so no shell escaping of
// caller content is ever involved.
func (o *Ops) Commit(ctx context.Context, opts CommitOptions) (res *CommitResult) {
	res = &CommitResult{}
	defer o.recoverInto(&res.Result)

	if opts.Message == "" && !opts.Amend {
		res.failf("commit requires a message")
		return res
	}
	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	args := []string{"commit"}
	if opts.All {
		args = append(args, "-a")
	}
	if opts.Amend {
		args = append(args, "--amend")
		if opts.Message == "" {
			args = append(args, "--no-edit")
		}
	}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if opts.Message != "" {
		args = append(args, "-m", opts.Message)
	}

	cmdRes, err := o.runner.Run(ctx, dir, args...)
	if err != nil {
		res.fail(err)
		return res
	}
	if !cmdRes.Success {
		res.fromCommand(cmdRes, "")
		return res
	}

	hash, err := o.runner.MustRun(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		res.fail(err)
		return res
	}
	short, err := o.runner.MustRun(ctx, dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		res.fail(err)
		return res
	}
	res.Hash = hash
	res.ShortHash = short
	res.Output = cmdRes.Stdout
	res.ok(fmt.Sprintf("committed %s", short))
	return res
}

// AddOptions configures the add (stage) operation.
type AddOptions struct {
	RepoPath string
	// Files to stage; "." stages everything.
	Files []string
	// ExcludeDeleted skips staging deletions (--no-all). Deletions are
	// staged by default, matching git add.
	ExcludeDeleted bool
}

// Add stages files and returns the now-staged list.
func (o *Ops) Add(ctx context.Context, opts AddOptions) (res *FilesResult) {
	res = &FilesResult{}
	defer o.recoverInto(&res.Result)

	if len(opts.Files) == 0 {
		res.failf("add requires at least one file")
		return res
	}
	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	args := []string{"add"}
	if opts.ExcludeDeleted {
		args = append(args, "--no-all")
	}
	args = append(args, "--")
	args = append(args, opts.Files...)

	cmdRes, err := o.runner.Run(ctx, dir, args...)
	if err != nil {
		res.fail(err)
		return res
	}
	if !cmdRes.Success {
		res.fromCommand(cmdRes, "")
		return res
	}

	staged, err := o.runner.Lines(ctx, dir, "diff", "--cached", "--name-only")
	if err != nil {
		res.fail(err)
		return res
	}
	res.Files = staged
	res.ok(fmt.Sprintf("%d file(s) staged", len(staged)))
	return res
}
