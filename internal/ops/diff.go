package ops

import (
	"context"
	"fmt"
)

// diffLimit caps the diff text returned to the caller.
const diffLimit = 10000

// DiffOptions configures the diff operation.
type DiffOptions struct {
	RepoPath string
	// Staged diffs the index against HEAD (--cached).
	Staged bool
	// File restricts the diff to one path.
	File string
	// From and To diff a revision range instead of the working tree.
	From string
	To   string
	// NameOnly returns changed file names instead of diff text.
	NameOnly bool
}

// Diff returns diff text (capped, with a --stat summary) or the changed file
// list when NameOnly is set.
func (o *Ops) Diff(ctx context.Context, opts DiffOptions) (res *DiffResult) {
	res = &DiffResult{}
	defer o.recoverInto(&res.Result)

	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	base := []string{"diff", "--no-ext-diff", "--no-color"}
	if opts.Staged {
		base = append(base, "--cached")
	}
	if opts.From != "" {
		if opts.To != "" {
			base = append(base, opts.From+".."+opts.To)
		} else {
			base = append(base, opts.From)
		}
	}
	withPath := func(args []string) []string {
		if opts.File != "" {
			args = append(args, "--", opts.File)
		}
		return args
	}

	if opts.NameOnly {
		files, err := o.runner.Lines(ctx, dir, withPath(append(append([]string{}, base...), "--name-only"))...)
		if err != nil {
			res.fail(err)
			return res
		}
		res.Files = files
		res.ok(fmt.Sprintf("%d changed file(s)", len(files)))
		return res
	}

	diff, err := o.runner.MustRun(ctx, dir, withPath(append([]string{}, base...))...)
	if err != nil {
		res.fail(err)
		return res
	}
	if len(diff) > diffLimit {
		res.Diff = truncate(diff, diffLimit)
		res.Truncated = true
	} else {
		res.Diff = diff
	}

	stat, err := o.runner.MustRun(ctx, dir, withPath(append(append([]string{}, base...), "--stat"))...)
	if err != nil {
		res.fail(err)
		return res
	}
	res.Stat = stat

	if res.Truncated {
		res.ok(fmt.Sprintf("diff truncated to %d characters", diffLimit))
	} else if diff == "" {
		res.ok("no differences")
	} else {
		res.ok("diff computed")
	}
	return res
}
