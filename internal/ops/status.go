package ops

import (
	"context"
	"fmt"
)

// StatusOptions configures the status operation.
type StatusOptions struct {
	RepoPath string
}

// Status returns a parsed snapshot of the working tree.
func (o *Ops) Status(ctx context.Context, opts StatusOptions) (res *StatusResult) {
	res = &StatusResult{}
	defer o.recoverInto(&res.Result)

	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	status, err := o.runner.Status(ctx, dir)
	if err != nil {
		res.fail(err)
		return res
	}
	res.Status = status
	if status.IsClean() {
		res.ok(fmt.Sprintf("on branch %s, working tree clean", status.Branch))
	} else {
		res.ok(fmt.Sprintf("on branch %s: %d staged, %d unstaged, %d untracked, %d conflicted",
			status.Branch, len(status.Staged), len(status.Unstaged),
			len(status.Untracked), len(status.Conflicted)))
	}
	return res
}
