package ops

import (
	"context"
	"fmt"

	"gitwire.dev/gitwire/internal/git"
)

// RemoteOptions configures the remote operation. With neither AddName nor
// RemoveName set, the operation lists remotes.
type RemoteOptions struct {
	RepoPath string
	// AddName and AddURL register a new remote.
	AddName string
	AddURL  string
	// RemoveName deletes a remote.
	RemoveName string
}

// Remote lists, adds, or removes configured remotes.
func (o *Ops) Remote(ctx context.Context, opts RemoteOptions) (res *RemoteListResult) {
	res = &RemoteListResult{}
	defer o.recoverInto(&res.Result)

	if opts.AddName != "" && opts.RemoveName != "" {
		res.failf("cannot add and remove a remote in one operation")
		return res
	}
	if opts.AddName != "" && opts.AddURL == "" {
		res.failf("adding remote %q requires a URL", opts.AddName)
		return res
	}
	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	switch {
	case opts.AddName != "":
		cmdRes, err := o.runner.Run(ctx, dir, "remote", "add", opts.AddName, opts.AddURL)
		if err != nil {
			res.fail(err)
			return res
		}
		res.fromCommand(cmdRes, fmt.Sprintf("added remote %s", opts.AddName))
		return res

	case opts.RemoveName != "":
		cmdRes, err := o.runner.Run(ctx, dir, "remote", "remove", opts.RemoveName)
		if err != nil {
			res.fail(err)
			return res
		}
		res.fromCommand(cmdRes, fmt.Sprintf("removed remote %s", opts.RemoveName))
		return res

	default:
		out, err := o.runner.MustRun(ctx, dir, "remote", "-v")
		if err != nil {
			res.fail(err)
			return res
		}
		res.Remotes = git.ParseRemotes(out)
		res.Output = out
		res.ok(fmt.Sprintf("%d remote entries", len(res.Remotes)))
		return res
	}
}
