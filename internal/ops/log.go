package ops

import (
	"context"
	"fmt"

	"gitwire.dev/gitwire/internal/git"
)

// LogOptions configures the log operation.
type LogOptions struct {
	RepoPath string
	// MaxCount caps the number of commits; zero means 10.
	MaxCount int
	// Path restricts the log to commits touching a path.
	Path string
	// Author filters by author pattern.
	Author string
	// Since filters by date expression (e.g. "2.weeks").
	Since string
	// OneLine returns compact hash+subject lines instead of structured commits.
	OneLine bool
}

// Log returns the commit history as structured records or compact lines.
func (o *Ops) Log(ctx context.Context, opts LogOptions) (res *LogResult) {
	res = &LogResult{}
	defer o.recoverInto(&res.Result)

	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	maxCount := opts.MaxCount
	if maxCount <= 0 {
		maxCount = 10
	}

	args := []string{"log", fmt.Sprintf("--max-count=%d", maxCount)}
	if opts.OneLine {
		args = append(args, "--oneline")
	} else {
		args = append(args, git.LogFormatFlag())
	}
	if opts.Author != "" {
		args = append(args, "--author="+opts.Author)
	}
	if opts.Since != "" {
		args = append(args, "--since="+opts.Since)
	}
	if opts.Path != "" {
		args = append(args, "--", opts.Path)
	}

	out, err := o.runner.MustRun(ctx, dir, args...)
	if err != nil {
		res.fail(err)
		return res
	}

	if opts.OneLine {
		if out != "" {
			res.Lines = splitLines(out)
		}
		res.ok(fmt.Sprintf("%d commit(s)", len(res.Lines)))
		return res
	}
	res.Commits = git.ParseLog(out)
	res.ok(fmt.Sprintf("%d commit(s)", len(res.Commits)))
	return res
}
