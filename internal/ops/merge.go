package ops

import (
	"context"
	"fmt"
	"strings"

	gitwireerrors "gitwire.dev/gitwire/internal/errors"
	"gitwire.dev/gitwire/internal/git"
)

// conflictKeyword is the literal git prints on stdout/stderr when a
// merge-class command leaves conflicts behind.
const conflictKeyword = "CONFLICT"

// conflictSuggestions are the next-step hints attached to conflict reports.
var conflictSuggestions = []string{
	"run 'conflicts' to inspect the conflict markers in each file",
	"resolve each file with 'resolve --strategy ours|theirs|manual'",
	"then 'continue-merge' to finish, or 'abort-merge' to back out",
}

// hasConflictOutput reports whether a merge-class command's output signals
// unresolved conflicts. Keyword detection, not exit-code inference: git exits
// non-zero for plenty of unrelated reasons.
func hasConflictOutput(res *git.CommandResult) bool {
	return strings.Contains(res.CombinedOutput(), conflictKeyword)
}

// conflictReport builds the structured report for a command that hit
// conflicts: the conflicted file list plus suggested next actions.
func (o *Ops) conflictReport(ctx context.Context, dir string, cmdRes *git.CommandResult) *ConflictReport {
	report := &ConflictReport{Suggestions: conflictSuggestions}
	report.Success = false
	report.Output = cmdRes.Stdout
	report.Errors = cmdRes.Stderr

	files, err := o.runner.ConflictedFiles(ctx, dir)
	if err != nil {
		o.log.Debug("listing conflicted files failed", "error", err)
	} else {
		report.ConflictedFiles = files
	}
	report.Message = fmt.Sprintf("merge conflicts in %d file(s)", len(report.ConflictedFiles))
	return report
}

// MergeOptions configures the merge operation.
type MergeOptions struct {
	RepoPath string
	Branch   string
	// NoFastForward forces a merge commit even when fast-forward is possible.
	NoFastForward bool
	// AbortOnConflict aborts the merge if conflicts are detected instead of
	// leaving the tree in a conflicted state. Caller-selectable policy, not
	// automatic.
	AbortOnConflict bool
}

// Merge merges a branch into the current branch. On conflict it returns a
// structured conflict report, or an aborted report when AbortOnConflict is
// set.
func (o *Ops) Merge(ctx context.Context, opts MergeOptions) (res *ConflictReport) {
	res = &ConflictReport{}
	defer o.recoverInto(&res.Result)

	if opts.Branch == "" {
		res.failf("merge requires a branch name")
		return res
	}
	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	args := []string{"merge"}
	if opts.NoFastForward {
		args = append(args, "--no-ff")
	}
	args = append(args, opts.Branch)

	cmdRes, err := o.runner.Run(ctx, dir, args...)
	if err != nil {
		res.fail(err)
		return res
	}

	if hasConflictOutput(cmdRes) {
		res = o.conflictReport(ctx, dir, cmdRes)
		if opts.AbortOnConflict {
			if _, abortErr := o.runner.MustRun(ctx, dir, "merge", "--abort"); abortErr != nil {
				res.Message = fmt.Sprintf("merge conflicted and abort failed: %v", abortErr)
				return res
			}
			res.Aborted = true
			res.Suggestions = nil
			res.Message = fmt.Sprintf("merge of %s aborted after conflicts in %d file(s)",
				opts.Branch, len(res.ConflictedFiles))
		}
		return res
	}

	res.fromCommand(cmdRes, fmt.Sprintf("merged %s", opts.Branch))
	return res
}

// AbortMergeOptions configures the abort-merge operation.
type AbortMergeOptions struct {
	RepoPath string
}

// AbortMerge aborts an in-progress merge and restores the pre-merge state.
func (o *Ops) AbortMerge(ctx context.Context, opts AbortMergeOptions) (res *Result) {
	res = &Result{}
	defer o.recoverInto(res)

	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	if !o.runner.IsMerging(ctx, dir) {
		res.fail(gitwireerrors.ErrNoMergeInProgress)
		return res
	}

	cmdRes, err := o.runner.Run(ctx, dir, "merge", "--abort")
	if err != nil {
		res.fail(err)
		return res
	}
	res.fromCommand(cmdRes, "merge aborted")
	return res
}

// ContinueMergeOptions configures the continue-merge operation.
type ContinueMergeOptions struct {
	RepoPath string
	// Message overrides the default merge commit message.
	Message string
}

// ContinueMerge completes an in-progress merge with a commit. It refuses to
// run while conflicted files remain; the completing commit is never attempted
// over an unresolved tree.
func (o *Ops) ContinueMerge(ctx context.Context, opts ContinueMergeOptions) (res *ConflictReport) {
	res = &ConflictReport{}
	defer o.recoverInto(&res.Result)

	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	if !o.runner.IsMerging(ctx, dir) {
		res.fail(gitwireerrors.ErrNoMergeInProgress)
		return res
	}

	remaining, err := o.runner.ConflictedFiles(ctx, dir)
	if err != nil {
		res.fail(err)
		return res
	}
	if len(remaining) > 0 {
		res.ConflictedFiles = remaining
		res.Suggestions = conflictSuggestions
		res.fail(gitwireerrors.NewUnresolvedConflictsError(remaining))
		return res
	}

	args := []string{"commit", "--no-edit"}
	if opts.Message != "" {
		args = []string{"commit", "-m", opts.Message}
	}
	cmdRes, err := o.runner.Run(ctx, dir, args...)
	if err != nil {
		res.fail(err)
		return res
	}
	res.fromCommand(cmdRes, "merge completed")
	return res
}
