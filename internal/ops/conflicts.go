package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gitwire.dev/gitwire/internal/git"
)

// previewLimit caps the full-content preview attached per conflicted file.
const previewLimit = 5000

// ConflictsOptions configures the conflict inspection operation.
type ConflictsOptions struct {
	RepoPath string
}

// Conflicts lists every conflicted file with its parsed marker sections and
// a capped content preview.
func (o *Ops) Conflicts(ctx context.Context, opts ConflictsOptions) (res *ConflictReport) {
	res = &ConflictReport{}
	defer o.recoverInto(&res.Result)

	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	files, err := o.runner.ConflictedFiles(ctx, dir)
	if err != nil {
		res.fail(err)
		return res
	}
	res.ConflictedFiles = files
	if len(files) == 0 {
		res.ok("no conflicted files")
		return res
	}

	res.Sections = make(map[string][]git.ConflictSection, len(files))
	res.Previews = make(map[string]string, len(files))
	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			o.log.Debug("cannot read conflicted file", "file", file, "error", err)
			continue
		}
		text := string(content)
		res.Sections[file] = git.ParseConflicts(text)
		res.Previews[file] = truncate(text, previewLimit)
	}
	res.Suggestions = conflictSuggestions
	res.ok(fmt.Sprintf("%d conflicted file(s)", len(files)))
	return res
}

// Resolution strategies for ResolveConflict
const (
	StrategyOurs   = "ours"
	StrategyTheirs = "theirs"
	StrategyManual = "manual"
)

// ResolveOptions configures conflict resolution for one file.
type ResolveOptions struct {
	RepoPath string
	FilePath string
	// Strategy is one of ours, theirs, or manual.
	Strategy string
	// ResolvedContent is the replacement content for the manual strategy.
	ResolvedContent *string
}

// ResolveConflict resolves one conflicted file and stages it. The three
// strategies are mutually exclusive: ours and theirs re-check out the
// respective side; manual writes caller-supplied content through the
// file-mutation collaborator. Validation failures are rejected before any
// subprocess runs.
func (o *Ops) ResolveConflict(ctx context.Context, opts ResolveOptions) (res *Result) {
	res = &Result{}
	defer o.recoverInto(res)

	if opts.FilePath == "" {
		res.failf("resolve requires a file path")
		return res
	}
	switch opts.Strategy {
	case StrategyOurs, StrategyTheirs:
	case StrategyManual:
		if opts.ResolvedContent == nil {
			res.failf("manual resolution requires resolved content")
			return res
		}
	default:
		res.failf("unrecognized resolution strategy %q (want ours, theirs, or manual)", opts.Strategy)
		return res
	}

	dir, unlock, err := o.begin(opts.RepoPath)
	if err != nil {
		res.fail(err)
		return res
	}
	defer unlock()

	switch opts.Strategy {
	case StrategyOurs:
		if _, err := o.runner.MustRun(ctx, dir, "checkout", "--ours", "--", opts.FilePath); err != nil {
			res.fail(err)
			return res
		}
	case StrategyTheirs:
		if _, err := o.runner.MustRun(ctx, dir, "checkout", "--theirs", "--", opts.FilePath); err != nil {
			res.fail(err)
			return res
		}
	case StrategyManual:
		if err := o.files.WriteResolvedContent(filepath.Join(dir, opts.FilePath), *opts.ResolvedContent); err != nil {
			res.fail(err)
			return res
		}
	}

	if _, err := o.runner.MustRun(ctx, dir, "add", "--", opts.FilePath); err != nil {
		res.fail(err)
		return res
	}
	res.ok(fmt.Sprintf("resolved %s using %s", opts.FilePath, opts.Strategy))
	return res
}
