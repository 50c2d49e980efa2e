package git

import (
	"context"
	"fmt"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	gitwireerrors "gitwire.dev/gitwire/internal/errors"
)

// ResolveRepoPath validates that path (or the current directory when path is
// empty) lies inside a git working tree and returns the path to run commands
// in. Discovery uses go-git so no subprocess is spawned for validation.
func ResolveRepoPath(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		path = wd
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return "", fmt.Errorf("repository path %q does not exist", path)
	}
	if _, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	}); err != nil {
		return "", fmt.Errorf("%w: %s", gitwireerrors.ErrNotARepo, path)
	}
	return path, nil
}

// ConflictedFiles lists paths with unresolved merge conflicts, via a
// diff-style query filtered to the unmerged classification.
func (r *Runner) ConflictedFiles(ctx context.Context, dir string) ([]string, error) {
	out, err := r.MustRun(ctx, dir, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return []string{}, nil
	}
	return strings.Split(out, "\n"), nil
}

// CurrentBranch returns the checked-out branch name, or the short hash in
// detached HEAD state.
func (r *Runner) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := r.MustRun(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	if out != "" {
		return out, nil
	}
	return r.MustRun(ctx, dir, "rev-parse", "--short", "HEAD")
}

// IsMerging reports whether a merge is in progress by checking for
// MERGE_HEAD.
func (r *Runner) IsMerging(ctx context.Context, dir string) bool {
	result, err := r.Run(ctx, dir, "rev-parse", "-q", "--verify", "MERGE_HEAD")
	return err == nil && result.Success
}
