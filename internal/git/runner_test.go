package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	gitwireerrors "gitwire.dev/gitwire/internal/errors"
	"gitwire.dev/gitwire/internal/git"
	"gitwire.dev/gitwire/testhelpers"
)

func TestRunnerRun(t *testing.T) {
	t.Run("captures stdout on success", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		runner := git.NewRunner()
		result, err := runner.Run(context.Background(), scene.Dir, "branch", "--show-current")
		require.NoError(t, err)
		require.True(t, result.Success)
		require.Equal(t, 0, result.ExitCode)
		require.Equal(t, "main", result.Stdout)
	})

	t.Run("reports a non-zero exit as a result, not an error", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		runner := git.NewRunner()
		result, err := runner.Run(context.Background(), scene.Dir, "checkout", "no-such-branch")
		require.NoError(t, err)
		require.False(t, result.Success)
		require.NotZero(t, result.ExitCode)
		require.NotEmpty(t, result.Stderr)
	})

	t.Run("rejects a missing working directory", func(t *testing.T) {
		runner := git.NewRunner()
		_, err := runner.Run(context.Background(), "/no/such/dir", "status")
		require.Error(t, err)

		var invErr *gitwireerrors.InvocationError
		require.True(t, errors.As(err, &invErr))
	})

	t.Run("returns an error when the context is already cancelled", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		runner := git.NewRunner()
		_, err := runner.Run(ctx, scene.Dir, "status")
		require.Error(t, err)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunnerRunString(t *testing.T) {
	t.Run("tokenizes quoted arguments", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("quoted.txt", "x\n"))

		runner := git.NewRunner()
		result, err := runner.RunString(context.Background(), scene.Dir, `add "quoted.txt"`)
		require.NoError(t, err)
		require.True(t, result.Success)

		status, err := runner.Status(context.Background(), scene.Dir)
		require.NoError(t, err)
		require.Len(t, status.Staged, 1)
		require.Equal(t, "quoted.txt", status.Staged[0].Path)
	})

	t.Run("rejects an empty command string", func(t *testing.T) {
		runner := git.NewRunner()
		_, err := runner.RunString(context.Background(), "", "   ")
		require.Error(t, err)

		var valErr *gitwireerrors.ValidationError
		require.True(t, errors.As(err, &valErr))
	})

	t.Run("rejects unbalanced quotes", func(t *testing.T) {
		runner := git.NewRunner()
		_, err := runner.RunString(context.Background(), "", `log "unterminated`)
		require.Error(t, err)
	})
}

func TestRunnerMustRun(t *testing.T) {
	t.Run("converts a non-zero exit into a GitCommandError", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		runner := git.NewRunner()
		_, err := runner.MustRun(context.Background(), scene.Dir, "checkout", "ghost")
		require.Error(t, err)

		var cmdErr *gitwireerrors.GitCommandError
		require.True(t, errors.As(err, &cmdErr))
		require.NotZero(t, cmdErr.ExitCode)
	})
}

func TestRunnerHelpers(t *testing.T) {
	t.Run("Lines splits output and returns empty slice for none", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateBranch("extra"))

		runner := git.NewRunner()
		lines, err := runner.Lines(context.Background(), scene.Dir, "branch", "--format=%(refname:short)")
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"main", "extra"}, lines)

		none, err := runner.Lines(context.Background(), scene.Dir, "diff", "--name-only")
		require.NoError(t, err)
		require.Empty(t, none)
		require.NotNil(t, none)
	})

	t.Run("ConflictedFiles lists unmerged paths during a conflicted merge", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateConflict("clash.txt", "feature"))
		// The merge exits non-zero; the conflicted state is what matters.
		_ = scene.Repo.RunGitCommand("merge", "feature")

		runner := git.NewRunner()
		files, err := runner.ConflictedFiles(context.Background(), scene.Dir)
		require.NoError(t, err)
		require.Equal(t, []string{"clash.txt"}, files)
		require.True(t, runner.IsMerging(context.Background(), scene.Dir))
	})

	t.Run("CurrentBranch falls back to a short hash when detached", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sha, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "--detach", "HEAD"))

		runner := git.NewRunner()
		branch, err := runner.CurrentBranch(context.Background(), scene.Dir)
		require.NoError(t, err)
		require.NotEmpty(t, branch)
		require.Contains(t, sha, branch)
	})
}

func TestResolveRepoPath(t *testing.T) {
	t.Run("accepts a repository directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		path, err := git.ResolveRepoPath(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, scene.Dir, path)
	})

	t.Run("rejects a directory outside any repository", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.ResolveRepoPath(dir)
		require.Error(t, err)
		require.ErrorIs(t, err, gitwireerrors.ErrNotARepo)
	})

	t.Run("rejects a path that does not exist", func(t *testing.T) {
		_, err := git.ResolveRepoPath("/no/such/path")
		require.Error(t, err)
	})
}
