package ops_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitwire.dev/gitwire/internal/ops"
	"gitwire.dev/gitwire/testhelpers"
)

func TestMerge(t *testing.T) {
	t.Run("merges a branch without conflicts", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
		require.NoError(t, scene.Repo.CommitFile("feature.txt", "new\n", "feature work"))
		require.NoError(t, scene.Repo.CheckoutBranch("main"))

		o := ops.New()
		res := o.Merge(context.Background(), ops.MergeOptions{
			RepoPath: scene.Dir,
			Branch:   "feature",
		})
		require.True(t, res.Success)
		require.Empty(t, res.ConflictedFiles)
		require.Contains(t, res.Message, "merged feature")
	})

	t.Run("returns a conflict report with the conflicted files", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateConflict("clash.txt", "feature"))

		o := ops.New()
		res := o.Merge(context.Background(), ops.MergeOptions{
			RepoPath: scene.Dir,
			Branch:   "feature",
		})
		require.False(t, res.Success)
		require.Equal(t, []string{"clash.txt"}, res.ConflictedFiles)
		require.NotEmpty(t, res.Suggestions)
		require.False(t, res.Aborted)
		require.True(t, scene.Repo.MergeConflictInProgress())
	})

	t.Run("aborts on conflict when asked and leaves the tree clean", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateConflict("clash.txt", "feature"))

		o := ops.New()
		res := o.Merge(context.Background(), ops.MergeOptions{
			RepoPath:        scene.Dir,
			Branch:          "feature",
			AbortOnConflict: true,
		})
		require.False(t, res.Success)
		require.True(t, res.Aborted)
		require.False(t, scene.Repo.MergeConflictInProgress())

		status := o.Status(context.Background(), ops.StatusOptions{RepoPath: scene.Dir})
		require.True(t, status.Success)
		require.True(t, status.Status.IsClean())
	})

	t.Run("creates a merge commit with no-ff", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
		require.NoError(t, scene.Repo.CommitFile("feature.txt", "new\n", "feature work"))
		require.NoError(t, scene.Repo.CheckoutBranch("main"))

		o := ops.New()
		res := o.Merge(context.Background(), ops.MergeOptions{
			RepoPath:      scene.Dir,
			Branch:        "feature",
			NoFastForward: true,
		})
		require.True(t, res.Success)

		parents, err := scene.Repo.RunGitCommandAndGetOutput("rev-list", "--parents", "-n", "1", "HEAD")
		require.NoError(t, err)
		// hash + two parents
		require.Len(t, strings.Fields(parents), 3)
	})

	t.Run("rejects a merge without a branch name", func(t *testing.T) {
		o := ops.New()
		res := o.Merge(context.Background(), ops.MergeOptions{RepoPath: "/nonexistent"})
		require.False(t, res.Success)
		require.Contains(t, res.Message, "requires a branch name")
	})
}

func TestAbortMerge(t *testing.T) {
	t.Run("restores the pre-merge state", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateConflict("clash.txt", "feature"))
		_ = scene.Repo.RunGitCommand("merge", "feature")
		require.True(t, scene.Repo.MergeConflictInProgress())

		o := ops.New()
		res := o.AbortMerge(context.Background(), ops.AbortMergeOptions{RepoPath: scene.Dir})
		require.True(t, res.Success)
		require.False(t, scene.Repo.MergeConflictInProgress())
	})

	t.Run("fails when no merge is in progress", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		o := ops.New()
		res := o.AbortMerge(context.Background(), ops.AbortMergeOptions{RepoPath: scene.Dir})
		require.False(t, res.Success)
		require.Contains(t, res.Message, "no merge in progress")
	})
}

func TestContinueMerge(t *testing.T) {
	t.Run("refuses while conflicted files remain", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateConflict("clash.txt", "feature"))
		_ = scene.Repo.RunGitCommand("merge", "feature")

		o := ops.New()
		res := o.ContinueMerge(context.Background(), ops.ContinueMergeOptions{RepoPath: scene.Dir})
		require.False(t, res.Success)
		require.Equal(t, []string{"clash.txt"}, res.ConflictedFiles)
		require.Contains(t, res.Message, "unresolved conflicts")
		require.True(t, scene.Repo.MergeConflictInProgress())
	})

	t.Run("fails when no merge is in progress", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		o := ops.New()
		res := o.ContinueMerge(context.Background(), ops.ContinueMergeOptions{RepoPath: scene.Dir})
		require.False(t, res.Success)
		require.Contains(t, res.Message, "no merge in progress")
	})

	t.Run("completes the merge after all files are resolved", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateConflict("clash.txt", "feature"))
		_ = scene.Repo.RunGitCommand("merge", "feature")

		o := ops.New()
		resolve := o.ResolveConflict(context.Background(), ops.ResolveOptions{
			RepoPath: scene.Dir,
			FilePath: "clash.txt",
			Strategy: ops.StrategyTheirs,
		})
		require.True(t, resolve.Success)

		res := o.ContinueMerge(context.Background(), ops.ContinueMergeOptions{
			RepoPath: scene.Dir,
			Message:  "merge feature",
		})
		require.True(t, res.Success)
		require.False(t, scene.Repo.MergeConflictInProgress())

		content, err := scene.Repo.ReadFile("clash.txt")
		require.NoError(t, err)
		require.Equal(t, "theirs\n", content)
	})
}
