package ops_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitwire.dev/gitwire/internal/ops"
	"gitwire.dev/gitwire/testhelpers"
)

// conflictedScene sets up a repository mid-merge with one conflicted file.
func conflictedScene(t *testing.T) *testhelpers.Scene {
	t.Helper()
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CreateConflict("clash.txt", "feature"))
	_ = scene.Repo.RunGitCommand("merge", "feature")
	require.True(t, scene.Repo.MergeConflictInProgress())
	return scene
}

func TestConflicts(t *testing.T) {
	t.Run("reports no conflicts on a clean tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		o := ops.New()
		res := o.Conflicts(context.Background(), ops.ConflictsOptions{RepoPath: scene.Dir})
		require.True(t, res.Success)
		require.Empty(t, res.ConflictedFiles)
		require.Contains(t, res.Message, "no conflicted files")
	})

	t.Run("lists conflicted files with parsed sections and previews", func(t *testing.T) {
		scene := conflictedScene(t)

		o := ops.New()
		res := o.Conflicts(context.Background(), ops.ConflictsOptions{RepoPath: scene.Dir})
		require.True(t, res.Success)
		require.Equal(t, []string{"clash.txt"}, res.ConflictedFiles)

		sections := res.Sections["clash.txt"]
		require.Len(t, sections, 1)
		require.Equal(t, "ours", sections[0].Ours)
		require.Equal(t, "theirs", sections[0].Theirs)

		require.Contains(t, res.Previews["clash.txt"], "<<<<<<<")
		require.NotEmpty(t, res.Suggestions)
	})
}

func TestResolveConflict(t *testing.T) {
	t.Run("resolves with ours and stages the file", func(t *testing.T) {
		scene := conflictedScene(t)

		o := ops.New()
		res := o.ResolveConflict(context.Background(), ops.ResolveOptions{
			RepoPath: scene.Dir,
			FilePath: "clash.txt",
			Strategy: ops.StrategyOurs,
		})
		require.True(t, res.Success)

		content, err := scene.Repo.ReadFile("clash.txt")
		require.NoError(t, err)
		require.Equal(t, "ours\n", content)

		remaining, err := scene.Repo.RunGitCommandAndGetOutput("diff", "--name-only", "--diff-filter=U")
		require.NoError(t, err)
		require.Empty(t, remaining)
	})

	t.Run("resolves with theirs", func(t *testing.T) {
		scene := conflictedScene(t)

		o := ops.New()
		res := o.ResolveConflict(context.Background(), ops.ResolveOptions{
			RepoPath: scene.Dir,
			FilePath: "clash.txt",
			Strategy: ops.StrategyTheirs,
		})
		require.True(t, res.Success)

		content, err := scene.Repo.ReadFile("clash.txt")
		require.NoError(t, err)
		require.Equal(t, "theirs\n", content)
	})

	t.Run("resolves manually with caller-supplied content", func(t *testing.T) {
		scene := conflictedScene(t)

		merged := "merged by hand\n"
		o := ops.New()
		res := o.ResolveConflict(context.Background(), ops.ResolveOptions{
			RepoPath:        scene.Dir,
			FilePath:        "clash.txt",
			Strategy:        ops.StrategyManual,
			ResolvedContent: &merged,
		})
		require.True(t, res.Success)

		content, err := scene.Repo.ReadFile("clash.txt")
		require.NoError(t, err)
		require.Equal(t, merged, content)
	})

	t.Run("rejects manual resolution without content before any subprocess", func(t *testing.T) {
		o := ops.New()
		res := o.ResolveConflict(context.Background(), ops.ResolveOptions{
			RepoPath: "/nonexistent",
			FilePath: "clash.txt",
			Strategy: ops.StrategyManual,
		})
		require.False(t, res.Success)
		require.Contains(t, res.Message, "requires resolved content")
	})

	t.Run("rejects an unrecognized strategy", func(t *testing.T) {
		o := ops.New()
		res := o.ResolveConflict(context.Background(), ops.ResolveOptions{
			RepoPath: "/nonexistent",
			FilePath: "clash.txt",
			Strategy: "both",
		})
		require.False(t, res.Success)
		require.Contains(t, res.Message, "unrecognized resolution strategy")
	})

	t.Run("rejects a missing file path", func(t *testing.T) {
		o := ops.New()
		res := o.ResolveConflict(context.Background(), ops.ResolveOptions{
			RepoPath: "/nonexistent",
			Strategy: ops.StrategyOurs,
		})
		require.False(t, res.Success)
		require.Contains(t, res.Message, "requires a file path")
	})
}
