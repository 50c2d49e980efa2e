package ops_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitwire.dev/gitwire/internal/ops"
	"gitwire.dev/gitwire/testhelpers"
)

func TestStash(t *testing.T) {
	t.Run("pushes, lists, and pops a stash", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("1_test.txt", "work in progress\n"))

		o := ops.New()
		pushed := o.Stash(context.Background(), ops.StashOptions{
			RepoPath:  scene.Dir,
			Operation: ops.StashPush,
			Message:   "wip changes",
		})
		require.True(t, pushed.Success)

		content, err := scene.Repo.ReadFile("1_test.txt")
		require.NoError(t, err)
		require.Equal(t, "1", content)

		listed := o.Stash(context.Background(), ops.StashOptions{
			RepoPath:  scene.Dir,
			Operation: ops.StashList,
		})
		require.True(t, listed.Success)
		require.Len(t, listed.Stashes, 1)
		require.Equal(t, "stash@{0}", listed.Stashes[0].Ref)
		require.Equal(t, "main", listed.Stashes[0].Branch)
		require.Equal(t, "wip changes", listed.Stashes[0].Message)

		popped := o.Stash(context.Background(), ops.StashOptions{
			RepoPath:  scene.Dir,
			Operation: ops.StashPop,
		})
		require.True(t, popped.Success)

		content, err = scene.Repo.ReadFile("1_test.txt")
		require.NoError(t, err)
		require.Equal(t, "work in progress\n", content)
	})

	t.Run("stashes untracked files only when asked", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("untracked.txt", "new file\n"))

		o := ops.New()
		res := o.Stash(context.Background(), ops.StashOptions{
			RepoPath:         scene.Dir,
			Operation:        ops.StashPush,
			IncludeUntracked: true,
		})
		require.True(t, res.Success)

		untracked, err := scene.Repo.HasUntrackedFiles()
		require.NoError(t, err)
		require.False(t, untracked)
	})

	t.Run("drops a selected stash by ref", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile("1_test.txt", "first\n"))
		o := ops.New()
		require.True(t, o.Stash(context.Background(), ops.StashOptions{
			RepoPath: scene.Dir, Operation: ops.StashPush, Message: "first",
		}).Success)
		require.NoError(t, scene.Repo.WriteFile("1_test.txt", "second\n"))
		require.True(t, o.Stash(context.Background(), ops.StashOptions{
			RepoPath: scene.Dir, Operation: ops.StashPush, Message: "second",
		}).Success)

		dropped := o.Stash(context.Background(), ops.StashOptions{
			RepoPath:  scene.Dir,
			Operation: ops.StashDrop,
			Ref:       "stash@{1}",
		})
		require.True(t, dropped.Success)

		listed := o.Stash(context.Background(), ops.StashOptions{
			RepoPath:  scene.Dir,
			Operation: ops.StashList,
		})
		require.True(t, listed.Success)
		require.Len(t, listed.Stashes, 1)
		require.Equal(t, "second", listed.Stashes[0].Message)
	})

	t.Run("rejects an unrecognized operation", func(t *testing.T) {
		o := ops.New()
		res := o.Stash(context.Background(), ops.StashOptions{
			RepoPath:  "/nonexistent",
			Operation: "shelve",
		})
		require.False(t, res.Success)
		require.Contains(t, res.Message, "unrecognized stash operation")
	})
}
