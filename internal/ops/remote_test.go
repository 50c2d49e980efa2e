package ops_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitwire.dev/gitwire/internal/git"
	"gitwire.dev/gitwire/internal/ops"
	"gitwire.dev/gitwire/testhelpers"
)

func TestRemote(t *testing.T) {
	t.Run("lists configured remotes as parsed entries", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		o := ops.New()
		res := o.Remote(context.Background(), ops.RemoteOptions{RepoPath: scene.Dir})
		require.True(t, res.Success)
		require.Len(t, res.Remotes, 2)
		require.Equal(t, "origin", res.Remotes[0].Name)
		require.ElementsMatch(t,
			[]git.RemoteDirection{git.RemoteFetch, git.RemotePush},
			[]git.RemoteDirection{res.Remotes[0].Direction, res.Remotes[1].Direction})
	})

	t.Run("adds and removes a remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		o := ops.New()
		added := o.Remote(context.Background(), ops.RemoteOptions{
			RepoPath: scene.Dir,
			AddName:  "mirror",
			AddURL:   "https://example.com/mirror.git",
		})
		require.True(t, added.Success)

		listed := o.Remote(context.Background(), ops.RemoteOptions{RepoPath: scene.Dir})
		require.True(t, listed.Success)
		require.Len(t, listed.Remotes, 2)

		removed := o.Remote(context.Background(), ops.RemoteOptions{
			RepoPath:   scene.Dir,
			RemoveName: "mirror",
		})
		require.True(t, removed.Success)

		empty := o.Remote(context.Background(), ops.RemoteOptions{RepoPath: scene.Dir})
		require.True(t, empty.Success)
		require.Empty(t, empty.Remotes)
	})

	t.Run("rejects adding a remote without a URL", func(t *testing.T) {
		o := ops.New()
		res := o.Remote(context.Background(), ops.RemoteOptions{
			RepoPath: "/nonexistent",
			AddName:  "mirror",
		})
		require.False(t, res.Success)
		require.Contains(t, res.Message, "requires a URL")
	})
}

func TestPushPullFetch(t *testing.T) {
	t.Run("pushes a branch to a bare remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		o := ops.New()
		res := o.Push(context.Background(), ops.PushOptions{
			RepoPath:    scene.Dir,
			Branch:      "main",
			SetUpstream: true,
		})
		require.True(t, res.Success)
		require.Contains(t, res.Message, "pushed to origin")
	})

	t.Run("fetches and pulls from the remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		o := ops.New()
		fetched := o.Fetch(context.Background(), ops.FetchOptions{RepoPath: scene.Dir})
		require.True(t, fetched.Success)

		pulled := o.Pull(context.Background(), ops.PullOptions{
			RepoPath:        scene.Dir,
			FastForwardOnly: true,
		})
		require.True(t, pulled.Success)
		require.Contains(t, pulled.Message, "pulled from origin")
	})

	t.Run("pull from a diverged remote returns a conflict report", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.RunGitCommand("config", "pull.rebase", "false"))
		require.NoError(t, scene.Repo.CommitFile("clash.txt", "base\n", "base"))
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		// Publish one version, rewind, and commit a competing one so the
		// local and remote branches diverge on the same file.
		require.NoError(t, scene.Repo.CommitFile("clash.txt", "remote\n", "remote change"))
		require.NoError(t, scene.Repo.RunGitCommand("push", "origin", "main"))
		require.NoError(t, scene.Repo.RunGitCommand("reset", "--hard", "HEAD~1"))
		require.NoError(t, scene.Repo.CommitFile("clash.txt", "local\n", "local change"))

		o := ops.New()
		res := o.Pull(context.Background(), ops.PullOptions{RepoPath: scene.Dir})
		require.False(t, res.Success)
		require.Equal(t, []string{"clash.txt"}, res.ConflictedFiles)
		require.NotEmpty(t, res.Suggestions)
		require.True(t, scene.Repo.MergeConflictInProgress())
	})

	t.Run("push fails without a configured remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		o := ops.New()
		res := o.Push(context.Background(), ops.PushOptions{RepoPath: scene.Dir})
		require.False(t, res.Success)
		require.NotEmpty(t, res.Errors)
	})
}
