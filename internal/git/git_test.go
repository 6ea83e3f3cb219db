package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracker-tv/github-cifix-bot/internal/git"
)

func gitOrSkip(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := exec.Command("git", "-C", dir, "init", "-b", "main").CombinedOutput()
	require.NoError(t, err, string(out))
	return dir
}

func TestRunner_CleanAndCommitCycle(t *testing.T) {
	gitOrSkip(t)
	ctx := context.Background()

	dir := initRepo(t)
	r := git.NewRunner(dir)

	require.NoError(t, r.ConfigureIdentity(ctx, "cifix-bot", "cifix-bot@example.com"))

	clean, err := r.IsClean(ctx)
	require.NoError(t, err)
	assert.True(t, clean)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("requests\n"), 0o644))

	clean, err = r.IsClean(ctx)
	require.NoError(t, err)
	assert.False(t, clean)

	require.NoError(t, r.Add(ctx, "requirements.txt"))
	require.NoError(t, r.Commit(ctx, "ci-fix: add missing dependency requests"))

	clean, err = r.IsClean(ctx)
	require.NoError(t, err)
	assert.True(t, clean)

	out, err := exec.Command("git", "-C", dir, "log", "-1", "--format=%s").Output()
	require.NoError(t, err)
	assert.Equal(t, "ci-fix: add missing dependency requests\n", string(out))
}

func TestRunner_PushToLocalRemote(t *testing.T) {
	gitOrSkip(t)
	ctx := context.Background()

	remote := t.TempDir()
	out, err := exec.Command("git", "-C", remote, "init", "--bare", "-b", "main").CombinedOutput()
	require.NoError(t, err, string(out))

	dir := initRepo(t)
	out, err = exec.Command("git", "-C", dir, "remote", "add", "origin", remote).CombinedOutput()
	require.NoError(t, err, string(out))

	r := git.NewRunner(dir)
	require.NoError(t, r.ConfigureIdentity(ctx, "cifix-bot", "cifix-bot@example.com"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "placeholder.txt"), nil, 0o644))
	require.NoError(t, r.Add(ctx, "placeholder.txt"))
	require.NoError(t, r.Commit(ctx, "ci-fix: create placeholder file placeholder.txt"))

	require.NoError(t, r.Push(ctx, "origin", "feature/fix"))

	out, err = exec.Command("git", "-C", remote, "log", "feature/fix", "-1", "--format=%s").Output()
	require.NoError(t, err)
	assert.Equal(t, "ci-fix: create placeholder file placeholder.txt\n", string(out))
}

func TestRunner_CommitFailurePropagatesStderr(t *testing.T) {
	gitOrSkip(t)
	ctx := context.Background()

	dir := initRepo(t)
	r := git.NewRunner(dir)
	require.NoError(t, r.ConfigureIdentity(ctx, "cifix-bot", "cifix-bot@example.com"))

	// Nothing staged: commit must fail loudly.
	err := r.Commit(ctx, "empty")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "git commit")
}

func TestRunner_NotARepo(t *testing.T) {
	gitOrSkip(t)
	ctx := context.Background()

	r := git.NewRunner(t.TempDir())

	_, err := r.IsClean(ctx)

	assert.Error(t, err)
}
