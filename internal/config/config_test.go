package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CIFIX_GITHUB_TOKEN", "token-123")
	t.Setenv("CIFIX_REPO", "tracker-tv/some-service")
	t.Setenv("CIFIX_RUN_ID", "42")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "token-123", cfg.GithubToken)
	assert.Equal(t, int64(42), cfg.RunID)
	assert.Equal(t, "requirements.txt", cfg.ManifestPath)
	assert.Equal(t, ".", cfg.WorkDir)
	assert.False(t, cfg.ApproveDependencyFix)
	assert.False(t, cfg.ApprovePathFix)
}

func TestLoad_MissingToken(t *testing.T) {
	// t.Setenv registers the restore; the variable itself must be absent
	// for the required tag to trip.
	t.Setenv("CIFIX_GITHUB_TOKEN", "x")
	os.Unsetenv("CIFIX_GITHUB_TOKEN")
	t.Setenv("CIFIX_REPO", "tracker-tv/some-service")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_ApprovalFlags(t *testing.T) {
	t.Setenv("CIFIX_GITHUB_TOKEN", "token-123")
	t.Setenv("CIFIX_REPO", "tracker-tv/some-service")
	t.Setenv("CIFIX_APPROVE_DEPENDENCY_FIX", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.ApproveDependencyFix)
	assert.False(t, cfg.ApprovePathFix)
}

func TestValidate_RepoFormat(t *testing.T) {
	cfg := &Config{GithubToken: "t", Repo: "not-a-full-name", RunID: 1}

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "owner/name")
}

func TestValidate_NeitherRunNorPR(t *testing.T) {
	cfg := &Config{GithubToken: "t", Repo: "org/repo"}

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "run id or pull request number")
}

func TestValidate_PRNumberAlone(t *testing.T) {
	cfg := &Config{GithubToken: "t", Repo: "org/repo", PRNumber: 7}

	assert.NoError(t, cfg.Validate())
}

func TestOwnerRepo(t *testing.T) {
	cfg := &Config{Repo: "tracker-tv/some-service"}

	owner, name := cfg.OwnerRepo()

	assert.Equal(t, "tracker-tv", owner)
	assert.Equal(t, "some-service", name)
}
