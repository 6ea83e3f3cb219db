package mutate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlaceholder_CreatesFileAndParents(t *testing.T) {
	root := t.TempDir()

	created, err := CreatePlaceholder(root, "config/settings.json")

	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(filepath.Join(root, "config", "settings.json"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCreatePlaceholder_ExistingFileUntouched(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "settings.json")
	require.NoError(t, os.WriteFile(target, []byte("important"), 0o644))

	created, err := CreatePlaceholder(root, "settings.json")

	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "important", string(data))
}

func TestCreatePlaceholder_Idempotent(t *testing.T) {
	root := t.TempDir()

	first, err := CreatePlaceholder(root, "config/settings.json")
	require.NoError(t, err)
	second, err := CreatePlaceholder(root, "config/settings.json")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestCreatePlaceholder_RejectsAbsolutePath(t *testing.T) {
	root := t.TempDir()

	created, err := CreatePlaceholder(root, "/etc/passwd")

	assert.Error(t, err)
	assert.False(t, created)
	assert.Contains(t, err.Error(), "escapes the repository")
}

func TestCreatePlaceholder_RejectsParentEscape(t *testing.T) {
	root := t.TempDir()

	created, err := CreatePlaceholder(root, "../outside.txt")

	assert.Error(t, err)
	assert.False(t, created)
}

func TestCreatePlaceholder_RejectsSneakyEscape(t *testing.T) {
	root := t.TempDir()

	created, err := CreatePlaceholder(root, "config/../../outside.txt")

	assert.Error(t, err)
	assert.False(t, created)
}

func TestCreatePlaceholder_RejectsProtectedPaths(t *testing.T) {
	root := t.TempDir()

	for _, path := range []string{".git/hooks/pre-commit", "vendor/.git/config"} {
		created, err := CreatePlaceholder(root, path)

		assert.Error(t, err, path)
		assert.False(t, created, path)
		assert.Contains(t, err.Error(), "protected", path)
	}
}
