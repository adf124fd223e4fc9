package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var folders = []string{"input", "output", "tmp", "log"}

func TestBootstrap_FirstRunCreatesAllFolders(t *testing.T) {
	base := t.TempDir()

	result, err := Bootstrap(base, folders)
	require.NoError(t, err)
	assert.ElementsMatch(t, folders, result.FoldersCreated)
	assert.Empty(t, result.FoldersInExistence)

	for _, folder := range folders {
		isDir, err := IsDir(filepath.Join(base, folder))
		require.NoError(t, err)
		assert.True(t, isDir, "expected %s to be a directory", folder)
	}
}

func TestBootstrap_SecondRunReportsExistence(t *testing.T) {
	base := t.TempDir()

	_, err := Bootstrap(base, folders)
	require.NoError(t, err)

	result, err := Bootstrap(base, folders)
	require.NoError(t, err)
	assert.Empty(t, result.FoldersCreated)
	assert.ElementsMatch(t, folders, result.FoldersInExistence)
}

func TestBootstrap_MixedState(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "input"), 0o755))

	result, err := Bootstrap(base, folders)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"output", "tmp", "log"}, result.FoldersCreated)
	assert.Equal(t, []string{"input"}, result.FoldersInExistence)
}

func TestPathExists(t *testing.T) {
	base := t.TempDir()
	exists, err := PathExists(base)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = PathExists(filepath.Join(base, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateDir_ExistingFileIsAnError(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "occupied")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.Error(t, CreateDir(path))
}
