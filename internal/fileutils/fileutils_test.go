package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budget-sync/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
	// Directories are not files
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	newDir := filepath.Join(tmpDir, "new", "nested", "dir")
	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.True(t, fileutils.DirectoryExists(newDir))

	assert.NoError(t, fileutils.EnsureDirectoryExists(tmpDir))
}

func TestWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("test content")

	testFile := filepath.Join(tmpDir, "output.txt")
	require.NoError(t, fileutils.WriteFile(testFile, content, 0600))

	data, err := os.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, content, data)

	nestedFile := filepath.Join(tmpDir, "a", "b", "c", "output.txt")
	require.NoError(t, fileutils.WriteFile(nestedFile, content, 0600))
	assert.True(t, fileutils.FileExists(nestedFile))
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	err := fileutils.WriteFile(filepath.Join(blocker, "out.txt"), []byte("y"), 0600)
	assert.Error(t, err)
}

func TestFirstExisting(t *testing.T) {
	tmpDir := t.TempDir()
	second := filepath.Join(tmpDir, "second.csv")
	require.NoError(t, os.WriteFile(second, []byte("x"), 0600))

	found, ok := fileutils.FirstExisting(filepath.Join(tmpDir, "first.csv"), second, tmpDir)
	assert.True(t, ok)
	assert.Equal(t, second, found)

	_, ok = fileutils.FirstExisting(filepath.Join(tmpDir, "missing.csv"), tmpDir)
	assert.False(t, ok)
}
