package common

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x", "y")
	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))
	assert.NoError(t, EnsureDirectoryExists(dir))
	assert.Error(t, EnsureDirectoryExists(" "))
}

func TestIsDirWritable(t *testing.T) {
	assert.NoError(t, IsDirWritable(t.TempDir()))
	assert.Error(t, IsDirWritable(filepath.Join(t.TempDir(), "missing")))
}

func TestLocateAppFile(t *testing.T) {
	const name = "locate_app_file_test.conf"
	appData := t.TempDir()

	path, exists := LocateAppFile(appData, "", name)
	assert.Equal(t, filepath.Join(appData, name), path)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	path, exists = LocateAppFile(appData, "", name)
	assert.Equal(t, filepath.Join(appData, name), path)
	assert.True(t, exists)

	logPath, _ := LocateAppFile(appData, FolderNameLog, name)
	assert.Equal(t, filepath.Join(appData, FolderNameLog, name), logPath)
	assert.True(t, DirectoryExists(filepath.Join(appData, FolderNameLog)))
}

func TestLocateAppFileFallsBackToWorkingDirectory(t *testing.T) {
	path, exists := LocateAppFile("", "", "locate_app_file_missing.conf")
	assert.Equal(t, "locate_app_file_missing.conf", path)
	assert.False(t, exists)
}

func TestLocateAppFileSkipsReadOnlyAppData(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permission bits are not enforced")
	}
	appData := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(appData, FolderNameLog), 0555))
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(appData, FolderNameLog), 0755) })

	path, exists := LocateAppFile(appData, FolderNameLog, "locate_app_file_ro.log")
	assert.Equal(t, "locate_app_file_ro.log", path)
	assert.False(t, exists)
}
