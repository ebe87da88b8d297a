package common

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigManagerRejectsEmptyPath(t *testing.T) {
	_, err := NewConfigManager("  ")
	assert.Error(t, err)
}

func TestConfigManagerMissingFileUsesDefaults(t *testing.T) {
	mgr, err := NewConfigManager(filepath.Join(t.TempDir(), "settings.conf"))
	require.NoError(t, err)

	require.NoError(t, mgr.Load())
	assert.Equal(t, DefaultCfg().Global, mgr.GetGlobalConfig())
}

func TestConfigManagerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.conf")
	mgr, err := NewConfigManager(path)
	require.NoError(t, err)

	require.NoError(t, mgr.SaveGlobalConfig(GlobalConfig{Language: "cs", Selection: SelectionUniverse}))

	reloaded, err := NewConfigManager(path)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, GlobalConfig{Language: "cs", Selection: SelectionUniverse}, reloaded.GetGlobalConfig())

	var onDisk map[string]map[string]interface{}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, "cs", onDisk["global"]["Language"])
	assert.EqualValues(t, 1, onDisk["global"]["Selection"])
}

func TestConfigManagerSetters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.conf")
	mgr, err := NewConfigManager(path)
	require.NoError(t, err)

	require.NoError(t, mgr.SetLanguage("de"))
	require.NoError(t, mgr.SetSelection(SelectionUniverse))

	reloaded, _ := NewConfigManager(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "de", reloaded.GetGlobalConfig().Language)
	assert.Equal(t, SelectionUniverse, reloaded.GetGlobalConfig().Selection)
}

func TestConfigManagerMalformedFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.conf")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	mgr, err := NewConfigManager(path)
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
	assert.Equal(t, DefaultCfg().Global, mgr.GetGlobalConfig())
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "settings.conf")
	require.NoError(t, CreateConfigFile(path))
	assert.True(t, FileExists(path))

	mgr, _ := NewConfigManager(path)
	require.NoError(t, mgr.Load())
	assert.Equal(t, SelectionWorld, mgr.GetGlobalConfig().Selection)
}
