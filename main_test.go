package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"HelloWorld/common"
	"HelloWorld/locales"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = time.Second
	tick    = 10 * time.Millisecond
)

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"--config", "a.conf", "-l", "b.log", "--lang", "cs"})
	require.NoError(t, err)
	assert.Equal(t, Options{ConfigPath: "a.conf", LogPath: "b.log", Language: "cs"}, opts)

	opts, err = parseOptions([]string{"-v"})
	require.NoError(t, err)
	assert.True(t, opts.ShowVersion)

	_, err = parseOptions([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)

	_, err = parseOptions([]string{"--nope"})
	assert.Error(t, err)

	_, err = parseOptions([]string{"stray"})
	assert.Error(t, err)
}

// newTestHelloWorld builds the application on the Fyne test driver with
// files in a temporary directory.
func newTestHelloWorld(t *testing.T, configContent string, lang string) (*HelloWorld, Options) {
	t.Helper()

	orig := newFyneApp
	newFyneApp = func() fyne.App { return test.NewTempApp(t) }
	t.Cleanup(func() { newFyneApp = orig })

	dir := t.TempDir()
	opts := Options{
		ConfigPath: filepath.Join(dir, "settings.conf"),
		LogPath:    filepath.Join(dir, "log", "helloworld.log"),
		Language:   lang,
	}
	if configContent != "" {
		require.NoError(t, os.WriteFile(opts.ConfigPath, []byte(configContent), 0644))
	}

	hw, err := NewHelloWorld(opts)
	require.NoError(t, err)
	return hw, opts
}

func TestNewHelloWorldBuildsMainWindow(t *testing.T) {
	hw, opts := newTestHelloWorld(t, "", "en")

	assert.True(t, common.FileExists(opts.ConfigPath))
	assert.Nil(t, hw.configInitError)
	assert.Equal(t, "Hello World", hw.mainWindow.Title())
	require.NotNil(t, hw.mainWindow.MainMenu())
	assert.Len(t, hw.mainWindow.MainMenu().Items, 2)

	world, universe := hw.windowCtrl.RadioButtons()
	assert.True(t, world.IsSelected())
	assert.False(t, universe.IsSelected())

	assert.Equal(t, common.ExitOK, hw.Run())

	data, err := os.ReadFile(opts.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] Application started")
	assert.Contains(t, string(data), "Application stopped with exit code 0")
}

func TestNewHelloWorldRestoresSelectionAndLanguage(t *testing.T) {
	hw, _ := newTestHelloWorld(t, `{"global": {"Language": "de", "Selection": 1}}`, "")
	defer hw.logger.Close()

	assert.Equal(t, "de", locales.CurrentLanguage())
	assert.Equal(t, "Hallo Welt", hw.mainWindow.Title())
	assert.Equal(t, common.SelectionUniverse, hw.windowCtrl.Selection())
	_, universe := hw.windowCtrl.RadioButtons()
	assert.True(t, universe.IsSelected())
}

func TestNewHelloWorldMalformedConfig(t *testing.T) {
	hw, _ := newTestHelloWorld(t, `{broken`, "en")
	defer hw.logger.Close()

	assert.Error(t, hw.configInitError)
	assert.Equal(t, common.SelectionWorld, hw.windowCtrl.Selection())
}

func TestSelectionIsPersisted(t *testing.T) {
	hw, opts := newTestHelloWorld(t, "", "en")
	defer hw.logger.Close()

	world, universe := hw.windowCtrl.RadioButtons()
	universe.Select()

	assert.Eventually(t, func() bool {
		return hw.configMgr.GetGlobalConfig().Selection == common.SelectionUniverse
	}, waitFor, tick)

	reloaded, err := common.NewConfigManager(opts.ConfigPath)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, common.SelectionUniverse, reloaded.GetGlobalConfig().Selection)

	world.Select()
	assert.Eventually(t, func() bool {
		return hw.configMgr.GetGlobalConfig().Selection == common.SelectionWorld
	}, waitFor, tick)
}

func TestApplyLanguage(t *testing.T) {
	hw, _ := newTestHelloWorld(t, "", "en")
	defer hw.logger.Close()
	defer locales.LoadTranslations("en")

	hw.applyLanguage("cs")
	assert.Equal(t, "Ahoj světe", hw.mainWindow.Title())
	assert.Equal(t, "Ahoj:", hw.windowCtrl.Label().Text)
	assert.Equal(t, "Soubor", hw.mainWindow.MainMenu().Items[0].Label)

	hw.applyLanguage("xx")
	assert.Equal(t, "cs", locales.CurrentLanguage())
}

func TestQuitMenuClosesMainWindow(t *testing.T) {
	hw, _ := newTestHelloWorld(t, "", "en")
	defer hw.logger.Close()

	quit := hw.mainWindow.MainMenu().Items[0].Items[2]
	require.True(t, quit.IsQuit)
	quit.Action()

	select {
	case <-hw.appCtrl.Done():
	default:
		t.Fatal("closing the main window did not end the application")
	}
}
