package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"HelloWorld/common"
	"HelloWorld/locales"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(t *testing.T) (*common.ConfigManager, *common.ErrorHandler) {
	t.Helper()
	require.NoError(t, locales.LoadTranslations("en"))

	dir := t.TempDir()
	mgr, err := common.NewConfigManager(filepath.Join(dir, "settings.conf"))
	require.NoError(t, err)
	require.NoError(t, mgr.SetLanguage("en"))

	logger, err := common.NewLogger(filepath.Join(dir, "test.log"), 0, 0)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	handler, err := common.NewErrorHandler(logger)
	require.NoError(t, err)
	return mgr, handler
}

func TestSettingsFormPreselectsConfiguredLanguage(t *testing.T) {
	test.NewTempApp(t)
	mgr, handler := newTestDeps(t)

	f := newSettingsForm(mgr, handler, nil)
	assert.Equal(t, "English", f.languageSelect.Selected)
	assert.Equal(t, []string{"Čeština", "Deutsch", "English"}, f.languageSelect.Options)
}

func TestSettingsFormSaveLanguage(t *testing.T) {
	test.NewTempApp(t)
	mgr, handler := newTestDeps(t)

	var changedTo []string
	f := newSettingsForm(mgr, handler, func(code string) { changedTo = append(changedTo, code) })

	f.languageSelect.SetSelected("Deutsch")
	f.saveButton.OnTapped()

	assert.Equal(t, "de", mgr.GetGlobalConfig().Language)
	assert.Equal(t, []string{"de"}, changedTo)
	assert.Equal(t, "Saved", f.saveButton.Text)

	// Saving the same language again does not report a change.
	f.saveButton.OnTapped()
	assert.Len(t, changedTo, 1)
}

func TestShowSettingsWindow(t *testing.T) {
	test.NewTempApp(t)
	mgr, handler := newTestDeps(t)
	w := test.NewWindow(widget.NewLabel("main"))
	defer w.Close()

	d := ShowSettingsWindow(w, mgr, handler, nil)
	require.NotNil(t, d)
	assert.NotNil(t, w.Canvas().Overlays().Top())
	d.Hide()
}

func TestShowAboutWindow(t *testing.T) {
	test.NewTempApp(t)
	require.NoError(t, locales.LoadTranslations("en"))
	w := test.NewWindow(widget.NewLabel("main"))
	defer w.Close()

	assert.True(t, strings.HasPrefix(aboutText(), "Hello World "+common.AppVersion))
	d := ShowAboutWindow(w)
	require.NotNil(t, d)
	assert.NotNil(t, w.Canvas().Overlays().Top())
}

func TestLoadLogContent(t *testing.T) {
	test.NewTempApp(t)
	require.NoError(t, locales.LoadTranslations("en"))

	logPath := filepath.Join(t.TempDir(), "helloworld.log")
	require.NoError(t, os.WriteFile(logPath, []byte("line one\nline two\n"), 0644))

	entry := widget.NewMultiLineEntry()
	scroll := container.NewScroll(entry)
	require.NoError(t, loadLogContent(logPath, entry, scroll))
	assert.Equal(t, "line one\nline two\n", entry.Text)
	assert.Equal(t, 2, entry.CursorRow)

	assert.Error(t, loadLogContent(filepath.Join(t.TempDir(), "missing.log"), entry, scroll))
	assert.True(t, strings.HasPrefix(entry.Text, "Failed to read log file:"))
}

func TestShowLogViewerWindow(t *testing.T) {
	test.NewTempApp(t)
	_, handler := newTestDeps(t)

	w := ShowLogViewerWindow(handler)
	defer w.Close()
	assert.Equal(t, "Application log", w.Title())
	assert.IsType(t, &fyne.Container{}, w.Content())
}

func TestShowLogViewerWindowReportsReadFailure(t *testing.T) {
	test.NewTempApp(t)
	_, handler := newTestDeps(t)
	mainWindow := test.NewWindow(widget.NewLabel("main"))
	defer mainWindow.Close()
	handler.SetWindow(mainWindow)

	logPath := handler.GetLogger().Path()
	handler.GetLogger().Close()
	require.NoError(t, os.Remove(logPath))

	w := ShowLogViewerWindow(handler)
	defer w.Close()
	assert.NotNil(t, mainWindow.Canvas().Overlays().Top())
}

func TestSettingsFormSaveKeepsSelection(t *testing.T) {
	test.NewTempApp(t)
	mgr, handler := newTestDeps(t)
	require.NoError(t, mgr.SetSelection(common.SelectionUniverse))

	f := newSettingsForm(mgr, handler, nil)
	f.languageSelect.SetSelected("Čeština")
	f.saveButton.OnTapped()

	assert.Equal(t, common.GlobalConfig{Language: "cs", Selection: common.SelectionUniverse}, mgr.GetGlobalConfig())
}
