// main.go

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"HelloWorld/assets"
	"HelloWorld/common"
	"HelloWorld/hello"
	"HelloWorld/locales"
	"HelloWorld/theme"
	"HelloWorld/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"
)

// newFyneApp creates the Fyne application. Replaced in tests.
var newFyneApp = func() fyne.App {
	return app.NewWithID(common.AppID)
}

// Options are the command line settings.
type Options struct {
	ConfigPath  string
	LogPath     string
	Language    string
	ShowVersion bool
}

// parseOptions reads the command line arguments (without the program name).
func parseOptions(args []string) (Options, error) {
	var opts Options

	flags := pflag.NewFlagSet(common.AppName, pflag.ContinueOnError)
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to the settings file")
	flags.StringVarP(&opts.LogPath, "log", "l", "", "path to the log file")
	flags.StringVar(&opts.Language, "lang", "", "user interface language ("+fmt.Sprint(locales.GetAvailableLanguages())+")")
	flags.BoolVarP(&opts.ShowVersion, "version", "v", false, "print the version and exit")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	return opts, nil
}

// HelloWorld is the main application structure.
type HelloWorld struct {
	app          fyne.App
	mainWindow   fyne.Window
	configMgr    *common.ConfigManager
	logger       *common.Logger
	errorHandler *common.ErrorHandler
	appCtrl      *hello.ApplicationController
	windowCtrl   *hello.MainWindowController

	// configInitError is shown in a dialog once the main window is visible.
	configInitError error
}

// NewHelloWorld initializes logging, configuration and language, creates
// the Fyne application and builds the main window.
func NewHelloWorld(opts Options) (*HelloWorld, error) {
	logger, err := newLogger(opts.LogPath)
	if err != nil {
		return nil, err
	}
	common.FlushEarlyLogs(logger)

	hw := &HelloWorld{logger: logger}

	hw.configMgr, hw.configInitError = newConfigManager(opts.ConfigPath, logger)
	if hw.configMgr == nil {
		logger.Close()
		return nil, hw.configInitError
	}

	common.DetectAndSetLanguage(hw.configMgr, opts.Language, logger)

	hw.errorHandler, err = common.NewErrorHandler(logger)
	if err != nil {
		logger.Close()
		return nil, err
	}

	hw.app = newFyneApp()
	hw.app.SetIcon(assets.ResourceAppLogo)
	hw.app.Settings().SetTheme(theme.NewCustomTheme())

	hw.windowCtrl = hello.NewMainWindowController(hw.configMgr.GetGlobalConfig().Selection)
	hw.windowCtrl.OnSelectionChanged(hw.persistSelection)
	hw.appCtrl = hello.NewApplicationController(hw.windowCtrl)

	hw.mainWindow = hw.appCtrl.Main(hw.app)
	hw.mainWindow.SetMainMenu(hw.createMainMenu())
	hw.mainWindow.Resize(fyne.NewSize(320, 120))
	hw.mainWindow.CenterOnScreen()
	hw.errorHandler.SetWindow(hw.mainWindow)

	logger.Info("%s", locales.Translate("main.log.appstart"))
	return hw, nil
}

// newLogger opens the log file at path, or at the default location when path is empty.
func newLogger(path string) (*common.Logger, error) {
	if path == "" {
		path, _ = common.LocateAppFile(common.AppDataDir(), common.FolderNameLog, common.FileNameLog)
	}
	logger, err := common.NewLogger(path, common.LogMaxSizeMB, common.LogMaxAgeDays)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// newConfigManager opens the settings file, creating it with defaults when
// missing. A non-nil manager with a non-nil error means the file could not
// be used and defaults are in effect.
func newConfigManager(path string, logger *common.Logger) (*common.ConfigManager, error) {
	exists := common.FileExists(path)
	if path == "" {
		path, exists = common.LocateAppFile(common.AppDataDir(), "", common.FileNameSettings)
	}

	var initErr error
	if !exists {
		if err := common.CreateConfigFile(path); err != nil {
			logger.Warning("Failed to create config file %s: %v", path, err)
			initErr = err
		} else {
			logger.Info("Created new config file %s", path)
		}
	}

	configMgr, err := common.NewConfigManager(path)
	if err != nil {
		return nil, err
	}
	if err := configMgr.Load(); err != nil {
		logger.Error("Failed to load config %s: %v", path, err)
		initErr = errors.Join(initErr, err)
	} else {
		logger.Info("Using config file %s", path)
	}
	return configMgr, initErr
}

// Run shows the main window and runs the event loop until the application
// quits. It returns the process exit code.
func (hw *HelloWorld) Run() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			hw.errorHandler.ShowPanicError(r, string(debug.Stack()))
			exitCode = common.ExitPanic
		}
		hw.logger.Info("%s", locales.Translatef("main.log.appstop", map[string]interface{}{"Code": exitCode}))
		hw.logger.Close()
	}()

	hw.mainWindow.Show()

	if hw.configInitError != nil {
		hw.errorHandler.ShowInitializationErrorDialog(hw.configInitError)
	}

	// Blocks until the last window closes
	hw.app.Run()

	return hw.appCtrl.ExitCode()
}

// createMainMenu builds the File and Help menus.
func (hw *HelloWorld) createMainMenu() *fyne.MainMenu {
	settingsItem := fyne.NewMenuItem(locales.Translate("main.menu.settings"), func() {
		ui.ShowSettingsWindow(hw.mainWindow, hw.configMgr, hw.errorHandler, hw.applyLanguage)
	})
	quitItem := fyne.NewMenuItem(locales.Translate("main.menu.quit"), hw.mainWindow.Close)
	quitItem.IsQuit = true

	logItem := fyne.NewMenuItem(locales.Translate("main.menu.log"), func() {
		ui.ShowLogViewerWindow(hw.errorHandler)
	})
	aboutItem := fyne.NewMenuItem(locales.Translate("main.menu.about"), func() {
		ui.ShowAboutWindow(hw.mainWindow)
	})

	return fyne.NewMainMenu(
		fyne.NewMenu(locales.Translate("main.menu.file"), settingsItem, fyne.NewMenuItemSeparator(), quitItem),
		fyne.NewMenu(locales.Translate("main.menu.help"), logItem, aboutItem),
	)
}

// applyLanguage switches the user interface to code.
func (hw *HelloWorld) applyLanguage(code string) {
	if err := locales.LoadTranslations(code); err != nil {
		context := common.NewErrorContext("Main", common.OperationApplyLang)
		hw.errorHandler.ShowStandardError(err, &context)
		return
	}

	hw.logger.Info("Language switched to %s", code)
	hw.mainWindow.SetTitle(locales.Translate("main.app.title"))
	hw.mainWindow.SetMainMenu(hw.createMainMenu())
	hw.windowCtrl.Retranslate()
}

// persistSelection stores a new shared value in the configuration.
func (hw *HelloWorld) persistSelection(value int) {
	if hw.configMgr.GetGlobalConfig().Selection == value {
		return
	}

	hw.logger.Info("%s", locales.Translatef("main.log.selection", map[string]interface{}{"Value": value}))
	if err := hw.configMgr.SetSelection(value); err != nil {
		hw.logger.Error("%s: %v", common.OperationPersistValue, err)
	}
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(common.ExitOK)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	if opts.ShowVersion {
		fmt.Printf("%s %s\n", common.AppDisplayName, common.AppVersion)
		os.Exit(common.ExitOK)
	}

	hw, err := NewHelloWorld(opts)
	if err != nil {
		common.ShowFatalError(nil, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(hw.Run())
}
