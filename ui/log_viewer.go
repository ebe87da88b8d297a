package ui

import (
	"os"
	"strings"

	"HelloWorld/common"
	"HelloWorld/locales"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ShowLogViewerWindow creates and displays a window with the content of the
// error handler's log file. The log content is displayed in a scrollable
// read-only text area with monospace font, and a refresh button reloads it.
func ShowLogViewerWindow(errorHandler *common.ErrorHandler) fyne.Window {
	logPath := errorHandler.GetLogger().Path()
	reload := func(logText *widget.Entry, scroll *container.Scroll) {
		if err := loadLogContent(logPath, logText, scroll); err != nil {
			context := common.NewErrorContext("LogViewer", common.OperationReadLog)
			context.Severity = common.SeverityWarning
			errorHandler.ShowStandardError(err, &context)
		}
	}

	logText := widget.NewMultiLineEntry()
	logText.TextStyle = fyne.TextStyle{Monospace: true}
	logText.Wrapping = fyne.TextWrapBreak
	logText.Disable()

	scroll := container.NewScroll(logText)
	logWindow := fyne.CurrentApp().NewWindow(locales.Translate("common.logviewer.header"))

	refreshBtn := widget.NewButtonWithIcon(
		locales.Translate("common.button.refresh"),
		theme.ViewRefreshIcon(),
		func() {
			reload(logText, scroll)
		},
	)
	refreshBtn.Importance = widget.HighImportance

	closeBtn := widget.NewButtonWithIcon(
		locales.Translate("common.button.close"),
		theme.CancelIcon(),
		logWindow.Close,
	)

	content := container.NewBorder(
		nil,
		container.NewHBox(layout.NewSpacer(), refreshBtn, closeBtn),
		nil,
		nil,
		scroll,
	)

	logWindow.SetContent(content)
	logWindow.Resize(fyne.NewSize(800, 600))
	logWindow.CenterOnScreen()

	reload(logText, scroll)

	logWindow.Show()
	return logWindow
}

// loadLogContent loads the log file into the text widget and moves to its last line.
// On failure the text widget shows the error, which is also returned.
func loadLogContent(logPath string, logText *widget.Entry, scroll *container.Scroll) error {
	content, err := os.ReadFile(logPath)
	if err != nil {
		logText.SetText(locales.Translatef("common.err.readlog", map[string]interface{}{"Error": err}))
		return err
	}

	logText.SetText(string(content))

	if lineCount := strings.Count(string(content), "\n"); lineCount > 0 {
		logText.CursorRow = lineCount
		logText.Refresh()
		scroll.ScrollToBottom()
	}
	return nil
}
