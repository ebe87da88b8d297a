// common/error_handler.go

package common

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"HelloWorld/locales"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ErrorContext provides additional information about an error
type ErrorContext struct {
	Module      string
	Operation   string
	Error       error
	Severity    Severity
	Recoverable bool
	Timestamp   time.Time
	StackTrace  string
}

// NewErrorContext creates a new error context with defaults
func NewErrorContext(module, operation string) ErrorContext {
	return ErrorContext{
		Module:      module,
		Operation:   operation,
		Severity:    SeverityError,
		Recoverable: true,
		Timestamp:   time.Now(),
	}
}

// ErrorHandler logs application errors and shows them in dialogs over its window
type ErrorHandler struct {
	logger *Logger
	window fyne.Window
}

// NewErrorHandler creates a new error handler instance
func NewErrorHandler(logger *Logger) (*ErrorHandler, error) {
	if logger == nil {
		return nil, errors.New("error handler requires a logger")
	}
	return &ErrorHandler{logger: logger}, nil
}

// SetWindow sets the window for displaying error dialogs
func (h *ErrorHandler) SetWindow(window fyne.Window) {
	h.window = window
}

// GetLogger returns the logger instance
func (h *ErrorHandler) GetLogger() *Logger {
	return h.logger
}

// ShowError displays an error dialog and logs the error
func (h *ErrorHandler) ShowError(err error) {
	if err == nil {
		return
	}

	h.logger.Error("%v", err)

	if h.window != nil {
		dialog.ShowError(err, h.window)
	}
}

// ShowErrorWithContext displays an error dialog with context and logs the error
func (h *ErrorHandler) ShowErrorWithContext(context ErrorContext) {
	if context.Error == nil {
		return
	}

	severity := context.Severity
	if severity == "" {
		severity = SeverityError
	}
	h.logger.Log(severity, "%s/%s: %v", context.Module, context.Operation, context.Error)

	if h.window != nil {
		h.showErrorDialog(locales.Translate("common.dialog.errorheader"), context)
	}
}

// ShowStandardError attaches err to context and shows it
func (h *ErrorHandler) ShowStandardError(err error, context *ErrorContext) {
	if err == nil || context == nil {
		h.ShowError(err)
		return
	}

	context.Error = err
	h.ShowErrorWithContext(*context)
}

// ShowInitializationErrorDialog reports a startup problem the application recovered from
func (h *ErrorHandler) ShowInitializationErrorDialog(err error) {
	if err == nil {
		return
	}

	h.logger.Warning("Initialization error: %v", err)

	if h.window != nil {
		context := NewErrorContext("Startup", OperationLoadConfig)
		context.Error = errors.New(locales.Translatef("common.err.configload", map[string]interface{}{"Error": err}))
		context.Severity = SeverityWarning
		h.showErrorDialog(locales.Translate("common.dialog.initerror"), context)
	}
}

// ShowPanicError logs a recovered panic and shows it with its stack trace
func (h *ErrorHandler) ShowPanicError(recovered interface{}, stackTrace string) {
	h.logger.Critical("PANIC RECOVERED: %v\n%s", recovered, stackTrace)

	if h.window != nil {
		context := NewErrorContext("Application", "Run")
		context.Error = fmt.Errorf("%v", recovered)
		context.Severity = SeverityCritical
		context.Recoverable = false
		context.StackTrace = stackTrace
		h.showErrorDialog(locales.Translate("common.dialog.panicheader"), context)
	}
}

func (h *ErrorHandler) showErrorDialog(title string, context ErrorContext) {
	message := widget.NewLabel(context.Error.Error())
	message.Wrapping = fyne.TextWrapWord

	detailsLabel := widget.NewLabel(fmt.Sprintf("Module: %s\nOperation: %s", context.Module, context.Operation))
	detailsLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		message,
		widget.NewSeparator(),
		detailsLabel,
	)

	if context.StackTrace != "" {
		showText := locales.Translate("common.button.showdetails")
		hideText := locales.Translate("common.button.hidedetails")

		stackTraceArea := widget.NewMultiLineEntry()
		stackTraceArea.SetText(context.StackTrace)
		stackTraceArea.Disable()

		showStackTraceBtn := widget.NewButtonWithIcon(showText, theme.InfoIcon(), nil)
		showStackTraceBtn.OnTapped = func() {
			if strings.Contains(showStackTraceBtn.Text, showText) {
				content.Add(stackTraceArea)
				showStackTraceBtn.SetText(hideText)
			} else {
				content.Remove(stackTraceArea)
				showStackTraceBtn.SetText(showText)
			}
		}
		content.Add(showStackTraceBtn)
	}

	customDialog := dialog.NewCustom(
		title,
		locales.Translate("common.button.ok"),
		content,
		h.window,
	)
	customDialog.Resize(fyne.NewSize(400, content.MinSize().Height))
	customDialog.Show()
}
