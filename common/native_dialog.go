package common

import (
	"github.com/sqweek/dialog"
)

// nativeMessage shows an OS message box. Replaced in tests.
var nativeMessage = func(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}

// ShowFatalError reports an error that happened before any window exists.
// It writes to the logger when one is available and always shows a native
// message box, since Fyne dialogs need a window.
func ShowFatalError(logger *Logger, err error) {
	if err == nil {
		return
	}
	if logger != nil {
		logger.Critical("%v", err)
	}
	nativeMessage(AppDisplayName, err.Error())
}
