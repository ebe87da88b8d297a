package ui

import (
	"fmt"

	"HelloWorld/common"
	"HelloWorld/locales"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// settingsForm holds the widgets of the settings dialog.
type settingsForm struct {
	configMgr         *common.ConfigManager
	errorHandler      *common.ErrorHandler
	onLanguageChanged func(code string)

	langItems      []common.LanguageItem
	languageSelect *widget.Select
	saveButton     *widget.Button
	content        fyne.CanvasObject
}

func newSettingsForm(configMgr *common.ConfigManager, errorHandler *common.ErrorHandler, onLanguageChanged func(string)) *settingsForm {
	f := &settingsForm{
		configMgr:         configMgr,
		errorHandler:      errorHandler,
		onLanguageChanged: onLanguageChanged,
		langItems:         common.GetAvailableLanguages(),
	}

	langOptions := make([]string, len(f.langItems))
	for i, lang := range f.langItems {
		langOptions[i] = lang.Name
	}

	f.languageSelect = widget.NewSelect(langOptions, func(string) {
		if f.saveButton != nil {
			f.saveButton.SetIcon(nil)
			f.saveButton.SetText(locales.Translate("settings.write.settings"))
		}
	})
	current := configMgr.GetGlobalConfig().Language
	for _, lang := range f.langItems {
		if lang.Code == current {
			f.languageSelect.SetSelected(lang.Name)
			break
		}
	}

	f.saveButton = widget.NewButton(locales.Translate("settings.write.settings"), f.save)
	f.saveButton.Importance = widget.HighImportance

	f.content = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(locales.Translate("settings.lang.sel"), f.languageSelect),
		),
		container.NewHBox(layout.NewSpacer(), f.saveButton),
	)
	return f
}

// selectedCode maps the selected display name back to a language code.
func (f *settingsForm) selectedCode() string {
	for _, lang := range f.langItems {
		if lang.Name == f.languageSelect.Selected {
			return lang.Code
		}
	}
	return ""
}

func (f *settingsForm) save() {
	code := f.selectedCode()
	if code == "" {
		return
	}

	cfg := f.configMgr.GetGlobalConfig()
	changed := code != cfg.Language
	cfg.Language = code
	if err := f.configMgr.SaveGlobalConfig(cfg); err != nil {
		context := common.NewErrorContext("Settings", common.OperationSaveConfig)
		f.errorHandler.ShowStandardError(fmt.Errorf("%s: %w", locales.Translate("settings.err.save"), err), &context)
		return
	}

	f.saveButton.SetText(locales.Translate("settings.status.saved"))
	f.saveButton.SetIcon(theme.ConfirmIcon())

	if changed && f.onLanguageChanged != nil {
		f.onLanguageChanged(code)
	}
}

// ShowSettingsWindow shows the settings as a modal dialog over parent.
// onLanguageChanged runs after a different language has been saved.
func ShowSettingsWindow(parent fyne.Window, configMgr *common.ConfigManager, errorHandler *common.ErrorHandler, onLanguageChanged func(code string)) dialog.Dialog {
	form := newSettingsForm(configMgr, errorHandler, onLanguageChanged)

	settingsDialog := dialog.NewCustom(
		locales.Translate("settings.win.title"),
		locales.Translate("common.button.close"),
		form.content,
		parent,
	)
	settingsDialog.Resize(fyne.NewSize(400, 200))
	settingsDialog.Show()
	return settingsDialog
}
