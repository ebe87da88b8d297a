// Package ui provides the secondary windows and dialogs of the application
package ui

import (
	"HelloWorld/assets"
	"HelloWorld/common"
	"HelloWorld/locales"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// aboutText is the localized body of the about dialog.
func aboutText() string {
	return locales.Translatef("about.text", map[string]interface{}{
		"Name":    locales.Translate("main.app.title"),
		"Version": common.AppVersion,
	})
}

// ShowAboutWindow shows the application name, version and icon.
func ShowAboutWindow(parent fyne.Window) dialog.Dialog {
	icon := canvas.NewImageFromResource(assets.ResourceAppLogo)
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(64, 64))

	text := widget.NewLabel(aboutText())
	text.Alignment = fyne.TextAlignCenter

	about := dialog.NewCustom(
		locales.Translate("about.win.title"),
		locales.Translate("common.button.ok"),
		container.NewVBox(icon, text),
		parent,
	)
	about.Show()
	return about
}
