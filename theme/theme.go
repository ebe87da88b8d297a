// Package theme provides the dark look of the application, used regardless
// of the system light/dark preference.
package theme

import (
	"image/color"

	"HelloWorld/assets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// accent is the primary, focus and selection color (#C2143D).
var accent = color.NRGBA{R: 194, G: 20, B: 61, A: 255}

var palette = map[fyne.ThemeColorName]color.Color{
	theme.ColorNameBackground:          color.NRGBA{R: 30, G: 30, B: 30, A: 255},
	theme.ColorNameButton:              color.NRGBA{R: 30, G: 30, B: 30, A: 255},
	theme.ColorNameDisabledButton:      color.NRGBA{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	theme.ColorNameDisabled:            color.NRGBA{R: 150, G: 150, B: 150, A: 255},
	theme.ColorNameError:               accent,
	theme.ColorNameFocus:               accent,
	theme.ColorNameForeground:          color.White,
	theme.ColorNameForegroundOnError:   color.White,
	theme.ColorNameForegroundOnPrimary: color.White,
	theme.ColorNameHeaderBackground:    color.NRGBA{R: 58, G: 58, B: 58, A: 255},
	theme.ColorNameHover:               color.NRGBA{R: 71, G: 71, B: 71, A: 255},
	theme.ColorNameInputBackground:     color.Black,
	theme.ColorNameInputBorder:         color.NRGBA{R: 33, G: 33, B: 33, A: 255},
	theme.ColorNameMenuBackground:      color.NRGBA{R: 41, G: 41, B: 46, A: 255},
	theme.ColorNameOverlayBackground:   color.NRGBA{R: 33, G: 33, B: 33, A: 255},
	theme.ColorNamePlaceHolder:         color.NRGBA{R: 179, G: 179, B: 179, A: 255},
	theme.ColorNamePressed:             color.NRGBA{R: 33, G: 33, B: 33, A: 255},
	theme.ColorNamePrimary:             accent,
	theme.ColorNameScrollBar:           color.NRGBA{R: 66, G: 66, B: 66, A: 255},
	theme.ColorNameSelection:           accent,
	theme.ColorNameSeparator:           color.Black,
	theme.ColorNameShadow:              color.NRGBA{A: 66},
	theme.ColorNameSuccess:             color.NRGBA{R: 67, G: 244, B: 54, A: 255},
	theme.ColorNameWarning:             color.NRGBA{R: 255, G: 152, B: 0, A: 255},
}

var sizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNameSeparatorThickness: 1,
	theme.SizeNameInlineIcon:         20,
	theme.SizeNameInnerPadding:       8,
	theme.SizeNameLineSpacing:        6,
	theme.SizeNamePadding:            4,
	theme.SizeNameText:               15,
	theme.SizeNameHeadingText:        24,
	theme.SizeNameSubHeadingText:     18,
	theme.SizeNameCaptionText:        11,
	theme.SizeNameInputBorder:        1,
	theme.SizeNameInputRadius:        8,
	theme.SizeNameSelectionRadius:    8,
}

type customTheme struct {
	base fyne.Theme
}

// NewCustomTheme returns the application theme
func NewCustomTheme() fyne.Theme {
	return &customTheme{base: theme.DefaultTheme()}
}

func (t *customTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if c, ok := palette[name]; ok {
		return c
	}
	return t.base.Color(name, theme.VariantDark)
}

func (t *customTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := sizes[name]; ok {
		return s
	}
	return t.base.Size(name)
}

func (t *customTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *customTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// AppIcon returns the application icon
func AppIcon() fyne.Resource {
	return assets.ResourceAppLogo
}
