package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"secret-wallet/internal/config"
)

// variantTheme pins the default theme to one colour variant regardless of
// the desktop setting.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// NewTheme returns the theme for a configured ui.theme value. Unknown names
// get the dark variant.
func NewTheme(name string) fyne.Theme {
	variant := theme.VariantDark
	if name == config.ThemeLight {
		variant = theme.VariantLight
	}
	return variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}
