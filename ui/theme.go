package ui

import (
	"Countdown/timer"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme draws the countdown white on black.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color overrides the background and foreground colors.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return timer.BackgroundColor
	case theme.ColorNameForeground:
		return timer.ForegroundColor
	}
	return t.Theme.Color(name, variant)
}
