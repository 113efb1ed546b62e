package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Display colors used by the now-playing panel. The green-on-black scheme
// follows the classic desktop audio player look.
var (
	DisplayTextColor       = color.RGBA{R: 0, G: 230, B: 118, A: 255}
	DisplayBackgroundColor = color.RGBA{R: 10, G: 12, B: 10, A: 255}
	RecordingActiveColor   = color.RGBA{R: 229, G: 57, B: 53, A: 255}
)

// RetroTheme is the always-dark compact theme of the player window
type RetroTheme struct{}

// NewRetroTheme creates the player theme
func NewRetroTheme() fyne.Theme {
	return &RetroTheme{}
}

// Color returns theme colors
func (t *RetroTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 0, G: 230, B: 118, A: 255} // Green for active playback
	case theme.ColorNameError:
		return color.RGBA{R: 229, G: 57, B: 53, A: 255} // Red for errors and recording
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for warnings
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 151, B: 89, A: 255} // Dimmed green for primary actions
	case theme.ColorNameBackground:
		return color.RGBA{R: 24, G: 26, B: 27, A: 255} // Dark regardless of variant
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 34, G: 36, B: 38, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 222, G: 226, B: 230, A: 255} // Light text
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *RetroTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *RetroTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *RetroTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameSubHeadingText:
		return 13 // Reduced from default 16
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
