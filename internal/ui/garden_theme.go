package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GardenTheme defines the game's visual theme: soft greens on a warm
// background, with slightly larger touch-friendly sizing for the board.
type GardenTheme struct{}

// NewGardenTheme creates a new garden theme
func NewGardenTheme() fyne.Theme {
	return &GardenTheme{}
}

// Color returns theme colors
func (t *GardenTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 76, G: 140, B: 87, A: 255} // Garden green for primary actions
	case theme.ColorNameSuccess:
		return color.RGBA{R: 103, G: 174, B: 110, A: 255} // Light green for solved
	case theme.ColorNameWarning:
		return color.RGBA{R: 212, G: 175, B: 55, A: 255} // Gold for stars
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 65, B: 50, A: 255} // Clay red for errors
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 32, B: 27, A: 255} // Deep moss
		}
		return color.RGBA{R: 240, G: 244, B: 235, A: 255} // Morning mist
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 232, G: 238, B: 228, A: 255}
		}
		return color.RGBA{R: 38, G: 50, B: 42, A: 255}
	case theme.ColorNameButton:
		if variant == theme.VariantDark {
			return color.RGBA{R: 40, G: 54, B: 45, A: 255}
		}
		return color.RGBA{R: 220, G: 230, B: 214, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GardenTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GardenTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *GardenTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22 // Larger headings for screen titles
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 6 // Rounder corners fit the garden look
	case theme.SizeNameSelectionRadius:
		return 4
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
