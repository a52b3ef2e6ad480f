package ui

import (
	"image"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/aetherial/gardens/internal/imaging"
	"github.com/aetherial/gardens/internal/platform"
)

const AppIcon = "aetherial-gardens.png"

// LoadAppIcon loads the window icon from the assets directory.
func LoadAppIcon() (fyne.Resource, error) {
	dir, err := platform.FindAssetsDir()
	if err != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(filepath.Join(dir, AppIcon))
}

// LoadLevelImage loads a level background by its path relative to the assets
// directory. A missing image is a normal condition; the board falls back to
// numbered tiles.
func LoadLevelImage(relPath string) (image.Image, error) {
	dir, err := platform.FindAssetsDir()
	if err != nil {
		return nil, err
	}
	return imaging.LoadFromFile(filepath.Join(dir, relPath))
}
