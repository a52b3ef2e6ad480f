package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestMasterVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if volume := settings.GetMasterVolume(); volume != DefaultMasterVolume {
		t.Errorf("Expected default volume %v, got %v", DefaultMasterVolume, volume)
	}

	// Test setting custom value
	settings.SetMasterVolume(0.75)
	if volume := settings.GetMasterVolume(); volume != 0.75 {
		t.Errorf("Expected volume 0.75, got %v", volume)
	}

	// Test boundary values
	settings.SetMasterVolume(-0.5) // Should be clamped to 0
	if settings.GetMasterVolume() != 0 {
		t.Error("Volume should be clamped to minimum 0")
	}

	settings.SetMasterVolume(1.5) // Should be clamped to 1
	if settings.GetMasterVolume() != 1 {
		t.Error("Volume should be clamped to maximum 1")
	}
}

func TestMuted(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMuted() {
		t.Error("Audio should not be muted by default")
	}

	settings.SetMuted(true)
	if !settings.GetMuted() {
		t.Error("Expected muted after SetMuted(true)")
	}

	settings.SetMuted(false)
	if settings.GetMuted() {
		t.Error("Expected unmuted after SetMuted(false)")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}

	// Empty resets to default
	settings.SetLanguage("")
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language after empty set, got %s", lang)
	}
}

func TestMemoriesDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is resolved and persisted on first read
	dir := settings.GetMemoriesDirectory()
	if dir == "" {
		t.Error("Memories directory should not be empty")
	}

	customDir := "/custom/memories"
	settings.SetMemoriesDirectory(customDir)
	if got := settings.GetMemoriesDirectory(); got != customDir {
		t.Errorf("Expected memories directory %s, got %s", customDir, got)
	}
}

func TestLastPuzzleSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if size := settings.GetLastPuzzleSize(); size != DefaultPuzzleSize {
		t.Errorf("Expected default size %d, got %d", DefaultPuzzleSize, size)
	}

	settings.SetLastPuzzleSize(5)
	if size := settings.GetLastPuzzleSize(); size != 5 {
		t.Errorf("Expected size 5, got %d", size)
	}

	// Test boundary values
	settings.SetLastPuzzleSize(2) // Should be clamped to 3
	if settings.GetLastPuzzleSize() != MinPuzzleSize {
		t.Error("Size should be clamped to minimum 3")
	}

	settings.SetLastPuzzleSize(9) // Should be clamped to 5
	if settings.GetLastPuzzleSize() != MaxPuzzleSize {
		t.Error("Size should be clamped to maximum 5")
	}
}
