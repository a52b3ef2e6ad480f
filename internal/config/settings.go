package config

import (
	"fyne.io/fyne/v2"

	"github.com/aetherial/gardens/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyMasterVolume = "master_volume"
	KeyMuted        = "audio_muted"
	KeyLanguage     = "app_language"
	KeyMemoriesDir  = "memories_directory"
	KeyLastSize     = "last_puzzle_size"
)

// Default values
const (
	DefaultMasterVolume = 0.4
	DefaultLanguage     = "system"
	DefaultPuzzleSize   = 3

	MinPuzzleSize = 3
	MaxPuzzleSize = 5
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMasterVolume returns the master audio volume in the range 0..1.
func (s *Settings) GetMasterVolume() float64 {
	volume := s.app.Preferences().FloatWithFallback(KeyMasterVolume, DefaultMasterVolume)
	if volume < 0 || volume > 1 {
		s.SetMasterVolume(DefaultMasterVolume)
		return DefaultMasterVolume
	}
	return volume
}

// SetMasterVolume stores the master volume, clamped to 0..1.
func (s *Settings) SetMasterVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	s.app.Preferences().SetFloat(KeyMasterVolume, volume)
}

// GetMuted returns whether audio output is muted.
func (s *Settings) GetMuted() bool {
	return s.app.Preferences().Bool(KeyMuted)
}

// SetMuted stores the mute flag.
func (s *Settings) SetMuted(muted bool) {
	s.app.Preferences().SetBool(KeyMuted, muted)
}

// GetLanguage returns the configured UI language code.
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language code.
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMemoriesDirectory returns the directory for saved gallery images.
func (s *Settings) GetMemoriesDirectory() string {
	dir := s.app.Preferences().String(KeyMemoriesDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultMemoriesDir()
		if err != nil {
			defaultDir = platform.MemoriesDirName
		}
		s.SetMemoriesDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetMemoriesDirectory sets the gallery image directory.
func (s *Settings) SetMemoriesDirectory(dir string) {
	s.app.Preferences().SetString(KeyMemoriesDir, dir)
}

// GetLastPuzzleSize returns the board size the player last picked.
func (s *Settings) GetLastPuzzleSize() int {
	size := s.app.Preferences().IntWithFallback(KeyLastSize, DefaultPuzzleSize)
	if size < MinPuzzleSize || size > MaxPuzzleSize {
		s.SetLastPuzzleSize(DefaultPuzzleSize)
		return DefaultPuzzleSize
	}
	return size
}

// SetLastPuzzleSize stores the last picked board size, clamped to the
// supported range.
func (s *Settings) SetLastPuzzleSize(size int) {
	if size < MinPuzzleSize {
		size = MinPuzzleSize
	}
	if size > MaxPuzzleSize {
		size = MaxPuzzleSize
	}
	s.app.Preferences().SetInt(KeyLastSize, size)
}
