package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// AppDirName is the folder created under the user config directory for the
// database and other writable state.
const AppDirName = "aetherial-gardens"

// MemoriesDirName is the default folder for saved gallery images.
const MemoriesDirName = "user_memories"

// AssetsDirName is the read-only assets folder shipped next to the binary.
const AssetsDirName = "assets"

// SupportedImageExtensions lists the image formats accepted for custom
// puzzles, lowercase with leading dot.
var SupportedImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// IsSupportedImage reports whether the path has a supported image extension.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedImageExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetDataDir returns the per-user writable directory for the game, creating
// it on first use.
func GetDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	dataDir := filepath.Join(configDir, AppDirName)
	if err := CreateDirectoryIfNotExists(dataDir); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dataDir, nil
}

// GetDefaultMemoriesDir returns the default directory for gallery images,
// creating it on first use.
func GetDefaultMemoriesDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	memoriesDir := filepath.Join(dataDir, MemoriesDirName)
	if err := CreateDirectoryIfNotExists(memoriesDir); err != nil {
		return "", fmt.Errorf("failed to create memories directory: %w", err)
	}
	return memoriesDir, nil
}

// GetHomePicturesDir returns the user's Pictures directory, the default
// starting point for the custom puzzle file dialog.
func GetHomePicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Pictures"), nil
}

// FindAssetsDir locates the read-only assets directory. It checks next to
// the executable first, then the working directory, so both installed and
// `go run` launches find the shipped images and audio.
func FindAssetsDir() (string, error) {
	candidates := []string{}

	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), AssetsDirName))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, AssetsDirName))
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("assets directory not found (looked in %s)", strings.Join(candidates, ", "))
}

// OpenFileInManager opens the directory containing the file in the system
// file manager. Used by the gallery's "show in folder" action.
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, "-R", absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, "/select,", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, filepath.Dir(absPath)).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
