package gallery

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aetherial/gardens/internal/logger"
	"github.com/aetherial/gardens/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), storage.DBFileName))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	service, err := NewService(filepath.Join(t.TempDir(), "memories"), store, logger.Nop())
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	return service
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	return img
}

func TestSaveMemory(t *testing.T) {
	service := newTestService(t)

	updates := 0
	service.SetUpdateCallback(func() { updates++ })

	memory, err := service.SaveMemory(testImage(64, 64), 3, 24, 2)
	if err != nil {
		t.Fatalf("Failed to save memory: %v", err)
	}

	if memory.ID == "" {
		t.Error("Memory should have an ID")
	}
	if !strings.HasPrefix(memory.Filename, FilenamePrefix) || !strings.HasSuffix(memory.Filename, FilenameExtension) {
		t.Errorf("Unexpected filename format: %s", memory.Filename)
	}
	if memory.PuzzleSize != 3 || memory.Moves != 24 || memory.Stars != 2 {
		t.Errorf("Memory metadata mismatch: %+v", memory)
	}
	if updates != 1 {
		t.Errorf("Expected 1 update callback, got %d", updates)
	}

	// Image exists on disk and decodes back
	if _, err := os.Stat(service.ImagePath(memory)); err != nil {
		t.Fatalf("Memory image missing on disk: %v", err)
	}
	img, err := service.LoadImage(memory)
	if err != nil {
		t.Fatalf("Failed to load memory image: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Errorf("Image dimensions %dx%d, expected 64x64", bounds.Dx(), bounds.Dy())
	}
}

func TestMemoriesListing(t *testing.T) {
	service := newTestService(t)

	for i := 0; i < 3; i++ {
		if _, err := service.SaveMemory(testImage(8, 8), 3, 20+i, 3); err != nil {
			t.Fatalf("Failed to save memory %d: %v", i, err)
		}
	}

	memories, err := service.Memories()
	if err != nil {
		t.Fatalf("Failed to list memories: %v", err)
	}
	if len(memories) != 3 {
		t.Errorf("Expected 3 memories, got %d", len(memories))
	}
}

func TestDeleteMemory(t *testing.T) {
	service := newTestService(t)

	memory, err := service.SaveMemory(testImage(8, 8), 4, 50, 2)
	if err != nil {
		t.Fatalf("Failed to save memory: %v", err)
	}
	path := service.ImagePath(memory)

	if err := service.DeleteMemory(memory); err != nil {
		t.Fatalf("Failed to delete memory: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Image file should be removed on delete")
	}
	memories, _ := service.Memories()
	if len(memories) != 0 {
		t.Errorf("Expected empty gallery, got %d entries", len(memories))
	}

	// Double delete reports the missing entry
	if err := service.DeleteMemory(memory); err == nil {
		t.Error("Deleting a removed memory should return an error")
	}
}

func TestSetDirectory(t *testing.T) {
	service := newTestService(t)

	first, err := service.SaveMemory(testImage(8, 8), 3, 30, 1)
	if err != nil {
		t.Fatalf("Failed to save memory: %v", err)
	}
	oldPath := service.ImagePath(first)

	newDir := filepath.Join(t.TempDir(), "relocated")
	if err := service.SetDirectory(newDir); err != nil {
		t.Fatalf("Failed to switch directory: %v", err)
	}

	second, err := service.SaveMemory(testImage(8, 8), 4, 44, 2)
	if err != nil {
		t.Fatalf("Failed to save memory after switch: %v", err)
	}
	if filepath.Dir(service.ImagePath(second)) != newDir {
		t.Errorf("New memory should live in %s, got %s", newDir, service.ImagePath(second))
	}
	if _, err := os.Stat(service.ImagePath(second)); err != nil {
		t.Errorf("New memory image missing on disk: %v", err)
	}

	// Earlier images stay where they were written
	if _, err := os.Stat(oldPath); err != nil {
		t.Errorf("Earlier memory image should remain in the old folder: %v", err)
	}
}
