package gallery

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aetherial/gardens/internal/logger"
	"github.com/aetherial/gardens/internal/model"
	"github.com/aetherial/gardens/internal/platform"
	"github.com/aetherial/gardens/internal/storage"
)

// Filename layout for saved memory images.
const (
	FilenamePrefix     = "memory_"
	FilenameTimeFormat = "20060102_150405"
	FilenameExtension  = ".png"
	shortIDLength      = 8
)

// Service handles gallery operations
type Service struct {
	dir      string
	store    *storage.Store
	log      logger.Logger
	mutex    sync.Mutex
	onUpdate func() // callback for UI updates
}

// NewService creates a gallery service saving images into dir.
func NewService(dir string, store *storage.Store, log logger.Logger) (*Service, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("failed to create memories directory: %w", err)
	}
	return &Service{
		dir:   dir,
		store: store,
		log:   log,
	}, nil
}

// SetDirectory redirects future saves to a new memories folder, creating it
// if needed. Images saved earlier remain in the previous folder.
func (s *Service) SetDirectory(dir string) error {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create memories directory: %w", err)
	}

	s.mutex.Lock()
	s.dir = dir
	s.mutex.Unlock()
	return nil
}

// SetUpdateCallback sets the callback invoked after the gallery changes.
func (s *Service) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// SaveMemory writes a completed puzzle image to disk and records its
// metadata.
func (s *Service) SaveMemory(img image.Image, puzzleSize, moves, stars int) (*model.Memory, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	shortID := uuid.NewString()[:shortIDLength]
	filename := fmt.Sprintf("%s%s_%s%s", FilenamePrefix, now.Format(FilenameTimeFormat), shortID, FilenameExtension)
	path := filepath.Join(s.dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to encode memory image: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish writing memory image: %w", err)
	}

	memory := &model.Memory{
		ID:         uuid.NewString(),
		Filename:   filename,
		PuzzleSize: puzzleSize,
		Moves:      moves,
		Stars:      stars,
		CreatedAt:  now.UTC(),
	}

	if err := s.store.InsertMemory(memory); err != nil {
		// Keep disk and database consistent
		os.Remove(path)
		return nil, err
	}

	s.log.Info("memory saved",
		logger.String("filename", filename),
		logger.Int("size", puzzleSize),
		logger.Int("moves", moves),
		logger.Int("stars", stars))

	s.notifyUpdate()
	return memory, nil
}

// Memories returns all saved memories, newest first.
func (s *Service) Memories() ([]*model.Memory, error) {
	return s.store.ListMemories()
}

// ImagePath returns the on-disk location of a memory's image.
func (s *Service) ImagePath(m *model.Memory) string {
	return filepath.Join(s.dir, m.Filename)
}

// LoadImage decodes a memory's image from disk.
func (s *Service) LoadImage(m *model.Memory) (image.Image, error) {
	file, err := os.Open(s.ImagePath(m))
	if err != nil {
		return nil, fmt.Errorf("failed to open memory image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode memory image: %w", err)
	}
	return img, nil
}

// DeleteMemory removes a memory's image and metadata.
func (s *Service) DeleteMemory(m *model.Memory) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.store.DeleteMemory(m.ID); err != nil {
		return err
	}

	// Metadata is already gone; a leftover file is harmless, so log and
	// carry on if the filesystem disagrees.
	if err := os.Remove(s.ImagePath(m)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("failed to remove memory image",
			logger.String("filename", m.Filename),
			logger.Err(err))
	}

	s.log.Info("memory deleted", logger.String("filename", m.Filename))
	s.notifyUpdate()
	return nil
}

// notifyUpdate safely calls the update callback
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
