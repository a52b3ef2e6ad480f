package gallery

import (
	"image"

	"github.com/aetherial/gardens/internal/model"
)

// Curator defines the interface for the gallery service.
type Curator interface {
	SetUpdateCallback(func())
	SetDirectory(dir string) error
	SaveMemory(img image.Image, puzzleSize, moves, stars int) (*model.Memory, error)
	Memories() ([]*model.Memory, error)
	LoadImage(m *model.Memory) (image.Image, error)
	ImagePath(m *model.Memory) string
	DeleteMemory(m *model.Memory) error
}
