package model

import (
	"fmt"
	"time"
)

// Memory represents a completed puzzle saved to the gallery.
type Memory struct {
	ID         string
	Filename   string // image file name inside the memories directory
	PuzzleSize int    // board size, e.g. 3 for a 3x3 puzzle
	Moves      int
	Stars      int
	CreatedAt  time.Time
}

// GetDisplayInfo returns a one-line summary for thumbnails and list rows.
func (m *Memory) GetDisplayInfo() string {
	return fmt.Sprintf("%dx%d · %d moves · %d★", m.PuzzleSize, m.PuzzleSize, m.Moves, m.Stars)
}

// GetDisplayDate returns the completion date without the time component.
func (m *Memory) GetDisplayDate() string {
	if m.CreatedAt.IsZero() {
		return "—"
	}
	return m.CreatedAt.Format("2006-01-02")
}
