package model

import "fmt"

// Level describes a single built-in garden puzzle.
type Level struct {
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	BackgroundPath string `json:"background"` // relative to the assets directory
}

// SizeKey returns the progress key for the level's board size, e.g. "3x3".
func (l Level) SizeKey() string {
	return SizeKey(l.Rows)
}

// SizeKey formats a square board size as the key used by settings and storage.
func SizeKey(rows int) string {
	return fmt.Sprintf("%dx%d", rows, rows)
}
