package gallery

// Package gallery manages the player's saved "memories": images of completed
// puzzles kept on disk with their metadata in the storage layer.
