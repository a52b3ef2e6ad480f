package ui

// Package ui contains the Fyne-based desktop user interface for the game.
// It wires player interactions to the puzzle, gallery, and audio services
// and renders the menu, board, gallery, and settings screens. All UI
// strings are localized via Localization.
