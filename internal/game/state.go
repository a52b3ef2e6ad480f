// Package game holds the pure play logic: the screen phases and a play
// session tying a level to a shuffled board with move counting and scoring.
package game

// Phase identifies which screen the player is on.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseLevelSelect
	PhasePlaying
	PhasePaused
	PhaseGallery
	PhaseCustomPuzzle
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseLevelSelect:
		return "level_select"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGallery:
		return "gallery"
	case PhaseCustomPuzzle:
		return "custom_puzzle"
	default:
		return "unknown"
	}
}
