package game

import (
	"fmt"
	"math/rand"

	"github.com/aetherial/gardens/internal/leveldata"
	"github.com/aetherial/gardens/internal/model"
	"github.com/aetherial/gardens/internal/puzzle"
)

// Session is one playthrough of a level: the shuffled board, the move
// counter, and the pause state. It is not safe for concurrent use; the UI
// drives it from the event loop.
type Session struct {
	Level  model.Level
	Custom bool

	board  *puzzle.Board
	rng    *rand.Rand
	moves  int
	paused bool
}

// NewSession starts a level with a freshly shuffled board.
func NewSession(level model.Level, rng *rand.Rand) (*Session, error) {
	if level.Rows < 2 {
		return nil, fmt.Errorf("level %q has invalid size %d", level.Name, level.Rows)
	}

	s := &Session{Level: level, rng: rng}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewCustomSession starts a session for a player-supplied image puzzle.
func NewCustomSession(rows int, rng *rand.Rand) (*Session, error) {
	level := model.Level{
		Name: fmt.Sprintf("Custom %d × %d", rows, rows),
		Rows: rows,
	}
	s, err := NewSession(level, rng)
	if err != nil {
		return nil, err
	}
	s.Custom = true
	return s, nil
}

func (s *Session) reset() error {
	board, err := puzzle.New(s.Level.Rows, s.Level.Rows)
	if err != nil {
		return err
	}
	board.Shuffle(s.rng, puzzle.DefaultShuffleMoves)

	s.board = board
	s.moves = 0
	s.paused = false
	return nil
}

// Board exposes the current board for rendering.
func (s *Session) Board() *puzzle.Board {
	return s.board
}

// Tap attempts to slide the tile at p into the empty slot. Moves are only
// counted when a tile actually slides, and taps are ignored while paused or
// after the puzzle is solved.
func (s *Session) Tap(p puzzle.Pos) bool {
	if s.paused || s.board.IsSolved() {
		return false
	}
	if !s.board.Slide(p) {
		return false
	}
	s.moves++
	return true
}

// Moves returns the number of successful slides this session.
func (s *Session) Moves() int {
	return s.moves
}

// Solved reports whether every tile is back in place.
func (s *Session) Solved() bool {
	return s.board.IsSolved()
}

// Pause stops the session from accepting moves.
func (s *Session) Pause() {
	s.paused = true
}

// Resume re-enables moves.
func (s *Session) Resume() {
	s.paused = false
}

// Paused reports the pause state.
func (s *Session) Paused() bool {
	return s.paused
}

// Restart reshuffles the board and clears the move counter.
func (s *Session) Restart() {
	// reset cannot fail once the session was built
	_ = s.reset()
}

// Stars rates the finished session against the level's thresholds. A
// completed puzzle always earns at least one star.
func (s *Session) Stars(thresholds leveldata.StarThresholds) int {
	return thresholds.Rate(s.Level.Rows, s.moves)
}

// SizeKey returns the progress key for this session's board size.
func (s *Session) SizeKey() string {
	return model.SizeKey(s.Level.Rows)
}
