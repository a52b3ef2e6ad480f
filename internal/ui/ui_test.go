package ui

import (
	"image"
	"math/rand"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/aetherial/gardens/internal/gallery"
	"github.com/aetherial/gardens/internal/game"
	"github.com/aetherial/gardens/internal/logger"
	"github.com/aetherial/gardens/internal/model"
	"github.com/aetherial/gardens/internal/puzzle"
	"github.com/aetherial/gardens/internal/storage"
	"github.com/aetherial/gardens/internal/telemetry"
)

// nopPlayer satisfies audio.Player for tests that need no sound.
type nopPlayer struct{}

func (nopPlayer) Play(string)       {}
func (nopPlayer) StartAmbient()     {}
func (nopPlayer) SetVolume(float64) {}
func (nopPlayer) SetMuted(bool)     {}
func (nopPlayer) Close()            {}

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")

	store, err := storage.Open(filepath.Join(t.TempDir(), storage.DBFileName))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	gallerySvc, err := gallery.NewService(filepath.Join(t.TempDir(), "memories"), store, logger.Nop())
	if err != nil {
		t.Fatalf("Failed to create gallery: %v", err)
	}

	return NewRootUI(window, app, store, nopPlayer{}, gallerySvc, telemetry.NoopTracer(), logger.Nop())
}

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyPlay); got != "Play" {
		t.Errorf("Expected English default, got %q", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Unknown key should fall back to itself, got %q", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyPlay); got != "Играть" {
		t.Errorf("Expected Russian text, got %q", got)
	}

	// Unsupported language keeps the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unsupported language should be ignored, got %q", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should resolve to English, got %q", l.GetCurrentLanguage())
	}
}

func TestStarRow(t *testing.T) {
	tests := []struct {
		stars int
		want  string
	}{
		{0, "☆☆☆"},
		{1, "★☆☆"},
		{2, "★★☆"},
		{3, "★★★"},
	}
	for _, tt := range tests {
		if got := starRow(tt.stars); got != tt.want {
			t.Errorf("starRow(%d) = %q, expected %q", tt.stars, got, tt.want)
		}
	}
}

func newTestBoardSession(t *testing.T) *game.Session {
	t.Helper()
	session, err := game.NewSession(model.Level{Name: "Test", Rows: 3}, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}
	return session
}

func TestBoardViewNumberedTiles(t *testing.T) {
	test.NewApp()

	session := newTestBoardSession(t)
	view := NewBoardView(session, nil, nil, nil)

	if got := len(view.grid.Objects); got != 9 {
		t.Errorf("Expected 9 tile objects, got %d", got)
	}
	if view.SourceImage() != nil {
		t.Error("Numbered board should have no source image")
	}
}

func TestBoardViewTapCounts(t *testing.T) {
	test.NewApp()

	session := newTestBoardSession(t)

	moves := 0
	view := NewBoardView(session, nil, func() { moves++ }, nil)

	// Find a tile adjacent to the empty slot
	empty := session.Board().Empty()
	var target puzzle.Pos
	if empty.Row > 0 {
		target = puzzle.Pos{Row: empty.Row - 1, Col: empty.Col}
	} else {
		target = puzzle.Pos{Row: empty.Row + 1, Col: empty.Col}
	}

	view.handleTap(target)
	if session.Moves() != 1 {
		t.Errorf("Expected 1 move after tap, got %d", session.Moves())
	}
	if moves != 1 {
		t.Errorf("Expected onMove callback once, got %d", moves)
	}

	// Tapping the now-empty slot is a no-op
	view.handleTap(session.Board().Empty())
	if session.Moves() != 1 {
		t.Errorf("No-op tap changed move count: %d", session.Moves())
	}
}

func TestSaveMemoryAgainAfterRestart(t *testing.T) {
	ui := newTestRootUI(t)

	session, err := game.NewCustomSession(3, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Failed to start custom session: %v", err)
	}
	ui.beginSession(session, image.NewRGBA(image.Rect(0, 0, 90, 90)))

	ui.onSaveMemory(30, 2)
	if !ui.solvedSaved {
		t.Fatal("First save should mark the session saved")
	}

	// The flag guards against duplicate saves of the same solve
	ui.onSaveMemory(30, 2)
	memories, err := ui.gallery.Memories()
	if err != nil {
		t.Fatalf("Failed to list memories: %v", err)
	}
	if len(memories) != 1 {
		t.Fatalf("Repeated save of one solve should be ignored, got %d memories", len(memories))
	}

	// A restarted round is a fresh solve and must be saveable again
	ui.onRestart()
	if ui.solvedSaved {
		t.Fatal("Restart should clear the saved flag")
	}

	ui.onSaveMemory(42, 1)
	memories, err = ui.gallery.Memories()
	if err != nil {
		t.Fatalf("Failed to list memories: %v", err)
	}
	if len(memories) != 2 {
		t.Errorf("Save after restart should add a second memory, got %d", len(memories))
	}
}
