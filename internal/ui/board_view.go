package ui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/aetherial/gardens/internal/game"
	"github.com/aetherial/gardens/internal/imaging"
	"github.com/aetherial/gardens/internal/puzzle"
)

// tappableTile wraps a canvas object so image tiles receive tap events.
type tappableTile struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	onTapped func()
}

func newTappableTile(content fyne.CanvasObject, onTapped func()) *tappableTile {
	t := &tappableTile{content: content, onTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tappableTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

func (t *tappableTile) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

// BoardView renders a play session as a tappable tile grid. Tiles show
// slices of the level image when one is available, numbered buttons
// otherwise.
type BoardView struct {
	session *game.Session

	sourceImage image.Image   // square source, nil for numbered boards
	tileImages  []image.Image // row-major by solved position

	grid *fyne.Container

	onMove   func()
	onSolved func()
}

// NewBoardView creates a board view for the session. img may be nil; when
// set it is cropped square and sliced into tiles.
func NewBoardView(session *game.Session, img image.Image, onMove, onSolved func()) *BoardView {
	v := &BoardView{
		session:  session,
		onMove:   onMove,
		onSolved: onSolved,
	}

	if img != nil {
		square := imaging.CropSquare(img)
		tiles, err := imaging.SliceTiles(square, session.Board().Rows)
		if err == nil {
			v.sourceImage = square
			v.tileImages = tiles
		}
	}

	v.grid = container.NewGridWithColumns(session.Board().Cols)
	v.rebuild()
	return v
}

// Container returns the renderable board.
func (v *BoardView) Container() fyne.CanvasObject {
	return v.grid
}

// SourceImage returns the square image the board was built from, nil for
// numbered boards.
func (v *BoardView) SourceImage() image.Image {
	return v.sourceImage
}

// Refresh redraws the grid from the current board state.
func (v *BoardView) Refresh() {
	v.rebuild()
	v.grid.Refresh()
}

func (v *BoardView) rebuild() {
	board := v.session.Board()

	v.grid.Objects = v.grid.Objects[:0]
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			v.grid.Add(v.tileObject(puzzle.Pos{Row: r, Col: c}))
		}
	}
}

func (v *BoardView) tileObject(p puzzle.Pos) fyne.CanvasObject {
	number := v.session.Board().Tile(p.Row, p.Col)
	if number == 0 {
		slot := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
		return newTappableTile(slot, nil)
	}

	tap := func() { v.handleTap(p) }

	if v.tileImages != nil {
		home := v.session.Board().SolvedPos(number)
		img := canvas.NewImageFromImage(v.tileImages[home.Row*v.session.Board().Cols+home.Col])
		img.FillMode = canvas.ImageFillContain
		img.ScaleMode = canvas.ImageScaleFastest
		return newTappableTile(img, tap)
	}

	btn := widget.NewButton(fmt.Sprintf("%d", number), tap)
	return btn
}

func (v *BoardView) handleTap(p puzzle.Pos) {
	if !v.session.Tap(p) {
		return
	}

	v.Refresh()
	if v.onMove != nil {
		v.onMove()
	}
	if v.session.Solved() && v.onSolved != nil {
		v.onSolved()
	}
}
