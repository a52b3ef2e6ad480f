package ui

import (
	"fmt"
	"image"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/aetherial/gardens/internal/audio"
	"github.com/aetherial/gardens/internal/config"
	"github.com/aetherial/gardens/internal/game"
	"github.com/aetherial/gardens/internal/imaging"
	"github.com/aetherial/gardens/internal/logger"
	"github.com/aetherial/gardens/internal/platform"
)

// customPuzzleState holds the in-progress setup while the player picks an
// image and a board size.
type customPuzzleState struct {
	img     image.Image
	preview *fyne.Container
	size    int
}

// buildCustomPuzzleScreen lets the player slice their own image into a
// puzzle.
func (ui *RootUI) buildCustomPuzzleScreen() fyne.CanvasObject {
	title := widget.NewLabel(ui.localization.GetText(KeyCustomPuzzle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	state := &customPuzzleState{
		preview: container.NewStack(),
		size:    ui.settings.GetLastPuzzleSize(),
	}

	chooseBtn := widget.NewButton(ui.localization.GetText(KeyChooseImage), func() {
		ui.onChooseCustomImage(state)
	})

	sizeOptions := []string{}
	for size := config.MinPuzzleSize; size <= config.MaxPuzzleSize; size++ {
		sizeOptions = append(sizeOptions, sizeOption(size))
	}
	sizeSelect := widget.NewSelect(sizeOptions, func(selected string) {
		if size, err := strconv.Atoi(selected[:1]); err == nil {
			state.size = size
		}
	})
	sizeSelect.SetSelected(sizeOption(state.size))

	startBtn := widget.NewButton(ui.localization.GetText(KeyStartPuzzle), func() {
		ui.onStartCustomPuzzle(state)
	})
	startBtn.Importance = widget.HighImportance

	backBtn := widget.NewButton(ui.localization.GetText(KeyBack), func() {
		ui.audio.Play(audio.SFXUI)
		ui.setPhase(game.PhaseMenu)
	})

	controls := container.NewVBox(
		chooseBtn,
		widget.NewLabel(ui.localization.GetText(KeyPuzzleSize)),
		sizeSelect,
		startBtn,
	)

	return container.NewBorder(
		title,
		container.NewCenter(backBtn),
		container.NewVBox(controls),
		nil,
		container.NewCenter(state.preview),
	)
}

func sizeOption(size int) string {
	return fmt.Sprintf("%d × %d", size, size)
}

// onChooseCustomImage opens the system file picker filtered to supported
// image formats, starting in the user's pictures folder when available.
func (ui *RootUI) onChooseCustomImage(state *customPuzzleState) {
	ui.audio.Play(audio.SFXUI)

	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		img, err := imaging.LoadFromFile(path)
		if err != nil {
			ui.log.Warn("custom image rejected", logger.String("path", path), logger.Err(err))
			ui.showToast(ui.localization.GetText(KeyImageLoadError))
			return
		}

		state.img = img

		preview := canvas.NewImageFromImage(imaging.Thumbnail(img, PreviewMaxSide, PreviewMaxSide))
		preview.FillMode = canvas.ImageFillContain
		preview.SetMinSize(fyne.NewSize(PreviewMaxSide*2/3, PreviewMaxSide*2/3))
		state.preview.Objects = []fyne.CanvasObject{preview}
		state.preview.Refresh()
	}, ui.window)

	picker.SetFilter(storage.NewExtensionFileFilter(platform.SupportedImageExtensions))
	if picturesDir, err := platform.GetHomePicturesDir(); err == nil {
		if uri, err := storage.ListerForURI(storage.NewFileURI(picturesDir)); err == nil {
			picker.SetLocation(uri)
		}
	}
	picker.Show()
}

func (ui *RootUI) onStartCustomPuzzle(state *customPuzzleState) {
	if state.img == nil {
		ui.showToast(ui.localization.GetText(KeyChooseImage))
		return
	}

	session, err := game.NewCustomSession(state.size, ui.rng)
	if err != nil {
		ui.log.Error("failed to start custom puzzle", logger.Err(err))
		return
	}

	ui.settings.SetLastPuzzleSize(state.size)
	ui.beginSession(session, state.img)
}
