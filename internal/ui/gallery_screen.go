package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/aetherial/gardens/internal/audio"
	"github.com/aetherial/gardens/internal/game"
	"github.com/aetherial/gardens/internal/imaging"
	"github.com/aetherial/gardens/internal/logger"
	"github.com/aetherial/gardens/internal/model"
	"github.com/aetherial/gardens/internal/platform"
)

// buildGalleryScreen shows saved memories as a thumbnail grid.
func (ui *RootUI) buildGalleryScreen() fyne.CanvasObject {
	title := widget.NewLabel(ui.localization.GetText(KeyGallery))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	backBtn := widget.NewButton(ui.localization.GetText(KeyBack), func() {
		ui.audio.Play(audio.SFXUI)
		ui.setPhase(game.PhaseMenu)
	})

	memories, err := ui.gallery.Memories()
	if err != nil {
		ui.log.Error("failed to list memories", logger.Err(err))
	}

	var center fyne.CanvasObject
	if len(memories) == 0 {
		empty := widget.NewLabel(ui.localization.GetText(KeyNoMemories))
		empty.Alignment = fyne.TextAlignCenter
		empty.Wrapping = fyne.TextWrapWord
		center = container.NewCenter(empty)
	} else {
		grid := container.NewGridWrap(fyne.NewSize(ThumbnailWidth+20, ThumbnailHeight+60))
		for _, memory := range memories {
			grid.Add(ui.memoryCard(memory))
		}
		center = container.NewVScroll(grid)
	}

	return container.NewBorder(
		title,
		container.NewCenter(backBtn),
		nil, nil,
		center,
	)
}

func (ui *RootUI) memoryCard(memory *model.Memory) fyne.CanvasObject {
	var thumb fyne.CanvasObject
	img, err := ui.gallery.LoadImage(memory)
	if err != nil {
		ui.log.Warn("failed to load memory image",
			logger.String("id", memory.ID), logger.Err(err))
		thumb = widget.NewIcon(nil)
	} else {
		picture := canvas.NewImageFromImage(imaging.Thumbnail(img, ThumbnailWidth, ThumbnailHeight))
		picture.FillMode = canvas.ImageFillContain
		picture.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
		thumb = newTappableTile(picture, func() {
			ui.showMemoryDetail(memory)
		})
	}

	info := widget.NewLabel(memory.GetDisplayInfo())
	info.Alignment = fyne.TextAlignCenter

	return container.NewVBox(thumb, info)
}

// showMemoryDetail opens a memory full-size with its metadata and a delete
// action.
func (ui *RootUI) showMemoryDetail(memory *model.Memory) {
	ui.audio.Play(audio.SFXUI)

	img, err := ui.gallery.LoadImage(memory)
	if err != nil {
		ui.showToast(err.Error())
		return
	}

	picture := canvas.NewImageFromImage(imaging.Thumbnail(img, PreviewMaxSide, PreviewMaxSide))
	picture.FillMode = canvas.ImageFillContain
	picture.SetMinSize(fyne.NewSize(PreviewMaxSide, PreviewMaxSide*3/4))

	info := widget.NewLabel(memory.GetDisplayInfo() + MiddleDotSeparator + memory.GetDisplayDate())
	info.Alignment = fyne.TextAlignCenter

	revealBtn := widget.NewButton(IconFolder, func() {
		if err := platform.OpenFileInManager(ui.gallery.ImagePath(memory)); err != nil {
			ui.log.Warn("failed to reveal memory image",
				logger.String("id", memory.ID), logger.Err(err))
			ui.showToast(err.Error())
		}
	})
	revealBtn.Importance = widget.LowImportance

	deleteBtn := widget.NewButton(ui.localization.GetText(KeyDelete), func() {
		ui.confirmDeleteMemory(memory)
	})
	deleteBtn.Importance = widget.DangerImportance

	content := container.NewVBox(picture, info, container.NewCenter(container.NewHBox(revealBtn, deleteBtn)))
	detail := dialog.NewCustom(ui.localization.GetText(KeyGallery), ui.localization.GetText(KeyBack), content, ui.window)
	detail.Show()
}

func (ui *RootUI) confirmDeleteMemory(memory *model.Memory) {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteMemory),
		ui.localization.GetText(KeyDeleteConfirm),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.gallery.DeleteMemory(memory); err != nil {
				ui.log.Error("failed to delete memory",
					logger.String("id", memory.ID), logger.Err(err))
				ui.showToast(err.Error())
				return
			}
			ui.audio.Play(audio.SFXUI)
			// Rebuild the grid without the removed entry
			ui.setPhase(game.PhaseGallery)
		},
		ui.window,
	)
}
