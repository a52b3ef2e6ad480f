package ui

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aetherial/gardens/internal/audio"
	"github.com/aetherial/gardens/internal/config"
	"github.com/aetherial/gardens/internal/gallery"
	"github.com/aetherial/gardens/internal/game"
	"github.com/aetherial/gardens/internal/leveldata"
	"github.com/aetherial/gardens/internal/logger"
	"github.com/aetherial/gardens/internal/model"
	"github.com/aetherial/gardens/internal/storage"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	settings     *config.Settings
	localization *Localization
	log          logger.Logger
	tracer       trace.Tracer

	levels     *leveldata.LevelRegistry
	thresholds leveldata.StarThresholds
	progress   *model.Progress
	store      *storage.Store
	audio      audio.Player
	gallery    gallery.Curator

	rng   *rand.Rand
	phase game.Phase

	// Active play session, nil outside PhasePlaying/PhasePaused
	session     *game.Session
	sessionSpan trace.Span
	boardView   *BoardView
	movesLabel  *widget.Label
	solvedSaved bool

	content *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store *storage.Store, audioSvc audio.Player, gallerySvc gallery.Curator, tracer trace.Tracer, log logger.Logger) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		log:          log,
		tracer:       tracer,
		levels:       leveldata.MustLoadLevelRegistry(),
		thresholds:   leveldata.MustLoadStarThresholds(),
		store:        store,
		audio:        audioSvc,
		gallery:      gallerySvc,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	progress, err := store.LoadProgress()
	if err != nil {
		log.Error("failed to load progress, starting fresh", logger.Err(err))
		progress = model.NewProgress()
	}
	ui.progress = progress

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.content = container.NewStack()
	ui.window.SetContent(ui.content)
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)

	ui.setPhase(game.PhaseMenu)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	quitItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), ui.app.Quit)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, quitItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	// Rebuild texts for the current screen and menu checkmarks
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
	ui.setPhase(ui.phase)
}

// setPhase switches the visible screen.
func (ui *RootUI) setPhase(phase game.Phase) {
	ui.log.Debug("phase change",
		logger.String("from", ui.phase.String()),
		logger.String("to", phase.String()))
	ui.phase = phase

	var screen fyne.CanvasObject
	switch phase {
	case game.PhaseMenu:
		ui.endSession()
		screen = ui.buildMenuScreen()
	case game.PhaseLevelSelect:
		screen = ui.buildLevelSelectScreen()
	case game.PhasePlaying:
		screen = ui.buildPlayingScreen()
	case game.PhasePaused:
		screen = ui.buildPausedScreen()
	case game.PhaseGallery:
		screen = ui.buildGalleryScreen()
	case game.PhaseCustomPuzzle:
		screen = ui.buildCustomPuzzleScreen()
	default:
		screen = ui.buildMenuScreen()
	}

	ui.content.Objects = []fyne.CanvasObject{screen}
	ui.content.Refresh()
}

// onTypedKey handles keyboard shortcuts. Escape pauses a running game,
// resumes a paused one, backs out of sub-screens, and quits from the menu.
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	if event.Name != fyne.KeyEscape {
		return
	}

	switch ui.phase {
	case game.PhasePlaying:
		ui.onPause()
	case game.PhasePaused:
		ui.onResume()
	case game.PhaseLevelSelect, game.PhaseGallery, game.PhaseCustomPuzzle:
		ui.audio.Play(audio.SFXUI)
		ui.setPhase(game.PhaseMenu)
	case game.PhaseMenu:
		ui.app.Quit()
	}
}

// Screens

func (ui *RootUI) buildMenuScreen() fyne.CanvasObject {
	title := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	title.SizeName = theme.SizeNameHeadingText

	playBtn := widget.NewButton(ui.localization.GetText(KeyPlay), func() {
		ui.audio.Play(audio.SFXUI)
		ui.setPhase(game.PhaseLevelSelect)
	})
	playBtn.Importance = widget.HighImportance

	galleryBtn := widget.NewButton(ui.localization.GetText(KeyGallery), func() {
		ui.audio.Play(audio.SFXUI)
		ui.setPhase(game.PhaseGallery)
	})

	customBtn := widget.NewButton(ui.localization.GetText(KeyCustomPuzzle), func() {
		ui.audio.Play(audio.SFXUI)
		ui.setPhase(game.PhaseCustomPuzzle)
	})

	settingsBtn := widget.NewButton(ui.localization.GetText(KeySettings), ui.onShowSettings)

	quitBtn := widget.NewButton(ui.localization.GetText(KeyQuit), ui.app.Quit)
	quitBtn.Importance = widget.LowImportance

	buttons := container.NewVBox(playBtn, galleryBtn, customBtn, settingsBtn, quitBtn)

	return container.NewCenter(container.NewVBox(
		title,
		widget.NewSeparator(),
		buttons,
	))
}

func (ui *RootUI) buildLevelSelectScreen() fyne.CanvasObject {
	title := widget.NewLabel(ui.localization.GetText(KeyLevels))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	cards := container.NewVBox()
	for _, level := range ui.levels.All() {
		cards.Add(ui.levelCard(level))
	}

	backBtn := widget.NewButton(ui.localization.GetText(KeyBack), func() {
		ui.audio.Play(audio.SFXUI)
		ui.setPhase(game.PhaseMenu)
	})

	return container.NewBorder(
		title,
		container.NewCenter(backBtn),
		nil, nil,
		container.NewCenter(cards),
	)
}

func (ui *RootUI) levelCard(level model.Level) fyne.CanvasObject {
	playBtn := widget.NewButton(ui.localization.GetText(KeyPlay), func() {
		ui.startLevel(level)
	})
	playBtn.Importance = widget.HighImportance

	best := ui.bestSummary(level.SizeKey())
	return widget.NewCard(level.Name, best, container.NewHBox(playBtn))
}

// bestSummary formats the stored record for a board size, e.g. "Best: 24 ★★☆".
func (ui *RootUI) bestSummary(sizeKey string) string {
	moves := ui.progress.BestMovesFor(sizeKey)
	if moves < 0 {
		return ui.localization.GetText(KeyNoBest)
	}
	return fmt.Sprintf("%s: %d %s",
		ui.localization.GetText(KeyBest), moves, starRow(ui.progress.BestStarsFor(sizeKey)))
}

func starRow(stars int) string {
	row := ""
	for i := 0; i < StarRatingMax; i++ {
		if i < stars {
			row += IconStar
		} else {
			row += IconStarDim
		}
	}
	return row
}

// startLevel begins a play session for a built-in level.
func (ui *RootUI) startLevel(level model.Level) {
	session, err := game.NewSession(level, ui.rng)
	if err != nil {
		ui.log.Error("failed to start level", logger.String("level", level.Name), logger.Err(err))
		return
	}

	var img image.Image
	if level.BackgroundPath != "" {
		img, err = LoadLevelImage(level.BackgroundPath)
		if err != nil {
			ui.log.Warn("level image unavailable, using numbered tiles",
				logger.String("level", level.Name), logger.Err(err))
		}
	}

	ui.settings.SetLastPuzzleSize(level.Rows)
	ui.beginSession(session, img)
}

// beginSession installs a new session and switches to the playing screen.
func (ui *RootUI) beginSession(session *game.Session, img image.Image) {
	ui.endSession()

	ui.session = session
	ui.solvedSaved = false
	ui.boardView = NewBoardView(session, img, ui.onMove, ui.onSolved)

	_, span := ui.tracer.Start(context.Background(), "play_session",
		trace.WithAttributes(
			attribute.String("level", session.Level.Name),
			attribute.Int("size", session.Level.Rows),
			attribute.Bool("custom", session.Custom),
		))
	ui.sessionSpan = span

	ui.audio.Play(audio.SFXUI)
	ui.setPhase(game.PhasePlaying)
}

// endSession closes out the active session, if any.
func (ui *RootUI) endSession() {
	if ui.sessionSpan != nil {
		ui.sessionSpan.End()
		ui.sessionSpan = nil
	}
	ui.session = nil
	ui.boardView = nil
}

func (ui *RootUI) buildPlayingScreen() fyne.CanvasObject {
	ui.movesLabel = widget.NewLabel(ui.movesText())

	nameLabel := widget.NewLabel(ui.session.Level.Name)
	nameLabel.TextStyle = fyne.TextStyle{Bold: true}

	bestLabel := widget.NewLabel(ui.bestSummary(ui.session.SizeKey()))
	if ui.session.Custom {
		bestLabel.Hide()
	}

	pauseBtn := widget.NewButton(IconPause, ui.onPause)
	pauseBtn.Importance = widget.LowImportance

	hud := container.NewBorder(nil, nil,
		container.NewHBox(nameLabel, widget.NewLabel(MiddleDotSeparator), ui.movesLabel),
		pauseBtn,
		bestLabel,
	)

	board := ui.boardView.Container()
	boardHolder := container.NewGridWrap(fyne.NewSize(BoardSide, BoardSide), board)

	return container.NewBorder(hud, nil, nil, nil, container.NewCenter(boardHolder))
}

func (ui *RootUI) movesText() string {
	return fmt.Sprintf("%s: %d", ui.localization.GetText(KeyMoves), ui.session.Moves())
}

func (ui *RootUI) onMove() {
	ui.audio.Play(audio.SFXMove)
	if ui.movesLabel != nil {
		ui.movesLabel.SetText(ui.movesText())
	}
}

// onSolved records the result and shows the completion overlay.
func (ui *RootUI) onSolved() {
	ui.audio.Play(audio.SFXComplete)

	moves := ui.session.Moves()
	stars := ui.session.Stars(ui.thresholds)

	improved := false
	if !ui.session.Custom {
		sizeKey := ui.session.SizeKey()
		improved = ui.progress.Record(sizeKey, moves, stars)
		if improved {
			if err := ui.store.SaveBest(sizeKey, ui.progress.BestMovesFor(sizeKey), ui.progress.BestStarsFor(sizeKey)); err != nil {
				ui.log.Error("failed to persist best result", logger.Err(err))
			}
		}
	}

	if ui.sessionSpan != nil {
		ui.sessionSpan.SetAttributes(
			attribute.Int("moves", moves),
			attribute.Int("stars", stars),
			attribute.Bool("improved", improved),
		)
	}

	ui.log.Info("puzzle solved",
		logger.String("level", ui.session.Level.Name),
		logger.Int("moves", moves),
		logger.Int("stars", stars))

	ui.showSolvedOverlay(moves, stars, improved)
}

func (ui *RootUI) showSolvedOverlay(moves, stars int, improved bool) {
	title := widget.NewLabel(ui.localization.GetText(KeySolvedTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	starsLabel := widget.NewLabel(starRow(stars))
	starsLabel.Alignment = fyne.TextAlignCenter

	movesLabel := widget.NewLabel(fmt.Sprintf(ui.localization.GetText(KeySolvedMoves), moves))
	movesLabel.Alignment = fyne.TextAlignCenter

	rows := []fyne.CanvasObject{title, starsLabel, movesLabel}
	if improved {
		record := widget.NewLabel(ui.localization.GetText(KeyNewRecord))
		record.Alignment = fyne.TextAlignCenter
		rows = append(rows, record)
	}

	var popup *widget.PopUp

	if ui.boardView.SourceImage() != nil {
		saveBtn := widget.NewButton(ui.localization.GetText(KeySaveMemory), func() {
			ui.onSaveMemory(moves, stars)
		})
		rows = append(rows, saveBtn)
	}

	restartBtn := widget.NewButton(ui.localization.GetText(KeyRestart), func() {
		popup.Hide()
		ui.onRestart()
	})
	menuBtn := widget.NewButton(ui.localization.GetText(KeyMainMenu), func() {
		popup.Hide()
		ui.audio.Play(audio.SFXUI)
		ui.setPhase(game.PhaseMenu)
	})
	rows = append(rows, container.NewHBox(restartBtn, menuBtn))

	popup = widget.NewModalPopUp(container.NewVBox(rows...), ui.window.Canvas())
	popup.Show()
}

// onSaveMemory captures the finished puzzle image into the gallery.
func (ui *RootUI) onSaveMemory(moves, stars int) {
	if ui.solvedSaved {
		return
	}

	img := ui.boardView.SourceImage()
	if img == nil {
		return
	}

	_, err := ui.gallery.SaveMemory(img, ui.session.Level.Rows, moves, stars)
	if err != nil {
		ui.log.Error("failed to save memory", logger.Err(err))
		ui.showToast(err.Error())
		return
	}

	ui.solvedSaved = true
	ui.audio.Play(audio.SFXPlace)
	ui.showToast(ui.localization.GetText(KeyMemorySaved))
}

// Pause handling

func (ui *RootUI) onPause() {
	if ui.session == nil {
		return
	}
	ui.session.Pause()
	ui.audio.Play(audio.SFXUI)
	ui.setPhase(game.PhasePaused)
}

func (ui *RootUI) onResume() {
	if ui.session == nil {
		return
	}
	ui.session.Resume()
	ui.audio.Play(audio.SFXUI)
	ui.setPhase(game.PhasePlaying)
}

func (ui *RootUI) onRestart() {
	if ui.session == nil {
		return
	}
	ui.session.Restart()
	ui.solvedSaved = false
	ui.boardView.Refresh()
	ui.audio.Play(audio.SFXUI)
	ui.setPhase(game.PhasePlaying)
}

func (ui *RootUI) buildPausedScreen() fyne.CanvasObject {
	title := widget.NewLabel(ui.localization.GetText(KeyPaused))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	resumeBtn := widget.NewButton(ui.localization.GetText(KeyResume), ui.onResume)
	resumeBtn.Importance = widget.HighImportance
	restartBtn := widget.NewButton(ui.localization.GetText(KeyRestart), ui.onRestart)
	menuBtn := widget.NewButton(ui.localization.GetText(KeyMainMenu), func() {
		ui.audio.Play(audio.SFXUI)
		ui.setPhase(game.PhaseMenu)
	})

	return container.NewCenter(container.NewVBox(
		title,
		widget.NewSeparator(),
		resumeBtn,
		restartBtn,
		menuBtn,
	))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.audio.Play(audio.SFXUI)
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.audio, func() {
		// New memories land in the reconfigured folder right away
		if err := ui.gallery.SetDirectory(ui.settings.GetMemoriesDirectory()); err != nil {
			ui.log.Warn("failed to switch memories directory", logger.Err(err))
		}
		ui.showToast(ui.localization.GetText(KeySettingsSaved))
	})
}

// showToast shows a short auto-hiding notification in the top-right corner.
func (ui *RootUI) showToast(message string) {
	label := widget.NewLabel(message)
	label.Truncation = fyne.TextTruncateEllipsis

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if popup != nil {
			popup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, nil, closeBtn, label)
	popup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	popup.Resize(toastSize)
	popup.Move(toastPos)
	popup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		if popup != nil {
			fyne.Do(popup.Hide)
		}
	}()
}
