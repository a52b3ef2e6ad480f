package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/aetherial/gardens/internal/audio"
	"github.com/aetherial/gardens/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	audio        audio.Player
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	volumeSlider     *widget.Slider
	muteCheck        *widget.Check
	languageSelect   *widget.Select
	memoriesDirEntry *widget.Entry
}

// ShowSettingsDialog creates and shows the settings dialog.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, audioSvc audio.Player, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		audio:        audioSvc,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Master volume with live preview
	sd.volumeSlider = widget.NewSlider(0, 1)
	sd.volumeSlider.Step = 0.05
	sd.volumeSlider.OnChangeEnded = func(value float64) {
		sd.audio.SetVolume(value)
		sd.audio.Play(audio.SFXUI)
	}

	sd.muteCheck = widget.NewCheck(sd.localization.GetText(KeyMute), func(muted bool) {
		sd.audio.SetMuted(muted)
	})

	// Language selection
	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Memories directory selection
	sd.memoriesDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	memoriesDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.memoriesDirEntry)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyVolume)),
		sd.volumeSlider,
		sd.muteCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyMemoriesDirectory)),
		memoriesDirRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 340))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.volumeSlider.SetValue(sd.settings.GetMasterVolume())
	sd.muteCheck.SetChecked(sd.settings.GetMuted())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.memoriesDirEntry.SetText(sd.settings.GetMemoriesDirectory())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.memoriesDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings. Cancel restores the persisted audio
// state, undoing any live preview changes.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		sd.audio.SetVolume(sd.settings.GetMasterVolume())
		sd.audio.SetMuted(sd.settings.GetMuted())
		return
	}

	sd.settings.SetMasterVolume(sd.volumeSlider.Value)
	sd.settings.SetMuted(sd.muteCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
		sd.localization.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.memoriesDirEntry.Text != "" {
		sd.settings.SetMemoriesDirectory(sd.memoriesDirEntry.Text)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
