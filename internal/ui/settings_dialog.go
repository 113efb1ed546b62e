package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/netradioapp/netradio/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	recordingsDirEntry *widget.Entry
	autoRevealCheck    *widget.Check
	languageSelect     *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings are persisted.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Recordings directory selection
	sd.recordingsDirEntry = widget.NewEntry()
	sd.recordingsDirEntry.SetPlaceHolder("Recordings directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	recordingsDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.recordingsDirEntry)

	// Auto-reveal saved recordings
	sd.autoRevealCheck = widget.NewCheck(sd.localization.GetText(KeyAutoRevealRecordings), nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyRecordingsDirectory)+":"),
		recordingsDirRow,

		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 300))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.recordingsDirEntry.SetText(sd.settings.GetRecordingsDirectory())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnStop())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.recordingsDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.recordingsDirEntry.Text; dir != "" {
		sd.settings.SetRecordingsDirectory(dir)
	}

	sd.settings.SetAutoRevealOnStop(sd.autoRevealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
