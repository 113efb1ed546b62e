package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/netradioapp/netradio/internal/catalog"
	"github.com/netradioapp/netradio/internal/config"
	"github.com/netradioapp/netradio/internal/model"
	"github.com/netradioapp/netradio/internal/platform"
	"github.com/netradioapp/netradio/internal/player"
	"github.com/netradioapp/netradio/internal/recorder"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	catalog      *catalog.Catalog
	player       *player.Controller
	recorder     *recorder.Recorder
	settings     *config.Settings
	localization *Localization

	// UI components
	display      *DisplayPanel
	playPauseBtn *widget.Button
	stopBtn      *widget.Button
	recordBtn    *widget.Button
	volumeSlider *widget.Slider
	genreSelect  *widget.Select
	stationList  *widget.List

	stations []model.Station

	// userStopped marks the next Stopped transition as user initiated so it
	// is not reported as a lost stream. Accessed on the UI thread only.
	userStopped bool

	// lastRecordingPath remembers the file of the recording in progress for
	// the saved toast and auto-reveal. Accessed on the UI thread only.
	lastRecordingPath string

	stopTicker chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, cat *catalog.Catalog, playerCtl *player.Controller, rec *recorder.Recorder) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the recordings directory exists
	recordingsDir := settings.GetRecordingsDirectory()
	if err := platform.CreateDirectoryIfNotExists(recordingsDir); err != nil {
		log.Warn().Err(err).Str("dir", recordingsDir).Msg("failed to create recordings directory")
	}
	rec.SetDirectory(recordingsDir)

	ui := &RootUI{
		window:       window,
		app:          app,
		catalog:      cat,
		player:       playerCtl,
		recorder:     rec,
		settings:     settings,
		localization: localization,
		stopTicker:   make(chan struct{}),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Wire service callbacks to the UI
	ui.player.SetStateCallback(ui.onPlayerState)
	ui.player.SetMetadataCallback(ui.onMetadata)
	ui.recorder.SetStateCallback(ui.onRecordingState)
	ui.recorder.SetErrorCallback(ui.onRecordingError)

	ui.setupUI()
	ui.restoreLastSelection()
	ui.startDisplayTicker()

	window.SetOnClosed(ui.shutdown)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Now-playing display
	ui.display = NewDisplayPanel()
	ui.display.SetStatus(ui.localization.GetText(KeyIdle))

	// Transport buttons
	ui.playPauseBtn = widget.NewButton(IconPlay, ui.onPlayPauseClick)
	ui.stopBtn = widget.NewButton(IconStop, ui.onStopClick)
	ui.recordBtn = widget.NewButton(IconRecord, ui.onRecordClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Volume slider restores the saved level
	ui.volumeSlider = widget.NewSlider(player.MinVolume, player.MaxVolume)
	ui.volumeSlider.Value = float64(ui.settings.GetVolume())
	ui.player.SetVolume(ui.settings.GetVolume())
	ui.volumeSlider.OnChanged = func(v float64) {
		ui.player.SetVolume(int(v))
	}
	ui.volumeSlider.OnChangeEnded = func(v float64) {
		ui.settings.SetVolume(int(v))
	}

	transport := container.NewHBox(ui.playPauseBtn, ui.stopBtn, ui.recordBtn)
	transportRow := container.NewBorder(nil, nil, transport, settingsBtn, ui.volumeSlider)

	// Genre selector
	ui.genreSelect = widget.NewSelect(ui.catalog.GenreNames(), ui.onGenreSelected)
	ui.genreSelect.PlaceHolder = ui.localization.GetText(KeyGenre)

	// Station list
	ui.stationList = widget.NewList(
		func() int { return len(ui.stations) },
		func() fyne.CanvasObject { return widget.NewLabel("station") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.stations) {
				return
			}
			obj.(*widget.Label).SetText(ui.stations[id].Name)
		},
	)
	ui.stationList.OnSelected = ui.onStationSelected

	top := container.NewVBox(ui.display, transportRow, ui.genreSelect)
	content := container.NewBorder(top, nil, nil, nil, ui.stationList)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.genreSelect.PlaceHolder = ui.localization.GetText(KeyGenre)
	ui.genreSelect.Refresh()
	ui.display.SetStatus(ui.statusText(ui.player.State()))
}

// restoreLastSelection reselects the genre and station from the previous
// session without starting playback.
func (ui *RootUI) restoreLastSelection() {
	genre := ui.settings.GetLastGenre()
	if genre == "" {
		return
	}
	stations, err := ui.catalog.StationsFor(genre)
	if err != nil {
		return
	}
	ui.genreSelect.Selected = genre
	ui.genreSelect.Refresh()
	ui.stations = stations
	ui.stationList.Refresh()
}

// onGenreSelected fills the station list for the chosen genre
func (ui *RootUI) onGenreSelected(name string) {
	stations, err := ui.catalog.StationsFor(name)
	if err != nil {
		log.Error().Err(err).Str("genre", name).Msg("unknown genre selected")
		return
	}

	ui.stations = stations
	ui.settings.SetLastGenre(name)
	ui.stationList.UnselectAll()
	ui.stationList.Refresh()
}

// onStationSelected starts playback of the chosen station
func (ui *RootUI) onStationSelected(id widget.ListItemID) {
	if id >= len(ui.stations) {
		return
	}
	station := ui.stations[id]
	ui.settings.SetLastStation(station.Name)
	ui.loadStation(station)
}

// loadStation runs the blocking stream load off the UI thread
func (ui *RootUI) loadStation(station model.Station) {
	ui.userStopped = true // replacing a stream is not a lost stream
	go func() {
		err := ui.player.Load(station)
		if err == nil {
			return
		}
		log.Error().Err(err).Str("station", station.Name).Msg("failed to load station")
		fyne.Do(func() {
			ui.display.SetTitle(station.Name)
			ui.display.SetStatus(ui.localization.GetText(KeyStreamFailed))
			ui.showToast(ui.localization.GetText(KeyStreamFailed) + ": " + station.Name)
		})
	}()
}

// onPlayPauseClick toggles between playing and paused, or starts the
// selected station when nothing is loaded yet
func (ui *RootUI) onPlayPauseClick() {
	state := ui.player.State()
	switch state {
	case model.StatePlaying, model.StatePaused:
		ui.player.TogglePlayPause()
	case model.StateLoading:
		// Ignore clicks while connecting
	default:
		station, ok := ui.selectedStation()
		if !ok {
			ui.showToast(ui.localization.GetText(KeySelectStationFirst))
			return
		}
		ui.loadStation(station)
	}
}

// selectedStation resolves the station matching the remembered selection
func (ui *RootUI) selectedStation() (model.Station, bool) {
	name := ui.settings.GetLastStation()
	for _, s := range ui.stations {
		if s.Name == name {
			return s, true
		}
	}
	if len(ui.stations) > 0 {
		return ui.stations[0], true
	}
	return model.Station{}, false
}

// onStopClick stops playback (and any recording) off the UI thread
func (ui *RootUI) onStopClick() {
	ui.userStopped = true
	go ui.player.Stop()
}

// onRecordClick toggles recording of the current stream
func (ui *RootUI) onRecordClick() {
	if ui.recorder.Active() {
		go func() {
			if err := ui.recorder.Stop(); err != nil {
				log.Error().Err(err).Msg("failed to stop recording")
				fyne.Do(func() {
					ui.showToast(ui.localization.GetText(KeyRecordingFailed) + ": " + err.Error())
				})
			}
		}()
		return
	}

	station, ok := ui.player.CurrentStation()
	if !ok || !ui.player.State().CanRecord() {
		ui.showToast(ui.localization.GetText(KeySelectStationFirst))
		return
	}

	// Pick up a directory change from settings before starting
	ui.recorder.SetDirectory(ui.settings.GetRecordingsDirectory())

	go func() {
		err := ui.recorder.Start(station.Name)
		if err == nil {
			return
		}
		log.Error().Err(err).Str("station", station.Name).Msg("failed to start recording")
		msg := ui.localization.GetText(KeyRecordingFailed)
		if !errors.Is(err, recorder.ErrBusy) && !errors.Is(err, recorder.ErrNoActiveStream) {
			msg += ": " + err.Error()
		}
		fyne.Do(func() { ui.showToast(msg) })
	}()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.recorder.SetDirectory(ui.settings.GetRecordingsDirectory())
		ui.refreshUITexts()
		ui.createMenu()
		ui.showToast(ui.localization.GetText(KeySettingsSaved))
	}).Show()
}

// onPlayerState handles player state transitions; may run on engine
// goroutines, so all state lives behind fyne.Do
func (ui *RootUI) onPlayerState(state model.PlayerState) {
	fyne.Do(func() {
		wasUserStop := ui.userStopped
		switch state {
		case model.StatePlaying:
			// The stream is live now; a later drop is a real loss.
			ui.userStopped = false
		case model.StateStopped:
			ui.userStopped = false
		}

		if state == model.StatePlaying {
			ui.playPauseBtn.SetText(IconPause)
		} else {
			ui.playPauseBtn.SetText(IconPlay)
		}

		ui.display.SetStatus(ui.statusText(state))
		switch state {
		case model.StateLoading:
			if station, ok := ui.player.CurrentStation(); ok {
				ui.display.SetTitle(station.Name)
			}
		case model.StateStopped:
			ui.display.SetTitle("")
			if !wasUserStop {
				ui.showToast(ui.localization.GetText(KeyStreamLost))
			}
		case model.StateIdle:
			ui.display.SetTitle("")
		}
	})
}

// onMetadata updates the display with the current song title
func (ui *RootUI) onMetadata(np model.NowPlaying) {
	fyne.Do(func() {
		ui.display.SetTitle(np.DisplayTitle())
	})
}

// onRecordingState reflects recorder activity in the record button and
// display, and handles the saved-recording toast
func (ui *RootUI) onRecordingState(state model.RecordingState) {
	fyne.Do(func() {
		var savedPath string
		if state.Active {
			ui.lastRecordingPath = state.FilePath
		} else {
			savedPath = ui.lastRecordingPath
			ui.lastRecordingPath = ""
		}

		if state.Active {
			ui.recordBtn.Importance = widget.DangerImportance
		} else {
			ui.recordBtn.Importance = widget.MediumImportance
		}
		ui.recordBtn.Refresh()
		ui.display.SetRecordingIndicator(state.Active)
		ui.display.SetStatus(ui.statusText(ui.player.State()))

		if state.Active {
			ui.showToast(ui.localization.GetText(KeyRecordingStarted))
			return
		}
		// A finalized file on disk means the recording was saved cleanly.
		if savedPath == "" {
			return
		}
		if _, err := os.Stat(savedPath); err != nil {
			return
		}
		ui.showRecordingSavedToast(savedPath)
		if ui.settings.GetAutoRevealOnStop() {
			ui.revealFile(savedPath)
		}
	})
}

// onRecordingError reports background writer failures
func (ui *RootUI) onRecordingError(err error) {
	log.Error().Err(err).Msg("recording failed")
	fyne.Do(func() {
		ui.lastRecordingPath = ""
		ui.showToast(ui.localization.GetText(KeyRecordingFailed) + ": " + err.Error())
	})
}

// statusText builds the second display line for the given player state
func (ui *RootUI) statusText(state model.PlayerState) string {
	var text string
	switch state {
	case model.StateLoading:
		text = ui.localization.GetText(KeyLoading)
	case model.StatePlaying:
		if station, ok := ui.player.CurrentStation(); ok {
			text = IconPlay + " " + station.Name
		} else {
			text = IconPlay
		}
	case model.StatePaused:
		if station, ok := ui.player.CurrentStation(); ok {
			text = IconPause + " " + station.Name
		} else {
			text = IconPause
		}
	case model.StateStopped:
		text = ui.localization.GetText(KeyStopped)
	default:
		text = ui.localization.GetText(KeyIdle)
	}

	if rec := ui.recorder.State(); rec.Active {
		text += MiddleDotSeparator + IconRecord + " " + formatDuration(rec.Duration())
	}
	return text
}

// startDisplayTicker refreshes the status line once a second so the
// recording timer advances
func (ui *RootUI) startDisplayTicker() {
	go func() {
		ticker := time.NewTicker(DisplayRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !ui.recorder.Active() {
					continue
				}
				fyne.Do(func() {
					ui.display.SetStatus(ui.statusText(ui.player.State()))
				})
			case <-ui.stopTicker:
				return
			}
		}
	}()
}

// shutdown stops playback and background work when the window closes
func (ui *RootUI) shutdown() {
	close(ui.stopTicker)
	ui.userStopped = true
	ui.player.Stop()
}

// revealFile shows the file in the system file manager
func (ui *RootUI) revealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Error().Err(err).Str("path", filePath).Msg("failed to reveal file")
		ui.showToast(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// showToast displays a transient popup message
func (ui *RootUI) showToast(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

// showRecordingSavedToast shows a toast with a reveal action for the saved file
func (ui *RootUI) showRecordingSavedToast(filePath string) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyRecordingSaved))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(filepath.Base(filePath))
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(IconFolder, func() {
		ui.revealFile(filePath)
	})
	revealBtn.Importance = widget.HighImportance

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(header, messageLabel, container.NewHBox(revealBtn))

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}

// formatDuration renders a recording duration as mm:ss (or h:mm:ss)
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
