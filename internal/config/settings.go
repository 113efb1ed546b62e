package config

import (
	"fyne.io/fyne/v2"

	"github.com/netradioapp/netradio/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyRecordingsDir    = "recordings_directory"
	KeyVolume           = "volume_percent"
	KeyLanguage         = "app_language"
	KeyAutoRevealOnStop = "auto_reveal_on_stop"
	KeyLastGenre        = "last_genre"
	KeyLastStation      = "last_station"
)

// Default values
const (
	DefaultVolume           = 80
	DefaultLanguage         = "system"
	DefaultAutoRevealOnStop = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetRecordingsDirectory returns the configured recordings directory
func (s *Settings) GetRecordingsDirectory() string {
	dir := s.app.Preferences().String(KeyRecordingsDir)
	if dir == "" {
		// Use system default Music directory
		defaultDir, err := platform.GetHomeMusicDir()
		if err != nil {
			defaultDir = "/tmp/recordings"
		}
		s.SetRecordingsDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetRecordingsDirectory sets the recordings directory
func (s *Settings) SetRecordingsDirectory(dir string) {
	s.app.Preferences().SetString(KeyRecordingsDir, dir)
}

// GetVolume returns the saved volume percent
func (s *Settings) GetVolume() int {
	return s.app.Preferences().IntWithFallback(KeyVolume, DefaultVolume)
}

// SetVolume saves the volume percent
func (s *Settings) SetVolume(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	s.app.Preferences().SetInt(KeyVolume, percent)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnStop returns whether finished recordings are revealed in the
// file manager
func (s *Settings) GetAutoRevealOnStop() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealOnStop, DefaultAutoRevealOnStop)
}

// SetAutoRevealOnStop sets whether finished recordings are revealed in the
// file manager
func (s *Settings) SetAutoRevealOnStop(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealOnStop, autoReveal)
}

// GetLastGenre returns the genre selected in the previous session
func (s *Settings) GetLastGenre() string {
	return s.app.Preferences().String(KeyLastGenre)
}

// SetLastGenre remembers the selected genre
func (s *Settings) SetLastGenre(name string) {
	s.app.Preferences().SetString(KeyLastGenre, name)
}

// GetLastStation returns the station selected in the previous session
func (s *Settings) GetLastStation() string {
	return s.app.Preferences().String(KeyLastStation)
}

// SetLastStation remembers the selected station
func (s *Settings) SetLastStation(name string) {
	s.app.Preferences().SetString(KeyLastStation, name)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
