package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestRecordingsDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetRecordingsDirectory()
	if dir == "" {
		t.Error("Recordings directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/recordings"
	settings.SetRecordingsDirectory(customDir)

	retrievedDir := settings.GetRecordingsDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected recordings directory %s, got %s", customDir, retrievedDir)
	}
}

func TestVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetVolume(); got != DefaultVolume {
		t.Errorf("Expected default volume %d, got %d", DefaultVolume, got)
	}

	// Test setting custom value
	settings.SetVolume(35)
	if got := settings.GetVolume(); got != 35 {
		t.Errorf("Expected volume 35, got %d", got)
	}

	// Test boundary values
	settings.SetVolume(150) // Should be clamped to 100
	if got := settings.GetVolume(); got != 100 {
		t.Errorf("Volume should be clamped to 100, got %d", got)
	}

	settings.SetVolume(-10) // Should be clamped to 0
	if got := settings.GetVolume(); got != 0 {
		t.Errorf("Volume should be clamped to 0, got %d", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}
}

func TestAutoRevealOnStop(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetAutoRevealOnStop() != DefaultAutoRevealOnStop {
		t.Errorf("Expected default auto reveal %v", DefaultAutoRevealOnStop)
	}

	// Test setting custom value
	settings.SetAutoRevealOnStop(true)
	if !settings.GetAutoRevealOnStop() {
		t.Error("Expected auto reveal to be enabled")
	}
}

func TestLastSelection(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastGenre() != "" || settings.GetLastStation() != "" {
		t.Error("Last selection should start empty")
	}

	settings.SetLastGenre("Jazz")
	settings.SetLastStation("Jazz24")

	if got := settings.GetLastGenre(); got != "Jazz" {
		t.Errorf("Expected last genre 'Jazz', got %s", got)
	}
	if got := settings.GetLastStation(); got != "Jazz24" {
		t.Errorf("Expected last station 'Jazz24', got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
