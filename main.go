package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/netradioapp/netradio/internal/catalog"
	"github.com/netradioapp/netradio/internal/config"
	"github.com/netradioapp/netradio/internal/platform"
	"github.com/netradioapp/netradio/internal/player"
	"github.com/netradioapp/netradio/internal/recorder"
	"github.com/netradioapp/netradio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.netradioapp.netradio"
	AppName = "NetRadio"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if os.Getenv("NETRADIO_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Info().Str("version", version).Msg("starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply the always-dark player theme
	myApp.Settings().SetTheme(ui.NewRetroTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	// Initialize services
	settings := config.NewSettings(myApp)
	recordingsDir := settings.GetRecordingsDirectory()
	if err := platform.CreateDirectoryIfNotExists(recordingsDir); err != nil {
		log.Warn().Err(err).Str("dir", recordingsDir).Msg("failed to ensure recordings dir")
	}

	stations := catalog.New()
	playerCtl := player.New()
	rec := recorder.New(playerCtl, recordingsDir)
	playerCtl.SetRecorder(rec)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, stations, playerCtl, rec)

	// Show and run
	myWindow.ShowAndRun()
}
