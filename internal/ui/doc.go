package ui

// Package ui contains the Fyne-based desktop user interface for the player.
// It wires user interactions to the playback controller and the recorder and
// renders the now-playing display, transport controls, station catalog,
// notifications, and settings. All UI strings are localized via Localization.
