package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "❚❚"
	IconStop     = "■"
	IconRecord   = "●"
	IconFolder   = "📁"
	IconClose    = "×"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	WindowMinWidth  float32 = 420
	WindowMinHeight float32 = 560

	DisplayMinHeight float32 = 64
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Refresh cadence for the now-playing display and recording timer
const (
	DisplayRefreshInterval = time.Second
)
