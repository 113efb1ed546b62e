package player

// Package player implements the playback controller on top of the shoutcast
// stream client and the beep audio engine (mp3 decode, speaker output, volume).
// It owns the Idle/Loading/Playing/Paused/Stopped state machine, surfaces state
// and metadata changes through callbacks, and exposes the stream tap the
// recorder attaches to.
