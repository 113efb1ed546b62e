package recorder

// Package recorder captures the raw MP3 bytes of the station currently
// playing into a file. It taps the playback stream through a non-blocking
// sink, aligns the capture to the first MP3 frame boundary, and writes into a
// temporary file that is renamed into place when the recording stops cleanly.
