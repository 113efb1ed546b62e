package model

import (
	"path/filepath"
	"time"
)

// RecordingState describes the recorder at a point in time.
// FilePath is set while a recording is active and cleared when it stops.
type RecordingState struct {
	Active    bool
	FilePath  string
	StartedAt time.Time
}

// FileName returns the base name of the recording file, or "" if none
func (rs RecordingState) FileName() string {
	if rs.FilePath == "" {
		return ""
	}
	return filepath.Base(rs.FilePath)
}

// Duration returns how long the recording has been running, or 0 if inactive
func (rs RecordingState) Duration() time.Duration {
	if !rs.Active || rs.StartedAt.IsZero() {
		return 0
	}
	return time.Since(rs.StartedAt)
}
