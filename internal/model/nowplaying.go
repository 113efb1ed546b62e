package model

import "strings"

// NowPlaying holds stream-embedded metadata surfaced opportunistically by the
// engine. SongTitle is empty when the stream provides none; nothing is persisted.
type NowPlaying struct {
	StationName string
	SongTitle   string
}

// HasTitle returns true if the stream reported a non-empty song title
func (np NowPlaying) HasTitle() bool {
	return strings.TrimSpace(np.SongTitle) != ""
}

// DisplayTitle returns the song title, or the station name when the stream
// provides no title yet
func (np NowPlaying) DisplayTitle() string {
	if np.HasTitle() {
		return strings.TrimSpace(np.SongTitle)
	}
	return np.StationName
}
