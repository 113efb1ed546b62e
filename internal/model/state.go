package model

// PlayerState represents the playback state of the player
type PlayerState string

const (
	// StateIdle means no station has been loaded yet
	StateIdle PlayerState = "Idle"

	// StateLoading means a stream is being opened
	StateLoading PlayerState = "Loading"

	// StatePlaying means audio is playing
	StatePlaying PlayerState = "Playing"

	// StatePaused means playback is paused but the stream stays open
	StatePaused PlayerState = "Paused"

	// StateStopped means playback was stopped by the user
	StateStopped PlayerState = "Stopped"
)

// String returns the string representation of PlayerState
func (ps PlayerState) String() string {
	return string(ps)
}

// IsActive returns true if a stream is open (loading, playing or paused)
func (ps PlayerState) IsActive() bool {
	return ps == StateLoading || ps == StatePlaying || ps == StatePaused
}

// CanRecord returns true if the recorder may tap the stream in this state
func (ps PlayerState) CanRecord() bool {
	return ps == StatePlaying || ps == StatePaused
}
