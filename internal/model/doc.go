package model

// Package model defines domain data structures used across the app: stations
// and genres, playback and recording state, and now-playing metadata.
// Structures are designed for direct use in the UI and explicit state
// transitions.
