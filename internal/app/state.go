// Package app is the player's state machine. A single Model value is threaded
// through Update; side effects (loading, reading the clock) are returned as
// commands whose results come back as messages.
package app

import (
	"time"

	"github.com/iburimskiy/breathe/internal/audio"
)

// LoadState is the top-level application state.
type LoadState int

const (
	Loading LoadState = iota
	Loaded
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load-failed"
	}
	return "unknown"
}

// PlayKind distinguishes the play states.
type PlayKind int

const (
	NotPlaying PlayKind = iota
	Playing
	FadingOut
)

func (k PlayKind) String() string {
	switch k {
	case NotPlaying:
		return "not-playing"
	case Playing:
		return "playing"
	case FadingOut:
		return "fading-out"
	}
	return "unknown"
}

// PlayState is NotPlaying, Playing(Start) or FadingOut(Start, Stop).
type PlayState struct {
	Kind  PlayKind
	Start time.Time
	Stop  time.Time
}

// Session exists once the track has loaded.
type Session struct {
	Track     *audio.Track
	Width     int
	Height    int
	Radius    int
	ElapsedMs int
	Play      PlayState
}
