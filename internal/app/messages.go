package app

import (
	"time"

	"github.com/iburimskiy/breathe/internal/audio"
)

// LoadedMsg carries the decoded track.
type LoadedMsg struct{ Track *audio.Track }

// LoadFailedMsg reports why the track could not be loaded.
type LoadFailedMsg struct{ Err error }

// PressedPlayMsg is sent when the user asks to start.
type PressedPlayMsg struct{}

// PressedStopMsg is sent when the user asks to stop.
type PressedStopMsg struct{}

// FrameMsg is one display refresh.
type FrameMsg struct{ Now time.Time }

// GotViewportMsg answers the initial viewport query.
type GotViewportMsg struct{ Width, Height int }

// ResizeMsg reports a new viewport size.
type ResizeMsg struct{ Width, Height int }

type request int

const (
	requestPlay request = iota
	requestStop
)

func (r request) String() string {
	if r == requestPlay {
		return "play"
	}
	return "stop"
}

// timeMsg resolves a clock read issued by a press.
type timeMsg struct {
	req   request
	token uint64
	now   time.Time
}
