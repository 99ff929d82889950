// Package audio loads the looping track and plays it back through beep,
// applying the directives computed from the play state.
package audio

import (
	"time"

	"github.com/faiface/beep"
)

// Track is a fully decoded audio asset held in memory.
type Track struct {
	Source string
	Format beep.Format
	Info   Info

	buffer *beep.Buffer
}

// NewTrack wraps an already decoded buffer.
func NewTrack(source string, buffer *beep.Buffer, info Info) *Track {
	return &Track{
		Source: source,
		Format: buffer.Format(),
		Info:   info,
		buffer: buffer,
	}
}

// Len returns the track length in samples.
func (t *Track) Len() int {
	if t == nil || t.buffer == nil {
		return 0
	}
	return t.buffer.Len()
}

// Duration returns the decoded length of the track.
func (t *Track) Duration() time.Duration {
	return t.Format.SampleRate.D(t.Len())
}

// Region returns a seeker over [0, end), clipped to the track length. A
// non-positive end selects the whole track.
func (t *Track) Region(end time.Duration) beep.StreamSeeker {
	n := t.Len()
	if end > 0 {
		if m := t.Format.SampleRate.N(end); m > 0 && m < n {
			n = m
		}
	}
	return t.buffer.Streamer(0, n)
}
