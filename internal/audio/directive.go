package audio

import (
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/breathe/internal/clock"
)

// DirectiveKind selects what the output should be doing.
type DirectiveKind int

const (
	Silent DirectiveKind = iota
	Play
)

// Directive describes the desired audio output for the current play state.
type Directive struct {
	Kind DirectiveKind

	// Start is the wall-clock instant the looped stream began.
	Start time.Time

	// LoopEnd bounds the looped region [0, LoopEnd).
	LoopEnd time.Duration

	// Ramp scales the volume over wall-clock time; nil means full volume.
	Ramp []clock.ControlPoint
}

// Silence is the directive for no output.
func Silence() Directive { return Directive{Kind: Silent} }

func (d Directive) sameStream(o Directive) bool {
	return d.Kind == o.Kind && d.Start.Equal(o.Start) && d.LoopEnd == o.LoopEnd
}

func sameRamp(a, b []clock.ControlPoint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].At.Equal(b[i].At) || a[i].Gain != b[i].Gain {
			return false
		}
	}
	return true
}

// envelope scales its source by a wall-clock gain curve. Sample n of the
// source is taken to sound at start + n/rate.
type envelope struct {
	Source beep.Streamer
	start  time.Time
	rate   beep.SampleRate
	ramp   []clock.ControlPoint
	pos    int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.Source.Stream(samples)
	if len(e.ramp) > 0 {
		for i := 0; i < n; i++ {
			g := clock.GainAt(e.ramp, e.start.Add(e.rate.D(e.pos+i)))
			samples[i][0] *= g
			samples[i][1] *= g
		}
	}
	e.pos += n
	return n, ok
}

func (e *envelope) Err() error { return e.Source.Err() }
