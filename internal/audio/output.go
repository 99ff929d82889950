package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Output is the sink streams are played into. Lock/Unlock guard mutation of
// streamers that are already playing.
type Output interface {
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type speakerOutput struct{}

// NewSpeakerOutput initialises the system speaker at the track's sample rate.
func NewSpeakerOutput(format beep.Format) (Output, error) {
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return speakerOutput{}, nil
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

// Clear takes the speaker lock itself; callers must not hold Lock.
func (speakerOutput) Clear() { speaker.Clear() }

func (speakerOutput) Lock() { speaker.Lock() }

func (speakerOutput) Unlock() { speaker.Unlock() }

// NoopOutput discards everything. It stands in when no audio device is usable.
type NoopOutput struct{}

func (NoopOutput) Play(...beep.Streamer) {}
func (NoopOutput) Clear()                {}
func (NoopOutput) Lock()                 {}
func (NoopOutput) Unlock()               {}
