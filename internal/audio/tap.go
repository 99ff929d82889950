package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the renderer can tint the circle by the loudness of recently played audio.
type levelTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

// Stream forwards to Source and copies what it produced into the ring.
func (t *levelTap) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.Source.Stream(samples)
	t.record(samples[:n])
	return n, ok
}

func (t *levelTap) Err() error {
	return t.Source.Err()
}

// record appends played to the ring, wrapping at its end. Only the newest
// len(buffer) samples matter when played is longer than the ring.
func (t *levelTap) record(played [][2]float64) {
	if len(played) == 0 || len(t.buffer) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if skip := len(played) - len(t.buffer); skip > 0 {
		t.nextIndex = (t.nextIndex + skip) % len(t.buffer)
		played = played[skip:]
	}
	for len(played) > 0 {
		c := copy(t.buffer[t.nextIndex:], played)
		played = played[c:]
		t.nextIndex = (t.nextIndex + c) % len(t.buffer)
	}
}

// level returns the RMS of the mono mix over the last n samples.
func (t *levelTap) level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n == 0 {
		return 0
	}
	idx := t.nextIndex
	var sumSquares float64
	for i := 0; i < n; i++ {
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(n))
}
