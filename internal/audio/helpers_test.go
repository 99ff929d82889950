package audio

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/require"
)

// testFormat runs at 1 kHz so that one sample is one millisecond.
var testFormat = beep.Format{SampleRate: 1000, NumChannels: 2, Precision: 2}

func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func constantTrack(t *testing.T, v float64, n int) *Track {
	t.Helper()
	buf := beep.NewBuffer(testFormat)
	buf.Append(beep.Take(n, constant(v)))
	require.Equal(t, n, buf.Len())
	return NewTrack("test", buf, Info{Title: "test"})
}

func writeWAV(t *testing.T, dir, name string, n int) string {
	t.Helper()
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, wav.Encode(f, beep.Take(n, constant(0.25)), testFormat))
	require.NoError(t, f.Close())
	return p
}

func drain(t *testing.T, s beep.Streamer, n int) [][2]float64 {
	t.Helper()
	out := make([][2]float64, n)
	got, ok := s.Stream(out)
	require.True(t, ok)
	require.Equal(t, n, got)
	return out
}

type fakeOutput struct {
	mu     sync.Mutex
	played []beep.Streamer
	clears int
	locked int
}

func (f *fakeOutput) Play(s ...beep.Streamer) { f.played = append(f.played, s...) }
func (f *fakeOutput) Clear()                  { f.clears++ }
func (f *fakeOutput) Lock()                   { f.mu.Lock(); f.locked++ }
func (f *fakeOutput) Unlock()                 { f.mu.Unlock() }

func (f *fakeOutput) last() beep.Streamer { return f.played[len(f.played)-1] }
