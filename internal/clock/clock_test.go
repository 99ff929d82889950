package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestElapsed(t *testing.T) {
	assert.Equal(t, 0, Elapsed(epoch, epoch))
	assert.Equal(t, 1500, Elapsed(epoch, epoch.Add(1500*time.Millisecond+900*time.Microsecond)))
	assert.Equal(t, 90000, Elapsed(epoch, epoch.Add(90*time.Second)))
}

func TestElapsed_StartAfterNowIsZero(t *testing.T) {
	assert.Equal(t, 0, Elapsed(epoch.Add(time.Second), epoch))
	assert.Equal(t, 0, Elapsed(epoch.Add(time.Millisecond), epoch))
}

func TestFadeEnvelope_DefaultLength(t *testing.T) {
	pts := FadeEnvelope(epoch, 0)
	require.Len(t, pts, 2)
	assert.Equal(t, ControlPoint{At: epoch, Gain: 1}, pts[0])
	assert.Equal(t, ControlPoint{At: epoch.Add(2 * time.Second), Gain: 0}, pts[1])
}

func TestGainAt(t *testing.T) {
	pts := FadeEnvelope(epoch, 2*time.Second)

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"before stop", epoch.Add(-time.Second), 1},
		{"at stop", epoch, 1},
		{"halfway", epoch.Add(time.Second), 0.5},
		{"quarter", epoch.Add(1500 * time.Millisecond), 0.25},
		{"end", epoch.Add(2 * time.Second), 0},
		{"holds after end", epoch.Add(time.Minute), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GainAt(pts, tt.at), 1e-9)
		})
	}
}

func TestGainAt_EmptyCurveIsFullVolume(t *testing.T) {
	require.Equal(t, 1.0, GainAt(nil, epoch))
}

func TestDone(t *testing.T) {
	pts := FadeEnvelope(epoch, time.Second)
	require.False(t, Done(pts, epoch.Add(999*time.Millisecond)))
	require.True(t, Done(pts, epoch.Add(time.Second)))
	require.True(t, Done(nil, epoch))
}
