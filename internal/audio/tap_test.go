package audio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelTap_RecordsRecentSamples(t *testing.T) {
	tap := newLevelTap(constant(0), 16)
	require.Zero(t, tap.level(16))

	drain(t, tap, 8)
	require.Zero(t, tap.level(16))

	tap.Source = constant(1)
	drain(t, tap, 4)
	require.InDelta(t, 1.0, tap.level(4), 1e-9)
	require.InDelta(t, 0.5, tap.level(16), 1e-9, "sqrt(4/16)")
}

func TestLevelTap_WrapsRing(t *testing.T) {
	tap := newLevelTap(constant(0.5), 8)
	drain(t, tap, 21)
	require.InDelta(t, 0.5, tap.level(100), 1e-9)
	require.Equal(t, 5, tap.nextIndex)
}

func TestLevelTap_KeepsNewestWhenChunkExceedsRing(t *testing.T) {
	tap := newLevelTap(constant(0), 8)
	drain(t, tap, 3)

	chunk := make([][2]float64, 20)
	for i := range chunk {
		chunk[i] = [2]float64{float64(i), float64(i)}
	}
	tap.record(chunk)

	require.Equal(t, 7, tap.nextIndex)
	for i := 0; i < 8; i++ {
		want := float64(12 + i)
		require.Equal(t, want, tap.buffer[(7+i)%8][0], "slot %d", (7+i)%8)
	}
}

func TestLevelTap_RecordSplitsAtRingEnd(t *testing.T) {
	tap := newLevelTap(constant(0), 8)
	tap.nextIndex = 6
	tap.record([][2]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}})

	require.Equal(t, 2, tap.nextIndex)
	require.Equal(t, [2]float64{1, 1}, tap.buffer[6])
	require.Equal(t, [2]float64{2, 2}, tap.buffer[7])
	require.Equal(t, [2]float64{3, 3}, tap.buffer[0])
	require.Equal(t, [2]float64{4, 4}, tap.buffer[1])
}
