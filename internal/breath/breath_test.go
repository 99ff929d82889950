package breath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadius_KnownPoints(t *testing.T) {
	tests := []struct {
		p    int
		want int
	}{
		{0, 0},
		{50, 2},
		{2500, 100},
		{4999, 198},
		{5000, 200},
		{7500, 100},
		{9999, 0},
		{10000, 0},
		{12500, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Radius(tt.p), "Radius(%d)", tt.p)
	}
}

func TestRadius_BoundedAndPeriodic(t *testing.T) {
	for p := 0; p < 3*Period; p += 7 {
		r := Radius(p)
		require.GreaterOrEqual(t, r, 0)
		require.LessOrEqual(t, r, MaxRadius)
		require.Equal(t, r, Radius(p+Period), "period at %d", p)
	}
}

func TestRadius_Symmetric(t *testing.T) {
	for d := 0; d <= half; d += 50 {
		require.Equal(t, Radius(half-d), Radius(half+d), "offset %d", d)
	}
}

func TestRadius_NegativeTreatedAsZero(t *testing.T) {
	require.Equal(t, 0, Radius(-1234))
}

func TestProgress_Unbounded(t *testing.T) {
	assert.Equal(t, 0, Progress(0))
	assert.Equal(t, 0, Progress(2999))
	assert.Equal(t, 4, Progress(3000))
	assert.Equal(t, 40, Progress(30000))
	assert.Equal(t, 4000, Progress(3000000))
	assert.Equal(t, 0, Progress(-5))
}
