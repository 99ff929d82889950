// Package breath maps elapsed playback time onto the breathing circle.
package breath

const (
	// Period is one full inhale/exhale cycle in milliseconds.
	Period = 10000
	// MaxRadius is the radius reached at the top of each cycle.
	MaxRadius = 200

	half = Period / 2
)

// Radius returns the breathing radius for p elapsed milliseconds: a triangular
// wave rising 0→200 over the first half of the period and falling back over the
// second half.
func Radius(p int) int {
	if p < 0 {
		p = 0
	}
	m := p % Period
	if m < half {
		return (m / 50) * 2
	}
	return ((Period - m) / 50) * 2
}

// Progress returns the fill width of the progress bar for p elapsed
// milliseconds. It is not wrapped or clamped to the track width.
func Progress(p int) int {
	if p < 0 {
		p = 0
	}
	return (p / 3000) * 4
}
