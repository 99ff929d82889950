// Package clock holds the time arithmetic for playback: elapsed time since a
// start instant and the gain envelope applied after stop.
package clock

import "time"

// DefaultFade is the length of the fade-out ramp.
const DefaultFade = 2 * time.Second

// ControlPoint is one point of a gain automation curve.
type ControlPoint struct {
	At   time.Time
	Gain float64
}

// Elapsed returns whole milliseconds between start and now, never negative.
func Elapsed(start, now time.Time) int {
	if now.Before(start) {
		return 0
	}
	return int(now.Sub(start) / time.Millisecond)
}

// FadeEnvelope ramps from full volume at stop to silence at stop+length.
func FadeEnvelope(stop time.Time, length time.Duration) []ControlPoint {
	if length <= 0 {
		length = DefaultFade
	}
	return []ControlPoint{
		{At: stop, Gain: 1},
		{At: stop.Add(length), Gain: 0},
	}
}

// GainAt interpolates linearly between points. Outside the curve the nearest
// end value is held; an empty curve is full volume.
func GainAt(points []ControlPoint, t time.Time) float64 {
	if len(points) == 0 {
		return 1
	}
	if !t.After(points[0].At) {
		return points[0].Gain
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if t.After(b.At) {
			continue
		}
		span := b.At.Sub(a.At)
		if span <= 0 {
			return b.Gain
		}
		frac := float64(t.Sub(a.At)) / float64(span)
		return a.Gain + (b.Gain-a.Gain)*frac
	}
	return points[len(points)-1].Gain
}

// Done reports whether t is at or past the last control point.
func Done(points []ControlPoint, t time.Time) bool {
	if len(points) == 0 {
		return true
	}
	return !t.Before(points[len(points)-1].At)
}
