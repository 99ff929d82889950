package game

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

// hsva builds a non-premultiplied color from hue (degrees), saturation and
// value in [0,1].
func hsva(h, s, v float64, alpha uint8) color.NRGBA {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{R: uint8((r + m) * 255), G: uint8((g + m) * 255), B: uint8((b + m) * 255), A: alpha}
}

// levelAlpha maps a playback level onto the breathing circle's opacity.
func levelAlpha(level float64) uint8 {
	if level < 0 {
		level = 0
	}
	if level > 0.5 {
		level = 0.5
	}
	return uint8(140 + 230*level)
}

// formatDuration renders d as zero-padded minutes and seconds.
func formatDuration(d time.Duration) string {
	d = max(d, 0).Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d/time.Minute), int(d%time.Minute/time.Second))
}
