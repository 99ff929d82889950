package game

import (
	"image"

	"github.com/iburimskiy/breathe/internal/config"
)

// geometry places every element for a given viewport.
type geometry struct {
	button image.Rectangle
	track  image.Rectangle
	center image.Point
	status image.Point
}

func layoutFor(width, height int) geometry {
	cx := width / 2

	button := image.Rect(0, 0, config.ButtonWidth, config.ButtonHeight).
		Add(image.Pt(cx-config.ButtonWidth/2, config.ButtonY))
	track := image.Rect(0, 0, config.ProgressWidth, config.ProgressHeight).
		Add(image.Pt(cx-config.ProgressWidth/2, config.ProgressY))

	cy := config.CircleTop + config.GuideRadius
	if free := height - config.CircleTop; free > 2*config.GuideRadius {
		cy = config.CircleTop + free/2
	}

	return geometry{
		button: button,
		track:  track,
		center: image.Pt(cx, cy),
		status: image.Pt(config.StatusMargin, height-config.StatusMargin-16),
	}
}
