package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/breathe/internal/app"
	"github.com/iburimskiy/breathe/internal/breath"
	"github.com/iburimskiy/breathe/internal/config"
)

var (
	background  = color.RGBA{R: 12, G: 14, B: 24, A: 255}
	trackColor  = color.RGBA{R: 25, G: 30, B: 40, A: 255}
	guideColor  = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	borderColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

// scene is everything one frame draws, read from the model and the deck.
type scene struct {
	state   app.LoadState
	message string
	label   string

	// fill is the progress width in pixels, unclipped to the track.
	fill   int
	radius int
	alpha  uint8
	status string
}

func (g *Game) scene() scene {
	sc := scene{state: g.model.State()}
	switch sc.state {
	case app.Loading:
		sc.message = "Loading..."
	case app.LoadFailed:
		sc.message = "Could not load audio"
		if err := g.model.Err(); err != nil {
			sc.message += ": " + err.Error()
		}
	default:
		sc.label = g.model.ButtonLabel()
		sc.fill = g.model.Progress()
		sc.radius = g.model.Session().Radius
		sc.alpha = levelAlpha(g.deck.Level())
		sc.status = g.statusLine()
	}
	return sc
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	geo := layoutFor(g.width, g.height)
	sc := g.scene()

	switch sc.state {
	case app.Loading:
		ebitenutil.DebugPrintAt(screen, sc.message, geo.center.X-30, geo.center.Y)
		return
	case app.LoadFailed:
		ebitenutil.DebugPrintAt(screen, sc.message, config.StatusMargin, geo.center.Y)
		return
	}

	g.drawButton(screen, geo, sc.label)
	drawProgress(screen, geo, sc.fill)
	drawCircles(screen, geo, sc.radius, sc.alpha)
	ebitenutil.DebugPrintAt(screen, sc.status, geo.status.X, geo.status.Y)
}

func (g *Game) drawButton(screen *ebiten.Image, geo geometry, label string) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	b := geo.button
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), bgColor, false)
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 2, borderColor, false)

	textWidth := len(label) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(screen, label, b.Min.X+(b.Dx()-textWidth)/2, b.Min.Y+(b.Dy()-16)/2)
}

// drawProgress draws the fixed track and the fill over it. The fill is not
// clipped to the track.
func drawProgress(screen *ebiten.Image, geo geometry, fill int) {
	t := geo.track
	vector.DrawFilledRect(screen, float32(t.Min.X), float32(t.Min.Y), float32(t.Dx()), float32(t.Dy()), trackColor, false)

	if fill > 0 {
		vector.DrawFilledRect(screen, float32(t.Min.X), float32(t.Min.Y), float32(fill), float32(t.Dy()), hsva(200, 0.6, 0.9, 220), false)
	}
}

func drawCircles(screen *ebiten.Image, geo geometry, radius int, alpha uint8) {
	cx, cy := float32(geo.center.X), float32(geo.center.Y)
	vector.StrokeCircle(screen, cx, cy, config.GuideRadius, 2, guideColor, false)

	if radius <= 0 {
		return
	}
	hue := 190 + 50*float64(radius)/breath.MaxRadius
	vector.DrawFilledCircle(screen, cx, cy, float32(radius), hsva(hue, 0.7, 0.9, alpha), true)
}

func (g *Game) statusLine() string {
	var parts []string
	if track := g.model.Track(); track != nil {
		title := track.Info.Title
		if track.Info.Artist != "" {
			title = track.Info.Artist + " - " + title
		}
		d := track.Info.Encoded
		if d == 0 {
			d = track.Duration()
		}
		parts = append(parts, fmt.Sprintf("%s [%s]", title, formatDuration(d)))
	}
	parts = append(parts, "Space: start/stop", "Esc/Q: quit")
	return strings.Join(parts, " | ")
}
