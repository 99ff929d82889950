// Package game is the windowed front-end: an ebiten.Game that turns frames,
// resizes, clicks and keys into app messages and draws the result.
package game

import (
	"image"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/breathe/internal/app"
	"github.com/iburimskiy/breathe/internal/audio"
)

// Options configure a Game.
type Options struct {
	Logger *slog.Logger

	// Now is the frame clock; defaults to time.Now.
	Now func() time.Time

	// Deck receives the audio directive every frame; defaults to the speaker.
	Deck *audio.Deck
}

// Game owns the app.Model. Only the ebiten loop goroutine touches it; command
// results arrive through the pending queue.
type Game struct {
	model app.Model
	deck  *audio.Deck
	now   func() time.Time
	log   *slog.Logger

	mu      sync.Mutex
	pending []tea.Msg

	width, height int
	sized         bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool
}

// New wraps model. Call Start before ebiten.RunGame.
func New(model app.Model, opts Options) *Game {
	g := &Game{
		model:   model,
		deck:    opts.Deck,
		now:     opts.Now,
		log:     opts.Logger,
		prevKey: map[ebiten.Key]bool{},
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.log == nil {
		g.log = slog.New(slog.DiscardHandler)
	}
	if g.deck == nil {
		g.deck = &audio.Deck{Logger: g.log}
	}
	return g
}

// Start kicks off loading.
func (g *Game) Start() { g.run(g.model.Init()) }

// Model returns the current state.
func (g *Game) Model() app.Model { return g.model }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.drain()

	mouseX, mouseY := ebiten.CursorPosition()
	button := layoutFor(g.width, g.height).button
	g.buttonHovered = g.model.State() == app.Loaded && image.Pt(mouseX, mouseY).In(button)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.toggle()
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeySpace) {
		g.toggle()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step()
	return nil
}

// Layout reports the viewport to the model: the first call answers the
// viewport query, later changes are resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	switch {
	case !g.sized:
		g.sized = true
		g.enqueue(app.GotViewportMsg{Width: outsideWidth, Height: outsideHeight})
	case outsideWidth != g.width || outsideHeight != g.height:
		g.enqueue(app.ResizeMsg{Width: outsideWidth, Height: outsideHeight})
	}
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// step delivers queued results, advances one frame and syncs the audio. The
// frame time is read after the drain so it is never earlier than a start
// delivered in the same step.
func (g *Game) step() {
	g.drain()
	g.dispatch(app.FrameMsg{Now: g.now()})
	g.deck.Apply(g.model.Track(), g.model.Audio())
}

func (g *Game) toggle() {
	if g.model.State() != app.Loaded {
		return
	}
	g.dispatch(g.model.Toggle())
}

func (g *Game) dispatch(msg tea.Msg) {
	var cmd tea.Cmd
	g.model, cmd = g.model.Update(msg)
	g.run(cmd)
}

// run executes cmd off the game loop and queues its result.
func (g *Game) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				g.run(c)
			}
			return
		}
		if msg != nil {
			g.enqueue(msg)
		}
	}()
}

func (g *Game) enqueue(msg tea.Msg) {
	g.mu.Lock()
	g.pending = append(g.pending, msg)
	g.mu.Unlock()
}

func (g *Game) drain() {
	g.mu.Lock()
	msgs := g.pending
	g.pending = nil
	g.mu.Unlock()

	for _, msg := range msgs {
		g.dispatch(msg)
	}
}
