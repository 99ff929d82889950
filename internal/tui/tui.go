// Package tui runs the player in a terminal: the same app.Model, rendered as
// text with lipgloss and driven by bubbletea.
package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/breathe/internal/app"
	"github.com/iburimskiy/breathe/internal/audio"
	"github.com/iburimskiy/breathe/internal/config"
)

const frameInterval = time.Second / 30

// pxPerCell maps the 400px progress track onto 40 cells.
const pxPerCell = config.ProgressWidth / 40

var buttonStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#96AAC8")).
	Padding(0, 2).
	Bold(true)

var (
	trackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#46505F"))
	fillStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FB4E6"))
	circleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#78C8F0"))
	guideStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#46505F"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75"))
)

// Model adapts app.Model to tea.Model.
type Model struct {
	app   app.Model
	deck  *audio.Deck
	sized bool
}

// New wraps model; deck receives the audio directive on every frame.
func New(model app.Model, deck *audio.Deck) Model {
	if deck == nil {
		deck = &audio.Deck{}
	}
	return Model{app: model, deck: deck}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.app.Init(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return app.FrameMsg{Now: t}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.sized {
			m.sized = true
			return m.forward(app.GotViewportMsg{Width: msg.Width, Height: msg.Height})
		}
		return m.forward(app.ResizeMsg{Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			if m.app.State() == app.Loaded {
				return m.forward(m.app.Toggle())
			}
		}
		return m, nil
	case app.FrameMsg:
		var cmd tea.Cmd
		m, cmd = m.forward(msg)
		m.deck.Apply(m.app.Track(), m.app.Audio())
		return m, tea.Batch(cmd, tick())
	}
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.app, cmd = m.app.Update(msg)
	return m, cmd
}

// App exposes the wrapped state.
func (m Model) App() app.Model { return m.app }

func (m Model) View() string {
	switch m.app.State() {
	case app.Loading:
		return "Loading…\n"
	case app.LoadFailed:
		msg := "Could not load audio"
		if err := m.app.Err(); err != nil {
			msg += ": " + err.Error()
		}
		return errorStyle.Render(msg) + "\n"
	}

	width, height := m.app.Viewport()
	var b strings.Builder
	b.WriteString(buttonStyle.Render(m.app.ButtonLabel()))
	b.WriteString("\n")
	b.WriteString(progressBar(m.app.Progress(), width))
	b.WriteString("\n")
	// button (3) + progress (1) + help (1)
	b.WriteString(disk(m.app.Session().Radius, width, height-5))
	b.WriteString(helpStyle.Render("space: start/stop • q: quit"))
	return b.String()
}

// progressBar renders the track in cells. The fill may run past the track but
// is cut at the terminal edge.
func progressBar(fillPx, width int) string {
	trackCells := config.ProgressWidth / pxPerCell
	fill := fillPx / pxPerCell
	if width > 0 {
		trackCells = min(trackCells, width)
		fill = min(fill, width)
	}
	var b strings.Builder
	if fill > 0 {
		b.WriteString(fillStyle.Render(strings.Repeat("█", fill)))
	}
	if rest := trackCells - fill; rest > 0 {
		b.WriteString(trackStyle.Render(strings.Repeat("░", rest)))
	}
	return b.String()
}

// disk draws the guide ring and the breathing circle scaled so the guide fits
// in rows×width cells. Cells are about twice as tall as wide.
func disk(radius, width, rows int) string {
	cells := min((rows-1)/2, (width/2-1)/2)
	if cells < 2 {
		return ""
	}
	scale := float64(cells) / float64(config.GuideRadius)
	filled := float64(radius) * scale

	var b strings.Builder
	for y := -cells; y <= cells; y++ {
		var row strings.Builder
		for x := -2 * cells; x <= 2*cells; x++ {
			d := math.Hypot(float64(x)/2, float64(y))
			switch {
			case radius > 0 && d <= filled:
				row.WriteString(circleStyle.Render("●"))
			case math.Abs(d-float64(cells)) < 0.5:
				row.WriteString(guideStyle.Render("·"))
			default:
				row.WriteByte(' ')
			}
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}
