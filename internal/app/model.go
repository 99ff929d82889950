package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iburimskiy/breathe/internal/audio"
	"github.com/iburimskiy/breathe/internal/breath"
	"github.com/iburimskiy/breathe/internal/clock"
)

// DefaultLoopEnd bounds the looped region of the track.
const DefaultLoopEnd = 300 * time.Second

// Options configure a Model. AutoReset returns FadingOut to NotPlaying once
// the fade has finished; without it a stopped session stays fading.
type Options struct {
	Source    string
	LoopEnd   time.Duration
	Fade      time.Duration
	AutoReset bool
	Now       func() time.Time
	Logger    *slog.Logger
}

// Model is the whole application state.
type Model struct {
	opts   Options
	loader audio.Loader
	log    *slog.Logger

	state   LoadState
	session Session
	err     error

	width, height int
	seq           uint64
}

// New returns a Model in the Loading state.
func New(loader audio.Loader, opts Options) Model {
	if opts.LoopEnd <= 0 {
		opts.LoopEnd = DefaultLoopEnd
	}
	if opts.Fade <= 0 {
		opts.Fade = clock.DefaultFade
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{opts: opts, loader: loader, log: logger}
}

// Init starts loading the track.
func (m Model) Init() tea.Cmd {
	loader, source := m.loader, m.opts.Source
	return func() tea.Msg {
		track, err := loader.Load(context.Background(), source)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return LoadedMsg{Track: track}
	}
}

// Update applies one message and returns the follow-up command, if any.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if m.state != Loading {
			return m.drop(msg), nil
		}
		m.state = Loaded
		m.session = Session{Track: msg.Track, Width: m.width, Height: m.height}
		m.log.Info("track ready", "source", m.opts.Source)
	case LoadFailedMsg:
		if m.state != Loading {
			return m.drop(msg), nil
		}
		m.state = LoadFailed
		m.err = msg.Err
		m.log.Error("track failed to load", "source", m.opts.Source, "error", msg.Err)
	case GotViewportMsg:
		m.setViewport(msg.Width, msg.Height)
	case ResizeMsg:
		m.setViewport(msg.Width, msg.Height)
	case PressedPlayMsg:
		if m.state != Loaded {
			return m.drop(msg), nil
		}
		return m.queryTime(requestPlay)
	case PressedStopMsg:
		if m.state != Loaded {
			return m.drop(msg), nil
		}
		return m.queryTime(requestStop)
	case timeMsg:
		return m.resolve(msg), nil
	case FrameMsg:
		return m.frame(msg.Now), nil
	}
	return m, nil
}

// queryTime defers the clock read to the command so the timestamp is taken
// when the command runs, not when the press was handled.
func (m Model) queryTime(req request) (Model, tea.Cmd) {
	m.seq++
	token, now := m.seq, m.opts.Now
	m.log.Debug("time query issued", "request", req, "token", token)
	return m, func() tea.Msg {
		return timeMsg{req: req, token: token, now: now()}
	}
}

func (m Model) resolve(msg timeMsg) Model {
	if m.state != Loaded {
		return m.drop(msg)
	}
	ps := m.session.Play
	switch {
	case msg.req == requestPlay && ps.Kind == NotPlaying:
		m.session.Play = PlayState{Kind: Playing, Start: msg.now}
	case msg.req == requestStop && ps.Kind == Playing:
		stop := msg.now
		if stop.Before(ps.Start) {
			stop = ps.Start
		}
		m.session.Play = PlayState{Kind: FadingOut, Start: ps.Start, Stop: stop}
		m.session.Radius = 0
		m.session.ElapsedMs = 0
	default:
		return m.drop(msg)
	}
	m.log.Info("play state changed", "state", m.session.Play.Kind, "token", msg.token)
	return m
}

func (m Model) frame(now time.Time) Model {
	if m.state != Loaded {
		return m
	}
	ps := m.session.Play
	if ps.Kind == FadingOut && m.opts.AutoReset && !now.Before(ps.Stop.Add(m.opts.Fade)) {
		m.session.Play = PlayState{Kind: NotPlaying}
		m.log.Info("play state changed", "state", NotPlaying, "reason", "fade complete")
	}
	if m.session.Play.Kind == Playing {
		m.session.ElapsedMs = clock.Elapsed(m.session.Play.Start, now)
	} else {
		m.session.ElapsedMs = 0
	}
	m.session.Radius = breath.Radius(m.session.ElapsedMs)
	return m
}

func (m *Model) setViewport(w, h int) {
	m.width, m.height = w, h
	m.session.Width, m.session.Height = w, h
}

func (m Model) drop(msg tea.Msg) Model {
	m.log.Debug("message ignored", "msg", msgName(msg), "state", m.state, "play", m.session.Play.Kind)
	return m
}

func msgName(msg tea.Msg) string {
	switch msg := msg.(type) {
	case LoadedMsg:
		return "loaded"
	case LoadFailedMsg:
		return "load-failed"
	case PressedPlayMsg:
		return "pressed-play"
	case PressedStopMsg:
		return "pressed-stop"
	case timeMsg:
		return "time/" + msg.req.String()
	}
	return "other"
}

// Toggle returns the press message matching the button's current label.
func (m Model) Toggle() tea.Msg {
	if m.session.Play.Kind == Playing {
		return PressedStopMsg{}
	}
	return PressedPlayMsg{}
}

// ButtonLabel is "Stop" while playing and "Start" otherwise.
func (m Model) ButtonLabel() string {
	if m.session.Play.Kind == Playing {
		return "Stop"
	}
	return "Start"
}

// Progress is the progress-bar fill width for the current elapsed time.
func (m Model) Progress() int { return breath.Progress(m.session.ElapsedMs) }

// Audio maps the play state to the output directive.
func (m Model) Audio() audio.Directive {
	if m.state != Loaded {
		return audio.Silence()
	}
	ps := m.session.Play
	switch ps.Kind {
	case Playing:
		return audio.Directive{Kind: audio.Play, Start: ps.Start, LoopEnd: m.opts.LoopEnd}
	case FadingOut:
		return audio.Directive{
			Kind:    audio.Play,
			Start:   ps.Start,
			LoopEnd: m.opts.LoopEnd,
			Ramp:    clock.FadeEnvelope(ps.Stop, m.opts.Fade),
		}
	}
	return audio.Silence()
}

func (m Model) State() LoadState { return m.state }

func (m Model) Session() Session { return m.session }

func (m Model) Err() error { return m.err }

// Track is the loaded track, nil until Loaded.
func (m Model) Track() *audio.Track {
	if m.state != Loaded {
		return nil
	}
	return m.session.Track
}

// Viewport returns the last reported viewport size, known even before load.
func (m Model) Viewport() (int, int) { return m.width, m.height }
