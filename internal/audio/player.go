package audio

import (
	"log/slog"

	"github.com/faiface/beep"
)

const (
	tapRingSize = 8192
	levelWindow = 2048
	loopForever = -1
)

// Player drives an Output from a sequence of directives. Apply is idempotent:
// the stream is only rebuilt when the start instant or loop region changes.
type Player struct {
	out   Output
	track *Track
	log   *slog.Logger

	current Directive
	active  bool
	env     *envelope
	tap     *levelTap
}

// NewPlayer returns a silent player for track.
func NewPlayer(out Output, track *Track, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{out: out, track: track, log: logger, current: Silence()}
}

// Apply moves the output to match d.
func (p *Player) Apply(d Directive) {
	switch {
	case d.Kind == Silent:
		if p.active {
			p.out.Clear()
			p.active = false
			p.env = nil
			p.tap = nil
			p.log.Debug("audio silenced")
		}
	case !p.active || !d.sameStream(p.current):
		p.start(d)
	case !sameRamp(d.Ramp, p.current.Ramp):
		p.out.Lock()
		p.env.ramp = d.Ramp
		p.out.Unlock()
		p.log.Debug("audio ramp installed", "points", len(d.Ramp))
	}
	p.current = d
}

func (p *Player) start(d Directive) {
	p.out.Clear()

	looped := beep.Loop(loopForever, p.track.Region(d.LoopEnd))
	env := &envelope{
		Source: looped,
		start:  d.Start,
		rate:   p.track.Format.SampleRate,
		ramp:   d.Ramp,
	}
	tap := newLevelTap(env, tapRingSize)

	p.env = env
	p.tap = tap
	p.active = true
	p.out.Play(tap)
	p.log.Debug("audio started", "start", d.Start, "loopEnd", d.LoopEnd)
}

// Level is the RMS loudness of what was played most recently, 0 when silent.
func (p *Player) Level() float64 {
	if p == nil || p.tap == nil {
		return 0
	}
	return p.tap.level(levelWindow)
}

// Deck builds a Player for the first loaded track it sees and forwards
// directives to it. Shells keep one Deck for the process lifetime.
type Deck struct {
	NewOutput func(beep.Format) (Output, error)
	Logger    *slog.Logger

	player *Player
}

// Apply forwards d once track is known; before that it does nothing.
func (d *Deck) Apply(track *Track, dir Directive) {
	if d.player == nil {
		if track == nil {
			return
		}
		d.player = NewPlayer(d.output(track.Format), track, d.Logger)
	}
	d.player.Apply(dir)
}

// Level reports the current player's level.
func (d *Deck) Level() float64 { return d.player.Level() }

func (d *Deck) output(format beep.Format) Output {
	newOutput := d.NewOutput
	if newOutput == nil {
		newOutput = NewSpeakerOutput
	}
	out, err := newOutput(format)
	if err != nil {
		if d.Logger != nil {
			d.Logger.Warn("audio output unavailable, continuing silently", "error", err)
		}
		return NoopOutput{}
	}
	return out
}
