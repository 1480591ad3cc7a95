// Package game drives the state machine from a clock and pointer input and keeps the
// last rendered scene for painters and hit-testing.
package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hubastard/nzsc/engine/audio"
	"github.com/hubastard/nzsc/engine/profiler"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/opponent"
	"github.com/hubastard/nzsc/internal/phase"
	"github.com/hubastard/nzsc/internal/render"
	"github.com/hubastard/nzsc/internal/state"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Sound plays feedback cues. *audio.Player satisfies it.
type Sound interface {
	Play(audio.Cue)
}

// RenderFunc turns a state into a scene at completion factor f.
type RenderFunc func(s state.State, d opponent.Difficulty, f float64) (scene.List, error)

type Options struct {
	Machine   state.Options
	Durations phase.Durations
	// Render defaults to render.Screen.
	Render RenderFunc
	Sound  Sound
	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

type Game struct {
	machine   *state.Machine
	durations phase.Durations
	render    RenderFunc
	sound     Sound

	base zerolog.Logger
	log  zerolog.Logger

	started time.Time
	last    scene.List
	fault   error
}

func New(opts Options, now time.Time) *Game {
	g := &Game{
		machine:   state.New(opts.Machine),
		durations: opts.Durations.WithDefaults(),
		render:    opts.Render,
		sound:     opts.Sound,
		base:      log.Logger,
		started:   now,
	}
	if opts.Logger != nil {
		g.base = *opts.Logger
	}
	if g.render == nil {
		g.render = render.Screen
	}
	g.log = g.base
	return g
}

func (g *Game) State() state.State              { return g.machine.State() }
func (g *Game) Difficulty() opponent.Difficulty { return g.machine.Difficulty() }
func (g *Game) Last() scene.List                { return g.last }

// Fault is the error that froze the screen, or nil.
func (g *Game) Fault() error { return g.fault }

// Completion is the current phase's completion factor. Menus are always complete.
func (g *Game) Completion(now time.Time) float64 {
	sp, ok := g.machine.State().(state.SinglePlayer)
	if !ok {
		return 1
	}
	return g.durations.Completion(sp.Phase, now.Sub(g.started))
}

// Frame renders the current state. While faulted, or when rendering fails, the last
// good list is returned unchanged.
func (g *Game) Frame(now time.Time) scene.List {
	if g.fault != nil {
		return g.last
	}
	defer profiler.Start("render")()

	list, err := g.render(g.machine.State(), g.machine.Difficulty(), g.Completion(now))
	if err != nil {
		g.setFault(errors.Wrap(err, "render"))
		return g.last
	}
	g.last = list
	return list
}

// Click resolves a viewport pixel against the last frame and handles the hit action.
func (g *Game) Click(px, py, viewportW, viewportH float64, now time.Time) bool {
	lb := scene.NewLetterbox(render.CanvasWidth, render.CanvasHeight, viewportW, viewportH)
	x, y := lb.ToCanvas(px, py)
	return g.ClickCanvas(x, y, now)
}

// ClickCanvas is Click for a point already in canvas coordinates.
func (g *Game) ClickCanvas(x, y float64, now time.Time) bool {
	a, ok := click.At(x, y, g.last)
	if !ok {
		return false
	}
	g.log.Debug().Float64("x", x).Float64("y", y).Str("action", click.Name(a)).Msg("click")
	return g.Handle(a, now)
}

// Handle applies a and reports whether the state changed. Only entering a new screen or
// phase restarts the clock. A failed transition leaves the state as it was and faults
// the game. While faulted only NavigateHome is handled,
// and it clears the fault.
func (g *Game) Handle(a click.Action, now time.Time) bool {
	if g.fault != nil {
		if _, ok := a.(click.NavigateHome); !ok {
			return false
		}
		return g.recover(now)
	}

	from := g.machine.State()
	c, err := g.machine.Apply(a)
	if err != nil {
		g.play(audio.CueReject)
		g.setFault(errors.Wrap(err, click.Name(a)))
		return false
	}
	switch c {
	case state.Unchanged:
		return false
	case state.Updated:
		// Same phase, same clock.
		g.log.Debug().Str("action", click.Name(a)).Msg("inspector")
		return true
	}
	g.transition(from, now)
	return true
}

// Recover leaves a faulted game for the home screen.
func (g *Game) Recover(now time.Time) bool {
	if g.fault == nil {
		return false
	}
	return g.recover(now)
}

func (g *Game) recover(now time.Time) bool {
	from := g.machine.State()
	g.log.Info().Err(g.fault).Msg("fault cleared")
	g.fault = nil
	if _, home := from.(state.Home); home {
		g.started = now
		return true
	}
	if _, err := g.machine.Handle(click.NavigateHome{}); err != nil {
		g.setFault(err)
		return false
	}
	g.transition(from, now)
	return true
}

func (g *Game) transition(from state.State, now time.Time) {
	g.started = now
	to := g.machine.State()

	sp, playing := to.(state.SinglePlayer)
	if _, was := from.(state.SinglePlayer); playing && !was {
		g.log = g.base.With().Str("session", uuid.NewString()).Logger()
	}

	ev := g.log.Info().Str("from", from.Name()).Str("to", to.Name())
	if playing {
		ev = ev.Str("phase", sp.Phase.Name())
	}
	ev.Msg("transition")
	if pick, ok := computerPick(sp.Phase); playing && ok {
		g.log.Debug().Str("phase", sp.Phase.Name()).Str("pick", pick).Msg("opponent")
	}

	if !playing {
		g.log = g.base
	}
	if _, over := sp.Phase.(phase.GameOver); playing && over {
		g.play(audio.CueGameOver)
		return
	}
	g.play(audio.CueAccept)
}

// computerPick is the computer's choice that produced p, as recorded in p's frozen data.
func computerPick(p phase.Phase) (string, bool) {
	var v any
	switch p := p.(type) {
	case phase.RechooseCharacter:
		v = p.MutuallyChosen
	case phase.ChooseBooster:
		v = p.PrevOutcome[nzsc.Computer].Character
	case phase.ChooseFirstDequeue:
		v = p.Scoreboard[nzsc.Computer].Booster
	case phase.ChooseAction:
		v = p.PrevOutcome[nzsc.Computer]
	case phase.ChooseSubsequentDequeue:
		v = p.PrevOutcome[nzsc.Computer].Action
	case phase.GameOver:
		v = p.PrevOutcome[nzsc.Computer].Action
	default:
		return "", false
	}
	return fmt.Sprint(v), true
}

func (g *Game) setFault(err error) {
	g.fault = err
	g.log.Error().Err(err).Str("state", g.machine.State().Name()).Msg("fault")
}

func (g *Game) play(c audio.Cue) {
	if g.sound != nil {
		g.sound.Play(c)
	}
}
