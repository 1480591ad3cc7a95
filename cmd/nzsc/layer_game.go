package main

import (
	"time"

	"github.com/hubastard/nzsc/engine/core"
	"github.com/hubastard/nzsc/engine/gfx/painter"
	"github.com/hubastard/nzsc/engine/profiler"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/game"
	"github.com/rs/zerolog/log"
)

// LayerGame paints the current frame and feeds it clicks and shortcuts.
type LayerGame struct {
	game    *game.Game
	cam     *scene.CanvasCamera
	painter *painter.Painter

	paintFailed bool
}

func (l *LayerGame) OnAttach(e *core.Engine) {}
func (l *LayerGame) OnDetach(e *core.Engine) {}

func (l *LayerGame) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerGame) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("LayerGame.OnRender")
	defer end()

	list := l.game.Frame(time.Now())
	if err := l.painter.Paint(list); err != nil {
		if !l.paintFailed {
			log.Error().Err(err).Msg("paint")
		}
		l.paintFailed = true
		return
	}
	l.paintFailed = false
}

func (l *LayerGame) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if !v.Down {
			return false
		}
		if v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if path, err := profiler.OpenProfilerGraph(); err == nil {
				log.Info().Str("path", path).Msg("speedscope dump")
			} else {
				log.Warn().Err(err).Msg("profiler dump")
			}
			return true
		}
		if v.Key == core.KeyEscape {
			e.Window.RequestClose()
			return true
		}
		if r, ok := keyRune(v.Key); ok {
			if a, ok := l.game.Shortcut(r); ok {
				l.game.Handle(a, time.Now())
				return true
			}
		}
	case core.EventMouseButton:
		if v.Down && v.Button == core.MouseLeft {
			w, h := e.Window.FramebufferSize()
			return l.game.Click(v.X, v.Y, float64(w), float64(h), time.Now())
		}
	case core.EventResize:
		l.cam.Fit(e.Window.FramebufferSize())
	}
	return false
}

// keyRune maps window keys onto the runes game shortcuts use.
func keyRune(k core.Key) (rune, bool) {
	if d, ok := k.Digit(); ok {
		return rune('0' + d), true
	}
	switch k {
	case core.KeyBackspace:
		return '\b', true
	case core.KeyEnter:
		return '\r', true
	case core.KeyH:
		return 'h', true
	}
	return 0, false
}
