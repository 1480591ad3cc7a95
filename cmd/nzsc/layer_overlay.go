package main

import (
	"fmt"
	"time"

	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/core"
	"github.com/hubastard/nzsc/engine/gfx/renderer2d"
	"github.com/hubastard/nzsc/engine/profiler"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/engine/text"
	"github.com/hubastard/nzsc/internal/game"
	"github.com/hubastard/nzsc/internal/render"
	"github.com/rs/zerolog/log"
)

// LayerOverlay sits above the game. It draws the fault diagnostic, swallowing input
// until the player goes home, and the stats panel toggled with S.
type LayerOverlay struct {
	game *game.Game
	cam  *scene.CanvasCamera
	r2d  *renderer2d.Renderer2D
	font *text.Font

	showStats     bool
	frameDuration float32
	tick          int
}

func (l *LayerOverlay) OnAttach(e *core.Engine) {}
func (l *LayerOverlay) OnDetach(e *core.Engine) {}

func (l *LayerOverlay) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerOverlay) OnRender(e *core.Engine, alpha float64) {
	fault := l.game.Fault()
	if fault == nil && !l.showStats {
		return
	}
	end := profiler.Start("LayerOverlay.OnRender")
	defer end()

	stats := l.r2d.Stats()
	l.r2d.BeginScene(l.cam.VP())
	if fault != nil {
		l.drawFault(fault)
	}
	if l.showStats {
		l.drawStats(stats)
	}
	if err := l.r2d.EndScene(); err != nil {
		log.Error().Err(err).Msg("overlay")
	}
}

func (l *LayerOverlay) drawFault(err error) {
	v := l.cam.Visible()
	l.r2d.DrawRect(float32(v.X), float32(v.Y), float32(v.W), float32(v.H), colors.Black.WithAlpha(0.75))

	const size = 48
	title := "Something went wrong"
	w, _ := text.MeasureText(l.font, title, size)
	text.DrawText(l.r2d, l.font, (render.CanvasWidth-w)/2, 300, size, title, colors.Fault)

	msg := err.Error()
	if len(msg) > 120 {
		msg = msg[:117] + "..."
	}
	w, _ = text.MeasureText(l.font, msg, 28)
	text.DrawText(l.r2d, l.font, (render.CanvasWidth-w)/2, 420, 28, msg, colors.White)

	hint := "Click or press H to return home"
	w, _ = text.MeasureText(l.font, hint, 32)
	text.DrawText(l.r2d, l.font, (render.CanvasWidth-w)/2, 600, 32, hint, colors.Gray)
}

func (l *LayerOverlay) drawStats(s renderer2d.Statistics) {
	lines := []string{
		fmt.Sprintf("Frame: %d", l.tick),
		fmt.Sprintf("  %2.3f ms (%.2f FPS)", l.frameDuration, 1000.0/max(l.frameDuration, 0.001)),
		fmt.Sprintf("  Draw Calls: %d", s.DrawCalls),
		fmt.Sprintf("  Quads: %d", s.QuadCount),
		fmt.Sprintf("  Vertices: %d", s.TotalVertexCount()),
		fmt.Sprintf("  Textures: %d", s.TextureCount),
		fmt.Sprintf("  Profiling: %t", profiler.Enabled()),
	}
	for i, sc := range profiler.Summary() {
		if i == 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("  %s: %v avg", sc.Name, sc.Avg()))
	}
	const size, pad = 24, 16
	lh := text.LineHeight(l.font) * size / l.font.SizePx
	l.r2d.DrawRect(pad, pad, 360, lh*float32(len(lines))+2*pad, colors.Black.WithAlpha(0.5))
	for i, line := range lines {
		text.DrawText(l.r2d, l.font, 2*pad, 2*pad+lh*float32(i), size, line, colors.White)
	}
}

func (l *LayerOverlay) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventKey); ok && v.Down && v.Key == core.KeyS && l.game.Fault() == nil {
		l.showStats = !l.showStats
		return true
	}
	if l.game.Fault() == nil {
		return false
	}
	switch v := ev.(type) {
	case core.EventMouseButton:
		if v.Down && v.Button == core.MouseLeft {
			l.game.Recover(time.Now())
		}
		return true
	case core.EventKey:
		if v.Down && v.Key == core.KeyH {
			l.game.Recover(time.Now())
		}
		return v.Key != core.KeyEscape
	}
	return false
}
