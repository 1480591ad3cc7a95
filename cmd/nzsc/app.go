package main

import (
	"time"

	"github.com/hubastard/nzsc/engine/assets"
	"github.com/hubastard/nzsc/engine/core"
	"github.com/hubastard/nzsc/engine/gfx/painter"
	"github.com/hubastard/nzsc/engine/gfx/renderer2d"
	"github.com/hubastard/nzsc/engine/profiler"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/engine/text"
	"github.com/hubastard/nzsc/internal/game"
	"github.com/hubastard/nzsc/internal/render"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type App struct {
	game   *game.Game
	loader assets.Loader

	lastFrame time.Time
	tick      int
	r2d       *renderer2d.Renderer2D
	cam       *scene.CanvasCamera
	font      *text.Font
	painter   *painter.Painter
	overlay   *LayerOverlay
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10) // ~1K scope samples

	if err := a.setup(e); err != nil {
		log.Fatal().Err(err).Msg("startup")
	}

	e.PushLayer(&LayerGame{game: a.game, cam: a.cam, painter: a.painter})
	a.overlay = &LayerOverlay{game: a.game, cam: a.cam, r2d: a.r2d, font: a.font}
	e.PushLayer(a.overlay)
}

func (a *App) setup(e *core.Engine) error {
	vs, err := a.loader.LoadShader("renderer2d.vert")
	if err != nil {
		return err
	}
	fs, err := a.loader.LoadShader("renderer2d.frag")
	if err != nil {
		return err
	}
	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, 10000)
	if err != nil {
		return errors.Wrap(err, "2D renderer")
	}

	a.font, err = text.Default(48)
	if err != nil {
		return err
	}
	if err := a.font.Upload(e.Renderer); err != nil {
		return err
	}

	a.cam = scene.NewCanvasCamera(render.CanvasWidth, render.CanvasHeight)
	a.cam.Fit(e.Window.FramebufferSize())
	a.painter = painter.New(e.Renderer, a.r2d, a.cam, a.font)

	sprites, err := a.loader.LoadSprites(spriteKeys())
	if err != nil {
		return err
	}
	return a.painter.UploadSprites(sprites)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.overlay.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.overlay.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	if a.painter != nil {
		a.painter.Release()
	}
	if a.font != nil {
		a.font.Close()
	}
}
