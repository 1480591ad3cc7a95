package main

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/nzsc/engine/assets"
	"github.com/hubastard/nzsc/engine/tui"
	"github.com/hubastard/nzsc/internal/game"
	"github.com/hubastard/nzsc/internal/render"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const frameInterval = 33 * time.Millisecond

// runTerminal paints into the terminal with half-block cells. Sprites are drawn in their
// average color, so the asset directory is optional here.
func runTerminal(g *game.Game, loader assets.Loader) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}
	defer screen.Fini()
	screen.EnableMouse()

	p := tui.New(screen, render.CanvasWidth, render.CanvasHeight)
	if sprites, err := loader.LoadSprites(spriteKeys()); err == nil {
		avg := make(map[string]color.RGBA, len(sprites))
		for k, s := range sprites {
			avg[k] = s.Average()
		}
		p.SetSpriteColors(avg)
	} else {
		log.Warn().Err(err).Msg("sprites unavailable, drawing labels")
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var mouseDown bool
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if r, ok := terminalRune(ev); ok {
					if g.Fault() != nil && (r == 'h' || r == 'H') {
						g.Recover(time.Now())
						continue
					}
					if a, ok := g.Shortcut(r); ok {
						g.Handle(a, time.Now())
					}
				}
			case *tcell.EventMouse:
				// Act on press only; tcell repeats the button mask while it is held.
				down := ev.Buttons()&tcell.Button1 != 0
				if down && !mouseDown {
					col, row := ev.Position()
					x, y := p.ToCanvas(col, row)
					if g.Fault() != nil {
						g.Recover(time.Now())
					} else {
						g.ClickCanvas(x, y, time.Now())
					}
				}
				mouseDown = down
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			p.Paint(g.Frame(time.Now()))
			if err := g.Fault(); err != nil {
				banner(screen, "fault: "+err.Error()+" (click or press h to go home)")
			}
		}
	}
}

func banner(screen tcell.Screen, msg string) {
	cols, _ := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	col := 0
	for _, r := range msg {
		if col >= cols {
			break
		}
		screen.SetContent(col, 0, r, nil, style)
		col++
	}
	for ; col < cols; col++ {
		screen.SetContent(col, 0, ' ', nil, style)
	}
	screen.Show()
}

func terminalRune(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune(), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return '\b', true
	case tcell.KeyEnter:
		return '\r', true
	}
	return 0, false
}
