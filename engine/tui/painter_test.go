package tui

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = colors.RGBA{A: 0xFF}
	red   = colors.RGBA{R: 0xFF, A: 0xFF}
)

// newScreen is 36x10 cells, a 36x20 pixel grid that fits an 1800x1000 canvas exactly.
func newScreen(t *testing.T) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(36, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func TestRectFillsCellsUnderIt(t *testing.T) {
	screen := newScreen(t)
	p := New(screen, 1800, 1000)
	p.Paint(scene.List{
		scene.Background{Color: black},
		scene.FilledRect{Color: red, Shape: scene.Rect{W: 900, H: 1000}},
	})

	assert.Equal(t, red, p.Pixel(0, 0))
	assert.Equal(t, red, p.Pixel(17, 19))
	assert.Equal(t, black, p.Pixel(18, 0))

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, halfBlock, r)
	want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)).Background(tcell.NewRGBColor(255, 0, 0))
	assert.Equal(t, want, style)
}

func TestTranslucentBlend(t *testing.T) {
	p := New(newScreen(t), 1800, 1000)
	p.Paint(scene.List{
		scene.Background{Color: black},
		scene.FilledCircle{Color: red.WithAlpha(0x80), Shape: scene.Circle{X: 900, Y: 500, R: 200}},
	})
	assert.Equal(t, colors.RGBA{R: 0x80, A: 0xFF}, p.Pixel(18, 10))
	assert.Equal(t, black, p.Pixel(0, 0))
}

func TestToCanvas(t *testing.T) {
	p := New(newScreen(t), 1800, 1000)
	x, y := p.ToCanvas(0, 0)
	assert.InDelta(t, 25, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)

	x, y = p.ToCanvas(35, 9)
	assert.InDelta(t, 1775, x, 1e-9)
	assert.InDelta(t, 950, y, 1e-9)
}

func TestImageColorsAndLabels(t *testing.T) {
	screen := newScreen(t)
	p := New(screen, 1800, 1000)
	p.SetSpriteColors(map[string]color.RGBA{"ui/heart": {R: 0xFF, A: 0xFF}})
	p.Paint(scene.List{
		scene.Background{Color: black},
		scene.Image{Key: "ui/heart", Alpha: 1, Shape: scene.Rect{W: 100, H: 100}},
		scene.Image{Key: "ui/start", Alpha: 1, Shape: scene.Rect{X: 600, W: 1200, H: 1000}},
	})
	assert.Equal(t, red, p.Pixel(0, 0))

	// The unloaded sprite is labeled with its name in the middle of its cells.
	var row []rune
	for col := 12; col < 36; col++ {
		r, _, _, _ := screen.GetContent(col, 5)
		row = append(row, r)
	}
	assert.Contains(t, string(row), "start")
}

func TestPathFill(t *testing.T) {
	p := New(newScreen(t), 1800, 1000)
	fill := red
	p.Paint(scene.List{
		scene.Background{Color: black},
		scene.UnclickablePath{
			Path: scene.Path{
				Start:    scene.Point{X: 0, Y: 0},
				Commands: []scene.PathCommand{scene.LineTo{X: 1800, Y: 0}, scene.LineTo{X: 1800, Y: 1000}, scene.LineTo{X: 0, Y: 1000}},
			},
			Fill: &fill,
		},
	})
	assert.Equal(t, red, p.Pixel(10, 10))
}
