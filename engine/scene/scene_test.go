package scene

import (
	"testing"

	"github.com/hubastard/nzsc/engine/anim"
	"github.com/hubastard/nzsc/engine/colors"
	"github.com/stretchr/testify/assert"
)

var (
	red  = colors.RGBA{R: 0xFF, A: 0xFF}
	blue = colors.RGBA{B: 0xFF, A: 0x80}
)

func TestHitTopmostWins(t *testing.T) {
	list := List{
		Background{Color: red},
		FilledRect{Color: red, Shape: Rect{0, 0, 100, 100}, OnClick: "under"},
		FilledCircle{Color: blue, Shape: Circle{50, 50, 20}, OnClick: "over"},
	}
	a, ok := Hit(50, 50, list)
	assert.True(t, ok)
	assert.Equal(t, "over", a)

	a, ok = Hit(5, 5, list)
	assert.True(t, ok)
	assert.Equal(t, "under", a)

	_, ok = Hit(150, 150, list)
	assert.False(t, ok)
}

func TestHitSkipsInertComponents(t *testing.T) {
	list := List{
		FilledRect{Shape: Rect{0, 0, 10, 10}, OnClick: "button"},
		FilledRect{Shape: Rect{0, 0, 10, 10}},
		UnclickablePath{Path: Path{Start: Point{0, 0}, Commands: []PathCommand{LineTo{10, 10}}}},
	}
	a, ok := Hit(5, 5, list)
	assert.True(t, ok)
	assert.Equal(t, "button", a)
}

func TestHitBackgroundCatchesEverything(t *testing.T) {
	list := List{
		FilledRect{Shape: Rect{0, 0, 10, 10}, OnClick: "button"},
		Background{Color: blue, OnClick: "stop"},
	}
	a, _ := Hit(5, 5, list)
	assert.Equal(t, "stop", a)
	a, _ = Hit(-500, 9000, list)
	assert.Equal(t, "stop", a)
}

func TestContainment(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(30, 30))
	assert.False(t, r.Contains(30.01, 30))

	c := Circle{0, 0, 5}
	assert.True(t, c.Contains(3, 4))
	assert.False(t, c.Contains(4, 4))
}

func TestInterpolationEndpoints(t *testing.T) {
	items := []Lerpable{
		LerpRect{StartColor: red, EndColor: blue, Start: Rect{0.1, 0.2, 3, 4}, End: Rect{0.3, 7.7, 1, 9}, OnClick: "r"},
		LerpCircle{StartColor: blue, EndColor: red, Start: Circle{0.1, 0.7, 2}, End: Circle{-3.3, 5, 0.3}},
		LerpImage{Key: "k", StartAlpha: 1, EndAlpha: 0.3, Start: Rect{1, 2, 3, 4}, End: Rect{0.7, 0.1, 0.2, 9}},
	}
	start := LerpAll(anim.FromFactor(0), items...)
	end := LerpAll(anim.FromFactor(1), items...)

	assert.Equal(t, FilledRect{Color: red, Shape: Rect{0.1, 0.2, 3, 4}}, start[0])
	assert.Equal(t, FilledRect{Color: blue, Shape: Rect{0.3, 7.7, 1, 9}, OnClick: "r"}, end[0])
	assert.Equal(t, FilledCircle{Color: blue, Shape: Circle{0.1, 0.7, 2}}, start[1])
	assert.Equal(t, FilledCircle{Color: red, Shape: Circle{-3.3, 5, 0.3}}, end[1])
	assert.Equal(t, Image{Key: "k", Alpha: 1, Shape: Rect{1, 2, 3, 4}}, start[2])
	assert.Equal(t, Image{Key: "k", Alpha: 0.3, Shape: Rect{0.7, 0.1, 0.2, 9}}, end[2])
}

func TestClickInTransit(t *testing.T) {
	moving := LerpRect{Start: Rect{0, 0, 1, 1}, End: Rect{5, 5, 1, 1}, OnClick: "go"}
	assert.Nil(t, moving.At(anim.FromFactor(0.5)).Click())

	moving.ClickInTransit = true
	assert.Equal(t, "go", moving.At(anim.FromFactor(0.5)).Click())
}

func TestLerpColorMidpoint(t *testing.T) {
	c := LerpColor(anim.FromFactor(0.5), colors.RGBA{R: 0, G: 0, B: 0, A: 0}, colors.RGBA{R: 200, G: 100, B: 50, A: 255})
	assert.Equal(t, colors.RGBA{R: 100, G: 50, B: 25, A: 128}, c)
}

func TestTranslateAndScale(t *testing.T) {
	list := List{
		FilledRect{Shape: Rect{1, 2, 3, 4}},
		UnclickablePath{
			Path:   Path{Start: Point{0, 0}, Commands: []PathCommand{ArcTo{1, 1, 2, 2, 3}}},
			Stroke: &Stroke{Width: 2},
		},
	}
	moved := list.Translate(10, 20)
	assert.Equal(t, Rect{11, 22, 3, 4}, moved[0].(FilledRect).Shape)
	assert.Equal(t, ArcTo{11, 21, 12, 22, 3}, moved[1].(UnclickablePath).Path.Commands[0])

	scaled := list.Scale(2)
	assert.Equal(t, Rect{2, 4, 6, 8}, scaled[0].(FilledRect).Shape)
	assert.Equal(t, 4.0, scaled[1].(UnclickablePath).Stroke.Width)
	assert.Equal(t, 2.0, list[1].(UnclickablePath).Stroke.Width)
}

func TestLetterbox(t *testing.T) {
	wide := NewLetterbox(1800, 1000, 3600, 1000)
	assert.Equal(t, Letterbox{Left: 900, Scale: 1}, wide)

	tall := NewLetterbox(1800, 1000, 900, 1000)
	assert.Equal(t, Letterbox{Top: 250, Scale: 0.5}, tall)

	x, y := tall.ToCanvas(450, 500)
	assert.InDelta(t, 900, x, 1e-9)
	assert.InDelta(t, 500, y, 1e-9)

	vx, vy := tall.ToViewport(x, y)
	assert.InDelta(t, 450, vx, 1e-9)
	assert.InDelta(t, 500, vy, 1e-9)
}

func TestCanvasCamera(t *testing.T) {
	cam := NewCanvasCamera(1800, 1000)
	vp := cam.VP()

	x, y := project(vp, 0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)

	x, y = project(vp, 1800, 1000)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)

	cam.Fit(3600, 1000)
	assert.Equal(t, Rect{X: -900, Y: 0, W: 3600, H: 1000}, cam.Visible())
}
