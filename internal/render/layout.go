package render

import (
	"math"

	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/nzsc"
)

// Canvas is the ideal drawing surface. Painters letterbox it into the window.
const (
	CanvasWidth  = 1800.0
	CanvasHeight = 1000.0
	CenterX      = CanvasWidth / 2
	CenterY      = CanvasHeight / 2
)

// Side is where a player's board is drawn. The human is always Left.
type Side uint8

const (
	Left Side = iota
	Right
)

func sideOf(slot int) Side {
	if slot == nzsc.Human {
		return Left
	}
	return Right
}

// slot is a card position: a colored background rect and the image on top of it.
type slot struct {
	bg, fg scene.Rect
}

const (
	buttonWidth   = 400.0
	buttonHeight  = 800.0
	buttonHMargin = 40.0
	buttonVMargin = 100.0
)

func buttonSlot(i int) slot {
	x := buttonHMargin + float64(i)*(buttonWidth+buttonHMargin)
	return slot{
		bg: scene.Rect{X: x, Y: buttonVMargin, W: buttonWidth, H: buttonHeight},
		fg: scene.Rect{X: x, Y: buttonVMargin + (buttonHeight-buttonWidth)/2, W: buttonWidth, H: buttonWidth},
	}
}

type focus uint8

const (
	focusLeft focus = iota
	focusRight
	focusFarLeft
	focusFarRight
)

var focusX = [...]float64{
	focusLeft:     460,
	focusRight:    940,
	focusFarLeft:  -440,
	focusFarRight: 1840,
}

func focusSlot(f focus) slot {
	s := buttonSlot(0)
	dx := focusX[f] - s.bg.X
	return slot{bg: s.bg.Translate(dx, 0), fg: s.fg.Translate(dx, 0)}
}

// Dequeue circles.
const (
	Diameter = 220.0
	Radius   = Diameter / 2
	Offset   = Diameter + 1.6

	leftColumn0X  = 120.0
	rightColumn0X = 1680.0
	row0Y         = 213.6

	// imageRatio sizes an item image against its circle.
	imageRatio = 160.0 / Diameter
)

// Cell addresses a dequeue circle within one player's board.
type Cell struct {
	Row, Col int
}

// HeightInRows is how many three-wide rows n items occupy.
func HeightInRows(n int) int { return (n + 2) / 3 }

// Grid lays out a board: the pool first, then the mouth row holding entrance, decline
// and exit, then the arsenal. Lookup and drawing share it.
type Grid struct {
	PoolRows int
}

func GridOf(b nzsc.HasQueueAndArsenal) Grid {
	return Grid{PoolRows: HeightInRows(len(b.Board().Queue.Pool))}
}

func (g Grid) Pool(i int) Cell { return Cell{Row: i / 3, Col: i % 3} }

func (g Grid) MouthRow() int { return g.PoolRows }

func (g Grid) Entrance() Cell { return Cell{Row: g.PoolRows, Col: 0} }
func (g Grid) Middle() Cell   { return Cell{Row: g.PoolRows, Col: 1} }
func (g Grid) Exit() Cell     { return Cell{Row: g.PoolRows, Col: 2} }

func (g Grid) ArsenalRow() int { return g.PoolRows + 1 }

func (g Grid) Arsenal(i int) Cell { return Cell{Row: g.ArsenalRow() + i/3, Col: i % 3} }

// Locate finds item on p's board, searching the pool, then the mouth, then the arsenal.
func (g Grid) Locate(b nzsc.HasQueueAndArsenal, item nzsc.ArsenalItem) (Cell, bool) {
	p := b.Board()
	for i, it := range p.Queue.Pool {
		if it == item {
			return g.Pool(i), true
		}
	}
	if e := p.Queue.Entrance; e != nil && *e == item {
		return g.Entrance(), true
	}
	if e := p.Queue.Exit; e != nil && *e == item {
		return g.Exit(), true
	}
	for i, it := range p.Arsenal {
		if it == item {
			return g.Arsenal(i), true
		}
	}
	return Cell{}, false
}

// Circle is the background circle of c on side s. Right-side columns run leftward.
func (s Side) Circle(c Cell) scene.Circle {
	x := leftColumn0X + float64(c.Col)*Offset
	if s == Right {
		x = rightColumn0X - float64(c.Col)*Offset
	}
	return scene.Circle{X: x, Y: row0Y + float64(c.Row)*Offset, R: Radius}
}

func (s Side) Image(c Cell) scene.Rect { return imageIn(s.Circle(c)) }

func imageIn(c scene.Circle) scene.Rect {
	size := 2 * c.R * imageRatio
	return scene.CenteredRect(c.X, c.Y, size, size)
}

// actionFocus is where a played action is shown before it scores.
func (s Side) actionFocus() scene.Circle {
	x := 450.0
	if s == Right {
		x = 1350
	}
	return scene.Circle{X: x, Y: CenterY, R: 150}
}

func (s Side) expandedActionFocus() scene.Circle {
	c := s.actionFocus()
	c.R *= 1.5
	return c
}

// highlightRing is drawn under an item the inspector colors.
func highlightRing(c scene.Circle) scene.Circle {
	c.R += 12
	return c
}

// inspectButton sits centred above the boards.
var inspectButton = scene.Rect{X: CenterX - 291.0/2, Y: row0Y - 180.0/2, W: 291, H: 180}

// Hearts.
const heartSize = 80.0

func heartRect(s Side, index int, scale float64) scene.Rect {
	if s == Left {
		return scene.CenteredRect(80+float64(index)*heartSize, 50, scale*heartSize, scale*heartSize)
	}
	return scene.CenteredRect(1720-float64(index)*heartSize, 50, scale*heartSize, scale*heartSize)
}

// scoreboardSlide is how far a board travels when it slides in from its edge.
const scoreboardSlide = 553.2

func (s Side) outward(d float64) float64 {
	if s == Left {
		return -d
	}
	return d
}

var arrowWidth = arrowHeight * 2 / math.Sqrt(3)

const arrowHeight = 40.0
