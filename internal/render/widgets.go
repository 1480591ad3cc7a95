package render

import (
	"github.com/hubastard/nzsc/engine/anim"
	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/nzsc"
)

func background() scene.Component { return scene.Background{Color: Background} }
func overlay() scene.Component    { return scene.Background{Color: Overlay} }

// card is a character or booster tile.
type card struct {
	color colors.RGBA
	image scene.ImageKey
}

func characterCard(c nzsc.Character) card { return card{CharacterColor(c), CharacterImage(c)} }
func boosterCard(b nzsc.Booster) card     { return card{BoosterColor(b), BoosterImage(b)} }

func (c card) at(s slot, onClick click.Action) scene.List {
	var a scene.Action
	if onClick != nil {
		a = onClick
	}
	return scene.List{
		scene.FilledRect{Color: c.color, Shape: s.bg, OnClick: a},
		scene.Image{Key: c.image, Alpha: 1, Shape: s.fg},
	}
}

func (c card) tween(l anim.Lerper, from, to slot) scene.List {
	return scene.LerpAll(l,
		scene.LerpRect{StartColor: c.color, EndColor: c.color, Start: from.bg, End: to.bg},
		scene.LerpImage{Key: c.image, StartAlpha: 1, EndAlpha: 1, Start: from.fg, End: to.fg},
	)
}

// fade keeps the card in place and takes it to alpha end.
func (c card) fade(l anim.Lerper, s slot, end float64) scene.List {
	return scene.LerpAll(l,
		scene.LerpRect{StartColor: c.color, EndColor: c.color.WithAlpha(uint8(end * 255)), Start: s.bg, End: s.bg},
		scene.LerpImage{Key: c.image, StartAlpha: 1, EndAlpha: end, Start: s.fg, End: s.fg},
	)
}

// buttons lays cards out as a row of choice buttons sliding in from the right edge.
// Clicks are live for the whole tween only when inTransit is set.
func buttons(l anim.Lerper, cards []card, actions []click.Action, inTransit bool) scene.List {
	out := make(scene.List, 0, 2*len(cards))
	for i, c := range cards {
		s := buttonSlot(i)
		out = append(out, scene.LerpAll(l,
			scene.LerpRect{
				StartColor: c.color, EndColor: c.color,
				Start: s.bg.Translate(CanvasWidth, 0), End: s.bg,
				OnClick: actions[i], ClickInTransit: inTransit,
			},
			scene.LerpImage{Key: c.image, StartAlpha: 1, EndAlpha: 1, Start: s.fg.Translate(CanvasWidth, 0), End: s.fg},
		)...)
	}
	return out
}

// pill is the rounded background behind a block of dequeue circles, spanning w
// columns and h rows from the cell at its top-left (top-right on the Right side).
func pill(s Side, from Cell, w, h int, enabled bool) scene.List {
	if w <= 0 || h <= 0 {
		return nil
	}
	color := PillDisabled
	if enabled {
		color = PillEnabled
	}
	a := s.Circle(from)
	b := s.Circle(Cell{Row: from.Row + h - 1, Col: from.Col + w - 1})
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := a.Y, b.Y
	out := scene.List{
		scene.FilledRect{Color: color, Shape: scene.Rect{X: minX, Y: minY - Radius, W: maxX - minX, H: maxY - minY + Diameter}},
	}
	if h > 1 {
		out = append(out, scene.FilledRect{Color: color, Shape: scene.Rect{X: minX - Radius, Y: minY, W: maxX - minX + Diameter, H: maxY - minY}})
	}
	for _, p := range [][2]float64{{minX, minY}, {maxX, minY}, {minX, maxY}, {maxX, maxY}} {
		out = append(out, scene.FilledCircle{Color: color, Shape: scene.Circle{X: p[0], Y: p[1], R: Radius}})
	}
	return out
}

// arrow is a triangle in the gap above row, pointing up or down.
func arrow(s Side, row, col int, up bool) scene.Component {
	c := s.Circle(Cell{Row: row, Col: col})
	y := c.Y - Offset/2
	tip, base := y-arrowHeight/2, y+arrowHeight/2
	if !up {
		tip, base = base, tip
	}
	fill := ArrowColor
	return scene.UnclickablePath{
		Path: scene.Path{
			Start: scene.Point{X: c.X, Y: tip},
			Commands: []scene.PathCommand{
				scene.LineTo{X: c.X + arrowWidth/2, Y: base},
				scene.LineTo{X: c.X - arrowWidth/2, Y: base},
			},
		},
		Fill: &fill,
	}
}

// arrows shows the flow of items: mouth to pool on top, arsenal to mouth below.
func arrows(s Side, g Grid) scene.List {
	var out scene.List
	if g.PoolRows > 0 {
		out = append(out, arrow(s, g.MouthRow(), 0, true), arrow(s, g.MouthRow(), 2, false))
	}
	return append(out, arrow(s, g.ArsenalRow(), 0, true), arrow(s, g.ArsenalRow(), 2, false))
}

// itemDisplay draws an arsenal item in a dequeue circle. A disabled item is dimmed
// and, unless it is the Mirror, covered by an overlay disc. onClick is dropped when disabled.
func itemDisplay(item nzsc.ArsenalItem, enabled bool, onClick click.Action, s Side, c Cell) scene.List {
	circle := s.Circle(c)
	fill, alpha := ItemColor(item), 1.0
	var a scene.Action
	if enabled && onClick != nil {
		a = onClick
	}
	if !enabled {
		fill = fill.WithAlpha(DisabledAlpha)
		alpha = float64(DisabledAlpha) / 255
	}
	out := scene.List{
		scene.FilledCircle{Color: fill, Shape: circle, OnClick: a},
		scene.Image{Key: ItemImage(item), Alpha: alpha, Shape: imageIn(circle)},
	}
	if !enabled && !item.Mirror {
		out = append(out, scene.FilledCircle{Color: Overlay, Shape: circle})
	}
	return out
}

// heartBeat is one keyframe pair of the heart pop.
type heartBeat struct {
	fromScale, toScale float64
	fromAlpha, toAlpha float64
}

var heartPop = anim.MustSwitch(
	anim.Span(0.00, 0.20, heartBeat{1.0, 1.3, 1, 1}),
	anim.Span(0.20, 0.35, heartBeat{1.3, 1.4, 1, 1}),
	anim.Span(0.35, 0.50, heartBeat{1.4, 0.9, 1, 0.8}),
	anim.Last(0.50, 1.00, heartBeat{0.5, 2.0, 0.8, 0}),
)

// heart draws heart index of side s, popped to factor f. At 0 it is a plain heart.
func heart(s Side, index int, f float64) scene.Component {
	b, l := heartPop.EvalClamped(f)
	return scene.LerpImage{
		Key:        HeartImage,
		StartAlpha: b.fromAlpha,
		EndAlpha:   b.toAlpha,
		Start:      heartRect(s, index, b.fromScale),
		End:        heartRect(s, index, b.toScale),
	}.At(l)
}

func hearts(s Side, n int) scene.List {
	out := make(scene.List, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, heart(s, i, 0))
	}
	return out
}

func trapezoid(s Side) scene.Component {
	dx := 20.0
	if s == Right {
		dx = 1340
	}
	fill := TrapezoidFill
	return scene.UnclickablePath{
		Path: scene.Path{
			Start: scene.Point{X: 80, Y: 0},
			Commands: []scene.PathCommand{
				scene.ArcTo{X1: 0, Y1: 0, X2: 30, Y2: 70, R: 3},
				scene.ArcTo{X1: 40, Y1: 75, X2: 415, Y2: 70, R: 8},
				scene.ArcTo{X1: 400, Y1: 75, X2: 435, Y2: 0, R: 8},
				scene.ArcTo{X1: 440, Y1: 0, X2: 435, Y2: 0, R: 3},
			},
		}.Translate(dx, 15),
		Fill:   &fill,
		Stroke: &scene.Stroke{Color: TrapezoidBorder, Width: TrapezoidBorderWidth},
	}
}

// healthDisplay is the trapezoid with health hearts.
func healthDisplay(s Side, health int) scene.List {
	return append(scene.List{trapezoid(s)}, hearts(s, health)...)
}

// poppingHealthDisplay pops the innermost of start hearts over the first part of l.
func poppingHealthDisplay(s Side, start int, l anim.Lerper) scene.List {
	out := scene.List{trapezoid(s)}
	pop := l.SubLerper(0, portionPopping).Clamp()
	for i := 0; i < start; i++ {
		f := 0.0
		if i == start-1 {
			f = pop.Factor()
		}
		out = append(out, heart(s, i, f))
	}
	return out
}

// homeButton slides up from below the canvas as l runs.
func homeButton(l anim.Lerper) scene.List {
	fg := HomeButtonForeground
	return scene.List{
		scene.FilledCircle{Color: HomeButtonBackground, Shape: scene.Circle{X: CenterX, Y: CenterY, R: homeButtonRadius}, OnClick: click.NavigateHome{}},
		scene.UnclickablePath{
			Path: scene.Path{
				Start: scene.Point{X: 900, Y: 420},
				Commands: []scene.PathCommand{
					scene.LineTo{X: 820, Y: 490},
					scene.LineTo{X: 850, Y: 490},
					scene.LineTo{X: 850, Y: 560},
					scene.LineTo{X: 950, Y: 560},
					scene.LineTo{X: 950, Y: 490},
					scene.LineTo{X: 980, Y: 490},
				},
			},
			Fill: &fg,
		},
		scene.FilledCircle{Color: HomeButtonBackground, Shape: scene.Circle{X: 900, Y: 520, R: 15}},
		scene.FilledRect{Color: HomeButtonBackground, Shape: scene.Rect{X: 885, Y: 520, W: 30, H: 40}},
	}.Translate(0, l.Lerp(homeButtonRadius+CenterY, 0))
}

const homeButtonRadius = 120.0

// Unfinished marks a visual that has no design yet. It has zero size and painters skip it.
func Unfinished(s Side) scene.Component {
	c := s.actionFocus()
	return scene.Image{Key: UnfinishedPlaceholder, Shape: scene.Rect{X: c.X, Y: c.Y}}
}
