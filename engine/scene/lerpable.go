package scene

import (
	"github.com/hubastard/nzsc/engine/anim"
	"github.com/hubastard/nzsc/engine/colors"
)

// Lerpable is a component with start and end keyframes.
type Lerpable interface {
	At(l anim.Lerper) Component
}

// LerpRect tweens a FilledRect. OnClick is only kept at rest unless ClickInTransit is set.
type LerpRect struct {
	StartColor, EndColor colors.RGBA
	Start, End           Rect
	OnClick              Action
	ClickInTransit       bool
}

type LerpCircle struct {
	StartColor, EndColor colors.RGBA
	Start, End           Circle
	OnClick              Action
	ClickInTransit       bool
}

type LerpImage struct {
	Key                  ImageKey
	StartAlpha, EndAlpha float64
	Start, End           Rect
	OnClick              Action
	ClickInTransit       bool
}

func (c LerpRect) At(l anim.Lerper) Component {
	return FilledRect{
		Color:   LerpColor(l, c.StartColor, c.EndColor),
		Shape:   LerpRectShape(l, c.Start, c.End),
		OnClick: clickAt(l, c.OnClick, c.ClickInTransit),
	}
}

func (c LerpCircle) At(l anim.Lerper) Component {
	return FilledCircle{
		Color:   LerpColor(l, c.StartColor, c.EndColor),
		Shape:   LerpCircleShape(l, c.Start, c.End),
		OnClick: clickAt(l, c.OnClick, c.ClickInTransit),
	}
}

func (c LerpImage) At(l anim.Lerper) Component {
	return Image{
		Key:     c.Key,
		Alpha:   l.Lerp(c.StartAlpha, c.EndAlpha),
		Shape:   LerpRectShape(l, c.Start, c.End),
		OnClick: clickAt(l, c.OnClick, c.ClickInTransit),
	}
}

// LerpAll evaluates every lerpable at l, in order.
func LerpAll(l anim.Lerper, items ...Lerpable) List {
	out := make(List, len(items))
	for i, it := range items {
		out[i] = it.At(l)
	}
	return out
}

func LerpColor(l anim.Lerper, a, b colors.RGBA) colors.RGBA {
	return colors.RGBA{
		R: l.LerpU8(a.R, b.R),
		G: l.LerpU8(a.G, b.G),
		B: l.LerpU8(a.B, b.B),
		A: l.LerpU8(a.A, b.A),
	}
}

func LerpRectShape(l anim.Lerper, a, b Rect) Rect {
	return Rect{
		X: l.Lerp(a.X, b.X),
		Y: l.Lerp(a.Y, b.Y),
		W: l.Lerp(a.W, b.W),
		H: l.Lerp(a.H, b.H),
	}
}

func LerpCircleShape(l anim.Lerper, a, b Circle) Circle {
	return Circle{
		X: l.Lerp(a.X, b.X),
		Y: l.Lerp(a.Y, b.Y),
		R: l.Lerp(a.R, b.R),
	}
}

func clickAt(l anim.Lerper, a Action, inTransit bool) Action {
	if inTransit || l.Factor() >= 1 {
		return a
	}
	return nil
}
