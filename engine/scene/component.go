package scene

import "github.com/hubastard/nzsc/engine/colors"

// Action is an opaque click payload. Painters never inspect it.
type Action any

// ImageKey names a sprite. Painters resolve keys to textures or labels.
type ImageKey string

// Component is one drawable unit of a scene list.
type Component interface {
	Contains(x, y float64) bool
	Click() Action
	Translate(dx, dy float64) Component
	Scale(s float64) Component
	WithoutClick() Component
	isComponent()
}

// Background fills the whole viewport and contains every point.
type Background struct {
	Color   colors.RGBA
	OnClick Action
}

type FilledRect struct {
	Color   colors.RGBA
	Shape   Rect
	OnClick Action
}

type FilledCircle struct {
	Color   colors.RGBA
	Shape   Circle
	OnClick Action
}

// Image blits a sprite into Shape with Alpha in [0,1].
type Image struct {
	Key     ImageKey
	Alpha   float64
	Shape   Rect
	OnClick Action
}

type Stroke struct {
	Color colors.RGBA
	Width float64
}

// UnclickablePath is a filled and/or stroked outline. It never receives clicks.
type UnclickablePath struct {
	Path   Path
	Fill   *colors.RGBA
	Stroke *Stroke
}

func (Background) isComponent()      {}
func (FilledRect) isComponent()      {}
func (FilledCircle) isComponent()    {}
func (Image) isComponent()           {}
func (UnclickablePath) isComponent() {}

func (c Background) Contains(_, _ float64) bool       { return true }
func (c FilledRect) Contains(x, y float64) bool       { return c.Shape.Contains(x, y) }
func (c FilledCircle) Contains(x, y float64) bool     { return c.Shape.Contains(x, y) }
func (c Image) Contains(x, y float64) bool            { return c.Shape.Contains(x, y) }
func (c UnclickablePath) Contains(_, _ float64) bool { return false }

func (c Background) Click() Action      { return c.OnClick }
func (c FilledRect) Click() Action      { return c.OnClick }
func (c FilledCircle) Click() Action    { return c.OnClick }
func (c Image) Click() Action           { return c.OnClick }
func (c UnclickablePath) Click() Action { return nil }

func (c Background) WithoutClick() Component      { c.OnClick = nil; return c }
func (c FilledRect) WithoutClick() Component      { c.OnClick = nil; return c }
func (c FilledCircle) WithoutClick() Component    { c.OnClick = nil; return c }
func (c Image) WithoutClick() Component           { c.OnClick = nil; return c }
func (c UnclickablePath) WithoutClick() Component { return c }

func (c Background) Translate(_, _ float64) Component { return c }
func (c Background) Scale(_ float64) Component        { return c }

func (c FilledRect) Translate(dx, dy float64) Component {
	c.Shape = c.Shape.Translate(dx, dy)
	return c
}

func (c FilledRect) Scale(s float64) Component {
	c.Shape = c.Shape.Scale(s)
	return c
}

func (c FilledCircle) Translate(dx, dy float64) Component {
	c.Shape = c.Shape.Translate(dx, dy)
	return c
}

func (c FilledCircle) Scale(s float64) Component {
	c.Shape = c.Shape.Scale(s)
	return c
}

func (c Image) Translate(dx, dy float64) Component {
	c.Shape = c.Shape.Translate(dx, dy)
	return c
}

func (c Image) Scale(s float64) Component {
	c.Shape = c.Shape.Scale(s)
	return c
}

func (c UnclickablePath) Translate(dx, dy float64) Component {
	c.Path = c.Path.Translate(dx, dy)
	return c
}

func (c UnclickablePath) Scale(s float64) Component {
	c.Path = c.Path.Scale(s)
	if c.Stroke != nil {
		st := *c.Stroke
		st.Width *= s
		c.Stroke = &st
	}
	return c
}

// List is a flat scene in draw order: the first component is furthest back.
type List []Component

func (l List) Translate(dx, dy float64) List {
	out := make(List, len(l))
	for i, c := range l {
		out[i] = c.Translate(dx, dy)
	}
	return out
}

func (l List) Scale(s float64) List {
	out := make(List, len(l))
	for i, c := range l {
		out[i] = c.Scale(s)
	}
	return out
}

// Append adds components on top of the list.
func (l List) Append(cs ...Component) List {
	return append(l, cs...)
}

// WithoutClick strips every click handler, leaving the visuals.
func (l List) WithoutClick() List {
	out := make(List, len(l))
	for i, c := range l {
		out[i] = c.WithoutClick()
	}
	return out
}

// Concat flattens several lists in order.
func Concat(parts ...List) List {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(List, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
