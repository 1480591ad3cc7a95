package scene

// Point is a canvas position. Canvas y grows downward.
type Point struct{ X, Y float64 }

type Rect struct {
	X, Y, W, H float64
}

// CenteredRect builds a rect of size w*h around (cx,cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Contains is inclusive on every edge.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Scale scales about the canvas origin.
func (r Rect) Scale(s float64) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, W: r.W * s, H: r.H * s}
}

func (r Rect) Center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

type Circle struct {
	X, Y, R float64
}

func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

func (c Circle) Translate(dx, dy float64) Circle {
	c.X += dx
	c.Y += dy
	return c
}

func (c Circle) Scale(s float64) Circle {
	return Circle{X: c.X * s, Y: c.Y * s, R: c.R * s}
}

// Bounds is the square enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// PathCommand is one segment of a Path.
type PathCommand interface {
	translate(dx, dy float64) PathCommand
	scale(s float64) PathCommand
}

type LineTo struct{ X, Y float64 }

// ArcTo follows canvas arcTo semantics: a line toward (X1,Y1) rounded into (X2,Y2) with radius R.
type ArcTo struct {
	X1, Y1, X2, Y2, R float64
}

func (c LineTo) translate(dx, dy float64) PathCommand { return LineTo{c.X + dx, c.Y + dy} }
func (c LineTo) scale(s float64) PathCommand          { return LineTo{c.X * s, c.Y * s} }

func (c ArcTo) translate(dx, dy float64) PathCommand {
	return ArcTo{c.X1 + dx, c.Y1 + dy, c.X2 + dx, c.Y2 + dy, c.R}
}
func (c ArcTo) scale(s float64) PathCommand {
	return ArcTo{c.X1 * s, c.Y1 * s, c.X2 * s, c.Y2 * s, c.R * s}
}

// Path is a closed outline.
type Path struct {
	Start    Point
	Commands []PathCommand
}

func (p Path) Translate(dx, dy float64) Path {
	out := Path{Start: Point{p.Start.X + dx, p.Start.Y + dy}, Commands: make([]PathCommand, len(p.Commands))}
	for i, c := range p.Commands {
		out.Commands[i] = c.translate(dx, dy)
	}
	return out
}

func (p Path) Scale(s float64) Path {
	out := Path{Start: Point{p.Start.X * s, p.Start.Y * s}, Commands: make([]PathCommand, len(p.Commands))}
	for i, c := range p.Commands {
		out.Commands[i] = c.scale(s)
	}
	return out
}
