// Package raster turns scene outlines into alpha coverage masks.
package raster

import (
	"image"
	"math"

	"github.com/hubastard/nzsc/engine/scene"
	"golang.org/x/image/vector"
)

// Mask is a coverage image whose top-left pixel sits at (X,Y) in target space.
type Mask struct {
	*image.Alpha
	X, Y int
}

// Coverage returns coverage in [0,1] for target pixel (x,y).
func (m Mask) Coverage(x, y int) float64 {
	if m.Alpha == nil {
		return 0
	}
	p := image.Pt(x-m.X, y-m.Y)
	if !p.In(m.Rect) {
		return 0
	}
	return float64(m.AlphaAt(p.X, p.Y).A) / 255
}

const arcSegments = 12

// Flatten converts a path into polygon vertices, in target units (canvas * s).
func Flatten(p scene.Path, s float64) []scene.Point {
	cur := scene.Point{X: p.Start.X * s, Y: p.Start.Y * s}
	pts := []scene.Point{cur}
	for _, c := range p.Commands {
		switch c := c.(type) {
		case scene.LineTo:
			cur = scene.Point{X: c.X * s, Y: c.Y * s}
			pts = append(pts, cur)
		case scene.ArcTo:
			arc := arcTo(cur, scene.Point{X: c.X1 * s, Y: c.Y1 * s}, scene.Point{X: c.X2 * s, Y: c.Y2 * s}, c.R*s)
			pts = append(pts, arc...)
			cur = arc[len(arc)-1]
		}
	}
	return pts
}

// arcTo follows canvas arcTo: a line from p0 to the first tangent point, then an arc of
// radius r touching both p0-p1 and p1-p2. Degenerate input collapses to a line to p1.
func arcTo(p0, p1, p2 scene.Point, r float64) []scene.Point {
	u1x, u1y, n1 := unit(p0.X-p1.X, p0.Y-p1.Y)
	u2x, u2y, n2 := unit(p2.X-p1.X, p2.Y-p1.Y)
	if n1 == 0 || n2 == 0 || r <= 0 {
		return []scene.Point{p1}
	}
	cos := clamp(u1x*u2x+u1y*u2y, -1, 1)
	theta := math.Acos(cos)
	if theta < 1e-6 || math.Pi-theta < 1e-6 {
		return []scene.Point{p1}
	}
	d := r / math.Tan(theta/2)
	t1 := scene.Point{X: p1.X + u1x*d, Y: p1.Y + u1y*d}
	t2 := scene.Point{X: p1.X + u2x*d, Y: p1.Y + u2y*d}
	bx, by, _ := unit(u1x+u2x, u1y+u2y)
	h := r / math.Sin(theta/2)
	cx, cy := p1.X+bx*h, p1.Y+by*h

	a1 := math.Atan2(t1.Y-cy, t1.X-cx)
	a2 := math.Atan2(t2.Y-cy, t2.X-cx)
	delta := a2 - a1
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}

	out := make([]scene.Point, 0, arcSegments+1)
	out = append(out, t1)
	for i := 1; i <= arcSegments; i++ {
		a := a1 + delta*float64(i)/arcSegments
		out = append(out, scene.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return out
}

// CirclePoints approximates a circle with n vertices, counter-clockwise in y-down space.
func CirclePoints(cx, cy, r float64, n int) []scene.Point {
	out := make([]scene.Point, n)
	for i := range out {
		a := -2 * math.Pi * float64(i) / float64(n)
		out[i] = scene.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return out
}

// Fill rasterizes closed polygons (already in target units) into one mask.
func Fill(polys ...[]scene.Point) Mask {
	minX, minY, maxX, maxY := bounds(polys)
	if maxX <= minX || maxY <= minY {
		return Mask{}
	}
	w, h := maxX-minX, maxY-minY
	z := vector.NewRasterizer(w, h)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X-float64(minX)), float32(poly[0].Y-float64(minY)))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X-float64(minX)), float32(p.Y-float64(minY)))
		}
		z.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return Mask{Alpha: dst, X: minX, Y: minY}
}

// Stroke rasterizes the outline of a closed polygon with the given width.
func Stroke(poly []scene.Point, width float64) Mask {
	if len(poly) < 2 || width <= 0 {
		return Mask{}
	}
	half := width / 2
	polys := make([][]scene.Point, 0, 2*len(poly))
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		nx, ny, n := unit(-(b.Y - a.Y), b.X-a.X)
		if n == 0 {
			continue
		}
		nx, ny = nx*half, ny*half
		polys = append(polys, []scene.Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		})
		polys = append(polys, CirclePoints(a.X, a.Y, half, 8))
	}
	return Fill(polys...)
}

// Disc is a filled circle of radius r centered on (cx,cy), in target units.
func Disc(cx, cy, r float64) Mask {
	n := int(math.Max(16, math.Min(128, r)))
	return Fill(CirclePoints(cx, cy, r, n))
}

// ------ Helper ------

func bounds(polys [][]scene.Point) (minX, minY, maxX, maxY int) {
	first := true
	var x0, y0, x1, y1 float64
	for _, poly := range polys {
		for _, p := range poly {
			if first {
				x0, y0, x1, y1 = p.X, p.Y, p.X, p.Y
				first = false
				continue
			}
			x0, y0 = math.Min(x0, p.X), math.Min(y0, p.Y)
			x1, y1 = math.Max(x1, p.X), math.Max(y1, p.Y)
		}
	}
	if first {
		return 0, 0, 0, 0
	}
	return int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1))
}

func unit(x, y float64) (float64, float64, float64) {
	n := math.Hypot(x, y)
	if n == 0 {
		return 0, 0, 0
	}
	return x / n, y / n, n
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
