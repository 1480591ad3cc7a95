package scene

// CanvasCamera is an orthographic camera over a fixed ideal canvas with a top-left
// origin. Fit letterboxes the canvas into the framebuffer; the margins stay visible
// so backgrounds can cover the whole window.
type CanvasCamera struct {
	IdealW, IdealH           float64
	Left, Right, Bottom, Top float32
	Near, Far                float32
	box                      Letterbox
	vp                       [16]float32
	dirty                    bool
}

func NewCanvasCamera(idealW, idealH float64) *CanvasCamera {
	c := &CanvasCamera{IdealW: idealW, IdealH: idealH, Near: -1, Far: 1}
	c.Fit(int(idealW), int(idealH))
	return c
}

// Fit recomputes the projection for a framebuffer of w*h pixels.
func (c *CanvasCamera) Fit(w, h int) {
	c.box = NewLetterbox(c.IdealW, c.IdealH, float64(w), float64(h))
	l, t := c.box.ToCanvas(0, 0)
	r, b := c.box.ToCanvas(float64(w), float64(h))
	c.Left, c.Right = float32(l), float32(r)
	c.Top, c.Bottom = float32(t), float32(b)
	c.dirty = true
}

func (c *CanvasCamera) Letterbox() Letterbox { return c.box }

// Visible is the canvas region covered by the framebuffer, margins included.
func (c *CanvasCamera) Visible() Rect {
	return Rect{
		X: float64(c.Left),
		Y: float64(c.Top),
		W: float64(c.Right - c.Left),
		H: float64(c.Bottom - c.Top),
	}
}

func (c *CanvasCamera) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *CanvasCamera) Recalculate() {
	c.vp = ortho(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
	c.dirty = false
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// project applies a column-major matrix to (x,y,0,1).
func project(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}
