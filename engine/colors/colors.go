package colors

// Color is a normalized RGBA color as the GPU consumes it.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Fault    = Color{0.85, 0.25, 0.25, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scaled multiplies alpha by a, for tinting textured quads.
func (c Color) Scaled(a float32) Color {
	c[3] *= a
	return c
}
