package colors

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGBA is an 8-bit color as scene components store it. Interpolation happens in this space.
type RGBA struct {
	R, G, B, A uint8
}

// Hex parses "#RRGGBB" or "#RRGGBBAA". Alpha defaults to 0xFF.
func Hex(s string) (RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	alpha := uint8(0xFF)
	switch len(s) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return RGBA{}, errors.Wrapf(err, "alpha of %q", s)
		}
		alpha = uint8(a)
		s = s[:6]
	default:
		return RGBA{}, errors.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGBA{}, errors.Wrapf(err, "color %q", s)
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MustHex is Hex for package-level palettes.
func MustHex(s string) RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Float converts to the normalized GPU form.
func (c RGBA) Float() Color {
	return Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// Over composites c over dst and returns an opaque result.
func (c RGBA) Over(dst RGBA) RGBA {
	a := float64(c.A) / 255
	blend := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return RGBA{R: blend(c.R, dst.R), G: blend(c.G, dst.G), B: blend(c.B, dst.B), A: 0xFF}
}

// Colorful exposes the color to go-colorful, ignoring alpha.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func (c RGBA) String() string {
	return c.Colorful().Hex() + strconv.FormatUint(uint64(c.A)|0x100, 16)[1:]
}
