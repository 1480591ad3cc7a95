package text

import (
	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/gfx/renderer2d"
)

// Quads receives glyph quads. *renderer2d.Renderer2D is one.
type Quads interface {
	DrawSubTexture(x, y, w, h float32, sub renderer2d.SubTexture2D, tint colors.Color)
}

// DrawText draws s at the given size with its top-left corner at (x,y). Positive Y
// goes downward (matching the 2D projection).
func DrawText(r2d Quads, f *Font, x, y, size float32, s string, color colors.Color) {
	scale := size / f.SizePx
	penX := x
	baseY := y + f.Ascent*scale
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += LineHeight(f) * scale
			prev = -1
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			g, ok = f.Glyphs['?']
			if !ok {
				continue
			}
		}
		if prev >= 0 && f.Face != nil {
			penX += float32(f.Face.Kern(prev, r)) / 64 * scale
		}
		if g.W > 0 && g.H > 0 {
			r2d.DrawSubTexture(
				penX+g.BearingX*scale, baseY-g.BearingY*scale,
				float32(g.W)*scale, float32(g.H)*scale,
				g.Sub, color,
			)
		}
		penX += g.Advance * scale
		prev = r
	}
}

// MeasureText returns the bounding size of s drawn at size.
func MeasureText(f *Font, s string, size float32) (width, height float32) {
	var lineW float32
	var prev rune = -1
	lineH := LineHeight(f)
	height = lineH

	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += lineH
			prev = -1
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			g, ok = f.Glyphs['?']
			if !ok {
				continue
			}
		}
		if prev >= 0 && f.Face != nil {
			lineW += float32(f.Face.Kern(prev, r)) / 64
		}
		lineW += g.Advance
		prev = r
	}

	width = max(width, lineW)
	scale := size / f.SizePx
	return width * scale, height * scale
}

// Baseline-to-top distance (useful to position text by top-left).
func BaselineToTop(f *Font) float32    { return f.Ascent }
func BaselineToBottom(f *Font) float32 { return -f.Descent }
func LineHeight(f *Font) float32       { return f.Ascent - f.Descent + f.LineGap }
