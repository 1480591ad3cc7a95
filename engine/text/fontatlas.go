// Package text builds glyph atlases and lays out single-font labels.
package text

import (
	"image"
	"os"

	"github.com/hubastard/nzsc/engine/core"
	"github.com/hubastard/nzsc/engine/gfx/renderer2d"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	Sub      renderer2d.SubTexture2D
}

// Font is a rasterised face: white glyphs with alpha coverage packed into one atlas.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Atlas                    *image.RGBA
	Texture                  core.Texture
	Face                     font.Face
}

func (f *Font) Close() error {
	if f == nil || f.Face == nil {
		return nil
	}
	err := f.Face.Close()
	f.Face = nil
	return err
}

// LoadTTF rasterises the font file at path.
func LoadTTF(path string, sizePx float32) (*Font, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read font")
	}
	return Build(ttf, sizePx)
}

// Default rasterises Go Regular, which ships with x/image.
func Default(sizePx float32) (*Font, error) { return Build(goregular.TTF, sizePx) }

// Build rasterises printable ASCII of an OpenType/TrueType font into an atlas.
// Upload must be called before the font can be drawn.
func Build(ttf []byte, sizePx float32) (*Font, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "new face")
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var measure []meas
	for r := rune(32); r <= 126; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r: r,
			w: (br.Max.X - br.Min.X).Ceil(), h: (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()), // distance from baseline to top
		})
	}

	// Simple shelf packer (rows). Start with 256^2 and grow until everything fits.
	const padding = 2
	atlasSize := 256
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if g.w+2*padding > atlasSize || y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			_ = face.Close()
			return nil, errors.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		out := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if p, ok := pos[g.r]; ok {
			// Drawer expects a dot at the baseline.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			out.Sub = renderer2d.FromPixels(nil, p.X, p.Y, g.w, g.h, atlasSize, atlasSize)
		}
		glyphs[g.r] = out
	}

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs: glyphs,
		Atlas:  dst,
		Face:   face,
	}, nil
}

// Upload creates the atlas texture and points every glyph at it.
func (f *Font) Upload(r core.Renderer) error {
	b := f.Atlas.Bounds()
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: b.Dx(), Height: b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    f.Atlas.Pix,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return errors.Wrap(err, "upload font atlas")
	}
	f.Texture = tex
	for k, g := range f.Glyphs {
		g.Sub.Texture = tex
		f.Glyphs[k] = g
	}
	return nil
}
