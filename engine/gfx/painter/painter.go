// Package painter draws scene lists through the 2D batcher.
package painter

import (
	"fmt"
	"math"
	"strings"

	"github.com/hubastard/nzsc/engine/assets"
	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/core"
	"github.com/hubastard/nzsc/engine/gfx/renderer2d"
	"github.com/hubastard/nzsc/engine/raster"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/engine/text"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Batch is the slice of *renderer2d.Renderer2D the painter draws with.
type Batch interface {
	BeginScene(vp [16]float32)
	DrawRect(x, y, w, h float32, color colors.Color)
	DrawTexture(x, y, w, h float32, tex core.Texture, tint colors.Color)
	DrawSubTexture(x, y, w, h float32, sub renderer2d.SubTexture2D, tint colors.Color)
	EndScene() error
}

// maskTTL is how many frames an unused mask texture survives.
const maskTTL = 30

type mask struct {
	tex      core.Texture
	x, y     float64 // offset of the mask's top-left from the anchor, in canvas units
	w, h     float64
	lastUsed uint64
}

// Painter resolves sprites by key and rasterises circles and paths into cached masks.
// Sprites that were never loaded are drawn as their key in text.
type Painter struct {
	dev     core.Renderer
	batch   Batch
	cam     *scene.CanvasCamera
	font    *text.Font
	sprites map[scene.ImageKey]core.Texture
	masks   map[string]*mask
	frame   uint64
}

func New(dev core.Renderer, batch Batch, cam *scene.CanvasCamera, font *text.Font) *Painter {
	return &Painter{
		dev:     dev,
		batch:   batch,
		cam:     cam,
		font:    font,
		sprites: map[scene.ImageKey]core.Texture{},
		masks:   map[string]*mask{},
	}
}

// UploadSprites creates a texture per sprite.
func (p *Painter) UploadSprites(sprites map[string]assets.Sprite) error {
	for key, s := range sprites {
		tex, err := p.dev.CreateTexture(core.TextureDesc{
			Width: s.W, Height: s.H,
			Format:    core.TextureRGBA8,
			Pixels:    s.Pix,
			MinFilter: "linear", MagFilter: "linear",
			WrapU: "clamp", WrapV: "clamp",
		})
		if err != nil {
			return errors.Wrapf(err, "sprite %s", key)
		}
		p.sprites[scene.ImageKey(key)] = tex
	}
	return nil
}

// Paint draws list bottom to top.
func (p *Painter) Paint(list scene.List) error {
	p.frame++
	p.batch.BeginScene(p.cam.VP())
	for _, c := range list {
		if err := p.draw(c); err != nil {
			_ = p.batch.EndScene()
			return err
		}
	}
	err := p.batch.EndScene()
	p.evict()
	return err
}

func (p *Painter) draw(c scene.Component) error {
	switch c := c.(type) {
	case scene.Background:
		v := p.cam.Visible()
		p.batch.DrawRect(float32(v.X), float32(v.Y), float32(v.W), float32(v.H), c.Color.Float())
	case scene.FilledRect:
		r := c.Shape
		if r.W <= 0 || r.H <= 0 {
			return nil
		}
		p.batch.DrawRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.Color.Float())
	case scene.FilledCircle:
		return p.circle(c)
	case scene.Image:
		p.image(c)
	case scene.UnclickablePath:
		return p.path(c)
	default:
		return errors.Errorf("painter: unknown component %T", c)
	}
	return nil
}

func (p *Painter) scale() float64 {
	if s := p.cam.Letterbox().Scale; s > 0 {
		return s
	}
	return 1
}

func (p *Painter) circle(c scene.FilledCircle) error {
	if c.Shape.R <= 0 {
		return nil
	}
	s := p.scale()
	rp := math.Ceil(c.Shape.R * s)
	m, err := p.mask(fmt.Sprintf("circle:%g", rp), func() raster.Mask { return raster.Disc(rp, rp, rp) }, s)
	if err != nil {
		return err
	}
	// The mask was rasterised for radius rp pixels; stretch it onto the exact radius.
	k := c.Shape.R * s / rp
	x := c.Shape.X - c.Shape.R + (m.x)*k
	y := c.Shape.Y - c.Shape.R + (m.y)*k
	p.batch.DrawTexture(float32(x), float32(y), float32(m.w*k), float32(m.h*k), m.tex, c.Color.Float())
	return nil
}

func (p *Painter) path(c scene.UnclickablePath) error {
	s := p.scale()
	origin := c.Path.Start
	local := c.Path.Translate(-origin.X, -origin.Y)
	key := fmt.Sprintf("%v@%g", local, s)
	if c.Fill != nil {
		m, err := p.mask("fill:"+key, func() raster.Mask { return raster.Fill(raster.Flatten(local, s)) }, s)
		if err != nil {
			return err
		}
		p.blit(m, origin, c.Fill.Float())
	}
	if c.Stroke != nil && c.Stroke.Width > 0 {
		w := c.Stroke.Width
		m, err := p.mask(fmt.Sprintf("stroke:%g:%s", w, key), func() raster.Mask { return raster.Stroke(raster.Flatten(local, s), w*s) }, s)
		if err != nil {
			return err
		}
		p.blit(m, origin, c.Stroke.Color.Float())
	}
	return nil
}

func (p *Painter) blit(m *mask, at scene.Point, color colors.Color) {
	if m.tex == nil {
		return
	}
	p.batch.DrawTexture(float32(at.X+m.x), float32(at.Y+m.y), float32(m.w), float32(m.h), m.tex, color)
}

func (p *Painter) image(c scene.Image) {
	r := c.Shape
	if r.W <= 0 || r.H <= 0 || c.Alpha <= 0 {
		return
	}
	tint := colors.White.WithAlpha(float32(c.Alpha))
	if tex, ok := p.sprites[c.Key]; ok {
		p.batch.DrawTexture(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), tex, tint)
		return
	}
	p.label(r, string(c.Key), tint)
}

// label centers the last segment of key inside r, shrinking it to fit.
func (p *Painter) label(r scene.Rect, key string, tint colors.Color) {
	key = strings.ReplaceAll(key[strings.LastIndex(key, "/")+1:], "_", " ")
	if p.font == nil || key == "" {
		return
	}
	size := float32(math.Min(r.H*0.35, 48))
	w, h := text.MeasureText(p.font, key, size)
	if limit := float32(r.W * 0.9); w > limit && w > 0 {
		size *= limit / w
		w, h = text.MeasureText(p.font, key, size)
	}
	cx, cy := r.Center()
	text.DrawText(p.batch, p.font, float32(cx)-w/2, float32(cy)-h/2, size, key, tint)
}

// mask returns the cached mask under key, rasterising and uploading it on a miss.
// Offsets are converted from pixels to canvas units with s.
func (p *Painter) mask(key string, build func() raster.Mask, s float64) (*mask, error) {
	if m, ok := p.masks[key]; ok {
		m.lastUsed = p.frame
		return m, nil
	}
	rm := build()
	m := &mask{lastUsed: p.frame}
	if rm.Alpha != nil {
		b := rm.Rect
		pix := make([]byte, 0, b.Dx()*b.Dy()*4)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				pix = append(pix, 0xFF, 0xFF, 0xFF, rm.AlphaAt(x, y).A)
			}
		}
		tex, err := p.dev.CreateTexture(core.TextureDesc{
			Width: b.Dx(), Height: b.Dy(),
			Format:    core.TextureRGBA8,
			Pixels:    pix,
			MinFilter: "linear", MagFilter: "linear",
			WrapU: "clamp", WrapV: "clamp",
		})
		if err != nil {
			return nil, errors.Wrapf(err, "mask %s", key)
		}
		m.tex = tex
		m.x, m.y = float64(rm.X)/s, float64(rm.Y)/s
		m.w, m.h = float64(b.Dx())/s, float64(b.Dy())/s
	}
	p.masks[key] = m
	return m, nil
}

func (p *Painter) evict() {
	dropped := 0
	for k, m := range p.masks {
		if p.frame-m.lastUsed > maskTTL {
			if m.tex != nil {
				p.dev.DestroyTexture(m.tex)
			}
			delete(p.masks, k)
			dropped++
		}
	}
	if dropped > 0 {
		log.Trace().Int("dropped", dropped).Int("cached", len(p.masks)).Msg("mask cache evicted")
	}
}

// Release destroys every texture the painter created.
func (p *Painter) Release() {
	for k, m := range p.masks {
		if m.tex != nil {
			p.dev.DestroyTexture(m.tex)
		}
		delete(p.masks, k)
	}
	for k, tex := range p.sprites {
		p.dev.DestroyTexture(tex)
		delete(p.sprites, k)
	}
}
