// Package tui paints scene lists onto a terminal. Every cell shows two stacked pixels
// with an upper half block, so the canvas keeps roughly square pixels.
package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/raster"
	"github.com/hubastard/nzsc/engine/scene"
)

const halfBlock = '▀'

// unloaded is what an image without a sprite color looks like.
var unloaded = colors.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x60}

type label struct {
	text       string
	col, row   int
	foreground colors.RGBA
}

type Painter struct {
	screen           tcell.Screen
	canvasW, canvasH float64
	sprites          map[scene.ImageKey]colors.RGBA

	w, h   int // pixel grid: columns by rows*2
	box    scene.Letterbox
	pix    []colors.RGBA
	labels []label
}

func New(screen tcell.Screen, canvasW, canvasH float64) *Painter {
	return &Painter{screen: screen, canvasW: canvasW, canvasH: canvasH, sprites: map[scene.ImageKey]colors.RGBA{}}
}

// SetSpriteColors gives each sprite key the flat color it is drawn with.
func (p *Painter) SetSpriteColors(avg map[string]color.RGBA) {
	for k, c := range avg {
		p.sprites[scene.ImageKey(k)] = colors.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
}

// ToCanvas maps the center of a terminal cell to canvas coordinates.
func (p *Painter) ToCanvas(col, row int) (float64, float64) {
	p.fit()
	return p.box.ToCanvas(float64(col)+0.5, float64(row)*2+1)
}

// Pixel is the last painted color of pixel (x,y); y counts half cells.
func (p *Painter) Pixel(x, y int) colors.RGBA {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return colors.RGBA{}
	}
	return p.pix[y*p.w+x]
}

func (p *Painter) fit() {
	cols, rows := p.screen.Size()
	if cols == p.w && rows*2 == p.h && p.pix != nil {
		return
	}
	p.w, p.h = cols, rows*2
	p.pix = make([]colors.RGBA, p.w*p.h)
	p.box = scene.NewLetterbox(p.canvasW, p.canvasH, float64(p.w), float64(p.h))
}

// Paint composites list bottom to top and shows the result.
func (p *Painter) Paint(list scene.List) {
	p.fit()
	for i := range p.pix {
		p.pix[i] = colors.RGBA{A: 0xFF}
	}
	p.labels = p.labels[:0]
	for _, c := range list {
		p.draw(c)
	}
	p.show()
}

func (p *Painter) draw(c scene.Component) {
	switch c := c.(type) {
	case scene.Background:
		for i := range p.pix {
			p.pix[i] = c.Color.Over(p.pix[i])
		}
	case scene.FilledRect:
		p.fill(c.Shape, c.Color, c.Shape.Contains)
	case scene.FilledCircle:
		p.fill(c.Shape.Bounds(), c.Color, c.Shape.Contains)
	case scene.Image:
		p.image(c)
	case scene.UnclickablePath:
		p.path(c)
	}
}

// fill blends color into every pixel inside bounds whose center passes inside.
func (p *Painter) fill(bounds scene.Rect, color colors.RGBA, inside func(x, y float64) bool) {
	if color.A == 0 || bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	x0, y0 := p.box.ToViewport(bounds.X, bounds.Y)
	x1, y1 := p.box.ToViewport(bounds.X+bounds.W, bounds.Y+bounds.H)
	for py := max(0, int(y0)); py < min(p.h, int(y1)+1); py++ {
		for px := max(0, int(x0)); px < min(p.w, int(x1)+1); px++ {
			cx, cy := p.box.ToCanvas(float64(px)+0.5, float64(py)+0.5)
			if inside(cx, cy) {
				i := py*p.w + px
				p.pix[i] = color.Over(p.pix[i])
			}
		}
	}
}

func (p *Painter) image(c scene.Image) {
	if c.Shape.W <= 0 || c.Shape.H <= 0 || c.Alpha <= 0 {
		return
	}
	base, ok := p.sprites[c.Key]
	if !ok {
		base = unloaded
		p.queueLabel(c)
	}
	base.A = uint8(float64(base.A)*min(c.Alpha, 1) + 0.5)
	p.fill(c.Shape, base, c.Shape.Contains)
}

func (p *Painter) queueLabel(c scene.Image) {
	key := string(c.Key)
	text := strings.ReplaceAll(key[strings.LastIndex(key, "/")+1:], "_", " ")
	x0, y0 := p.box.ToViewport(c.Shape.X, c.Shape.Y)
	x1, y1 := p.box.ToViewport(c.Shape.X+c.Shape.W, c.Shape.Y+c.Shape.H)
	width := int(x1) - int(x0)
	if width < 1 || text == "" {
		return
	}
	if len(text) > width {
		text = text[:width]
	}
	col := int(x0) + (width-len(text))/2
	row := int((y0+y1)/2) / 2
	p.labels = append(p.labels, label{text: text, col: col, row: row, foreground: colors.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: uint8(0xFF * min(c.Alpha, 1))}})
}

func (p *Painter) path(c scene.UnclickablePath) {
	px := c.Path.Scale(p.box.Scale).Translate(p.box.Left, p.box.Top)
	poly := raster.Flatten(px, 1)
	if c.Fill != nil {
		p.blend(raster.Fill(poly), *c.Fill)
	}
	if c.Stroke != nil {
		p.blend(raster.Stroke(poly, max(1, c.Stroke.Width*p.box.Scale)), c.Stroke.Color)
	}
}

func (p *Painter) blend(m raster.Mask, color colors.RGBA) {
	if m.Alpha == nil {
		return
	}
	b := m.Rect.Add(image.Pt(m.X, m.Y))
	for py := max(0, b.Min.Y); py < min(p.h, b.Max.Y); py++ {
		for px := max(0, b.Min.X); px < min(p.w, b.Max.X); px++ {
			cov := m.Coverage(px, py)
			if cov <= 0 {
				continue
			}
			i := py*p.w + px
			p.pix[i] = color.WithAlpha(uint8(float64(color.A)*cov + 0.5)).Over(p.pix[i])
		}
	}
}

func (p *Painter) show() {
	cols, rows := p.w, p.h/2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := p.pix[2*row*p.w+col], p.pix[(2*row+1)*p.w+col]
			p.screen.SetContent(col, row, halfBlock, nil, tcell.StyleDefault.Foreground(cell(top)).Background(cell(bottom)))
		}
	}
	for _, l := range p.labels {
		if l.row < 0 || l.row >= rows {
			continue
		}
		for i, r := range l.text {
			col := l.col + i
			if col < 0 || col >= cols {
				continue
			}
			bg := p.pix[2*l.row*p.w+col]
			fg := l.foreground.Over(bg)
			p.screen.SetContent(col, l.row, r, nil, tcell.StyleDefault.Foreground(cell(fg)).Background(cell(bg)))
		}
	}
	p.screen.Show()
}

func cell(c colors.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
