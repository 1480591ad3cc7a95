package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Sprite is tightly packed RGBA8 pixels (row-major, top-left origin).
type Sprite struct {
	W, H int
	Pix  []byte
}

// LoadPNG decodes textures/relPath under the loader's directory. Images larger than
// MaxSize on either side are scaled down, keeping their aspect ratio.
func (l Loader) LoadPNG(relPath string) (Sprite, error) {
	path := filepath.Join(l.Dir, "textures", relPath)
	f, err := os.Open(path)
	if err != nil {
		return Sprite{}, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return Sprite{}, errors.Wrapf(err, "decode png %q", path)
	}
	rgba := l.fit(img)
	return Sprite{W: rgba.Rect.Dx(), H: rgba.Rect.Dy(), Pix: rgba.Pix}, nil
}

// fit converts img to a tightly packed RGBA, scaling it into MaxSize when set.
func (l Loader) fit(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if l.MaxSize > 0 && (w > l.MaxSize || h > l.MaxSize) {
		if w >= h {
			w, h = l.MaxSize, max(1, h*l.MaxSize/w)
		} else {
			w, h = max(1, w*l.MaxSize/h), l.MaxSize
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		return dst
	}
	if m, ok := img.(*image.RGBA); ok && m.Stride == w*4 && b.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Average is the alpha-weighted mean color of a sprite; fully transparent sprites
// average to transparent black.
func (s Sprite) Average() color.RGBA {
	var r, g, b, a, n uint64
	for i := 0; i+3 < len(s.Pix); i += 4 {
		pa := uint64(s.Pix[i+3])
		r += uint64(s.Pix[i]) * pa
		g += uint64(s.Pix[i+1]) * pa
		b += uint64(s.Pix[i+2]) * pa
		a += pa
		n++
	}
	if a == 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: uint8(r / a), G: uint8(g / a), B: uint8(b / a), A: uint8(a / n)}
}
