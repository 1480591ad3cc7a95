package scene

// Letterbox fits an ideal canvas into a viewport, preserving aspect ratio.
type Letterbox struct {
	Left, Top, Scale float64
}

func NewLetterbox(idealW, idealH, actualW, actualH float64) Letterbox {
	if idealW <= 0 || idealH <= 0 || actualW <= 0 || actualH <= 0 {
		return Letterbox{Scale: 1}
	}
	if actualW/actualH > idealW/idealH {
		s := actualH / idealH
		return Letterbox{Left: (actualW - idealW*s) / 2, Scale: s}
	}
	s := actualW / idealW
	return Letterbox{Top: (actualH - idealH*s) / 2, Scale: s}
}

// ToCanvas maps viewport pixels to canvas coordinates.
func (lb Letterbox) ToCanvas(x, y float64) (float64, float64) {
	return (x - lb.Left) / lb.Scale, (y - lb.Top) / lb.Scale
}

// ToViewport maps canvas coordinates to viewport pixels.
func (lb Letterbox) ToViewport(x, y float64) (float64, float64) {
	return x*lb.Scale + lb.Left, y*lb.Scale + lb.Top
}
