package anim

import (
	"fmt"
	"math"
)

// Lerper interpolates values by a completion factor. The factor is not clamped.
type Lerper struct {
	f float64
}

func FromFactor(f float64) Lerper { return Lerper{f: f} }

func (l Lerper) Factor() float64 { return l.f }

// Clamp pins the factor into [0,1]. Sub-lerpers shorter than their beat overshoot without it.
func (l Lerper) Clamp() Lerper {
	return Lerper{f: min(max(l.f, 0), 1)}
}

// Lerp returns start + (end-start)*f. At f == 1 it returns end exactly.
func (l Lerper) Lerp(start, end float64) float64 {
	if l.f == 1 {
		return end
	}
	return start + (end-start)*l.f
}

// LerpF32 is Lerp for float32 fields.
func (l Lerper) LerpF32(start, end float32) float32 {
	return float32(l.Lerp(float64(start), float64(end)))
}

// LerpU8 interpolates a byte channel, rounding to nearest and saturating.
func (l Lerper) LerpU8(start, end uint8) uint8 {
	v := math.Round(l.Lerp(float64(start), float64(end)))
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// SubLerper remaps f from [start,end] onto [0,1]. The range must have positive width.
func (l Lerper) SubLerper(start, end float64) Lerper {
	if !(end > start) {
		panic(fmt.Sprintf("anim: sub-lerper range [%v,%v] has no width", start, end))
	}
	return Lerper{f: (l.f - start) / (end - start)}
}
