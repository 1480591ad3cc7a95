package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	var tests = []struct {
		f, a, b, want float64
	}{
		{0, 10, 20, 10},
		{1, 10, 20, 20},
		{0.5, 10, 20, 15},
		{0.25, -4, 4, -2},
		{1.5, 0, 10, 15},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, FromFactor(tt.f).Lerp(tt.a, tt.b), 1e-9)
	}
}

func TestSubLerperIdentity(t *testing.T) {
	for _, f := range []float64{0, 0.1, 0.33, 0.5, 0.99, 1} {
		l := FromFactor(f)
		assert.InDelta(t, l.Lerp(-3, 7), l.SubLerper(0, 1).Lerp(-3, 7), 1e-12)
	}
}

func TestSubLerperEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, FromFactor(0.3).SubLerper(0.3, 0.85).Factor())
	assert.InDelta(t, 1.0, FromFactor(0.8499999).SubLerper(0.3, 0.85).Factor(), 1e-5)
	assert.InDelta(t, 0.5, FromFactor(0.575).SubLerper(0.3, 0.85).Factor(), 1e-9)
}

func TestSubLerperZeroWidthPanics(t *testing.T) {
	assert.Panics(t, func() { FromFactor(0.5).SubLerper(0.5, 0.5) })
	assert.Panics(t, func() { FromFactor(0.5).SubLerper(0.6, 0.2) })
}

func TestLerpU8(t *testing.T) {
	assert.Equal(t, uint8(0x80), FromFactor(0.5).LerpU8(0, 0xFF))
	assert.Equal(t, uint8(0xAA), FromFactor(0).LerpU8(0xAA, 0))
	assert.Equal(t, uint8(0), FromFactor(1).LerpU8(0xAA, 0))
	assert.Equal(t, uint8(255), FromFactor(2).LerpU8(0, 200))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, FromFactor(2.5).Clamp().Factor())
	assert.Equal(t, 0.0, FromFactor(-0.2).Clamp().Factor())
	assert.Equal(t, 0.4, FromFactor(0.4).Clamp().Factor())
	assert.Equal(t, 1.0, FromFactor(0.9).SubLerper(0, 0.5).Clamp().Factor())
}
