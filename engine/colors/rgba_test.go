package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	var tests = []struct {
		in   string
		want RGBA
	}{
		{"#F1F1F1FF", RGBA{0xF1, 0xF1, 0xF1, 0xFF}},
		{"#333333AA", RGBA{0x33, 0x33, 0x33, 0xAA}},
		{"#0088BB", RGBA{0x00, 0x88, 0xBB, 0xFF}},
		{"44CC44CC", RGBA{0x44, 0xCC, 0x44, 0xCC}},
	}
	for _, tt := range tests {
		got, err := Hex(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestHexRejects(t *testing.T) {
	for _, in := range []string{"", "#FFF", "#GGGGGG", "#12345678AB", "#123456ZZ"} {
		_, err := Hex(in)
		assert.Error(t, err, in)
	}
	assert.Panics(t, func() { MustHex("nope") })
}

func TestOver(t *testing.T) {
	white := RGBA{255, 255, 255, 255}
	assert.Equal(t, RGBA{0, 0, 0, 255}, RGBA{0, 0, 0, 255}.Over(white))
	assert.Equal(t, white, RGBA{0, 0, 0, 0}.Over(white))
	assert.Equal(t, RGBA{128, 128, 128, 255}, RGBA{0, 0, 0, 127}.Over(white))
}

func TestString(t *testing.T) {
	assert.Equal(t, "#333333aa", MustHex("#333333AA").String())
}
