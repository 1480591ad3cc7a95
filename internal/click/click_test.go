package click

import (
	"testing"

	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/stretchr/testify/assert"
)

func TestAtResolvesTopmostAction(t *testing.T) {
	list := scene.List{
		scene.Background{Color: colors.RGBA{A: 255}, OnClick: StopPropagation{}},
		scene.FilledRect{Shape: scene.Rect{X: 0, Y: 0, W: 100, H: 100}, OnClick: ChooseCharacter{Character: nzsc.Zombie}},
		scene.Image{Key: "x", Alpha: 1, Shape: scene.Rect{X: 0, Y: 0, W: 50, H: 50}},
	}
	a, ok := At(10, 10, list)
	assert.True(t, ok)
	assert.Equal(t, ChooseCharacter{Character: nzsc.Zombie}, a)

	a, ok = At(500, 500, list)
	assert.True(t, ok)
	assert.Equal(t, StopPropagation{}, a)

	a, ok = At(10, 10, list[1:2].Translate(1000, 0))
	assert.False(t, ok)
	assert.Nil(t, a)
}

func TestAtIgnoresForeignPayloads(t *testing.T) {
	list := scene.List{scene.Background{OnClick: "not an action"}}
	_, ok := At(0, 0, list)
	assert.False(t, ok)
}

func TestName(t *testing.T) {
	assert.Equal(t, "ChooseCharacter{Character:Ninja}", Name(ChooseCharacter{Character: nzsc.Ninja}))
	assert.Equal(t, "NavigateHome{}", Name(NavigateHome{}))
}
