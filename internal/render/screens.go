package render

import (
	"github.com/hubastard/nzsc/engine/anim"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/opponent"
)

func Home() scene.List {
	return scene.List{
		scene.Background{Color: HomeScreenBackground},
		scene.Image{Key: HomescreenImage, Alpha: 1, Shape: scene.Rect{W: CanvasWidth, H: CanvasHeight}},
		scene.Image{Key: SinglePlayerImage, Alpha: 1, Shape: scene.Rect{X: 706, Y: 440, W: 388, H: 240}, OnClick: click.StartSinglePlayerGame{}},
		scene.Image{Key: MultiPlayerImage, Alpha: 0.5, Shape: scene.Rect{X: 706, Y: 720, W: 388, H: 240}},
		scene.Image{Key: SettingsImage, Alpha: 1, Shape: scene.Rect{X: 30, Y: 30, W: 80, H: 80}, OnClick: click.NavigateToSettingsScreen{}},
	}
}

const settingsButtonY = 250.0

// Settings shows the difficulty stars with d selected.
func Settings(d opponent.Difficulty) scene.List {
	out := scene.List{scene.Background{Color: SettingsBackground}}
	out = append(out, homeButton(anim.FromFactor(1)).Translate(-CenterX, -CenterY).Scale(40/homeButtonRadius).Translate(70, 70)...)
	out = append(out, scene.Image{Key: DifficultyImage(d), Alpha: 1, Shape: scene.Rect{X: 160, Y: -50, W: 776, H: 240}})
	for i, level := range opponent.Difficulties() {
		key := StarImage
		if level > d {
			key = EmptyStarImage
		}
		out = append(out, scene.Image{
			Key:     key,
			Alpha:   1,
			Shape:   scene.Rect{X: 936 + 100*float64(i), Y: 25, W: 80, H: 80},
			OnClick: click.SetComputerDifficulty{Difficulty: level},
		})
	}
	button := func(k int) scene.Rect { return scene.Rect{X: 160 + 428*float64(k), Y: settingsButtonY, W: 388, H: 240} }
	return append(out,
		scene.Image{Key: TutorialImage, Alpha: 0.5, Shape: button(0)},
		scene.Image{Key: PassAndPlayImage, Alpha: 0.5, Shape: button(1)},
		scene.Image{Key: CustomSeedImage, Alpha: 1, Shape: button(2), OnClick: click.NavigateToCustomSeedScreen{}},
	)
}

var (
	keypadColumns = [3]float64{770, 900, 1030}
	keypadRows    = [4]float64{380, 510, 640, 770}
)

const (
	keyRadius  = 50.0
	digitWidth = 70.0
)

// CustomSeed is the keypad over the settings screen. The overlay swallows stray clicks.
func CustomSeed(d opponent.Difficulty, digits string) scene.List {
	out := Settings(d).WithoutClick()
	out = append(out,
		scene.Background{Color: Overlay, OnClick: click.StopPropagation{}},
		scene.FilledRect{Color: KeypadPanel, Shape: scene.Rect{X: 500, Y: 150, W: 800, H: 700}},
	)
	x0 := CenterX - digitWidth*float64(len(digits))/2
	for i := 0; i < len(digits); i++ {
		out = append(out, scene.Image{
			Key:   DigitImage(digits[i] - '0'),
			Alpha: 1,
			Shape: scene.Rect{X: x0 + digitWidth*float64(i), Y: 190, W: digitWidth, H: 100},
		})
	}
	for n := uint8(1); n <= 9; n++ {
		k := int(n - 1)
		out = append(out, key(keypadColumns[k%3], keypadRows[k/3], DigitImage(n), true, click.EnterSeedDigit{Digit: n})...)
	}
	last := keypadRows[3]
	out = append(out, key(keypadColumns[0], last, EraseImage, true, click.EraseSeedDigit{})...)
	out = append(out, key(keypadColumns[1], last, DigitImage(0), true, click.EnterSeedDigit{Digit: 0})...)
	out = append(out, key(keypadColumns[2], last, StartImage, digits != "", click.StartCustomSeedGame{})...)
	return append(out, scene.Image{Key: CloseImage, Alpha: 1, Shape: scene.Rect{X: 1230, Y: 170, W: 50, H: 50}, OnClick: click.NavigateHome{}})
}

func key(x, y float64, img scene.ImageKey, enabled bool, a click.Action) scene.List {
	c := scene.Circle{X: x, Y: y, R: keyRadius}
	fill, alpha := PillEnabled, 1.0
	var onClick scene.Action = a
	if !enabled {
		fill, alpha, onClick = PillDisabled, float64(DisabledAlpha)/255, nil
	}
	return scene.List{
		scene.FilledCircle{Color: fill, Shape: c, OnClick: onClick},
		scene.Image{Key: img, Alpha: alpha, Shape: imageIn(c)},
	}
}
