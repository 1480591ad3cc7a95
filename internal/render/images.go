package render

import (
	"strconv"
	"strings"

	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/opponent"
)

// Sprite keys. Painters look them up in the asset manifest and fall back to a label.
const (
	HeartImage            scene.ImageKey = "ui/heart"
	MirrorImage           scene.ImageKey = "ui/mirror"
	DeclineImage          scene.ImageKey = "ui/no_booster"
	ConcedeImage          scene.ImageKey = "ui/concede"
	HomescreenImage       scene.ImageKey = "ui/homescreen"
	SinglePlayerImage     scene.ImageKey = "ui/single_player_button"
	MultiPlayerImage      scene.ImageKey = "ui/multi_player_button"
	SettingsImage         scene.ImageKey = "ui/settings_button"
	StarImage             scene.ImageKey = "ui/star"
	EmptyStarImage        scene.ImageKey = "ui/empty_star"
	TutorialImage         scene.ImageKey = "ui/tutorial_button"
	PassAndPlayImage      scene.ImageKey = "ui/pass_and_play_button"
	CustomSeedImage       scene.ImageKey = "ui/custom_seed_button"
	InspectMoveImage      scene.ImageKey = "ui/inspect_move_button"
	StopInspectingImage   scene.ImageKey = "ui/stop_inspecting_button"
	EraseImage            scene.ImageKey = "ui/erase"
	StartImage            scene.ImageKey = "ui/start"
	CloseImage            scene.ImageKey = "ui/close"
	NoBoosterImage        scene.ImageKey = "ui/no_booster"
	UnfinishedPlaceholder scene.ImageKey = "placeholder/unfinished"
)

func MoveImage(m nzsc.Move) scene.ImageKey { return scene.ImageKey("move/" + m.String()) }

func CharacterImage(c nzsc.Character) scene.ImageKey { return MoveImage(c.LogoMove()) }

func BoosterImage(b nzsc.Booster) scene.ImageKey {
	if m, ok := b.LogoMove(); ok {
		return MoveImage(m)
	}
	return NoBoosterImage
}

func ItemImage(i nzsc.ArsenalItem) scene.ImageKey {
	if i.Mirror {
		return MirrorImage
	}
	return MoveImage(i.Move)
}

func DifficultyImage(d opponent.Difficulty) scene.ImageKey {
	return scene.ImageKey("ui/difficulty_" + strings.ToLower(d.String()))
}

func DigitImage(d uint8) scene.ImageKey {
	return scene.ImageKey("ui/digit_" + strconv.Itoa(int(d)))
}

// Keys lists every sprite key a scene can reference, placeholder excluded.
func Keys() []scene.ImageKey {
	keys := []scene.ImageKey{
		HeartImage, MirrorImage, DeclineImage, ConcedeImage, HomescreenImage,
		SinglePlayerImage, MultiPlayerImage, SettingsImage, StarImage, EmptyStarImage,
		TutorialImage, PassAndPlayImage, CustomSeedImage, InspectMoveImage,
		StopInspectingImage, EraseImage, StartImage, CloseImage,
	}
	for _, m := range nzsc.Moves() {
		keys = append(keys, MoveImage(m))
	}
	for _, d := range opponent.Difficulties() {
		keys = append(keys, DifficultyImage(d))
	}
	for d := uint8(0); d < 10; d++ {
		keys = append(keys, DigitImage(d))
	}
	return keys
}
