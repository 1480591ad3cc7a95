package render

import (
	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/internal/nzsc"
)

var (
	Background           = colors.MustHex("#F1F1F1")
	Overlay              = colors.MustHex("#333333AA")
	DeclineColor         = colors.MustHex("#111111")
	PillEnabled          = colors.MustHex("#727272")
	PillDisabled         = colors.MustHex("#724242")
	ArrowColor           = colors.MustHex("#111111")
	HomeButtonBackground = colors.MustHex("#0088BB")
	HomeButtonForeground = colors.MustHex("#EEEEEE")
	HomeScreenBackground = colors.MustHex("#231201")
	SettingsBackground   = HomeScreenBackground
	KeypadPanel          = colors.MustHex("#333333")

	TrapezoidBorder = colors.MustHex("#494949")
	TrapezoidFill   = Background

	MirrorColor    = colors.MustHex("#888888")
	NoBoosterColor = colors.MustHex("#111111")

	victoryHighlight    = colors.MustHex("#44CC44CC")
	defeatHighlight     = colors.MustHex("#994242CC")
	specialTieHighlight = colors.MustHex("#AA9942CC")
	inspectedHighlight  = colors.MustHex("#0088BBCC")
)

const (
	TrapezoidBorderWidth = 2.0
	// DisabledAlpha dims dequeue and arsenal items that cannot be chosen.
	DisabledAlpha uint8 = 0x80

	portionFading           = 1 / (5 * 0.55)
	portionPopping          = 0.6 / 1.1
)

var (
	dark   = colors.MustHex("#111111")
	light  = colors.MustHex("#DDDDDD")
	medium = colors.MustHex("#888888")
)

func MoveColor(m nzsc.Move) colors.RGBA {
	switch m {
	case nzsc.NinjaSword, nzsc.ShadowSlip, nzsc.Regenerate, nzsc.SamuraiSword, nzsc.Twist,
		nzsc.Bend, nzsc.AcidSpray, nzsc.MustacheMash, nzsc.BigHairyDeal:
		return light
	case nzsc.BackwardsMoustachio, nzsc.JugglingKnives:
		return medium
	}
	return dark
}

func CharacterColor(c nzsc.Character) colors.RGBA { return MoveColor(c.LogoMove()) }

func BoosterColor(b nzsc.Booster) colors.RGBA {
	if m, ok := b.LogoMove(); ok {
		return MoveColor(m)
	}
	return NoBoosterColor
}

func ItemColor(i nzsc.ArsenalItem) colors.RGBA {
	if i.Mirror {
		return MirrorColor
	}
	return MoveColor(i.Move)
}

// highlight colors an opposing move by what the inspected move scores against it.
func highlight(points [2]int) (colors.RGBA, bool) {
	switch {
	case points[0] > 0 && points[1] > 0:
		return specialTieHighlight, true
	case points[0] > 0:
		return victoryHighlight, true
	case points[1] > 0:
		return defeatHighlight, true
	}
	return colors.RGBA{}, false
}
