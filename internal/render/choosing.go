package render

import (
	"slices"

	"github.com/hubastard/nzsc/engine/anim"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/phase"
)

func characterButtons(l anim.Lerper, available []nzsc.Character, inTransit bool) scene.List {
	cards := make([]card, len(available))
	actions := make([]click.Action, len(available))
	for i, c := range available {
		cards[i] = characterCard(c)
		actions[i] = click.ChooseCharacter{Character: c}
	}
	return buttons(l, cards, actions, inTransit)
}

func boosterButtons(l anim.Lerper, available []nzsc.Booster) scene.List {
	cards := make([]card, len(available))
	actions := make([]click.Action, len(available))
	for i, b := range available {
		cards[i] = boosterCard(b)
		actions[i] = click.ChooseBooster{Booster: b}
	}
	return buttons(l, cards, actions, false)
}

// unchosen draws every card but the chosen one at its button, unclickable.
func unchosen(cards []card, chosen int) scene.List {
	var out scene.List
	for i, c := range cards {
		if i != chosen {
			out = append(out, c.at(buttonSlot(i), nil)...)
		}
	}
	return out
}

// pickup is the shared opening of the choosing phases: the human's card travels from its
// button to the left focus, the computer's arrives from off-canvas, both pause and leave.
type pickup struct {
	human, computer card
	button          int
}

func (p pickup) enter(b beat, l anim.Lerper) scene.List {
	left, right := focusSlot(focusLeft), focusSlot(focusRight)
	switch b {
	case humanEnters:
		return p.human.tween(l, buttonSlot(p.button), left)
	case computerEnters:
		return scene.Concat(p.human.at(left, nil), p.computer.tween(l, focusSlot(focusFarRight), right))
	}
	return scene.Concat(p.human.at(left, nil), p.computer.at(right, nil))
}

func (p pickup) leave(l anim.Lerper, human, computer bool) scene.List {
	var out scene.List
	if human {
		out = append(out, p.human.tween(l, focusSlot(focusLeft), focusSlot(focusFarLeft))...)
	}
	if computer {
		out = append(out, p.computer.tween(l, focusSlot(focusRight), focusSlot(focusFarRight))...)
	}
	return out
}

func chooseCharacter(p phase.ChooseCharacter, f float64) (scene.List, error) {
	_, l, err := characterTimeline.Eval(f)
	if err != nil {
		return nil, err
	}
	out := scene.List{background()}
	out = append(out, characterButtons(l, p.Available, true)...)
	out = append(out, hearts(Left, nzsc.WinningPoints)...)
	return append(out, hearts(Right, nzsc.WinningPoints)...), nil
}

func rechooseCharacter(p phase.RechooseCharacter, f float64) (scene.List, error) {
	b, l, err := rechooseTimeline.Eval(f)
	if err != nil {
		return nil, err
	}
	full := scene.Concat(healthDisplay(Left, nzsc.WinningPoints), healthDisplay(Right, nzsc.WinningPoints))
	if b == rest {
		return scene.Concat(scene.List{background()}, characterButtons(l, p.Available, false), full), nil
	}

	i := slices.Index(p.PrevAvailable, p.MutuallyChosen)
	if i < 0 {
		return nil, inconsistent("%s was not offered", p.MutuallyChosen)
	}
	cards := make([]card, len(p.PrevAvailable))
	for k, c := range p.PrevAvailable {
		cards[k] = characterCard(c)
	}
	chosen := cards[i]
	pk := pickup{human: chosen, computer: chosen, button: i}

	out := scene.Concat(scene.List{background()}, unchosen(cards, i), full, scene.List{overlay()})
	if b == leave {
		return append(out, pk.leave(l, true, true)...), nil
	}
	return append(out, pk.enter(b, l)...), nil
}

func chooseBooster(p phase.ChooseBooster, f float64) (scene.List, error) {
	b, l, err := boosterTimeline.Eval(f)
	if err != nil {
		return nil, err
	}
	// A headstart is a point for its owner, so it costs the other side a heart.
	health := [2]int{
		nzsc.Health(p.PrevOutcome[nzsc.Computer].Headstart),
		nzsc.Health(p.PrevOutcome[nzsc.Human].Headstart),
	}
	if b == rest {
		out := scene.Concat(scene.List{background()}, healthDisplay(Left, health[0]), healthDisplay(Right, health[1]))
		return append(out, boosterButtons(l, p.Available)...), nil
	}

	human := p.PrevOutcome[nzsc.Human].Character
	i := slices.Index(p.PrevAvailableCharacters, human)
	if i < 0 {
		return nil, inconsistent("%s was not offered", human)
	}
	cards := make([]card, len(p.PrevAvailableCharacters))
	for k, c := range p.PrevAvailableCharacters {
		cards[k] = characterCard(c)
	}
	pk := pickup{human: cards[i], computer: characterCard(p.PrevOutcome[nzsc.Computer].Character), button: i}
	// loses[k] is set when slot k's opponent took a headstart.
	loses := [2]bool{
		p.PrevOutcome[nzsc.Computer].Headstart > 0,
		p.PrevOutcome[nzsc.Human].Headstart > 0,
	}

	out := scene.Concat(scene.List{background()}, unchosen(cards, i))
	switch b {
	case hold:
		var popping scene.List
		for k, lost := range loses {
			if lost {
				popping = append(popping, poppingHealthDisplay(sideOf(k), nzsc.WinningPoints, l)...)
			} else {
				out = append(out, healthDisplay(sideOf(k), nzsc.WinningPoints)...)
			}
		}
		out = append(out, overlay())
		out = append(out, popping...)
		fade := l.SubLerper(0, portionFading).Clamp()
		for k, c := range [2]card{pk.human, pk.computer} {
			s := focusSlot(focusLeft)
			if k == nzsc.Computer {
				s = focusSlot(focusRight)
			}
			if loses[k] {
				out = append(out, c.fade(fade, s, 0)...)
			} else {
				out = append(out, c.at(s, nil)...)
			}
		}
		return out, nil
	case leave:
		out = scene.Concat(out, healthDisplay(Left, health[0]), healthDisplay(Right, health[1]), scene.List{overlay()})
		return append(out, pk.leave(l, !loses[nzsc.Human], !loses[nzsc.Computer])...), nil
	}
	out = scene.Concat(out, healthDisplay(Left, nzsc.WinningPoints), healthDisplay(Right, nzsc.WinningPoints), scene.List{overlay()})
	return append(out, pk.enter(b, l)...), nil
}
