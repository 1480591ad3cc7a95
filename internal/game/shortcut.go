package game

import (
	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/state"
)

// Shortcut maps a typed key to the action it stands for in the current state. Digits,
// backspace and enter drive the seed keypad; 'h' goes home from anywhere but home.
func (g *Game) Shortcut(r rune) (click.Action, bool) {
	s := g.machine.State()
	if r == 'h' || r == 'H' {
		if _, home := s.(state.Home); home && g.fault == nil {
			return nil, false
		}
		return click.NavigateHome{}, true
	}

	seed, ok := s.(state.CustomSeed)
	if !ok || g.fault != nil {
		return nil, false
	}
	switch {
	case r >= '0' && r <= '9':
		return click.EnterSeedDigit{Digit: uint8(r - '0')}, true
	case r == '\b' || r == 0x7f:
		return click.EraseSeedDigit{}, true
	case r == '\r' || r == '\n':
		if seed.Digits == "" {
			return nil, false
		}
		return click.StartCustomSeedGame{}, true
	}
	return nil, false
}
