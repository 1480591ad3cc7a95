// Package render turns a phase and its completion factor into a scene list.
// Rendering is pure: the same phase and factor always give the same list.
package render

import (
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/opponent"
	"github.com/hubastard/nzsc/internal/phase"
	"github.com/hubastard/nzsc/internal/state"
	"github.com/pkg/errors"
)

// ErrInconsistentPhase reports phase data that contradicts itself, such as a chosen
// card missing from the list it was chosen from.
var ErrInconsistentPhase = errors.New("render: inconsistent phase")

// Renderer draws single-player phases. Referee scores moves for the inspector highlight.
type Renderer struct {
	Referee nzsc.Referee
}

// Phase renders p at completion factor f, which must lie in [0,1].
func (r Renderer) Phase(p phase.Phase, f float64) (scene.List, error) {
	var (
		list scene.List
		err  error
	)
	switch p := p.(type) {
	case phase.ChooseCharacter:
		list, err = chooseCharacter(p, f)
	case phase.RechooseCharacter:
		list, err = rechooseCharacter(p, f)
	case phase.ChooseBooster:
		list, err = chooseBooster(p, f)
	case phase.ChooseFirstDequeue:
		list, err = r.chooseFirstDequeue(p, f)
	case phase.ChooseAction:
		list, err = r.chooseAction(p, f)
	case phase.ChooseSubsequentDequeue:
		list, err = r.chooseSubsequentDequeue(p, f)
	case phase.GameOver:
		list, err = gameOver(p, f)
	default:
		return nil, errors.Errorf("render: unknown phase %T", p)
	}
	return list, errors.Wrap(err, p.Name())
}

// Screen renders any top-level state. f only matters in a game.
func Screen(s state.State, d opponent.Difficulty, f float64) (scene.List, error) {
	switch s := s.(type) {
	case state.Home:
		return Home(), nil
	case state.Settings:
		return Settings(d), nil
	case state.CustomSeed:
		return CustomSeed(d, s.Digits), nil
	case state.SinglePlayer:
		return Renderer{Referee: s.Engine}.Phase(s.Phase, f)
	}
	return nil, errors.Errorf("render: unknown state %T", s)
}

func inconsistent(format string, args ...any) error {
	return errors.Wrapf(ErrInconsistentPhase, format, args...)
}
