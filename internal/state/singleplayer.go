package state

import (
	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/phase"
	"github.com/pkg/errors"
)

// handle computes the phase after a. It submits to the engine but leaves s untouched.
func (s SinglePlayer) handle(a click.Action) (phase.Phase, error) {
	switch a := a.(type) {
	case click.ChooseCharacter:
		return s.chooseCharacter(a.Character)
	case click.ChooseBooster:
		return s.chooseBooster(a.Booster)
	case click.ChooseDequeue:
		return s.chooseDequeue(a.Choice)
	case click.ChooseAction:
		return s.chooseAction(a.Action)
	case click.WaitForUserToChooseMoveToInspect:
		return s.inspect(phase.Inspector{Mode: phase.WaitingForUserToChooseMove})
	case click.InspectMove:
		return s.inspect(phase.InspectingMove(a.Move))
	case click.StopInspectingMove:
		return s.inspect(phase.Inspector{Mode: phase.NotInspecting})
	}
	return nil, s.unexpected(a)
}

func (s SinglePlayer) chooseCharacter(c nzsc.Character) (phase.Phase, error) {
	switch s.Phase.(type) {
	case phase.ChooseCharacter, phase.RechooseCharacter:
	default:
		return nil, s.unexpected(click.ChooseCharacter{Character: c})
	}
	prev, err := expect[nzsc.CharacterChoices](s.Engine.Choices())
	if err != nil {
		return nil, err
	}
	theirs, err := s.Opponent.ChooseCharacter(s.Engine)
	if err != nil {
		return nil, errors.Wrap(err, "opponent")
	}
	out, err := s.submit(nzsc.BatchCharacters{c, theirs})
	if err != nil {
		return nil, err
	}

	switch out := out.(type) {
	case nzsc.CharacterPhaseDone:
		next, err := expect[nzsc.BoosterChoices](s.Engine.Choices())
		if err != nil {
			return nil, err
		}
		return phase.ChooseBooster{
			PrevAvailableCharacters: prev[nzsc.Human],
			PrevOutcome:             out,
			Available:               next[nzsc.Human],
		}, nil
	case nzsc.CharacterPhaseRechoose:
		next, err := expect[nzsc.CharacterChoices](s.Engine.Choices())
		if err != nil {
			return nil, err
		}
		return phase.RechooseCharacter{
			PrevAvailable:  prev[nzsc.Human],
			MutuallyChosen: out[nzsc.Human],
			Available:      next[nzsc.Human],
		}, nil
	}
	return nil, s.mismatch(out)
}

func (s SinglePlayer) chooseBooster(b nzsc.Booster) (phase.Phase, error) {
	if _, ok := s.Phase.(phase.ChooseBooster); !ok {
		return nil, s.unexpected(click.ChooseBooster{Booster: b})
	}
	prev, err := expect[nzsc.BoosterChoices](s.Engine.Choices())
	if err != nil {
		return nil, err
	}
	theirs, err := s.Opponent.ChooseBooster(s.Engine)
	if err != nil {
		return nil, errors.Wrap(err, "opponent")
	}
	out, err := s.submit(nzsc.BatchBoosters{b, theirs})
	if err != nil {
		return nil, err
	}
	if _, ok := out.(nzsc.BoosterPhaseDone); !ok {
		return nil, s.mismatch(out)
	}

	board, err := expect[nzsc.DequeueingScoreboard](s.Engine.Scoreboard())
	if err != nil {
		return nil, err
	}
	next, err := expect[nzsc.DequeueChoices](s.Engine.Choices())
	if err != nil {
		return nil, err
	}
	return phase.ChooseFirstDequeue{
		PrevAvailableBoosters: prev[nzsc.Human],
		Scoreboard:            board,
		AvailableDequeues:     next,
	}, nil
}

func (s SinglePlayer) chooseDequeue(d nzsc.DequeueChoice) (phase.Phase, error) {
	var prevBoard [2]nzsc.DequeueingPlayer
	switch p := s.Phase.(type) {
	case phase.ChooseFirstDequeue:
		prevBoard = p.Scoreboard
	case phase.ChooseSubsequentDequeue:
		prevBoard = p.Scoreboard
	default:
		return nil, s.unexpected(click.ChooseDequeue{Choice: d})
	}
	prev, err := expect[nzsc.DequeueChoices](s.Engine.Choices())
	if err != nil {
		return nil, err
	}
	theirs, err := s.Opponent.ChooseDequeue(s.Engine)
	if err != nil {
		return nil, errors.Wrap(err, "opponent")
	}
	out, err := s.submit(nzsc.BatchDequeues{d, theirs})
	if err != nil {
		return nil, err
	}
	done, ok := out.(nzsc.DequeuePhaseDone)
	if !ok {
		return nil, s.mismatch(out)
	}

	board, err := expect[nzsc.ActionlessScoreboard](s.Engine.Scoreboard())
	if err != nil {
		return nil, err
	}
	next, err := expect[nzsc.ActionChoices](s.Engine.Choices())
	if err != nil {
		return nil, err
	}
	return phase.ChooseAction{
		PrevScoreboard:        prevBoard,
		PrevAvailableDequeues: prev,
		PrevOutcome:           done,
		Scoreboard:            board,
		AvailableActions:      next,
	}, nil
}

func (s SinglePlayer) chooseAction(a nzsc.Action) (phase.Phase, error) {
	p, ok := s.Phase.(phase.ChooseAction)
	if !ok {
		return nil, s.unexpected(click.ChooseAction{Action: a})
	}
	prev, err := expect[nzsc.ActionChoices](s.Engine.Choices())
	if err != nil {
		return nil, err
	}
	theirs, err := s.Opponent.ChooseAction(s.Engine)
	if err != nil {
		return nil, errors.Wrap(err, "opponent")
	}
	out, err := s.submit(nzsc.BatchActions{a, theirs})
	if err != nil {
		return nil, err
	}

	switch out := out.(type) {
	case nzsc.ActionPhaseDone:
		board, err := expect[nzsc.DequeueingScoreboard](s.Engine.Scoreboard())
		if err != nil {
			return nil, err
		}
		next, err := expect[nzsc.DequeueChoices](s.Engine.Choices())
		if err != nil {
			return nil, err
		}
		return phase.ChooseSubsequentDequeue{
			PrevScoreboard:       p.Scoreboard,
			PrevAvailableActions: prev,
			PrevOutcome:          out,
			Scoreboard:           board,
			AvailableDequeues:    next,
		}, nil
	case nzsc.GameOver:
		board, err := expect[nzsc.FinishedScoreboard](s.Engine.Scoreboard())
		if err != nil {
			return nil, err
		}
		return phase.GameOver{
			PrevScoreboard:       p.Scoreboard,
			PrevAvailableActions: prev,
			PrevOutcome:          out,
			Scoreboard:           board,
		}, nil
	}
	return nil, s.mismatch(out)
}

func (s SinglePlayer) inspect(in phase.Inspector) (phase.Phase, error) {
	p, err := phase.WithInspector(s.Phase, in)
	if err != nil {
		return nil, errors.Wrapf(ErrUnexpectedAction, "inspector in %s: %v", s.Phase.Name(), err)
	}
	return p, nil
}

func (s SinglePlayer) submit(b nzsc.BatchChoice) (nzsc.Outcome, error) {
	out, err := s.Engine.Choose(b)
	if err != nil {
		return nil, errors.Wrapf(err, "submit %s", b.Kind())
	}
	return out, nil
}

func (s SinglePlayer) mismatch(out nzsc.Outcome) error {
	return errors.Wrapf(ErrOutcomeMismatch, "unexpected outcome %T while %s", out, s.Phase.Name())
}

func (s SinglePlayer) unexpected(a click.Action) error {
	return errors.Wrapf(ErrUnexpectedAction, "%s in %s", click.Name(a), s.Phase.Name())
}

// expect narrows an engine report to the variant the next phase needs.
func expect[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, errors.Errorf("engine reported %T, expected %T", v, zero)
	}
	return t, nil
}
