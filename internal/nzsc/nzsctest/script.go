// Package nzsctest provides a scripted engine for driving client code in tests.
package nzsctest

import (
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/pkg/errors"
)

// ErrExhausted is returned once every scripted step has been consumed.
var ErrExhausted = errors.New("script exhausted")

// Step is the engine state before a submission and the response to it.
// A step with a nil Outcome and nil Err is terminal.
type Step struct {
	Choices    nzsc.Choices
	Scoreboard nzsc.Scoreboard
	Outcome    nzsc.Outcome
	Err        error
}

// Script replays Steps in order. A failing step does not advance.
type Script struct {
	Steps     []Step
	Points    func([2]nzsc.Action) [2]int
	Submitted []nzsc.BatchChoice

	pos int
}

func New(steps ...Step) *Script {
	return &Script{Steps: steps}
}

func (s *Script) Choices() nzsc.Choices {
	if s.pos >= len(s.Steps) || s.Steps[s.pos].Choices == nil {
		return nzsc.NoChoices{}
	}
	return s.Steps[s.pos].Choices
}

func (s *Script) Scoreboard() nzsc.Scoreboard {
	if s.pos >= len(s.Steps) {
		return nil
	}
	return s.Steps[s.pos].Scoreboard
}

func (s *Script) Choose(batch nzsc.BatchChoice) (nzsc.Outcome, error) {
	s.Submitted = append(s.Submitted, batch)
	if s.pos >= len(s.Steps) {
		return nil, ErrExhausted
	}
	step := s.Steps[s.pos]
	if step.Err != nil {
		return nil, step.Err
	}
	if step.Outcome == nil {
		return nil, ErrExhausted
	}
	s.pos++
	return step.Outcome, nil
}

func (s *Script) PointsOf(actions [2]nzsc.Action) [2]int {
	if s.Points == nil {
		return [2]int{}
	}
	return s.Points(actions)
}

// Position is the index of the current step.
func (s *Script) Position() int { return s.pos }
