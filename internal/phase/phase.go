// Package phase holds the frozen data each single-player phase renders from.
package phase

import (
	"slices"

	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/pkg/errors"
)

var ErrNoInspector = errors.New("phase has no move inspector")

// Phase is one of the seven single-player phases. Values are immutable once built.
type Phase interface {
	Name() string
	isPhase()
}

type ChooseCharacter struct {
	Available []nzsc.Character
}

type RechooseCharacter struct {
	PrevAvailable  []nzsc.Character
	MutuallyChosen nzsc.Character
	Available      []nzsc.Character
}

type ChooseBooster struct {
	PrevAvailableCharacters []nzsc.Character
	PrevOutcome             [2]nzsc.CharacterHeadstart
	Available               []nzsc.Booster
}

type ChooseFirstDequeue struct {
	PrevAvailableBoosters []nzsc.Booster
	Scoreboard            [2]nzsc.DequeueingPlayer
	AvailableDequeues     [2][]nzsc.DequeueChoice
	Inspector             Inspector
}

type ChooseAction struct {
	PrevScoreboard        [2]nzsc.DequeueingPlayer
	PrevAvailableDequeues [2][]nzsc.DequeueChoice
	PrevOutcome           [2]nzsc.DequeueChoice
	Scoreboard            [2]nzsc.ActionlessPlayer
	AvailableActions      [2][]nzsc.Action
	Inspector             Inspector
}

type ChooseSubsequentDequeue struct {
	PrevScoreboard       [2]nzsc.ActionlessPlayer
	PrevAvailableActions [2][]nzsc.Action
	PrevOutcome          [2]nzsc.ActionPointsDestroyed
	Scoreboard           [2]nzsc.DequeueingPlayer
	AvailableDequeues    [2][]nzsc.DequeueChoice
	Inspector            Inspector
}

type GameOver struct {
	PrevScoreboard       [2]nzsc.ActionlessPlayer
	PrevAvailableActions [2][]nzsc.Action
	PrevOutcome          [2]nzsc.ActionPointsDestroyed
	Scoreboard           [2]nzsc.FinishedPlayer
}

func (ChooseCharacter) isPhase()         {}
func (RechooseCharacter) isPhase()       {}
func (ChooseBooster) isPhase()           {}
func (ChooseFirstDequeue) isPhase()      {}
func (ChooseAction) isPhase()            {}
func (ChooseSubsequentDequeue) isPhase() {}
func (GameOver) isPhase()                {}

func (ChooseCharacter) Name() string         { return "choose_character" }
func (RechooseCharacter) Name() string       { return "rechoose_character" }
func (ChooseBooster) Name() string           { return "choose_booster" }
func (ChooseFirstDequeue) Name() string      { return "choose_first_dequeue" }
func (ChooseAction) Name() string            { return "choose_action" }
func (ChooseSubsequentDequeue) Name() string { return "choose_subsequent_dequeue" }
func (GameOver) Name() string                { return "game_over" }

// Freeze returns a deep copy of p so that later engine mutation cannot leak in.
func Freeze(p Phase) Phase {
	switch p := p.(type) {
	case ChooseCharacter:
		p.Available = slices.Clone(p.Available)
		return p
	case RechooseCharacter:
		p.PrevAvailable = slices.Clone(p.PrevAvailable)
		p.Available = slices.Clone(p.Available)
		return p
	case ChooseBooster:
		p.PrevAvailableCharacters = slices.Clone(p.PrevAvailableCharacters)
		p.Available = slices.Clone(p.Available)
		return p
	case ChooseFirstDequeue:
		p.PrevAvailableBoosters = slices.Clone(p.PrevAvailableBoosters)
		p.Scoreboard = nzsc.ClonePair(p.Scoreboard)
		p.AvailableDequeues = nzsc.CloneSlices(p.AvailableDequeues)
		return p
	case ChooseAction:
		p.PrevScoreboard = nzsc.ClonePair(p.PrevScoreboard)
		p.PrevAvailableDequeues = nzsc.CloneSlices(p.PrevAvailableDequeues)
		p.Scoreboard = nzsc.ClonePair(p.Scoreboard)
		p.AvailableActions = nzsc.CloneSlices(p.AvailableActions)
		return p
	case ChooseSubsequentDequeue:
		p.PrevScoreboard = nzsc.ClonePair(p.PrevScoreboard)
		p.PrevAvailableActions = nzsc.CloneSlices(p.PrevAvailableActions)
		p.Scoreboard = nzsc.ClonePair(p.Scoreboard)
		p.AvailableDequeues = nzsc.CloneSlices(p.AvailableDequeues)
		return p
	case GameOver:
		p.PrevScoreboard = nzsc.ClonePair(p.PrevScoreboard)
		p.PrevAvailableActions = nzsc.CloneSlices(p.PrevAvailableActions)
		p.Scoreboard = nzsc.ClonePair(p.Scoreboard)
		return p
	}
	return p
}
