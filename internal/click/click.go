// Package click defines the user actions a scene can carry and resolves clicks to them.
package click

import (
	"fmt"
	"strings"

	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/opponent"
)

// Action is what a click asks the state machine to do.
type Action interface{ isAction() }

type (
	StartSinglePlayerGame    struct{}
	NavigateToSettingsScreen struct{}
	NavigateHome             struct{}
	// StopPropagation swallows a click so nothing beneath an overlay reacts.
	StopPropagation struct{}

	ChooseCharacter struct{ Character nzsc.Character }
	ChooseBooster   struct{ Booster nzsc.Booster }
	ChooseDequeue   struct{ Choice nzsc.DequeueChoice }
	ChooseAction    struct{ Action nzsc.Action }

	SetComputerDifficulty struct{ Difficulty opponent.Difficulty }

	NavigateToCustomSeedScreen struct{}
	EnterSeedDigit             struct{ Digit uint8 }
	EraseSeedDigit             struct{}
	StartCustomSeedGame        struct{}

	WaitForUserToChooseMoveToInspect struct{}
	InspectMove                      struct{ Move nzsc.Move }
	StopInspectingMove               struct{}
)

func (StartSinglePlayerGame) isAction()            {}
func (NavigateToSettingsScreen) isAction()         {}
func (NavigateHome) isAction()                     {}
func (StopPropagation) isAction()                  {}
func (ChooseCharacter) isAction()                  {}
func (ChooseBooster) isAction()                    {}
func (ChooseDequeue) isAction()                    {}
func (ChooseAction) isAction()                     {}
func (SetComputerDifficulty) isAction()            {}
func (NavigateToCustomSeedScreen) isAction()       {}
func (EnterSeedDigit) isAction()                   {}
func (EraseSeedDigit) isAction()                   {}
func (StartCustomSeedGame) isAction()              {}
func (WaitForUserToChooseMoveToInspect) isAction() {}
func (InspectMove) isAction()                      {}
func (StopInspectingMove) isAction()               {}

// At resolves a canvas point against the last painted list. A miss, or a hit on
// a payload that is not an Action, reports false.
func At(x, y float64, list scene.List) (Action, bool) {
	payload, ok := scene.Hit(x, y, list)
	if !ok {
		return nil, false
	}
	a, ok := payload.(Action)
	return a, ok
}

// Name is a short label for logs, e.g. "ChooseCharacter{Character:Ninja}".
func Name(a Action) string {
	s := fmt.Sprintf("%+v", a)
	t := fmt.Sprintf("%T", a)
	t = t[strings.LastIndex(t, ".")+1:]
	return t + s
}
