// Package opponent picks the computer's choices.
package opponent

import (
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/pkg/errors"
)

var ErrNoChoices = errors.New("opponent has no legal choices")

// Opponent always plays slot nzsc.Computer.
type Opponent struct {
	Difficulty Difficulty
	Random     Random
}

func New(d Difficulty, r Random) *Opponent {
	return &Opponent{Difficulty: d, Random: r}
}

func (o *Opponent) ChooseCharacter(e nzsc.Engine) (nzsc.Character, error) {
	c, ok := e.Choices().(nzsc.CharacterChoices)
	if !ok {
		return 0, wrongKind("character", e.Choices())
	}
	return choose(o.Random, c[nzsc.Computer])
}

func (o *Opponent) ChooseBooster(e nzsc.Engine) (nzsc.Booster, error) {
	c, ok := e.Choices().(nzsc.BoosterChoices)
	if !ok {
		return 0, wrongKind("booster", e.Choices())
	}
	options := c[nzsc.Computer]
	if o.Difficulty != Stupid {
		options = prefer(options, func(b nzsc.Booster) bool { return b != nzsc.BoosterNone })
	}
	return choose(o.Random, options)
}

func (o *Opponent) ChooseDequeue(e nzsc.Engine) (nzsc.DequeueChoice, error) {
	c, ok := e.Choices().(nzsc.DequeueChoices)
	if !ok {
		return nzsc.DequeueChoice{}, wrongKind("dequeue", e.Choices())
	}
	options := c[nzsc.Computer]
	if o.Difficulty != Stupid {
		options = prefer(options,
			func(d nzsc.DequeueChoice) bool { return d.Kind == nzsc.DrainAndExit },
			func(d nzsc.DequeueChoice) bool { return d.Kind == nzsc.JustExit },
		)
	}
	return choose(o.Random, options)
}

func (o *Opponent) ChooseAction(e nzsc.Engine) (nzsc.Action, error) {
	c, ok := e.Choices().(nzsc.ActionChoices)
	if !ok {
		return nzsc.Action{}, wrongKind("action", e.Choices())
	}
	options := c[nzsc.Computer]
	if o.Difficulty != Medium {
		return choose(o.Random, options)
	}

	board, ok := e.Scoreboard().(nzsc.ActionlessScoreboard)
	if !ok {
		return nzsc.Action{}, errors.Errorf("expected actionless scoreboard, got %T", e.Scoreboard())
	}
	human := c[nzsc.Human]
	points := func(mine, theirs nzsc.Action) [2]int {
		return e.PointsOf([2]nzsc.Action{mine, theirs})
	}
	forAll := func(test func([2]int) bool) func(nzsc.Action) bool {
		return func(a nzsc.Action) bool {
			for _, h := range human {
				if !test(points(a, h)) {
					return false
				}
			}
			return true
		}
	}
	forSome := func(test func([2]int) bool) func(nzsc.Action) bool {
		return func(a nzsc.Action) bool {
			for _, h := range human {
				if test(points(a, h)) {
					return true
				}
			}
			return false
		}
	}
	win := func(p [2]int) bool { return p == [2]int{1, 0} }

	secondBest := forAll(func(p [2]int) bool { return p[0] == 1 })
	if board[nzsc.Human].Points == nzsc.WinningPoints-1 {
		secondBest = forAll(func(p [2]int) bool { return p[1] == 0 })
	}
	options = prefer(options,
		forAll(win),
		secondBest,
		forSome(win),
		forSome(func(p [2]int) bool { return p != [2]int{0, 1} }),
	)
	return choose(o.Random, options)
}

// choose picks floor(len*r), clamped so that r == 1 stays in range.
func choose[T any](r Random, options []T) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, ErrNoChoices
	}
	i := int(float64(len(options)) * r.Random())
	i = max(0, min(i, len(options)-1))
	return options[i], nil
}

// prefer keeps the options passing the first predicate any option passes.
func prefer[T any](options []T, preds ...func(T) bool) []T {
	for _, p := range preds {
		if kept := filter(options, p); len(kept) > 0 {
			return kept
		}
	}
	return options
}

func filter[T any](options []T, keep func(T) bool) []T {
	var out []T
	for _, o := range options {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func wrongKind(want string, got nzsc.Choices) error {
	return errors.Errorf("expected %s choices, got %T", want, got)
}
