package render

import (
	"testing"

	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/opponent"
	"github.com/hubastard/nzsc/internal/phase"
	"github.com/hubastard/nzsc/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nth[T any](xs []T, i int) (T, bool) {
	var zero T
	if len(xs) == 0 {
		return zero, false
	}
	return xs[i%len(xs)], true
}

// humanChoice picks the i-th offered choice for p, wrapping around.
func humanChoice(p phase.Phase, i int) (click.Action, bool) {
	switch p := p.(type) {
	case phase.ChooseCharacter:
		c, ok := nth(p.Available, i)
		return click.ChooseCharacter{Character: c}, ok
	case phase.RechooseCharacter:
		c, ok := nth(p.Available, i)
		return click.ChooseCharacter{Character: c}, ok
	case phase.ChooseBooster:
		b, ok := nth(p.Available, i)
		return click.ChooseBooster{Booster: b}, ok
	case phase.ChooseFirstDequeue:
		d, ok := nth(p.AvailableDequeues[nzsc.Human], i)
		return click.ChooseDequeue{Choice: d}, ok
	case phase.ChooseSubsequentDequeue:
		d, ok := nth(p.AvailableDequeues[nzsc.Human], i)
		return click.ChooseDequeue{Choice: d}, ok
	case phase.ChooseAction:
		a, ok := nth(p.AvailableActions[nzsc.Human], i)
		return click.ChooseAction{Action: a}, ok
	}
	return nil, false
}

// sweep renders s at every step of its phase's timeline.
func sweep(t *testing.T, s state.SinglePlayer) {
	t.Helper()
	tl, ok := timelines()[s.Phase.Name()]
	require.True(t, ok, s.Phase.Name())
	for _, f := range tl.Steps(40) {
		list, err := Screen(s, opponent.Medium, f)
		require.NoError(t, err, "%s at %v", s.Phase.Name(), f)
		require.NotEmpty(t, list, "%s at %v", s.Phase.Name(), f)
	}
}

func TestPracticeGamesRenderAtEveryStep(t *testing.T) {
	seen := map[string]int{}
	for game := 0; game < 30 && len(seen) < len(timelines()); game++ {
		seed := [4]uint32{uint32(game + 1), 2, 3, 4}
		m := state.New(state.Options{Seed: &seed, Difficulty: opponent.Medium})
		_, err := m.Handle(click.StartSinglePlayerGame{})
		require.NoError(t, err)

		for i := 0; i < 500; i++ {
			sp, ok := m.State().(state.SinglePlayer)
			require.True(t, ok, "state is %T", m.State())
			seen[sp.Phase.Name()]++
			sweep(t, sp)

			if in, ok := phase.InspectorOf(sp.Phase); ok && in.Mode == phase.NotInspecting {
				c, err := m.Apply(click.WaitForUserToChooseMoveToInspect{})
				require.NoError(t, err)
				assert.Equal(t, state.Updated, c)
				sweep(t, m.State().(state.SinglePlayer))
				_, err = m.Apply(click.StopInspectingMove{})
				require.NoError(t, err)
			}

			a, ok := humanChoice(sp.Phase, i+game)
			if !ok {
				break
			}
			c, err := m.Apply(a)
			require.NoError(t, err, "%s in %s", click.Name(a), sp.Phase.Name())
			require.Equal(t, state.Entered, c)
		}
	}
	for name := range timelines() {
		assert.Positive(t, seen[name], name)
	}
}
