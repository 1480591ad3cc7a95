package state

import (
	"testing"

	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/nzsc/nzsctest"
	"github.com/hubastard/nzsc/internal/opponent"
	"github.com/hubastard/nzsc/internal/phase"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playing(e nzsc.Engine, p phase.Phase) *Machine {
	m := New(Options{})
	m.state = SinglePlayer{
		Engine:   e,
		Opponent: opponent.New(opponent.Stupid, opponent.RandomFunc(func() float64 { return 0 })),
		Phase:    p,
	}
	return m
}

func currentPhase(t *testing.T, m *Machine) phase.Phase {
	t.Helper()
	sp, ok := m.State().(SinglePlayer)
	require.True(t, ok, "state is %T", m.State())
	return sp.Phase
}

func TestMenuNavigation(t *testing.T) {
	var saved []opponent.Difficulty
	m := New(Options{OnDifficulty: func(d opponent.Difficulty) { saved = append(saved, d) }})
	assert.Equal(t, Home{}, m.State())

	changed, err := m.Handle(click.NavigateToSettingsScreen{})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, Settings{}, m.State())

	_, err = m.Handle(click.SetComputerDifficulty{Difficulty: opponent.Medium})
	require.NoError(t, err)
	assert.Equal(t, opponent.Medium, m.Difficulty())
	assert.Equal(t, []opponent.Difficulty{opponent.Medium}, saved)

	_, err = m.Handle(click.NavigateHome{})
	require.NoError(t, err)
	assert.Equal(t, Home{}, m.State())
}

func TestStopPropagationIsNoop(t *testing.T) {
	m := New(Options{})
	changed, err := m.Handle(click.StopPropagation{})
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, Home{}, m.State())
}

func TestUnexpectedActionLeavesState(t *testing.T) {
	m := New(Options{})
	changed, err := m.Handle(click.ChooseBooster{Booster: nzsc.Atlas})
	assert.False(t, changed)
	assert.True(t, errors.Is(err, ErrUnexpectedAction))
	assert.Equal(t, Home{}, m.State())
}

func TestCustomSeedDigits(t *testing.T) {
	m := New(Options{})
	m.state = Settings{}
	_, err := m.Handle(click.NavigateToCustomSeedScreen{})
	require.NoError(t, err)

	for i := 0; i < MaxSeedDigits+2; i++ {
		_, err := m.Handle(click.EnterSeedDigit{Digit: uint8(i % 10)})
		require.NoError(t, err)
	}
	assert.Equal(t, CustomSeed{Digits: "01234567"}, m.State())

	changed, err := m.Handle(click.EnterSeedDigit{Digit: 3})
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = m.Handle(click.EraseSeedDigit{})
	require.NoError(t, err)
	assert.Equal(t, CustomSeed{Digits: "0123456"}, m.State())

	changed, err = m.Handle(click.StartCustomSeedGame{})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, phase.ChooseCharacter{Available: nzsc.Characters()}, currentPhase(t, m))
}

func TestStartGameUsesEngineChoices(t *testing.T) {
	script := nzsctest.New(nzsctest.Step{Choices: nzsc.CharacterChoices{{nzsc.Clown}, {nzsc.Ninja}}})
	seed := [4]uint32{1, 2, 3, 4}
	m := New(Options{Seed: &seed, NewEngine: func() nzsc.Engine { return script }})

	_, err := m.Handle(click.StartSinglePlayerGame{})
	require.NoError(t, err)
	assert.Equal(t, phase.ChooseCharacter{Available: []nzsc.Character{nzsc.Clown}}, currentPhase(t, m))
}

func TestCharacterToBooster(t *testing.T) {
	script := nzsctest.New(
		nzsctest.Step{
			Choices: nzsc.CharacterChoices{{nzsc.Ninja, nzsc.Zombie}, {nzsc.Samurai, nzsc.Clown}},
			Outcome: nzsc.CharacterPhaseDone{{Character: nzsc.Ninja}, {Character: nzsc.Samurai}},
		},
		nzsctest.Step{Choices: nzsc.BoosterChoices{{nzsc.Shadow, nzsc.BoosterNone}, {nzsc.Atlas}}},
	)
	m := playing(script, phase.ChooseCharacter{Available: []nzsc.Character{nzsc.Ninja, nzsc.Zombie}})

	changed, err := m.Handle(click.ChooseCharacter{Character: nzsc.Ninja})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []nzsc.BatchChoice{nzsc.BatchCharacters{nzsc.Ninja, nzsc.Samurai}}, script.Submitted)
	assert.Equal(t, phase.ChooseBooster{
		PrevAvailableCharacters: []nzsc.Character{nzsc.Ninja, nzsc.Zombie},
		PrevOutcome:             [2]nzsc.CharacterHeadstart{{Character: nzsc.Ninja}, {Character: nzsc.Samurai}},
		Available:               []nzsc.Booster{nzsc.Shadow, nzsc.BoosterNone},
	}, currentPhase(t, m))
}

func TestRechoose(t *testing.T) {
	script := nzsctest.New(
		nzsctest.Step{
			Choices: nzsc.CharacterChoices{{nzsc.Ninja, nzsc.Zombie}, {nzsc.Ninja}},
			Outcome: nzsc.CharacterPhaseRechoose{nzsc.Ninja, nzsc.Ninja},
		},
		nzsctest.Step{Choices: nzsc.CharacterChoices{{nzsc.Zombie}, {nzsc.Zombie}}},
	)
	m := playing(script, phase.ChooseCharacter{Available: []nzsc.Character{nzsc.Ninja, nzsc.Zombie}})

	_, err := m.Handle(click.ChooseCharacter{Character: nzsc.Ninja})
	require.NoError(t, err)
	assert.Equal(t, phase.RechooseCharacter{
		PrevAvailable:  []nzsc.Character{nzsc.Ninja, nzsc.Zombie},
		MutuallyChosen: nzsc.Ninja,
		Available:      []nzsc.Character{nzsc.Zombie},
	}, currentPhase(t, m))
}

func TestEngineFailureIsAllOrNothing(t *testing.T) {
	boom := errors.New("boom")
	script := nzsctest.New(nzsctest.Step{
		Choices: nzsc.CharacterChoices{{nzsc.Ninja}, {nzsc.Zombie}},
		Err:     boom,
	})
	start := phase.ChooseCharacter{Available: []nzsc.Character{nzsc.Ninja}}
	m := playing(script, start)
	before := m.State()

	changed, err := m.Handle(click.ChooseCharacter{Character: nzsc.Ninja})
	assert.False(t, changed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "submit characters")
	assert.Equal(t, before, m.State())
}

func TestOutcomeMismatch(t *testing.T) {
	script := nzsctest.New(nzsctest.Step{
		Choices: nzsc.CharacterChoices{{nzsc.Ninja}, {nzsc.Zombie}},
		Outcome: nzsc.DequeuePhaseDone{nzsc.DeclineChoice, nzsc.DeclineChoice},
	})
	m := playing(script, phase.ChooseCharacter{Available: []nzsc.Character{nzsc.Ninja}})

	_, err := m.Handle(click.ChooseCharacter{Character: nzsc.Ninja})
	assert.True(t, errors.Is(err, ErrOutcomeMismatch))
	assert.Equal(t, phase.ChooseCharacter{Available: []nzsc.Character{nzsc.Ninja}}, currentPhase(t, m))
}

func TestGameOverOnlyFromAction(t *testing.T) {
	var final nzsc.FinishedScoreboard
	final[nzsc.Human].Points = nzsc.WinningPoints
	result := nzsc.GameOver{{Action: nzsc.Use(nzsc.Kick), Points: 1}, {Action: nzsc.Use(nzsc.Zap)}}

	t.Run("from booster", func(t *testing.T) {
		script := nzsctest.New(nzsctest.Step{
			Choices: nzsc.BoosterChoices{{nzsc.Shadow}, {nzsc.Atlas}},
			Outcome: result,
		})
		m := playing(script, phase.ChooseBooster{})
		_, err := m.Handle(click.ChooseBooster{Booster: nzsc.Shadow})
		assert.True(t, errors.Is(err, ErrOutcomeMismatch))
		assert.IsType(t, phase.ChooseBooster{}, currentPhase(t, m))
	})

	t.Run("from action", func(t *testing.T) {
		actions := nzsc.ActionChoices{{nzsc.Use(nzsc.Kick)}, {nzsc.Use(nzsc.Zap)}}
		script := nzsctest.New(
			nzsctest.Step{Choices: actions, Outcome: result},
			nzsctest.Step{Choices: nzsc.NoChoices{}, Scoreboard: final},
		)
		var board [2]nzsc.ActionlessPlayer
		board[nzsc.Human].Points = 4
		m := playing(script, phase.ChooseAction{Scoreboard: board})

		_, err := m.Handle(click.ChooseAction{Action: nzsc.Use(nzsc.Kick)})
		require.NoError(t, err)
		over, ok := currentPhase(t, m).(phase.GameOver)
		require.True(t, ok)
		assert.Equal(t, board, over.PrevScoreboard)
		assert.Equal(t, [2][]nzsc.Action(actions), over.PrevAvailableActions)
		assert.Equal(t, [2]nzsc.ActionPointsDestroyed(result), over.PrevOutcome)
		assert.Equal(t, [2]nzsc.FinishedPlayer(final), over.Scoreboard)
	})
}

func TestDequeueToAction(t *testing.T) {
	var dq [2]nzsc.DequeueingPlayer
	dq[nzsc.Human].Character = nzsc.Clown
	var al nzsc.ActionlessScoreboard
	al[nzsc.Human].Character = nzsc.Clown
	dequeues := nzsc.DequeueChoices{{nzsc.DeclineChoice}, {nzsc.DeclineChoice}}
	actions := nzsc.ActionChoices{{nzsc.Use(nzsc.Nose)}, {nzsc.ConcedeAction}}
	script := nzsctest.New(
		nzsctest.Step{Choices: dequeues, Outcome: nzsc.DequeuePhaseDone{nzsc.DeclineChoice, nzsc.DeclineChoice}},
		nzsctest.Step{Choices: actions, Scoreboard: al},
	)
	m := playing(script, phase.ChooseSubsequentDequeue{Scoreboard: dq, Inspector: phase.InspectingMove(nzsc.Nose)})

	_, err := m.Handle(click.ChooseDequeue{Choice: nzsc.DeclineChoice})
	require.NoError(t, err)
	p, ok := currentPhase(t, m).(phase.ChooseAction)
	require.True(t, ok)
	assert.Equal(t, dq, p.PrevScoreboard)
	assert.Equal(t, [2]nzsc.DequeueChoice{nzsc.DeclineChoice, nzsc.DeclineChoice}, p.PrevOutcome)
	assert.Equal(t, [2][]nzsc.Action(actions), p.AvailableActions)
	assert.Equal(t, phase.NotInspecting, p.Inspector.Mode)
}

func TestInspectorActions(t *testing.T) {
	m := playing(nzsctest.New(), phase.ChooseAction{})

	c, err := m.Apply(click.WaitForUserToChooseMoveToInspect{})
	require.NoError(t, err)
	assert.Equal(t, Updated, c)
	s, _ := phase.InspectorOf(currentPhase(t, m))
	assert.Equal(t, phase.WaitingForUserToChooseMove, s.Mode)

	c, err = m.Apply(click.InspectMove{Move: nzsc.Zap})
	require.NoError(t, err)
	assert.Equal(t, Updated, c)
	s, _ = phase.InspectorOf(currentPhase(t, m))
	assert.Equal(t, phase.InspectingMove(nzsc.Zap), s)

	changed, err := m.Handle(click.StopInspectingMove{})
	require.NoError(t, err)
	assert.True(t, changed)
	s, _ = phase.InspectorOf(currentPhase(t, m))
	assert.Equal(t, phase.NotInspecting, s.Mode)

	m = playing(nzsctest.New(), phase.ChooseCharacter{})
	c, err = m.Apply(click.InspectMove{Move: nzsc.Zap})
	assert.True(t, errors.Is(err, ErrUnexpectedAction))
	assert.Equal(t, Unchanged, c)
}

func TestChoicesAndNavigationEnter(t *testing.T) {
	seed := [4]uint32{7, 7, 7, 7}
	m := New(Options{Seed: &seed})

	c, err := m.Apply(click.StartSinglePlayerGame{})
	require.NoError(t, err)
	assert.Equal(t, Entered, c)

	p := currentPhase(t, m).(phase.ChooseCharacter)
	c, err = m.Apply(click.ChooseCharacter{Character: p.Available[0]})
	require.NoError(t, err)
	assert.Equal(t, Entered, c)

	c, err = m.Apply(click.StopPropagation{})
	require.NoError(t, err)
	assert.Equal(t, Unchanged, c)

	c, err = m.Apply(click.NavigateHome{})
	require.NoError(t, err)
	assert.Equal(t, Entered, c)
	assert.Equal(t, "entered", c.String())
}

func TestPracticeGameReachesBoosters(t *testing.T) {
	seed := [4]uint32{7, 7, 7, 7}
	m := New(Options{Seed: &seed, Difficulty: opponent.Medium})
	_, err := m.Handle(click.StartSinglePlayerGame{})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		var avail []nzsc.Character
		switch p := currentPhase(t, m).(type) {
		case phase.ChooseCharacter:
			avail = p.Available
		case phase.RechooseCharacter:
			avail = p.Available
		}
		if len(avail) == 0 {
			break
		}
		_, err := m.Handle(click.ChooseCharacter{Character: avail[0]})
		require.NoError(t, err)
	}
	assert.IsType(t, phase.ChooseBooster{}, currentPhase(t, m))

	_, err = m.Handle(click.NavigateHome{})
	require.NoError(t, err)
	assert.Equal(t, Home{}, m.State())
}
