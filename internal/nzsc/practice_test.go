package nzsc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toActionPhase(t *testing.T, p *Practice, chars BatchCharacters, boosters BatchBoosters) {
	t.Helper()
	_, err := p.Choose(chars)
	require.NoError(t, err)
	_, err = p.Choose(boosters)
	require.NoError(t, err)
	_, err = p.Choose(BatchDequeues{DeclineChoice, DeclineChoice})
	require.NoError(t, err)
}

func TestPracticeCharacterHeadstart(t *testing.T) {
	p := NewPractice()
	assert.Equal(t, CharacterChoices{Characters(), Characters()}, p.Choices())

	out, err := p.Choose(BatchCharacters{Ninja, Zombie})
	require.NoError(t, err)
	assert.Equal(t, CharacterPhaseDone{{Character: Ninja, Headstart: 1}, {Character: Zombie}}, out)
	assert.Equal(t, BoosterChoices{
		{Shadow, Speedy, BoosterNone},
		{Regenerative, ZombieCorpsBooster, BoosterNone},
	}, p.Choices())
	assert.Equal(t, BoosterScoreboard{Characters: [2]Character{Ninja, Zombie}, Points: [2]int{1, 0}}, p.Scoreboard())
}

func TestPracticeMutualPickRetiresCharacter(t *testing.T) {
	p := NewPractice()
	for i := 0; i < MutualPicksBeforeRetire; i++ {
		out, err := p.Choose(BatchCharacters{Samurai, Samurai})
		require.NoError(t, err)
		assert.Equal(t, CharacterPhaseRechoose{Samurai, Samurai}, out)
	}
	assert.Equal(t, CharacterChoices{{Ninja, Zombie, Clown}, {Ninja, Zombie, Clown}}, p.Choices())

	_, err := p.Choose(BatchCharacters{Samurai, Ninja})
	assert.True(t, errors.Is(err, ErrIllegalChoice))
}

func TestPracticeWrongPhase(t *testing.T) {
	p := NewPractice()
	_, err := p.Choose(BatchBoosters{Shadow, Shadow})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongPhase))
	assert.Equal(t, CharacterScoreboard{}, p.Scoreboard())
}

func TestPracticeQueueFlow(t *testing.T) {
	p := NewPractice()
	toActionPhase(t, p, BatchCharacters{Ninja, Zombie}, BatchBoosters{Shadow, BoosterNone})

	choices := p.Choices().(ActionChoices)
	assert.Equal(t, []Action{Use(Kick), Use(Nunchucks), Use(NinjaSword), Use(ShadowFireball), Use(ShadowSlip)}, choices[Human])
	assert.Equal(t, []Action{Use(Rampage), Use(Muscle), Use(Zap)}, choices[Computer])

	out, err := p.Choose(BatchActions{Use(Kick), Use(Zap)})
	require.NoError(t, err)
	assert.Equal(t, ActionPhaseDone{
		{Action: Use(Kick), Points: 1},
		{Action: Use(Zap)},
	}, out)

	board := p.Scoreboard().(DequeueingScoreboard)
	human := board[Human]
	assert.Equal(t, 2, human.Points)
	require.NotNil(t, human.Queue.Entrance)
	assert.Equal(t, ItemOf(Kick), *human.Queue.Entrance)
	assert.NotContains(t, human.Arsenal, ItemOf(Kick))

	_, err = p.Choose(BatchDequeues{DeclineChoice, DeclineChoice})
	require.NoError(t, err)
	_, err = p.Choose(BatchActions{Use(Nunchucks), Use(Muscle)})
	require.NoError(t, err)

	dequeues := p.Choices().(DequeueChoices)
	assert.Equal(t, []DequeueChoice{Drain(ItemOf(Kick)), DeclineChoice}, dequeues[Human])

	_, err = p.Choose(BatchDequeues{Drain(ItemOf(Kick)), DeclineChoice})
	require.NoError(t, err)
	board2 := p.Scoreboard().(ActionlessScoreboard)
	assert.Empty(t, board2[Human].Queue.Pool)
	require.NotNil(t, board2[Human].Queue.Exit)
	assert.Equal(t, ItemOf(Kick), *board2[Human].Queue.Exit)

	// The first snapshot is unaffected by later play.
	assert.Equal(t, ItemOf(Kick), *human.Queue.Entrance)
	assert.Empty(t, human.Queue.Pool)
}

func TestPracticeMirrorOffersPoolMoves(t *testing.T) {
	p := NewPractice()
	toActionPhase(t, p, BatchCharacters{Ninja, Zombie}, BatchBoosters{BoosterNone, BoosterNone})
	_, err := p.Choose(BatchActions{Use(Kick), Use(Rampage)})
	require.NoError(t, err)
	_, err = p.Choose(BatchDequeues{DeclineChoice, DeclineChoice})
	require.NoError(t, err)
	_, err = p.Choose(BatchActions{Use(Nunchucks), Use(Muscle)})
	require.NoError(t, err)
	_, err = p.Choose(BatchDequeues{DeclineChoice, DeclineChoice})
	require.NoError(t, err)

	choices := p.Choices().(ActionChoices)
	assert.Equal(t, []Action{Use(NinjaSword), Mirror(Kick)}, choices[Human])

	out, err := p.Choose(BatchActions{Mirror(Kick), Use(Zap)})
	require.NoError(t, err)
	assert.Equal(t, ActionPointsDestroyed{Action: Mirror(Kick), Points: 1}, out.(ActionPhaseDone)[Human])
	board := p.Scoreboard().(DequeueingScoreboard)
	assert.Equal(t, MirrorItem, *board[Human].Queue.Entrance)
	assert.Equal(t, []ArsenalItem{ItemOf(Kick), ItemOf(Nunchucks)}, board[Human].Queue.Pool)
}

func TestPracticeSingleUseDestroyed(t *testing.T) {
	p := NewPractice()
	toActionPhase(t, p, BatchCharacters{Ninja, Samurai}, BatchBoosters{Shadow, BoosterNone})

	out, err := p.Choose(BatchActions{Use(ShadowFireball), Use(Smash)})
	require.NoError(t, err)
	assert.Equal(t, ActionPointsDestroyed{Action: Use(ShadowFireball), Destroyed: true}, out.(ActionPhaseDone)[Human])

	board := p.Scoreboard().(DequeueingScoreboard)
	assert.Nil(t, board[Human].Queue.Entrance)
	assert.NotContains(t, board[Human].Arsenal, ItemOf(ShadowFireball))
}

func TestPracticeGameOver(t *testing.T) {
	p := NewPractice()
	toActionPhase(t, p, BatchCharacters{Ninja, Zombie}, BatchBoosters{BoosterNone, BoosterNone})
	p.players[Human].Points = WinningPoints - 1

	out, err := p.Choose(BatchActions{Use(Kick), Use(Zap)})
	require.NoError(t, err)
	assert.IsType(t, GameOver{}, out)
	assert.Equal(t, NoChoices{}, p.Choices())

	final := p.Scoreboard().(FinishedScoreboard)
	assert.Equal(t, WinningPoints, final[Human].Points)

	_, err = p.Choose(BatchActions{Use(Nunchucks), Use(Muscle)})
	assert.Equal(t, ErrGameOver, err)
}

func TestPracticePointsOf(t *testing.T) {
	p := NewPractice()
	tests := []struct {
		name string
		in   [2]Action
		want [2]int
	}{
		{"strike beats trick", [2]Action{Use(Kick), Use(Zap)}, [2]int{1, 0}},
		{"trick loses to strike", [2]Action{Use(Zap), Use(Kick)}, [2]int{0, 1}},
		{"guard beats strike", [2]Action{Use(Nunchucks), Use(Kick)}, [2]int{1, 0}},
		{"trick beats guard", [2]Action{Use(NinjaSword), Use(Helmet)}, [2]int{1, 0}},
		{"same class", [2]Action{Use(Kick), Use(Rampage)}, [2]int{0, 0}},
		{"single use clash", [2]Action{Use(ShadowFireball), Use(Apocalypse)}, [2]int{1, 1}},
		{"mirror plays the copy", [2]Action{Mirror(Kick), Use(Zap)}, [2]int{1, 0}},
		{"concede", [2]Action{ConcedeAction, Use(Kick)}, [2]int{0, 1}},
		{"both concede", [2]Action{ConcedeAction, ConcedeAction}, [2]int{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.PointsOf(tt.in))
		})
	}
	assert.Equal(t, [2]int{1, 0}, MovePoints(p, Kick, Zap))
}

func TestVocabularyStrings(t *testing.T) {
	assert.Equal(t, "Samurai", Samurai.String())
	assert.Equal(t, "ZombieCorps", ZombieCorpsBooster.String())
	assert.Equal(t, "LightningFastKarateChop", LightningFastKarateChop.String())
	assert.Equal(t, "DrainAndExit(Mirror)", Drain(MirrorItem).String())
	assert.Equal(t, "Mirror(Kick)", Mirror(Kick).String())
	assert.Len(t, Moves(), 29)

	m, ok := BoosterNone.LogoMove()
	assert.False(t, ok)
	assert.Equal(t, Move(0), m)
	assert.Equal(t, Nose, Clown.LogoMove())
	assert.Equal(t, 3, Health(2))
	assert.Equal(t, 0, Health(7))
}
