package phase

import (
	"testing"
	"time"

	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurations(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, Duration(ChooseCharacter{}))
	assert.Equal(t, 2*time.Second, Duration(RechooseCharacter{}))
	assert.Equal(t, 2500*time.Millisecond, Duration(ChooseBooster{}))
	assert.Equal(t, 2500*time.Millisecond, Duration(ChooseFirstDequeue{}))
	assert.Equal(t, 2*time.Second, Duration(ChooseAction{}))
	assert.Equal(t, 2*time.Second, Duration(ChooseSubsequentDequeue{}))
	assert.Equal(t, 2500*time.Millisecond, Duration(GameOver{}))

	d := Durations{Action: 4 * time.Second}.WithDefaults()
	assert.Equal(t, 4*time.Second, d.Action)
	assert.Equal(t, DefaultDurations.GameOver, d.GameOver)
}

func TestCompletionFactor(t *testing.T) {
	p := ChooseAction{}
	assert.Equal(t, 0.0, CompletionFactor(p, 0))
	assert.Equal(t, 0.0, CompletionFactor(p, -time.Second))
	assert.InDelta(t, 0.25, CompletionFactor(p, 500*time.Millisecond), 1e-12)
	assert.Equal(t, 1.0, CompletionFactor(p, 2*time.Second))
	assert.Equal(t, 1.0, CompletionFactor(p, time.Hour))
}

func TestWithInspector(t *testing.T) {
	var p Phase = ChooseAction{}
	q, err := WithInspector(p, InspectingMove(nzsc.Zap))
	require.NoError(t, err)

	s, ok := InspectorOf(q)
	require.True(t, ok)
	m, inspecting := s.Inspected()
	assert.True(t, inspecting)
	assert.Equal(t, nzsc.Zap, m)

	old, _ := InspectorOf(p)
	assert.Equal(t, NotInspecting, old.Mode)

	_, err = WithInspector(GameOver{}, Inspector{})
	assert.ErrorIs(t, err, ErrNoInspector)
	_, ok = InspectorOf(ChooseBooster{})
	assert.False(t, ok)
}

func TestFreezeCopies(t *testing.T) {
	avail := []nzsc.Character{nzsc.Ninja, nzsc.Clown}
	p := Freeze(ChooseCharacter{Available: avail}).(ChooseCharacter)
	avail[0] = nzsc.Samurai
	assert.Equal(t, nzsc.Ninja, p.Available[0])

	exit := nzsc.ItemOf(nzsc.Kick)
	var board [2]nzsc.DequeueingPlayer
	board[0].Queue.Exit = &exit
	board[0].Arsenal = []nzsc.ArsenalItem{nzsc.MirrorItem}
	fd := Freeze(ChooseFirstDequeue{Scoreboard: board}).(ChooseFirstDequeue)
	exit.Move = nzsc.Zap
	board[0].Arsenal[0] = nzsc.ItemOf(nzsc.Nose)
	assert.Equal(t, nzsc.Kick, fd.Scoreboard[0].Queue.Exit.Move)
	assert.Equal(t, nzsc.MirrorItem, fd.Scoreboard[0].Arsenal[0])
}
