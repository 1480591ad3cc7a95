package opponent

import (
	"testing"

	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/nzsc/nzsctest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(v float64) Random { return RandomFunc(func() float64 { return v }) }

func engineWith(c nzsc.Choices, sb nzsc.Scoreboard) *nzsctest.Script {
	s := nzsctest.New(nzsctest.Step{Choices: c, Scoreboard: sb})
	s.Points = nzsc.NewPractice().PointsOf
	return s
}

func TestChooseClampsIndex(t *testing.T) {
	opts := []string{"a", "b", "c"}
	got, err := choose(fixed(1), opts)
	require.NoError(t, err)
	assert.Equal(t, "c", got)

	got, err = choose(fixed(0), opts)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	got, err = choose(fixed(0.5), opts)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = choose(fixed(0.5), []string(nil))
	assert.Equal(t, ErrNoChoices, err)
}

func TestChooseStaysInBounds(t *testing.T) {
	r := FromSeed([4]uint32{9, 8, 7, 6})
	opts := []int{0, 1, 2, 3, 4}
	for i := 0; i < 1000; i++ {
		got, err := choose(r, opts)
		require.NoError(t, err)
		assert.Contains(t, opts, got)
	}
}

func TestChooseCharacter(t *testing.T) {
	e := engineWith(nzsc.CharacterChoices{{nzsc.Ninja}, {nzsc.Zombie, nzsc.Clown}}, nil)
	got, err := New(Stupid, fixed(0.99)).ChooseCharacter(e)
	require.NoError(t, err)
	assert.Equal(t, nzsc.Clown, got)
}

func TestChooseBoosterSkipsNone(t *testing.T) {
	e := engineWith(nzsc.BoosterChoices{nil, {nzsc.BoosterNone, nzsc.Atlas}}, nil)

	got, err := New(Stupid, fixed(0)).ChooseBooster(e)
	require.NoError(t, err)
	assert.Equal(t, nzsc.BoosterNone, got)

	got, err = New(Easy, fixed(0)).ChooseBooster(e)
	require.NoError(t, err)
	assert.Equal(t, nzsc.Atlas, got)
}

func TestChooseDequeuePreference(t *testing.T) {
	drain := nzsc.Drain(nzsc.ItemOf(nzsc.Kick))
	tests := []struct {
		name    string
		options []nzsc.DequeueChoice
		want    nzsc.DequeueChoice
	}{
		{"drain first", []nzsc.DequeueChoice{nzsc.DeclineChoice, nzsc.JustExitChoice, drain}, drain},
		{"then just exit", []nzsc.DequeueChoice{nzsc.DeclineChoice, nzsc.JustExitChoice}, nzsc.JustExitChoice},
		{"else anything", []nzsc.DequeueChoice{nzsc.DeclineChoice}, nzsc.DeclineChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engineWith(nzsc.DequeueChoices{nil, tt.options}, nil)
			got, err := New(Medium, fixed(0)).ChooseDequeue(e)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChooseWrongKind(t *testing.T) {
	e := engineWith(nzsc.NoChoices{}, nil)
	_, err := New(Easy, fixed(0)).ChooseAction(e)
	assert.Error(t, err)
	_, err = New(Easy, fixed(0)).ChooseCharacter(e)
	assert.Error(t, err)
}

func TestMediumActionFilters(t *testing.T) {
	scoreboard := func(humanPoints int) nzsc.Scoreboard {
		var sb nzsc.ActionlessScoreboard
		sb[nzsc.Human].Points = humanPoints
		return sb
	}

	t.Run("guaranteed win", func(t *testing.T) {
		e := engineWith(nzsc.ActionChoices{
			{nzsc.Use(nzsc.Kick)},
			{nzsc.Use(nzsc.Zap), nzsc.Use(nzsc.Nunchucks), nzsc.Use(nzsc.Kick)},
		}, scoreboard(0))
		got, err := New(Medium, fixed(0)).ChooseAction(e)
		require.NoError(t, err)
		assert.Equal(t, nzsc.Use(nzsc.Nunchucks), got)
	})

	choices := nzsc.ActionChoices{
		{nzsc.Use(nzsc.Apocalypse)},
		{nzsc.Use(nzsc.ShadowFireball), nzsc.Use(nzsc.Rampage)},
	}
	t.Run("guaranteed point", func(t *testing.T) {
		got, err := New(Medium, fixed(0.99)).ChooseAction(engineWith(choices, scoreboard(1)))
		require.NoError(t, err)
		assert.Equal(t, nzsc.Use(nzsc.ShadowFireball), got)
	})
	t.Run("deny the final point", func(t *testing.T) {
		got, err := New(Medium, fixed(0)).ChooseAction(engineWith(choices, scoreboard(nzsc.WinningPoints-1)))
		require.NoError(t, err)
		assert.Equal(t, nzsc.Use(nzsc.Rampage), got)
	})
	t.Run("easy ignores filters", func(t *testing.T) {
		got, err := New(Easy, fixed(0.99)).ChooseAction(engineWith(choices, nil))
		require.NoError(t, err)
		assert.Equal(t, nzsc.Use(nzsc.Rampage), got)
	})
	t.Run("medium needs an actionless scoreboard", func(t *testing.T) {
		_, err := New(Medium, fixed(0)).ChooseAction(engineWith(choices, nil))
		assert.Error(t, err)
	})
}

func TestXorshiftDeterministic(t *testing.T) {
	a := FromSeed([4]uint32{1, 2, 3, 4})
	b := FromSeed([4]uint32{1, 2, 3, 4})
	assert.Equal(t, uint64(0xf28d2745c782453a), a.Uint64())
	assert.Equal(t, uint64(0xf28d2745c782453a), b.Uint64())
	assert.InDelta(t, 0.47932273463330294, a.Random(), 1e-12)
	assert.InDelta(t, 0.8947490274195441, a.Random(), 1e-12)

	c := FromSeed([4]uint32{4, 3, 2, 1})
	assert.NotEqual(t, uint64(0xf28d2745c782453a), c.Uint64())

	z := FromSeed([4]uint32{})
	for i := 0; i < 100; i++ {
		v := z.Random()
		assert.True(t, v >= 0 && v <= 1)
	}
	assert.NotEqual(t, uint64(0), z.Uint64())
}

func TestFromRandom(t *testing.T) {
	a := FromRandom(FromSeed([4]uint32{5, 5, 5, 5}))
	b := FromRandom(FromSeed([4]uint32{5, 5, 5, 5}))
	assert.Equal(t, a.Uint64(), b.Uint64())
}

func TestSeedFromDigits(t *testing.T) {
	assert.Equal(t, [4]uint32{42, 4294967253, 4112119562, 2752512}, SeedFromDigits("0042"))
	assert.Equal(t, SeedFromDigits("42"), SeedFromDigits("4x2"))
}

func TestDifficulty(t *testing.T) {
	d, err := ParseDifficulty("mEdIuM")
	require.NoError(t, err)
	assert.Equal(t, Medium, d)
	assert.Equal(t, "Medium", d.String())

	_, err = ParseDifficulty("impossible")
	assert.Error(t, err)

	b, err := Easy.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "easy", string(b))

	var got Difficulty
	require.NoError(t, got.UnmarshalText([]byte("STUPID")))
	assert.Equal(t, Stupid, got)
	assert.Error(t, got.UnmarshalText([]byte("")))

	_, err = Difficulty(9).MarshalText()
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoChoices))
}
