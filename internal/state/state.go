// Package state is the top-level screen state machine. It never reads the clock:
// callers restart their animation clock when Apply reports Entered.
package state

import (
	"time"

	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/opponent"
	"github.com/hubastard/nzsc/internal/phase"
	"github.com/pkg/errors"
)

var (
	ErrUnexpectedAction = errors.New("action not accepted in this state")
	ErrOutcomeMismatch  = errors.New("outcome does not match the phase")
)

// MaxSeedDigits bounds the custom seed code.
const MaxSeedDigits = 8

type State interface {
	Name() string
	isState()
}

type Home struct{}

type Settings struct{}

type CustomSeed struct {
	Digits string
}

type SinglePlayer struct {
	Engine   nzsc.Engine
	Opponent *opponent.Opponent
	Phase    phase.Phase
}

func (Home) isState()         {}
func (Settings) isState()     {}
func (CustomSeed) isState()   {}
func (SinglePlayer) isState() {}

func (Home) Name() string         { return "home" }
func (Settings) Name() string     { return "settings" }
func (CustomSeed) Name() string   { return "custom_seed" }
func (SinglePlayer) Name() string { return "single_player" }

// Options wires the machine's collaborators. Nil funcs get defaults.
type Options struct {
	Difficulty opponent.Difficulty
	// Seed, when set, seeds every new game instead of the clock.
	Seed *[4]uint32
	// NewEngine starts a fresh rules engine for each game.
	NewEngine func() nzsc.Engine
	// OnDifficulty is called after the difficulty changes on the settings screen.
	OnDifficulty func(opponent.Difficulty)
}

type Machine struct {
	state        State
	difficulty   opponent.Difficulty
	seed         *[4]uint32
	newEngine    func() nzsc.Engine
	onDifficulty func(opponent.Difficulty)
}

func New(opts Options) *Machine {
	m := &Machine{
		state:        Home{},
		difficulty:   opts.Difficulty,
		seed:         opts.Seed,
		newEngine:    opts.NewEngine,
		onDifficulty: opts.OnDifficulty,
	}
	if m.newEngine == nil {
		m.newEngine = func() nzsc.Engine { return nzsc.NewPractice() }
	}
	return m
}

func (m *Machine) State() State                    { return m.state }
func (m *Machine) Difficulty() opponent.Difficulty { return m.difficulty }

// Change is what an accepted action did to the machine.
type Change uint8

const (
	Unchanged Change = iota
	// Updated replaced the state in place, as the move inspector does. The current
	// phase's timeline keeps running.
	Updated
	// Entered moved to another screen or phase.
	Entered
)

func (c Change) String() string {
	switch c {
	case Updated:
		return "updated"
	case Entered:
		return "entered"
	}
	return "unchanged"
}

// Apply applies a to the current state. On error nothing changes.
func (m *Machine) Apply(a click.Action) (Change, error) {
	if _, ok := a.(click.StopPropagation); ok {
		return Unchanged, nil
	}

	next, err := m.next(a)
	if err != nil {
		return Unchanged, err
	}
	if next == nil {
		return Unchanged, nil
	}
	_, was := m.state.(SinglePlayer)
	m.state = next
	if _, is := next.(SinglePlayer); was && is && inspects(a) {
		return Updated, nil
	}
	return Entered, nil
}

// Handle is Apply reporting only whether the state changed.
func (m *Machine) Handle(a click.Action) (bool, error) {
	c, err := m.Apply(a)
	return c != Unchanged, err
}

func inspects(a click.Action) bool {
	switch a.(type) {
	case click.WaitForUserToChooseMoveToInspect, click.InspectMove, click.StopInspectingMove:
		return true
	}
	return false
}

// next returns the state after a, or nil when a is accepted but changes nothing.
func (m *Machine) next(a click.Action) (State, error) {
	switch s := m.state.(type) {
	case Home:
		switch a.(type) {
		case click.StartSinglePlayerGame:
			return m.startGame(m.random())
		case click.NavigateToSettingsScreen:
			return Settings{}, nil
		}

	case Settings:
		switch a := a.(type) {
		case click.NavigateHome:
			return Home{}, nil
		case click.NavigateToCustomSeedScreen:
			return CustomSeed{}, nil
		case click.SetComputerDifficulty:
			m.difficulty = a.Difficulty
			if m.onDifficulty != nil {
				m.onDifficulty(a.Difficulty)
			}
			return Settings{}, nil
		}

	case CustomSeed:
		switch a := a.(type) {
		case click.NavigateHome:
			return Home{}, nil
		case click.EnterSeedDigit:
			if a.Digit > 9 || len(s.Digits) >= MaxSeedDigits {
				return nil, nil
			}
			return CustomSeed{Digits: s.Digits + string(rune('0'+a.Digit))}, nil
		case click.EraseSeedDigit:
			if s.Digits == "" {
				return nil, nil
			}
			return CustomSeed{Digits: s.Digits[:len(s.Digits)-1]}, nil
		case click.StartCustomSeedGame:
			return m.startGame(opponent.FromSeed(opponent.SeedFromDigits(s.Digits)))
		}

	case SinglePlayer:
		if _, ok := a.(click.NavigateHome); ok {
			return Home{}, nil
		}
		p, err := s.handle(a)
		if err != nil {
			return nil, err
		}
		s.Phase = phase.Freeze(p)
		return s, nil
	}

	return nil, errors.Wrapf(ErrUnexpectedAction, "%s in %s", click.Name(a), m.state.Name())
}

func (m *Machine) random() opponent.Random {
	if m.seed != nil {
		return opponent.FromSeed(*m.seed)
	}
	now := uint64(time.Now().UnixNano())
	return opponent.NewXorshift(now, now>>17|now<<47)
}

func (m *Machine) startGame(r opponent.Random) (State, error) {
	e := m.newEngine()
	choices, ok := e.Choices().(nzsc.CharacterChoices)
	if !ok {
		return nil, errors.Errorf("new game offers %T, expected character choices", e.Choices())
	}
	return SinglePlayer{
		Engine:   e,
		Opponent: opponent.New(m.difficulty, r),
		Phase:    phase.Freeze(phase.ChooseCharacter{Available: choices[nzsc.Human]}),
	}, nil
}
