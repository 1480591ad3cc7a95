package nzsc

import (
	"slices"

	"github.com/pkg/errors"
)

type stage uint8

const (
	stageCharacters stage = iota
	stageBoosters
	stageDequeue
	stageAction
	stageOver
)

var stageNames = [...]string{"characters", "boosters", "dequeue", "action", "over"}

func (s stage) String() string { return stageNames[s] }

// MutualPicksBeforeRetire is how many mutual picks of one character it takes to retire it.
// The last two characters are never retired.
const MutualPicksBeforeRetire = 3

type class uint8

const (
	strike class = iota
	guard
	trick
)

type moveInfo struct {
	class     class
	singleUse bool
}

var moveTable = [moveCount]moveInfo{
	Kick:                    {class: strike},
	Nunchucks:               {class: guard},
	NinjaSword:              {class: trick},
	Rampage:                 {class: strike},
	Muscle:                  {class: guard},
	Zap:                     {class: trick},
	Smash:                   {class: strike},
	Helmet:                  {class: guard},
	SamuraiSword:            {class: trick},
	JugglingKnives:          {class: strike},
	Nose:                    {class: guard},
	AcidSpray:               {class: trick},
	ShadowFireball:          {class: strike, singleUse: true},
	ShadowSlip:              {class: trick},
	LightningFastKarateChop: {class: strike, singleUse: true},
	RunInCircles:            {class: guard},
	Regenerate:              {class: guard},
	Gravedigger:             {class: trick, singleUse: true},
	ZombieCorps:             {class: guard},
	Apocalypse:              {class: strike, singleUse: true},
	Lightning:               {class: trick},
	Earthquake:              {class: strike, singleUse: true},
	Twist:                   {class: guard},
	Bend:                    {class: trick, singleUse: true},
	BackwardsMoustachio:     {class: trick},
	NoseOfTheTaunted:        {class: guard, singleUse: true},
	MustacheMash:            {class: strike},
	BigHairyDeal:            {class: guard, singleUse: true},
	StrongSmash:             {class: strike},
}

var characterMoves = map[Character][]Move{
	Ninja:   {Kick, Nunchucks, NinjaSword},
	Zombie:  {Rampage, Muscle, Zap},
	Samurai: {Smash, Helmet, SamuraiSword},
	Clown:   {JugglingKnives, Nose, AcidSpray},
}

var characterBoosters = map[Character][2]Booster{
	Ninja:   {Shadow, Speedy},
	Zombie:  {Regenerative, ZombieCorpsBooster},
	Samurai: {Atlas, Strong},
	Clown:   {Backwards, Moustachio},
}

var boosterMoves = map[Booster][]Move{
	Shadow:             {ShadowFireball, ShadowSlip},
	Speedy:             {LightningFastKarateChop, RunInCircles},
	Regenerative:       {Regenerate, Gravedigger},
	ZombieCorpsBooster: {ZombieCorps, Apocalypse},
	Atlas:              {Lightning, Earthquake},
	Strong:             {Twist, Bend},
	Backwards:          {BackwardsMoustachio, NoseOfTheTaunted},
	Moustachio:         {MustacheMash, BigHairyDeal},
}

// SingleUse reports whether playing m destroys it.
func SingleUse(m Move) bool { return m < moveCount && moveTable[m].singleUse }

// beats reports whether a earns a headstart against b: each character beats the next in line.
func beats(a, b Character) bool {
	return (a+1)%4 == b
}

// Practice is a compact rule set for offline play. It is deterministic and keeps
// the whole game in memory.
var _ Engine = (*Practice)(nil)

type Practice struct {
	stage     stage
	available []Character
	mutual    map[Character]int
	chosen    [2]Character
	points    [2]int
	players   [2]Player
}

func NewPractice() *Practice {
	return &Practice{
		available: Characters(),
		mutual:    map[Character]int{},
	}
}

func (p *Practice) Choices() Choices {
	switch p.stage {
	case stageCharacters:
		return CharacterChoices{slices.Clone(p.available), slices.Clone(p.available)}
	case stageBoosters:
		return BoosterChoices{boostersFor(p.chosen[0]), boostersFor(p.chosen[1])}
	case stageDequeue:
		return DequeueChoices{dequeuesFor(p.players[0]), dequeuesFor(p.players[1])}
	case stageAction:
		return ActionChoices{actionsFor(p.players[0]), actionsFor(p.players[1])}
	}
	return NoChoices{}
}

func (p *Practice) Scoreboard() Scoreboard {
	switch p.stage {
	case stageCharacters:
		return CharacterScoreboard{Points: p.points}
	case stageBoosters:
		return BoosterScoreboard{Characters: p.chosen, Points: p.points}
	case stageDequeue:
		return DequeueingScoreboard{{p.players[0].Clone()}, {p.players[1].Clone()}}
	case stageAction:
		return ActionlessScoreboard{{p.players[0].Clone()}, {p.players[1].Clone()}}
	}
	return FinishedScoreboard{{p.players[0].Clone()}, {p.players[1].Clone()}}
}

func (p *Practice) Choose(batch BatchChoice) (Outcome, error) {
	if p.stage == stageOver {
		return nil, ErrGameOver
	}
	switch b := batch.(type) {
	case BatchCharacters:
		if p.stage == stageCharacters {
			return p.chooseCharacters(b)
		}
	case BatchBoosters:
		if p.stage == stageBoosters {
			return p.chooseBoosters(b)
		}
	case BatchDequeues:
		if p.stage == stageDequeue {
			return p.chooseDequeues(b)
		}
	case BatchActions:
		if p.stage == stageAction {
			return p.chooseActions(b)
		}
	}
	return nil, errors.Wrapf(ErrWrongPhase, "%s during %s", batch.Kind(), p.stage)
}

func (p *Practice) PointsOf(actions [2]Action) [2]int {
	m0, ok0 := actions[0].EffectiveMove()
	m1, ok1 := actions[1].EffectiveMove()
	switch {
	case !ok0 && !ok1:
		return [2]int{1, 1}
	case !ok0:
		return [2]int{0, 1}
	case !ok1:
		return [2]int{1, 0}
	}
	a, b := moveTable[m0], moveTable[m1]
	switch {
	case a.class == b.class && a.singleUse && b.singleUse:
		return [2]int{1, 1}
	case a.class == b.class:
		return [2]int{0, 0}
	case (a.class+2)%3 == b.class:
		return [2]int{1, 0}
	}
	return [2]int{0, 1}
}

func (p *Practice) chooseCharacters(b BatchCharacters) (Outcome, error) {
	for i, c := range b {
		if !slices.Contains(p.available, c) {
			return nil, errors.Wrapf(ErrIllegalChoice, "player %d: %s", i, c)
		}
	}
	if b[0] == b[1] {
		p.mutual[b[0]]++
		if p.mutual[b[0]] >= MutualPicksBeforeRetire && len(p.available) > 2 {
			p.available = slices.DeleteFunc(p.available, func(c Character) bool { return c == b[0] })
		}
		return CharacterPhaseRechoose(b), nil
	}

	var out CharacterPhaseDone
	for i := range b {
		head := 0
		if beats(b[i], b[1-i]) {
			head = 1
		}
		out[i] = CharacterHeadstart{Character: b[i], Headstart: head}
		p.points[i] = head
	}
	p.chosen = b
	p.stage = stageBoosters
	return out, nil
}

func (p *Practice) chooseBoosters(b BatchBoosters) (Outcome, error) {
	for i, booster := range b {
		if !slices.Contains(boostersFor(p.chosen[i]), booster) {
			return nil, errors.Wrapf(ErrIllegalChoice, "player %d: %s", i, booster)
		}
	}
	var out BoosterPhaseDone
	for i := range b {
		p.players[i] = Player{
			Character: p.chosen[i],
			Booster:   b[i],
			Points:    p.points[i],
			Arsenal:   arsenalFor(p.chosen[i], b[i]),
		}
		out[i] = DequeueingPlayer{p.players[i].Clone()}
	}
	p.stage = stageDequeue
	return out, nil
}

func (p *Practice) chooseDequeues(b BatchDequeues) (Outcome, error) {
	for i, d := range b {
		if !slices.Contains(dequeuesFor(p.players[i]), d) {
			return nil, errors.Wrapf(ErrIllegalChoice, "player %d: %s", i, d)
		}
	}
	for i, d := range b {
		applyDequeue(&p.players[i], d)
	}
	p.stage = stageAction
	return DequeuePhaseDone(b), nil
}

func (p *Practice) chooseActions(b BatchActions) (Outcome, error) {
	for i, a := range b {
		if !slices.Contains(actionsFor(p.players[i]), a) {
			return nil, errors.Wrapf(ErrIllegalChoice, "player %d: %s", i, a)
		}
	}
	pts := p.PointsOf(b)
	var result [2]ActionPointsDestroyed
	over := false
	for i, a := range b {
		destroyed := applyAction(&p.players[i], a)
		p.players[i].Points += pts[i]
		p.points[i] = p.players[i].Points
		result[i] = ActionPointsDestroyed{Action: a, Points: pts[i], Destroyed: destroyed}
		over = over || p.points[i] >= WinningPoints
	}
	if over {
		p.stage = stageOver
		return GameOver(result), nil
	}
	p.stage = stageDequeue
	return ActionPhaseDone(result), nil
}

// ------ Rules ------

func boostersFor(c Character) []Booster {
	pair := characterBoosters[c]
	return []Booster{pair[0], pair[1], BoosterNone}
}

func arsenalFor(c Character, b Booster) []ArsenalItem {
	var out []ArsenalItem
	for _, m := range characterMoves[c] {
		out = append(out, ItemOf(m))
	}
	for _, m := range boosterMoves[b] {
		out = append(out, ItemOf(m))
	}
	return append(out, MirrorItem)
}

func dequeuesFor(p Player) []DequeueChoice {
	out := make([]DequeueChoice, 0, len(p.Queue.Pool)+2)
	for _, item := range p.Queue.Pool {
		if d := Drain(item); !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	if p.Queue.Exit != nil {
		out = append(out, JustExitChoice)
	}
	return append(out, DeclineChoice)
}

func actionsFor(p Player) []Action {
	var out []Action
	mirror := false
	for _, item := range p.Arsenal {
		if item.Mirror {
			mirror = true
			continue
		}
		out = append(out, Use(item.Move))
	}
	if mirror {
		for _, item := range p.Queue.Pool {
			if !item.Mirror {
				out = append(out, Mirror(item.Move))
			}
		}
	}
	if len(out) == 0 {
		out = append(out, ConcedeAction)
	}
	return out
}

func applyDequeue(p *Player, d DequeueChoice) {
	switch d.Kind {
	case DrainAndExit:
		i := slices.Index(p.Queue.Pool, d.Item)
		p.Queue.Pool = slices.Delete(slices.Clone(p.Queue.Pool), i, i+1)
		if p.Queue.Exit != nil {
			p.Arsenal = append(p.Arsenal, *p.Queue.Exit)
		}
		item := d.Item
		p.Queue.Exit = &item
	case JustExit:
		p.Arsenal = append(p.Arsenal, *p.Queue.Exit)
		p.Queue.Exit = nil
	}
}

// applyAction spends the action's item and reports whether it was destroyed.
func applyAction(p *Player, a Action) bool {
	item, ok := a.Item()
	if !ok {
		return false
	}
	i := slices.Index(p.Arsenal, item)
	p.Arsenal = slices.Delete(slices.Clone(p.Arsenal), i, i+1)
	if p.Queue.Entrance != nil {
		p.Queue.Pool = append(slices.Clone(p.Queue.Pool), *p.Queue.Entrance)
		p.Queue.Entrance = nil
	}
	if a.Kind == MoveAction && SingleUse(a.Move) {
		return true
	}
	p.Queue.Entrance = &item
	return false
}
