package nzsc

import "fmt"

type Character uint8

const (
	Ninja Character = iota
	Zombie
	Samurai
	Clown
)

var characterNames = [...]string{"Ninja", "Zombie", "Samurai", "Clown"}

func (c Character) String() string {
	if int(c) < len(characterNames) {
		return characterNames[c]
	}
	return fmt.Sprintf("Character(%d)", uint8(c))
}

// Characters lists every character in canonical order.
func Characters() []Character {
	return []Character{Ninja, Zombie, Samurai, Clown}
}

type Booster uint8

const (
	BoosterNone Booster = iota
	Shadow
	Speedy
	Regenerative
	ZombieCorpsBooster
	Atlas
	Strong
	Backwards
	Moustachio
)

var boosterNames = [...]string{
	"None", "Shadow", "Speedy", "Regenerative", "ZombieCorps",
	"Atlas", "Strong", "Backwards", "Moustachio",
}

func (b Booster) String() string {
	if int(b) < len(boosterNames) {
		return boosterNames[b]
	}
	return fmt.Sprintf("Booster(%d)", uint8(b))
}

func Boosters() []Booster {
	return []Booster{BoosterNone, Shadow, Speedy, Regenerative, ZombieCorpsBooster, Atlas, Strong, Backwards, Moustachio}
}

type Move uint8

const (
	Kick Move = iota
	NinjaSword
	Nunchucks
	ShadowFireball
	ShadowSlip
	RunInCircles
	LightningFastKarateChop
	Rampage
	Muscle
	Zap
	Regenerate
	Gravedigger
	ZombieCorps
	Apocalypse
	SamuraiSword
	Helmet
	Smash
	StrongSmash
	Lightning
	Earthquake
	Twist
	Bend
	JugglingKnives
	AcidSpray
	Nose
	BackwardsMoustachio
	NoseOfTheTaunted
	MustacheMash
	BigHairyDeal
	moveCount
)

var moveNames = [...]string{
	"Kick", "NinjaSword", "Nunchucks", "ShadowFireball", "ShadowSlip", "RunInCircles",
	"LightningFastKarateChop", "Rampage", "Muscle", "Zap", "Regenerate", "Gravedigger",
	"ZombieCorps", "Apocalypse", "SamuraiSword", "Helmet", "Smash", "StrongSmash",
	"Lightning", "Earthquake", "Twist", "Bend", "JugglingKnives", "AcidSpray", "Nose",
	"BackwardsMoustachio", "NoseOfTheTaunted", "MustacheMash", "BigHairyDeal",
}

func (m Move) String() string {
	if m < moveCount {
		return moveNames[m]
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}

func Moves() []Move {
	out := make([]Move, moveCount)
	for i := range out {
		out[i] = Move(i)
	}
	return out
}

// LogoMove is the move whose artwork represents c.
func (c Character) LogoMove() Move {
	switch c {
	case Zombie:
		return Rampage
	case Samurai:
		return Helmet
	case Clown:
		return Nose
	default:
		return Kick
	}
}

// LogoMove is the move whose artwork represents b. BoosterNone has none.
func (b Booster) LogoMove() (Move, bool) {
	switch b {
	case Shadow:
		return ShadowSlip, true
	case Speedy:
		return LightningFastKarateChop, true
	case Regenerative:
		return Regenerate, true
	case ZombieCorpsBooster:
		return ZombieCorps, true
	case Atlas:
		return Lightning, true
	case Strong:
		return Bend, true
	case Backwards:
		return BackwardsMoustachio, true
	case Moustachio:
		return BigHairyDeal, true
	}
	return 0, false
}

// ArsenalItem is either a move or the Mirror.
type ArsenalItem struct {
	Move   Move
	Mirror bool
}

var MirrorItem = ArsenalItem{Mirror: true}

func ItemOf(m Move) ArsenalItem { return ArsenalItem{Move: m} }

func (i ArsenalItem) String() string {
	if i.Mirror {
		return "Mirror"
	}
	return i.Move.String()
}

type DequeueKind uint8

const (
	DrainAndExit DequeueKind = iota
	JustExit
	Decline
)

// DequeueChoice is one dequeue option. Item is only meaningful for DrainAndExit.
type DequeueChoice struct {
	Kind DequeueKind
	Item ArsenalItem
}

func Drain(item ArsenalItem) DequeueChoice { return DequeueChoice{Kind: DrainAndExit, Item: item} }

var (
	JustExitChoice = DequeueChoice{Kind: JustExit}
	DeclineChoice  = DequeueChoice{Kind: Decline}
)

func (d DequeueChoice) String() string {
	switch d.Kind {
	case DrainAndExit:
		return "DrainAndExit(" + d.Item.String() + ")"
	case JustExit:
		return "JustExit"
	}
	return "Decline"
}

type ActionKind uint8

const (
	MoveAction ActionKind = iota
	MirrorAction
	Concede
)

// Action is one action-phase option. Move is meaningful for MoveAction and MirrorAction.
type Action struct {
	Kind ActionKind
	Move Move
}

func Use(m Move) Action    { return Action{Kind: MoveAction, Move: m} }
func Mirror(m Move) Action { return Action{Kind: MirrorAction, Move: m} }

var ConcedeAction = Action{Kind: Concede}

// EffectiveMove is the move an action plays, if any.
func (a Action) EffectiveMove() (Move, bool) {
	return a.Move, a.Kind != Concede
}

// Item is the arsenal item spent by the action.
func (a Action) Item() (ArsenalItem, bool) {
	switch a.Kind {
	case MoveAction:
		return ItemOf(a.Move), true
	case MirrorAction:
		return MirrorItem, true
	}
	return ArsenalItem{}, false
}

func (a Action) String() string {
	switch a.Kind {
	case MoveAction:
		return a.Move.String()
	case MirrorAction:
		return "Mirror(" + a.Move.String() + ")"
	}
	return "Concede"
}
