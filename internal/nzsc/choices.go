package nzsc

// Slot indices into every [2] pair.
const (
	Human    = 0
	Computer = 1
)

// Choices are the legal options for each player in the current phase.
type Choices interface{ isChoices() }

type (
	CharacterChoices [2][]Character
	BoosterChoices   [2][]Booster
	DequeueChoices   [2][]DequeueChoice
	ActionChoices    [2][]Action
	NoChoices        struct{}
)

func (CharacterChoices) isChoices() {}
func (BoosterChoices) isChoices()   {}
func (DequeueChoices) isChoices()   {}
func (ActionChoices) isChoices()    {}
func (NoChoices) isChoices()        {}

// Scoreboard is the engine's view of both players for the current phase.
type Scoreboard interface{ isScoreboard() }

type BoosterScoreboard struct {
	Characters [2]Character
	Points     [2]int
}

type (
	CharacterScoreboard  struct{ Points [2]int }
	DequeueingScoreboard [2]DequeueingPlayer
	ActionlessScoreboard [2]ActionlessPlayer
	FinishedScoreboard   [2]FinishedPlayer
)

func (CharacterScoreboard) isScoreboard()  {}
func (BoosterScoreboard) isScoreboard()    {}
func (DequeueingScoreboard) isScoreboard() {}
func (ActionlessScoreboard) isScoreboard() {}
func (FinishedScoreboard) isScoreboard()   {}

// BatchChoice is one simultaneous submission for both slots.
type BatchChoice interface {
	Kind() string
	isBatchChoice()
}

type (
	BatchCharacters [2]Character
	BatchBoosters   [2]Booster
	BatchDequeues   [2]DequeueChoice
	BatchActions    [2]Action
)

func (BatchCharacters) Kind() string { return "characters" }
func (BatchBoosters) Kind() string   { return "boosters" }
func (BatchDequeues) Kind() string   { return "dequeues" }
func (BatchActions) Kind() string    { return "actions" }

func (BatchCharacters) isBatchChoice() {}
func (BatchBoosters) isBatchChoice()   {}
func (BatchDequeues) isBatchChoice()   {}
func (BatchActions) isBatchChoice()    {}

// CharacterHeadstart pairs a chosen character with the points it earned up front.
type CharacterHeadstart struct {
	Character Character
	Headstart int
}

// ActionPointsDestroyed records what a player did, what it scored and whether the item was spent for good.
type ActionPointsDestroyed struct {
	Action    Action
	Points    int
	Destroyed bool
}

// Outcome is the engine's verdict on a submitted batch.
type Outcome interface{ isOutcome() }

type (
	CharacterPhaseDone     [2]CharacterHeadstart
	CharacterPhaseRechoose [2]Character
	BoosterPhaseDone       [2]DequeueingPlayer
	DequeuePhaseDone       [2]DequeueChoice
	ActionPhaseDone        [2]ActionPointsDestroyed
	GameOver               [2]ActionPointsDestroyed
)

func (CharacterPhaseDone) isOutcome()     {}
func (CharacterPhaseRechoose) isOutcome() {}
func (BoosterPhaseDone) isOutcome()       {}
func (DequeuePhaseDone) isOutcome()       {}
func (ActionPhaseDone) isOutcome()        {}
func (GameOver) isOutcome()               {}
