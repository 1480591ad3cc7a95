package nzsc

import "slices"

// Queue is the conveyor an arsenal item travels through between uses.
type Queue struct {
	Entrance *ArsenalItem
	Pool     []ArsenalItem
	Exit     *ArsenalItem
}

func (q Queue) Clone() Queue {
	return Queue{Entrance: cloneItem(q.Entrance), Pool: slices.Clone(q.Pool), Exit: cloneItem(q.Exit)}
}

// Player is the board state shared by every scoreboard snapshot.
type Player struct {
	Character Character
	Booster   Booster
	Points    int
	Queue     Queue
	Arsenal   []ArsenalItem
}

// Board implements HasQueueAndArsenal.
func (p Player) Board() Player { return p }

func (p Player) Clone() Player {
	p.Queue = p.Queue.Clone()
	p.Arsenal = slices.Clone(p.Arsenal)
	return p
}

// Health is what remains of a player's five hearts given the opponent's points.
func Health(opponentPoints int) int {
	return max(0, WinningPoints-opponentPoints)
}

type DequeueingPlayer struct{ Player }
type ActionlessPlayer struct{ Player }
type FinishedPlayer struct{ Player }

// HasQueueAndArsenal is satisfied by every player snapshot.
type HasQueueAndArsenal interface {
	Board() Player
}

func cloneItem(i *ArsenalItem) *ArsenalItem {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

func (p DequeueingPlayer) Clone() DequeueingPlayer { return DequeueingPlayer{p.Player.Clone()} }
func (p ActionlessPlayer) Clone() ActionlessPlayer { return ActionlessPlayer{p.Player.Clone()} }
func (p FinishedPlayer) Clone() FinishedPlayer     { return FinishedPlayer{p.Player.Clone()} }

// ClonePair deep-copies both slots of a pair.
func ClonePair[T interface{ Clone() T }](in [2]T) [2]T {
	return [2]T{in[0].Clone(), in[1].Clone()}
}

// CloneSlices copies both slots of a per-player option list.
func CloneSlices[T any](in [2][]T) [2][]T {
	return [2][]T{slices.Clone(in[0]), slices.Clone(in[1])}
}
