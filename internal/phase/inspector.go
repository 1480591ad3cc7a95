package phase

import "github.com/hubastard/nzsc/internal/nzsc"

type InspectorMode uint8

const (
	NotInspecting InspectorMode = iota
	WaitingForUserToChooseMove
	Inspecting
)

// Inspector is the move inspector overlay state. Move is set only while Inspecting.
type Inspector struct {
	Mode InspectorMode
	Move nzsc.Move
}

func InspectingMove(m nzsc.Move) Inspector { return Inspector{Mode: Inspecting, Move: m} }

// Inspected returns the move under inspection, if any.
func (i Inspector) Inspected() (nzsc.Move, bool) {
	return i.Move, i.Mode == Inspecting
}

// InspectorOf reports the inspector state of p. Only the dequeue and action phases carry one.
func InspectorOf(p Phase) (Inspector, bool) {
	switch p := p.(type) {
	case ChooseFirstDequeue:
		return p.Inspector, true
	case ChooseAction:
		return p.Inspector, true
	case ChooseSubsequentDequeue:
		return p.Inspector, true
	}
	return Inspector{}, false
}

// WithInspector returns a copy of p with the inspector replaced.
func WithInspector(p Phase, s Inspector) (Phase, error) {
	switch p := p.(type) {
	case ChooseFirstDequeue:
		p.Inspector = s
		return p, nil
	case ChooseAction:
		p.Inspector = s
		return p, nil
	case ChooseSubsequentDequeue:
		p.Inspector = s
		return p, nil
	}
	return p, ErrNoInspector
}
