package render

import (
	"github.com/hubastard/nzsc/engine/anim"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/phase"
)

// actionVisit is the trip of a played item: from its cell on the previous board to the
// action focus, then on to its cell on the new board. to is nil when the item was destroyed.
type actionVisit struct {
	side   Side
	action nzsc.Action
	from   Cell
	to     *Cell
}

// visitOf locates a's item on both boards. A concession has no item and no visit.
func visitOf(s Side, prev, next nzsc.HasQueueAndArsenal, a nzsc.Action) (actionVisit, bool, error) {
	item, ok := a.Item()
	if !ok {
		return actionVisit{}, false, nil
	}
	from, ok := GridOf(prev).Locate(prev, item)
	if !ok {
		return actionVisit{}, false, inconsistent("%s played %s which was not on the board", a, item)
	}
	v := actionVisit{side: s, action: a, from: from}
	if to, ok := GridOf(next).Locate(next, item); ok {
		v.to = &to
	}
	return v, true, nil
}

func (v actionVisit) draw(c scene.Circle, alpha float64) scene.List {
	color := MoveColor(v.action.Move)
	color = color.WithAlpha(uint8(float64(color.A) * alpha))
	img := imageIn(c)
	if v.action.Kind != nzsc.MirrorAction {
		return scene.List{
			scene.FilledCircle{Color: color, Shape: c},
			scene.Image{Key: MoveImage(v.action.Move), Alpha: alpha, Shape: img},
		}
	}
	cx, cy := img.Center()
	return scene.List{
		scene.FilledCircle{Color: color, Shape: c},
		scene.Image{Key: MirrorImage, Alpha: alpha, Shape: img},
		scene.Image{Key: MoveImage(v.action.Move), Alpha: alpha, Shape: scene.CenteredRect(cx, cy, img.W*0.6, img.H*0.6)},
	}
}

func (v actionVisit) entering(l anim.Lerper) scene.List {
	return v.draw(scene.LerpCircleShape(l, v.side.Circle(v.from), v.side.actionFocus()), 1)
}

func (v actionVisit) stationary() scene.List {
	return v.draw(v.side.actionFocus(), 1)
}

func (v actionVisit) fading(l anim.Lerper) scene.List {
	return v.draw(v.side.actionFocus(), l.SubLerper(0, portionFading).Clamp().Lerp(1, 0))
}

// exiting returns the item to its new cell, or swells it away when it has none.
func (v actionVisit) exiting(l anim.Lerper) scene.List {
	if v.to != nil {
		return v.draw(scene.LerpCircleShape(l, v.side.actionFocus(), v.side.Circle(*v.to)), 1)
	}
	return v.draw(scene.LerpCircleShape(l, v.side.actionFocus(), v.side.expandedActionFocus()), l.Lerp(1, 0))
}

// outcome is what the dequeue and game over phases animate: both played actions scoring.
type outcome struct {
	prev      [2]nzsc.ActionlessPlayer
	available [2][]nzsc.Action
	played    [2]nzsc.ActionPointsDestroyed
	visits    [2]*actionVisit
}

func newOutcome(prev [2]nzsc.ActionlessPlayer, available [2][]nzsc.Action, played [2]nzsc.ActionPointsDestroyed, next [2]nzsc.HasQueueAndArsenal) (outcome, error) {
	o := outcome{prev: prev, available: available, played: played}
	for k := range played {
		v, ok, err := visitOf(sideOf(k), o.prev[k], next[k], played[k].Action)
		if err != nil {
			return outcome{}, err
		}
		if ok {
			o.visits[k] = &v
		}
	}
	return o, nil
}

// loses reports whether slot k's opponent scored.
func (o outcome) loses(k int) bool { return o.played[1-k].Points > 0 }

// prevHealth is slot k's hearts before the exchange.
func (o outcome) prevHealth(k int) int { return nzsc.Health(o.prev[1-k].Points) }

func (o outcome) boards(hideHuman, hideComputer bool) scene.List {
	var h [2]hidden
	if hideHuman {
		h[nzsc.Human] = withoutUsed(o.played[nzsc.Human].Action)
	}
	if hideComputer {
		h[nzsc.Computer] = withoutUsed(o.played[nzsc.Computer].Action)
	}
	var out scene.List
	for k, p := range o.prev {
		out = append(out, actionBoard(sideOf(k), p, o.available[k], false, h[k])...)
	}
	return out
}

func (o outcome) visit(k int, draw func(actionVisit) scene.List) scene.List {
	if o.visits[k] == nil {
		return nil
	}
	return draw(*o.visits[k])
}

// animate renders every beat before rest. current is the health each side ends with.
func (o outcome) animate(b beat, l anim.Lerper, current [2]int) scene.List {
	out := scene.List{background()}
	switch b {
	case humanEnters:
		out = scene.Concat(out,
			healthDisplay(Left, o.prevHealth(nzsc.Human)), healthDisplay(Right, o.prevHealth(nzsc.Computer)),
			o.boards(true, false), scene.List{overlay()},
			o.visit(nzsc.Human, func(v actionVisit) scene.List { return v.entering(l) }))
	case computerEnters:
		out = scene.Concat(out,
			healthDisplay(Left, o.prevHealth(nzsc.Human)), healthDisplay(Right, o.prevHealth(nzsc.Computer)),
			o.boards(true, true), scene.List{overlay()},
			o.visit(nzsc.Human, actionVisit.stationary),
			o.visit(nzsc.Computer, func(v actionVisit) scene.List { return v.entering(l) }))
	case hold:
		out = append(out, o.boards(true, true)...)
		var popping scene.List
		for k := range o.prev {
			if o.loses(k) {
				popping = append(popping, poppingHealthDisplay(sideOf(k), o.prevHealth(k), l)...)
			} else {
				out = append(out, healthDisplay(sideOf(k), o.prevHealth(k))...)
			}
		}
		out = append(out, overlay())
		out = append(out, popping...)
		for k := range o.prev {
			if o.loses(k) {
				out = append(out, o.visit(k, func(v actionVisit) scene.List { return v.fading(l) })...)
			} else {
				out = append(out, o.visit(k, actionVisit.stationary)...)
			}
		}
	default:
		out = scene.Concat(out,
			healthDisplay(Left, current[nzsc.Human]), healthDisplay(Right, current[nzsc.Computer]),
			o.boards(true, true), scene.List{overlay()})
		for k := range o.prev {
			if !o.loses(k) {
				out = append(out, o.visit(k, func(v actionVisit) scene.List { return v.exiting(l) })...)
			}
		}
	}
	return out
}

func healthOf(board [2]nzsc.HasQueueAndArsenal) [2]int {
	return [2]int{nzsc.Health(board[nzsc.Computer].Board().Points), nzsc.Health(board[nzsc.Human].Board().Points)}
}

func (r Renderer) chooseSubsequentDequeue(p phase.ChooseSubsequentDequeue, f float64) (scene.List, error) {
	b, l, err := subsequentDequeueTimeline.Eval(f)
	if err != nil {
		return nil, err
	}
	if b == rest {
		return r.dequeueRest(p.Scoreboard, p.AvailableDequeues, p.Inspector, anim.FromFactor(1)), nil
	}
	next := [2]nzsc.HasQueueAndArsenal{p.Scoreboard[0], p.Scoreboard[1]}
	o, err := newOutcome(p.PrevScoreboard, p.PrevAvailableActions, p.PrevOutcome, next)
	if err != nil {
		return nil, err
	}
	return o.animate(b, l, healthOf(next)), nil
}

func gameOver(p phase.GameOver, f float64) (scene.List, error) {
	b, l, err := gameOverTimeline.Eval(f)
	if err != nil {
		return nil, err
	}
	next := [2]nzsc.HasQueueAndArsenal{p.Scoreboard[0], p.Scoreboard[1]}
	health := healthOf(next)
	if b != rest {
		o, err := newOutcome(p.PrevScoreboard, p.PrevAvailableActions, p.PrevOutcome, next)
		if err != nil {
			return nil, err
		}
		return o.animate(b, l, health), nil
	}

	// The loser's empty trapezoid sits under the overlay; the winner's hearts sit above it.
	out := scene.List{background()}
	for k := range next {
		if health[k] == 0 {
			out = append(out, healthDisplay(sideOf(k), 0)...)
		}
	}
	for k, pl := range next {
		out = append(out, actionBoard(sideOf(k), pl, nil, false, hidden{})...)
	}
	out = append(out, overlay())
	for k := range next {
		if health[k] > 0 {
			out = append(out, healthDisplay(sideOf(k), health[k])...)
		}
	}
	return append(out, homeButton(l)...), nil
}
