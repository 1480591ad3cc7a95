package render

import (
	"slices"

	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/phase"
)

func (r Renderer) chooseFirstDequeue(p phase.ChooseFirstDequeue, f float64) (scene.List, error) {
	b, l, err := firstDequeueTimeline.Eval(f)
	if err != nil {
		return nil, err
	}
	if b == rest {
		return r.dequeueRest(p.Scoreboard, p.AvailableDequeues, p.Inspector, l), nil
	}

	human := p.Scoreboard[nzsc.Human].Booster
	i := slices.Index(p.PrevAvailableBoosters, human)
	if i < 0 {
		return nil, inconsistent("%s was not offered", human)
	}
	cards := make([]card, len(p.PrevAvailableBoosters))
	for k, bo := range p.PrevAvailableBoosters {
		cards[k] = boosterCard(bo)
	}
	pk := pickup{human: cards[i], computer: boosterCard(p.Scoreboard[nzsc.Computer].Booster), button: i}

	out := scene.Concat(scene.List{background()}, unchosen(cards, i), scene.List{overlay()},
		currentHealth(p.Scoreboard[nzsc.Human], p.Scoreboard[nzsc.Computer]))
	if b == leave {
		return append(out, pk.leave(l, true, true)...), nil
	}
	return append(out, pk.enter(b, l)...), nil
}

func (r Renderer) chooseAction(p phase.ChooseAction, f float64) (scene.List, error) {
	b, _, err := actionTimeline.Eval(f)
	if err != nil {
		return nil, err
	}
	if b == rest {
		return r.actionRest(p), nil
	}

	prev := p.PrevScoreboard
	out := scene.List{background()}
	out = append(out, currentHealth(prev[nzsc.Human], prev[nzsc.Computer])...)
	computerHidden := withoutDequeued(p.PrevOutcome[nzsc.Computer])
	if b == humanEnters {
		computerHidden = hidden{}
	}
	out = append(out, dequeueBoard(Left, prev[nzsc.Human], p.PrevAvailableDequeues[nzsc.Human], false, withoutDequeued(p.PrevOutcome[nzsc.Human]))...)
	out = append(out, dequeueBoard(Right, prev[nzsc.Computer], p.PrevAvailableDequeues[nzsc.Computer], false, computerHidden)...)
	out = append(out, overlay())

	// The dequeue choice itself has no visual yet; each stage is a tagged placeholder.
	out = append(out, Unfinished(Left))
	if b != humanEnters {
		out = append(out, Unfinished(Right))
	}
	return out, nil
}

func (r Renderer) actionRest(p phase.ChooseAction) scene.List {
	out := scene.List{background()}
	out = append(out, currentHealth(p.Scoreboard[nzsc.Human], p.Scoreboard[nzsc.Computer])...)
	for i, pl := range p.Scoreboard {
		s := sideOf(i)
		if p.Inspector.Mode != phase.NotInspecting {
			out = append(out, r.inspectorBoard(s, pl, p.Inspector)...)
			continue
		}
		out = append(out, actionBoard(s, pl, p.AvailableActions[i], s == Left, hidden{})...)
	}
	return append(out, inspectorButton(p.Inspector))
}
