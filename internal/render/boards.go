package render

import (
	"slices"

	"github.com/hubastard/nzsc/engine/anim"
	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/scene"
	"github.com/hubastard/nzsc/internal/click"
	"github.com/hubastard/nzsc/internal/nzsc"
	"github.com/hubastard/nzsc/internal/phase"
)

// hidden names items a board leaves out while their copy is animating elsewhere.
// Cells keep their positions.
type hidden struct {
	pool    *nzsc.ArsenalItem
	exit    bool
	arsenal *nzsc.ArsenalItem
}

// withoutDequeued hides what choice d takes out of the board: the drainee and the exit.
func withoutDequeued(d nzsc.DequeueChoice) hidden {
	switch d.Kind {
	case nzsc.DrainAndExit:
		item := d.Item
		return hidden{pool: &item, exit: true}
	case nzsc.JustExit:
		return hidden{exit: true}
	}
	return hidden{}
}

// withoutUsed hides the arsenal item spent by a.
func withoutUsed(a nzsc.Action) hidden {
	if item, ok := a.Item(); ok {
		return hidden{arsenal: &item}
	}
	return hidden{}
}

func (h hidden) hidesPool(item nzsc.ArsenalItem) bool {
	return h.pool != nil && *h.pool == item
}

func (h hidden) hidesArsenal(item nzsc.ArsenalItem) bool {
	return h.arsenal != nil && *h.arsenal == item
}

func clickIf(ok bool, a click.Action) click.Action {
	if ok {
		return a
	}
	return nil
}

// dequeueBoard draws p as a dequeue scoreboard. Only the options in available are enabled,
// and they carry clicks only when clickable is set.
func dequeueBoard(s Side, b nzsc.HasQueueAndArsenal, available []nzsc.DequeueChoice, clickable bool, h hidden) scene.List {
	p := b.Board()
	g := GridOf(p)
	can := func(d nzsc.DequeueChoice) bool { return slices.Contains(available, d) }
	anyDrain := slices.ContainsFunc(available, func(d nzsc.DequeueChoice) bool { return d.Kind == nzsc.DrainAndExit })

	out := pill(s, Cell{}, 3, g.PoolRows, anyDrain)
	for i, item := range p.Queue.Pool {
		if h.hidesPool(item) {
			continue
		}
		d := nzsc.Drain(item)
		out = append(out, itemDisplay(item, can(d), clickIf(clickable, click.ChooseDequeue{Choice: d}), s, g.Pool(i))...)
	}

	canDecline, canExit := can(nzsc.DeclineChoice), can(nzsc.JustExitChoice)
	out = append(out, pill(s, g.Entrance(), 3, 1, false)...)
	out = append(out, pill(s, g.Middle(), 2, 1, canDecline)...)
	out = append(out, pill(s, g.Exit(), 1, 1, canExit)...)
	if e := p.Queue.Entrance; e != nil {
		out = append(out, itemDisplay(*e, false, nil, s, g.Entrance())...)
	}
	out = append(out, declineButton(s, g.Middle(), canDecline, clickable)...)
	if x := p.Queue.Exit; x != nil && !h.exit {
		out = append(out, itemDisplay(*x, canExit, clickIf(clickable, click.ChooseDequeue{Choice: nzsc.JustExitChoice}), s, g.Exit())...)
	}

	out = append(out, arsenalDisplay(s, g, p.Arsenal, false, h, func(nzsc.ArsenalItem) (bool, click.Action) { return false, nil })...)
	return append(out, arrows(s, g)...)
}

func declineButton(s Side, c Cell, enabled, clickable bool) scene.List {
	circle := s.Circle(c)
	fill, alpha := DeclineColor, 1.0
	if !enabled {
		fill = fill.WithAlpha(DisabledAlpha)
		alpha = float64(DisabledAlpha) / 255
	}
	var a scene.Action
	if enabled && clickable {
		a = click.ChooseDequeue{Choice: nzsc.DeclineChoice}
	}
	return scene.List{
		scene.FilledCircle{Color: fill, Shape: circle, OnClick: a},
		scene.Image{Key: DeclineImage, Alpha: alpha, Shape: imageIn(circle)},
	}
}

// arsenalDisplay draws the arsenal pill and its items. state decides, per item, whether
// it is enabled and what a click on it does.
func arsenalDisplay(s Side, g Grid, arsenal []nzsc.ArsenalItem, enabled bool, h hidden,
	state func(nzsc.ArsenalItem) (bool, click.Action)) scene.List {
	out := pill(s, Cell{Row: g.ArsenalRow()}, 3, HeightInRows(len(arsenal)), enabled)
	for i, item := range arsenal {
		if h.hidesArsenal(item) {
			continue
		}
		on, a := state(item)
		out = append(out, itemDisplay(item, on, a, s, g.Arsenal(i))...)
	}
	return out
}

// actionBoard draws p as an action scoreboard. Moves are played from the arsenal;
// the pool offers a Mirror of each move while Mirror is available.
func actionBoard(s Side, b nzsc.HasQueueAndArsenal, available []nzsc.Action, clickable bool, h hidden) scene.List {
	p := b.Board()
	g := GridOf(p)
	can := func(a nzsc.Action) bool { return slices.Contains(available, a) }
	anyMirror := slices.ContainsFunc(available, func(a nzsc.Action) bool { return a.Kind == nzsc.MirrorAction })

	out := pill(s, Cell{}, 3, g.PoolRows, anyMirror)
	for i, item := range p.Queue.Pool {
		if h.hidesPool(item) {
			continue
		}
		if !item.Mirror && can(nzsc.Mirror(item.Move)) {
			out = append(out, mirrorOption(s, g.Pool(i), item.Move, clickable)...)
			continue
		}
		out = append(out, itemDisplay(item, false, nil, s, g.Pool(i))...)
	}

	out = append(out, pill(s, g.Entrance(), 3, 1, false)...)
	if e := p.Queue.Entrance; e != nil {
		out = append(out, itemDisplay(*e, false, nil, s, g.Entrance())...)
	}
	if can(nzsc.ConcedeAction) {
		circle := s.Circle(g.Middle())
		out = append(out,
			scene.FilledCircle{Color: DeclineColor, Shape: circle, OnClick: clickIf(clickable, click.ChooseAction{Action: nzsc.ConcedeAction})},
			scene.Image{Key: ConcedeImage, Alpha: 1, Shape: imageIn(circle)},
		)
	}
	if x := p.Queue.Exit; x != nil && !h.exit {
		out = append(out, itemDisplay(*x, false, nil, s, g.Exit())...)
	}

	out = append(out, arsenalDisplay(s, g, p.Arsenal, true, h, func(item nzsc.ArsenalItem) (bool, click.Action) {
		if item.Mirror {
			return anyMirror, nil
		}
		a := nzsc.Use(item.Move)
		return can(a), clickIf(clickable, click.ChooseAction{Action: a})
	})...)
	return append(out, arrows(s, g)...)
}

// mirrorOption is a pool move offered as the target of a Mirror: the Mirror face with
// the move shrunk over it.
func mirrorOption(s Side, c Cell, m nzsc.Move, clickable bool) scene.List {
	circle := s.Circle(c)
	img := imageIn(circle)
	cx, cy := img.Center()
	return scene.List{
		scene.FilledCircle{Color: MoveColor(m), Shape: circle, OnClick: clickIf(clickable, click.ChooseAction{Action: nzsc.Mirror(m)})},
		scene.Image{Key: MirrorImage, Alpha: 1, Shape: img},
		scene.Image{Key: MoveImage(m), Alpha: 1, Shape: scene.CenteredRect(cx, cy, img.W*0.6, img.H*0.6)},
	}
}

// inspectorBoard draws p with every move clickable for inspection. While a move is
// inspected each move item is ringed by what the inspected move scores against it.
func (r Renderer) inspectorBoard(s Side, b nzsc.HasQueueAndArsenal, in phase.Inspector) scene.List {
	p := b.Board()
	g := GridOf(p)
	inspected, inspecting := in.Inspected()

	item := func(it nzsc.ArsenalItem, c Cell) scene.List {
		var out scene.List
		if inspecting && !it.Mirror {
			if ring, ok := r.ringColor(inspected, it.Move); ok {
				out = append(out, scene.FilledCircle{Color: ring, Shape: highlightRing(s.Circle(c))})
			}
		}
		var a click.Action
		if !it.Mirror {
			a = click.InspectMove{Move: it.Move}
		}
		return append(out, itemDisplay(it, true, a, s, c)...)
	}

	out := pill(s, Cell{}, 3, g.PoolRows, true)
	for i, it := range p.Queue.Pool {
		out = append(out, item(it, g.Pool(i))...)
	}
	out = append(out, pill(s, g.Entrance(), 3, 1, true)...)
	if e := p.Queue.Entrance; e != nil {
		out = append(out, item(*e, g.Entrance())...)
	}
	if x := p.Queue.Exit; x != nil {
		out = append(out, item(*x, g.Exit())...)
	}
	out = append(out, pill(s, Cell{Row: g.ArsenalRow()}, 3, max(1, HeightInRows(len(p.Arsenal))), true)...)
	for i, it := range p.Arsenal {
		out = append(out, item(it, g.Arsenal(i))...)
	}
	return append(out, arrows(s, g)...)
}

func (r Renderer) ringColor(inspected, other nzsc.Move) (colors.RGBA, bool) {
	if inspected == other {
		return inspectedHighlight, true
	}
	return highlight(nzsc.MovePoints(r.Referee, inspected, other))
}

// inspectorButton toggles the move inspector.
func inspectorButton(in phase.Inspector) scene.Component {
	if in.Mode == phase.NotInspecting {
		return scene.Image{Key: InspectMoveImage, Alpha: 1, Shape: inspectButton, OnClick: click.WaitForUserToChooseMoveToInspect{}}
	}
	return scene.Image{Key: StopInspectingImage, Alpha: 1, Shape: inspectButton, OnClick: click.StopInspectingMove{}}
}

// dequeueRest is the resting scene of both dequeue phases. The boards slide in from
// their edges as slide runs and take clicks once it completes.
func (r Renderer) dequeueRest(board [2]nzsc.DequeueingPlayer, available [2][]nzsc.DequeueChoice, in phase.Inspector, slide anim.Lerper) scene.List {
	out := scene.List{background()}
	out = append(out, currentHealth(board[nzsc.Human], board[nzsc.Computer])...)
	for i, p := range board {
		s := sideOf(i)
		var b scene.List
		if in.Mode != phase.NotInspecting {
			b = r.inspectorBoard(s, p, in)
		} else {
			b = dequeueBoard(s, p, available[i], s == Left, hidden{})
		}
		if slide.Factor() < 1 {
			b = b.WithoutClick()
		}
		out = append(out, b.Translate(slide.Lerp(s.outward(scoreboardSlide), 0), 0)...)
	}
	return append(out, inspectorButton(in))
}

// currentHealth shows both players' hearts as their opponents' points leave them.
func currentHealth(human, computer nzsc.HasQueueAndArsenal) scene.List {
	return scene.Concat(
		healthDisplay(Left, nzsc.Health(computer.Board().Points)),
		healthDisplay(Right, nzsc.Health(human.Board().Points)),
	)
}
