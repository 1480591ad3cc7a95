package render

import "github.com/hubastard/nzsc/engine/anim"

// beat is a step of a phase transition. Not every phase uses every beat.
type beat uint8

const (
	humanEnters beat = iota
	computerEnters
	hold
	leave
	rest
)

func (b beat) String() string {
	switch b {
	case humanEnters:
		return "human_enters"
	case computerEnters:
		return "computer_enters"
	case hold:
		return "hold"
	case leave:
		return "leave"
	}
	return "rest"
}

// fiveBeat splits [0,1] at a, b, c and d. With d == 1 the rest beat is the single point 1.
func fiveBeat(a, b, c, d float64) anim.Switch[beat] {
	return anim.MustSwitch(
		anim.Span(0, a, humanEnters),
		anim.Span(a, b, computerEnters),
		anim.Span(b, c, hold),
		anim.Span(c, d, leave),
		anim.Last(d, 1, rest),
	)
}

var (
	quick = func() anim.Switch[beat] { return fiveBeat(0.15, 0.30, 0.85, 1) }
	long  = func() anim.Switch[beat] { return fiveBeat(0.12, 0.24, 0.68, 0.80) }

	characterTimeline         = anim.MustSwitch(anim.Last(0, 1, rest))
	rechooseTimeline          = quick()
	boosterTimeline           = long()
	firstDequeueTimeline      = long()
	actionTimeline            = quick()
	subsequentDequeueTimeline = quick()
	gameOverTimeline          = long()
)

// timelines lists every phase timeline by phase name.
func timelines() map[string]anim.Switch[beat] {
	return map[string]anim.Switch[beat]{
		"choose_character":          characterTimeline,
		"rechoose_character":        rechooseTimeline,
		"choose_booster":            boosterTimeline,
		"choose_first_dequeue":      firstDequeueTimeline,
		"choose_action":             actionTimeline,
		"choose_subsequent_dequeue": subsequentDequeueTimeline,
		"game_over":                 gameOverTimeline,
	}
}
