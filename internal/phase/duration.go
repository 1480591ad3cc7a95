package phase

import "time"

// Durations is how long each phase animates before resting.
type Durations struct {
	Character         time.Duration
	Rechoose          time.Duration
	Booster           time.Duration
	FirstDequeue      time.Duration
	Action            time.Duration
	SubsequentDequeue time.Duration
	GameOver          time.Duration
}

var DefaultDurations = Durations{
	Character:         500 * time.Millisecond,
	Rechoose:          2 * time.Second,
	Booster:           2500 * time.Millisecond,
	FirstDequeue:      2500 * time.Millisecond,
	Action:            2 * time.Second,
	SubsequentDequeue: 2 * time.Second,
	GameOver:          2500 * time.Millisecond,
}

// WithDefaults fills every zero field from DefaultDurations.
func (d Durations) WithDefaults() Durations {
	fill := func(v *time.Duration, def time.Duration) {
		if *v <= 0 {
			*v = def
		}
	}
	fill(&d.Character, DefaultDurations.Character)
	fill(&d.Rechoose, DefaultDurations.Rechoose)
	fill(&d.Booster, DefaultDurations.Booster)
	fill(&d.FirstDequeue, DefaultDurations.FirstDequeue)
	fill(&d.Action, DefaultDurations.Action)
	fill(&d.SubsequentDequeue, DefaultDurations.SubsequentDequeue)
	fill(&d.GameOver, DefaultDurations.GameOver)
	return d
}

func (d Durations) Of(p Phase) time.Duration {
	switch p.(type) {
	case ChooseCharacter:
		return d.Character
	case RechooseCharacter:
		return d.Rechoose
	case ChooseBooster:
		return d.Booster
	case ChooseFirstDequeue:
		return d.FirstDequeue
	case ChooseAction:
		return d.Action
	case ChooseSubsequentDequeue:
		return d.SubsequentDequeue
	}
	return d.GameOver
}

// Completion is min(elapsed/duration, 1). Negative elapsed time counts as zero.
func (d Durations) Completion(p Phase, elapsed time.Duration) float64 {
	total := d.Of(p)
	if total <= 0 || elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return elapsed.Seconds() / total.Seconds()
}

// Duration uses DefaultDurations.
func Duration(p Phase) time.Duration { return DefaultDurations.Of(p) }

// CompletionFactor uses DefaultDurations.
func CompletionFactor(p Phase, elapsed time.Duration) float64 {
	return DefaultDurations.Completion(p, elapsed)
}
