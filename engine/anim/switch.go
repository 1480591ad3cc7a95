package anim

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoCase is returned when no beat of a Switch contains the factor.
var ErrNoCase = errors.New("anim: no beat contains factor")

// Range is [Start,End), or [Start,End] when Inclusive.
type Range struct {
	Start, End float64
	Inclusive  bool
}

func (r Range) Contains(f float64) bool {
	if r.Inclusive {
		return f >= r.Start && f <= r.End
	}
	return f >= r.Start && f < r.End
}

func (r Range) String() string {
	if r.Inclusive {
		return fmt.Sprintf("[%.2f,%.2f]", r.Start, r.End)
	}
	return fmt.Sprintf("[%.2f,%.2f)", r.Start, r.End)
}

// Beat binds a case value to a range.
type Beat[C any] struct {
	Range Range
	Case  C
}

// Span is a half-open beat.
func Span[C any](start, end float64, c C) Beat[C] {
	return Beat[C]{Range: Range{Start: start, End: end}, Case: c}
}

// Last is the closing beat, inclusive of its end.
func Last[C any](start, end float64, c C) Beat[C] {
	return Beat[C]{Range: Range{Start: start, End: end, Inclusive: true}, Case: c}
}

// Switch is an ordered partition of [0,1] into beats.
type Switch[C any] struct {
	beats []Beat[C]
}

func NewSwitch[C any](beats ...Beat[C]) Switch[C] {
	return Switch[C]{beats: append([]Beat[C](nil), beats...)}
}

// MustSwitch builds a Switch and panics if its beats do not partition [0,1].
func MustSwitch[C any](beats ...Beat[C]) Switch[C] {
	s := NewSwitch(beats...)
	if err := s.Validate(); err != nil {
		panic(err)
	}
	return s
}

func (s Switch[C]) Beats() []Beat[C] { return s.beats }

// Eval returns the case of the first beat containing f and a lerper scoped to that beat.
// A degenerate beat such as [1,1] gets a lerper fixed at 1.
func (s Switch[C]) Eval(f float64) (C, Lerper, error) {
	for _, b := range s.beats {
		if !b.Range.Contains(f) {
			continue
		}
		if b.Range.End == b.Range.Start {
			return b.Case, FromFactor(1), nil
		}
		return b.Case, FromFactor(f).SubLerper(b.Range.Start, b.Range.End), nil
	}
	var zero C
	return zero, Lerper{}, errors.Wrapf(ErrNoCase, "factor %v", f)
}

// EvalClamped evaluates f pinned into [0,1]. It panics only if the switch does not
// partition [0,1], which MustSwitch already rules out.
func (s Switch[C]) EvalClamped(f float64) (C, Lerper) {
	c, l, err := s.Eval(min(max(f, 0), 1))
	if err != nil {
		panic(err)
	}
	return c, l
}

// Validate checks that the beats cover [0,1] with no gap or overlap.
func (s Switch[C]) Validate() error {
	if len(s.beats) == 0 {
		return errors.New("anim: switch has no beats")
	}
	if s.beats[0].Range.Start != 0 {
		return errors.Errorf("anim: first beat %s does not start at 0", s.beats[0].Range)
	}
	for i, b := range s.beats {
		last := i == len(s.beats)-1
		width := b.Range.End - b.Range.Start
		switch {
		case width < 0:
			return errors.Errorf("anim: beat %d %s is reversed", i, b.Range)
		case width == 0 && !(last && b.Range.Inclusive):
			return errors.Errorf("anim: beat %d %s is empty", i, b.Range)
		case b.Range.Inclusive && !last:
			return errors.Errorf("anim: beat %d %s is inclusive but not last", i, b.Range)
		}
		if last {
			if !b.Range.Inclusive || b.Range.End != 1 {
				return errors.Errorf("anim: last beat %s must be inclusive of 1", b.Range)
			}
			continue
		}
		if next := s.beats[i+1].Range.Start; next != b.Range.End {
			return errors.Errorf("anim: beat %d ends at %v but beat %d starts at %v", i, b.Range.End, i+1, next)
		}
	}
	return nil
}

// Steps samples [0,1] with n even steps plus every beat boundary.
func (s Switch[C]) Steps(n int) []float64 {
	out := make([]float64, 0, n+1+2*len(s.beats))
	for i := 0; i <= n; i++ {
		out = append(out, float64(i)/float64(n))
	}
	for _, b := range s.beats {
		out = append(out, b.Range.Start, b.Range.End)
	}
	return out
}
