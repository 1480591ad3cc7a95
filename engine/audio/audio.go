// Package audio plays short synthesized cues through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(44100)

type Cue int

const (
	CueAccept Cue = iota
	CueReject
	CueGameOver
)

type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[Cue][]note{
	CueAccept:   {{880, 60 * time.Millisecond}},
	CueReject:   {{220, 120 * time.Millisecond}},
	CueGameOver: {{660, 120 * time.Millisecond}, {440, 120 * time.Millisecond}, {330, 240 * time.Millisecond}},
}

// Tone renders c as a finite stream at rate, scaled by volume in [0,1].
func Tone(rate beep.SampleRate, c Cue, volume float64) (beep.Streamer, error) {
	notes, ok := cues[c]
	if !ok {
		return nil, errors.Errorf("unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, errors.Wrapf(err, "cue %d at %gHz", c, n.freq)
		}
		parts = append(parts, newFade(beep.Take(rate.N(n.dur), sine), rate.N(n.dur), rate.N(5*time.Millisecond)))
	}
	return gain(beep.Seq(parts...), volume), nil
}

func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1)), Silent: false}
}

// fade ramps the first and last edge samples to avoid clicks.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	edge     int
}

func newFade(s beep.Streamer, total, edge int) beep.Streamer {
	return &fade{streamer: s, total: total, edge: max(1, min(edge, total/2))}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		switch {
		case f.pos < f.edge:
			g = float64(f.pos) / float64(f.edge)
		case f.total-f.pos <= f.edge:
			g = float64(f.total-f.pos) / float64(f.edge)
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// Player mixes cues into one speaker stream. A Player that failed to initialise
// stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Tone(sampleRate, c, p.volume)
	if err != nil {
		log.Warn().Err(err).Msg("cue skipped")
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
