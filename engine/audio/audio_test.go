package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return out
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	s, err := Tone(rate, CueGameOver, 1)
	require.NoError(t, err)
	samples := drain(t, s)
	want := rate.N(120*time.Millisecond)*2 + rate.N(240*time.Millisecond)
	assert.Len(t, samples, want)
}

func TestToneStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(8000)
	s, err := Tone(rate, CueAccept, 1)
	require.NoError(t, err)
	samples := drain(t, s)
	require.NotEmpty(t, samples)
	assert.Zero(t, samples[0][0])
	assert.InDelta(t, 0, samples[len(samples)-1][0], 0.05)
	for _, v := range samples {
		assert.LessOrEqual(t, v[0], 1.0)
		assert.GreaterOrEqual(t, v[0], -1.0)
	}
}

func TestMutedToneIsSilent(t *testing.T) {
	s, err := Tone(beep.SampleRate(8000), CueReject, 0)
	require.NoError(t, err)
	for _, v := range drain(t, s) {
		assert.Zero(t, v[0])
	}
}

func TestUnknownCue(t *testing.T) {
	_, err := Tone(beep.SampleRate(8000), Cue(99), 1)
	assert.Error(t, err)
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(1)
	p.Play(CueAccept)
	p.Close()
}
