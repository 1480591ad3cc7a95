//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedscopeClosesDanglingScopes(t *testing.T) {
	render := intern("render")
	click := intern("click")
	evs := []event{
		{at: 1000, scope: render, open: true},
		{at: 2000, scope: click, open: true},
		{at: 3000, scope: render}, // mismatched, dropped
		{at: 4000, scope: click},
	}
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeSpeedscope(evs, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc ssFile
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Len(t, doc.Profiles, 1)

	var kinds []string
	for _, e := range doc.Profiles[0].Events {
		kinds = append(kinds, e.Type)
	}
	assert.Equal(t, []string{"O", "O", "C", "C"}, kinds)
	assert.Equal(t, int64(3), doc.Profiles[0].EndValue)
}

func TestSummaryAggregatesPerScope(t *testing.T) {
	frame := intern("frame")
	paint := intern("paint")
	evs := []event{
		{at: 0, scope: frame, open: true},
		{at: 100, scope: paint, open: true},
		{at: 400, scope: paint},
		{at: 1000, scope: frame},
		{at: 1000, scope: frame, open: true},
		{at: 1500, scope: paint, open: true},
		{at: 1600, scope: paint},
		{at: 3000, scope: frame},
	}
	got := summarize(evs)
	require.Len(t, got, 2)

	assert.Equal(t, "frame", got[0].Name)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, 3*time.Microsecond, got[0].Total)
	assert.Equal(t, 2*time.Microsecond, got[0].Max)
	assert.Equal(t, 1500*time.Nanosecond, got[0].Avg())

	assert.Equal(t, "paint", got[1].Name)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, 300*time.Nanosecond, got[1].Max)
}

func TestRingKeepsNewest(t *testing.T) {
	var r eventRing
	r.init(2)
	for i := 0; i < 3; i++ {
		r.push(event{at: int64(i)})
	}
	got := r.snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].at)
	assert.Equal(t, int64(2), got[1].at)
}
