//go:build profile

package profiler

import (
	"cmp"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Init starts recording into a ring of capacity scope events (two per scope).
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	opened := time.Now().UnixNano()
	ring.push(event{at: opened, scope: id, open: true})
	return func() {
		closed := time.Now().UnixNano()
		if closed < opened {
			closed = opened
		}
		ring.push(event{at: closed, scope: id})
	}
}

func Enabled() bool { return ring.ready.Load() }

// OpenProfilerGraph dumps the ring as a speedscope file, logs the per-scope summary and
// tries to open the file in speedscope.
func OpenProfilerGraph() (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", errors.New("profiler: no events to dump")
	}

	path := filepath.Join(os.TempDir(), "nzsc.profile.speedscope.json")
	if err := writeSpeedscope(evs, path); err != nil {
		return "", err
	}
	for _, s := range summarize(evs) {
		log.Info().Str("scope", s.Name).Int("count", s.Count).Dur("avg", s.Avg()).Dur("max", s.Max).Msg("profile")
	}

	if err := exec.Command("speedscope", path).Start(); err != nil {
		log.Warn().Err(err).Str("profile", path).Msg("speedscope not launched")
	}
	return path, nil
}

// Summary aggregates the scopes currently in the ring, slowest total first.
func Summary() []ScopeStat { return summarize(ring.snapshot()) }

type ScopeStat struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

func (s ScopeStat) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

type event struct {
	at    int64 // unix nanoseconds
	scope int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.next.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events oldest first.
func (r *eventRing) snapshot() []event {
	n := r.next.Load()
	if n == 0 {
		return nil
	}
	first := uint64(0)
	if n > r.size {
		first = n - r.size
	}
	out := make([]event, 0, n-first)
	for k := first; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var ring eventRing

var (
	namesMu sync.Mutex
	names   []string
	ids     = map[string]int{}
)

func intern(name string) int {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := ids[name]; ok {
		return id
	}
	id := len(names)
	ids[name] = id
	names = append(names, name)
	return id
}

func nameList() []string {
	namesMu.Lock()
	defer namesMu.Unlock()
	return slices.Clone(names)
}

// balance walks evs keeping a scope stack. Closes that do not match the innermost open
// scope are dropped, and scopes still open at the end are closed at the last timestamp.
func balance(evs []event, visit func(e event, openedAt int64)) {
	type frame struct {
		scope int
		at    int64
	}
	var (
		stack []frame
		last  int64
	)
	for _, e := range evs {
		at := max(e.at, last)
		last = at
		if e.open {
			stack = append(stack, frame{e.scope, at})
			visit(event{at: at, scope: e.scope, open: true}, at)
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1].scope != e.scope {
			continue
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(event{at: at, scope: e.scope}, top.at)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		visit(event{at: last, scope: stack[i].scope}, stack[i].at)
	}
}

func summarize(evs []event) []ScopeStat {
	byScope := map[int]*ScopeStat{}
	all := nameList()
	balance(evs, func(e event, openedAt int64) {
		if e.open {
			return
		}
		s, ok := byScope[e.scope]
		if !ok {
			s = &ScopeStat{Name: all[e.scope]}
			byScope[e.scope] = s
		}
		d := time.Duration(e.at - openedAt)
		s.Count++
		s.Total += d
		s.Max = max(s.Max, d)
	})
	out := make([]ScopeStat, 0, len(byScope))
	for _, s := range byScope {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b ScopeStat) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

type ssFile struct {
	Schema             string      `json:"$schema"`
	Shared             ssShared    `json:"shared"`
	Profiles           []ssProfile `json:"profiles"`
	ActiveProfileIndex int         `json:"activeProfileIndex,omitempty"`
	Exporter           string      `json:"exporter,omitempty"`
	Name               string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"` // "evented"
	Name       string    `json:"name"`
	Unit       string    `json:"unit"` // "microseconds"
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

func writeSpeedscope(evs []event, path string) error {
	if len(evs) == 0 {
		return errors.New("no events")
	}
	frames := make([]ssFrame, 0, 16)
	for _, n := range nameList() {
		frames = append(frames, ssFrame{Name: n})
	}

	base := evs[0].at
	var (
		out []ssEvent
		end int64
	)
	balance(evs, func(e event, _ int64) {
		at := (e.at - base) / 1000
		kind := "C"
		if e.open {
			kind = "O"
		}
		out = append(out, ssEvent{Type: kind, At: at, Frame: e.scope})
		end = max(end, at)
	})
	if len(out) == 0 {
		return errors.New("no usable events after filtering")
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "nzsc (evented)",
			Unit:     "microseconds",
			EndValue: end,
			Events:   out,
		}},
		Exporter: "nzsc-profiler",
		Name:     "nzsc capture",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(err, "create profile")
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return errors.Wrap(err, "encode profile")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close profile")
	}
	return errors.Wrap(os.Rename(tmp, path), "rename profile")
}
