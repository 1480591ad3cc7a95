//go:build !profile

package profiler

import "time"

// No-op versions when the "profile" build tag is not set.

type ScopeStat struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

func (s ScopeStat) Avg() time.Duration { return 0 }

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Enabled() bool { return false }

func Summary() []ScopeStat { return nil }

func OpenProfilerGraph() (string, error) { return "", nil }
