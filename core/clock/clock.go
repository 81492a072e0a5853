// Package clock abstracts wall-clock time so stale-run detection and
// day boundaries can be tested deterministically.
package clock

import "time"

// Clock defines the time operations the ledger depends on.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// New creates a real clock, reporting UTC.
func New() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

func (RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Fixed is a manually advanced clock for tests.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

func (f *Fixed) Since(t time.Time) time.Duration {
	return f.T.Sub(t)
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}
