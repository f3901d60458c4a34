package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// SystemClock reports UTC at microsecond precision, the resolution of a
// Postgres timestamptz, so timestamps survive a round trip unchanged.
type SystemClock struct{}

func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// StoppedClock only moves when told to. Safe for concurrent use.
type StoppedClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewStoppedClock(t time.Time) *StoppedClock {
	return &StoppedClock{now: t}
}

func (c *StoppedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *StoppedClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *StoppedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
