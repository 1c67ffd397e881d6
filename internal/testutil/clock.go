package testutil

import (
	"sync"
	"time"
)

// SteppedClock provides a thread-safe deterministic time source for tests.
//
// Each call to Now advances the clock by a fixed step, so override
// timestamps recorded during a test are distinct and reproducible.
// The same scenario with the same SteppedClock produces byte-identical
// output across runs.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SteppedClock struct {
	mu   sync.Mutex
	base time.Time
	step time.Duration
	n    int
}

// NewSteppedClock creates a clock starting at base.
//
// The first call to Now returns base; each subsequent call returns the
// previous value plus step.
func NewSteppedClock(base time.Time, step time.Duration) *SteppedClock {
	return &SteppedClock{base: base.UTC(), step: step}
}

// Now returns the current time and advances the clock by one step.
func (c *SteppedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.base.Add(time.Duration(c.n) * c.step)
	c.n++
	return t
}

// Peek returns the time the next Now call will return, without advancing.
func (c *SteppedClock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base.Add(time.Duration(c.n) * c.step)
}

// Reset rewinds the clock to base.
//
// Used for test reuse. After Reset, the next call to Now returns base.
func (c *SteppedClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
}
