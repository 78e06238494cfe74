package data

import (
	"sync"
	"time"
)

// Clock reads the system clock on every call but never returns a time
// earlier than one it has already handed out.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	t := c.now().Round(0)

	c.mu.Lock()
	defer c.mu.Unlock()

	if t.Before(c.last) {
		return c.last
	}

	c.last = t
	return t
}
