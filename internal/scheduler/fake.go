package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Fake is a virtual clock. Nothing fires until Advance is called; callbacks
// then run synchronously on the caller's goroutine in deadline order, with
// ties broken by scheduling order.
type Fake struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	queue []*fakeTimer
	fired int
}

// NewFake returns a Fake clock positioned at zero.
func NewFake() *Fake {
	return &Fake{}
}

type fakeTimer struct {
	clock   *Fake
	at      time.Duration
	seq     uint64
	f       func()
	stopped bool
	done    bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.done {
		return false
	}
	t.stopped = true
	t.clock.remove(t)
	return true
}

// AfterFunc implements Scheduler.
func (c *Fake) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{clock: c, at: c.now + d, seq: c.seq, f: f}
	c.queue = append(c.queue, t)
	sort.SliceStable(c.queue, func(i, j int) bool {
		if c.queue[i].at != c.queue[j].at {
			return c.queue[i].at < c.queue[j].at
		}
		return c.queue[i].seq < c.queue[j].seq
	})
	return t
}

func (c *Fake) remove(t *fakeTimer) {
	for i, q := range c.queue {
		if q == t {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d, firing every callback that falls due.
// Callbacks scheduled by a firing callback run in the same call if they are
// due before the new time.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		if len(c.queue) == 0 || c.queue[0].at > target {
			c.now = target
			c.mu.Unlock()
			return
		}
		t := c.queue[0]
		c.queue = c.queue[1:]
		c.now = t.at
		t.done = true
		c.fired++
		c.mu.Unlock()

		t.f()
	}
}

// RunUntilIdle fires callbacks until none are pending and returns the elapsed
// virtual time. It stops after limit callbacks to guard against a callback
// that reschedules itself forever.
func (c *Fake) RunUntilIdle(limit int) time.Duration {
	c.mu.Lock()
	start := c.now
	c.mu.Unlock()

	for i := 0; i < limit; i++ {
		c.mu.Lock()
		if len(c.queue) == 0 {
			elapsed := c.now - start
			c.mu.Unlock()
			return elapsed
		}
		next := c.queue[0].at - c.now
		c.mu.Unlock()
		c.Advance(next)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now - start
}

// Now returns the virtual time elapsed since the clock was created.
func (c *Fake) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of callbacks waiting to fire.
func (c *Fake) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Fired returns the number of callbacks that have run.
func (c *Fake) Fired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired
}
