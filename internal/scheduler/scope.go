package scheduler

import (
	"sync"
	"time"
)

// Scope tracks every timer scheduled through it so they can all be cancelled
// together when the owner is torn down. Once Close returns, no callback
// scheduled through the scope will run, including one whose timer already
// fired but has not yet entered the callback.
type Scope struct {
	parent Scheduler

	mu     sync.Mutex
	timers map[*scopedTimer]struct{}
	closed bool
}

// NewScope returns a Scope scheduling on parent.
func NewScope(parent Scheduler) *Scope {
	return &Scope{
		parent: parent,
		timers: make(map[*scopedTimer]struct{}),
	}
}

type scopedTimer struct {
	scope *Scope
	inner Timer
}

func (t *scopedTimer) Stop() bool {
	t.scope.mu.Lock()
	_, pending := t.scope.timers[t]
	delete(t.scope.timers, t)
	inner := t.inner
	t.scope.mu.Unlock()
	if !pending || inner == nil {
		return pending
	}
	return inner.Stop()
}

// AfterFunc implements Scheduler. Scheduling on a closed scope is a no-op and
// returns a timer whose Stop reports false.
func (s *Scope) AfterFunc(d time.Duration, f func()) Timer {
	t := &scopedTimer{scope: s}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return stoppedTimer{}
	}
	s.timers[t] = struct{}{}
	s.mu.Unlock()

	inner := s.parent.AfterFunc(d, func() {
		s.mu.Lock()
		_, pending := s.timers[t]
		delete(s.timers, t)
		live := pending && !s.closed
		s.mu.Unlock()
		if live {
			f()
		}
	})

	// Stop or Close may have run before inner was known.
	s.mu.Lock()
	t.inner = inner
	_, pending := s.timers[t]
	s.mu.Unlock()
	if !pending {
		inner.Stop()
	}
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (s *Scope) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close stops every pending timer. It is safe to call more than once.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	inners := make([]Timer, 0, len(s.timers))
	for t := range s.timers {
		if t.inner != nil {
			inners = append(inners, t.inner)
		}
	}
	s.timers = make(map[*scopedTimer]struct{})
	s.mu.Unlock()

	for _, inner := range inners {
		inner.Stop()
	}
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return false }
