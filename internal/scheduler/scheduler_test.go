package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeFiresInDeadlineOrder(t *testing.T) {
	clock := NewFake()
	var order []string

	clock.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	clock.Advance(9 * time.Millisecond)
	assert.Empty(t, order)

	clock.Advance(1 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, order)

	clock.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 3, clock.Fired())
	assert.Equal(t, 1010*time.Millisecond, clock.Now())
}

func TestFakeChainedCallbacksRunWithinAdvance(t *testing.T) {
	clock := NewFake()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			clock.AfterFunc(5*time.Millisecond, tick)
		}
	}
	clock.AfterFunc(5*time.Millisecond, tick)

	clock.Advance(15 * time.Millisecond)
	assert.Equal(t, 3, count)
	assert.Zero(t, clock.Pending())
}

func TestFakeStop(t *testing.T) {
	clock := NewFake()
	fired := false
	timer := clock.AfterFunc(time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second Stop should report false")

	clock.Advance(time.Second)
	assert.False(t, fired)
	assert.Zero(t, clock.Fired())
}

func TestFakeRunUntilIdle(t *testing.T) {
	clock := NewFake()
	clock.AfterFunc(40*time.Millisecond, func() {})
	clock.AfterFunc(100*time.Millisecond, func() {})

	elapsed := clock.RunUntilIdle(10)
	assert.Equal(t, 100*time.Millisecond, elapsed)
	assert.Zero(t, clock.Pending())
}

func TestScopeCloseCancelsPending(t *testing.T) {
	clock := NewFake()
	scope := NewScope(clock)

	var fired int
	scope.AfterFunc(10*time.Millisecond, func() { fired++ })
	scope.AfterFunc(20*time.Millisecond, func() { fired++ })
	require.Equal(t, 2, scope.Pending())

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, scope.Pending())

	scope.Close()
	assert.True(t, scope.Closed())
	assert.Zero(t, scope.Pending())
	assert.Zero(t, clock.Pending(), "parent timers should be stopped")

	clock.Advance(time.Hour)
	assert.Equal(t, 1, fired)
}

func TestScopeAfterCloseIsNoop(t *testing.T) {
	clock := NewFake()
	scope := NewScope(clock)
	scope.Close()
	scope.Close()

	timer := scope.AfterFunc(time.Millisecond, func() { t.Fatal("callback ran on closed scope") })
	assert.False(t, timer.Stop())
	assert.Zero(t, clock.Pending())
	clock.Advance(time.Second)
}

func TestScopeStopSingleTimer(t *testing.T) {
	clock := NewFake()
	scope := NewScope(clock)

	timer := scope.AfterFunc(time.Millisecond, func() { t.Fatal("stopped timer fired") })
	assert.True(t, timer.Stop())
	assert.Zero(t, scope.Pending())
	clock.Advance(time.Second)
}

func TestScopeOnRealClock(t *testing.T) {
	scope := NewScope(Real{})
	var fired atomic.Int32
	done := make(chan struct{})

	scope.AfterFunc(time.Millisecond, func() {
		fired.Add(1)
		close(done)
	})
	scope.AfterFunc(time.Hour, func() { fired.Add(1) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
	scope.Close()
	assert.Equal(t, int32(1), fired.Load())
	assert.Zero(t, scope.Pending())
}
