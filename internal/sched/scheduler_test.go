package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceRunsDueTasksInOrder(t *testing.T) {
	s := New()
	var got []string

	s.After(30*time.Millisecond, func() { got = append(got, "c") })
	s.After(10*time.Millisecond, func() { got = append(got, "a") })
	s.After(10*time.Millisecond, func() { got = append(got, "b") })
	s.After(50*time.Millisecond, func() { got = append(got, "late") })

	ran := s.Advance(30 * time.Millisecond)

	assert.Equal(t, 3, ran)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 30*time.Millisecond, s.Now())
	assert.Equal(t, 1, s.Pending())
}

func TestCallbackSeesItsDueTime(t *testing.T) {
	s := New()
	var at time.Duration
	s.After(5*time.Millisecond, func() { at = s.Now() })

	s.Advance(16 * time.Millisecond)

	assert.Equal(t, 5*time.Millisecond, at)
	assert.Equal(t, 16*time.Millisecond, s.Now())
}

func TestTasksScheduledDuringAdvance(t *testing.T) {
	s := New()
	count := 0
	var tick func()
	tick = func() {
		count++
		s.After(10*time.Millisecond, tick)
	}
	s.After(10*time.Millisecond, tick)

	s.Advance(35 * time.Millisecond)

	assert.Equal(t, 3, count, "chained tasks due within the window should run")
	assert.Equal(t, 1, s.Pending())
}

func TestHandleCancel(t *testing.T) {
	s := New()
	fired := false
	h := s.After(time.Second, func() { fired = true })
	require.True(t, h.Active())

	h.Cancel()
	h.Cancel()
	s.Advance(2 * time.Second)

	assert.False(t, fired)
	assert.False(t, h.Active())

	var zero Handle
	zero.Cancel()
	assert.False(t, zero.Active())
}

func TestHandleInactiveAfterFiring(t *testing.T) {
	s := New()
	h := s.After(time.Millisecond, func() {})
	s.Advance(time.Millisecond)
	assert.False(t, h.Active())
}

func TestNewEpochDropsPendingTasks(t *testing.T) {
	s := New()
	stale := false
	fresh := false
	old := s.After(100*time.Millisecond, func() { stale = true })

	s.NewEpoch()
	s.After(100*time.Millisecond, func() { fresh = true })
	s.Advance(time.Second)

	assert.False(t, stale)
	assert.True(t, fresh)
	assert.False(t, old.Active())
	assert.Equal(t, uint64(1), s.Epoch())
}

func TestNewEpochFromCallback(t *testing.T) {
	s := New()
	second := false
	s.After(10*time.Millisecond, func() { s.NewEpoch() })
	s.After(20*time.Millisecond, func() { second = true })

	s.Advance(time.Second)

	assert.False(t, second)
	assert.Zero(t, s.Pending())
}

func TestNegativeDelayFiresOnNextAdvance(t *testing.T) {
	s := New()
	fired := false
	s.After(-time.Second, func() { fired = true })
	assert.False(t, fired)
	s.Advance(0)
	assert.True(t, fired)
}
