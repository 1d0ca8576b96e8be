//go:build unit

package countdown_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hiburan-booking-gateway/internal/countdown"
	"hiburan-booking-gateway/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		want     countdown.Snapshot
	}{
		{
			name:     "over an hour remaining",
			deadline: now.Add(2*time.Hour + 15*time.Minute + 30*time.Second),
			want:     countdown.Snapshot{Hours: 2, Minutes: 15, Seconds: 30},
		},
		{
			name:     "under thirty minutes is urgent",
			deadline: now.Add(29*time.Minute + 59*time.Second),
			want:     countdown.Snapshot{Minutes: 29, Seconds: 59, Urgent: true},
		},
		{
			name:     "exactly thirty minutes is not urgent",
			deadline: now.Add(30 * time.Minute),
			want:     countdown.Snapshot{Minutes: 30},
		},
		{
			name:     "five seconds remaining",
			deadline: now.Add(5 * time.Second),
			want:     countdown.Snapshot{Seconds: 5, Urgent: true},
		},
		{
			name:     "deadline reached",
			deadline: now,
			want:     countdown.Snapshot{Expired: true},
		},
		{
			name:     "deadline in the past",
			deadline: now.Add(-time.Minute),
			want:     countdown.Snapshot{Expired: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countdown.Compute(tc.deadline, now))
		})
	}
}

func TestWatcherFiresExactlyOnce(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	var fired int64
	w := countdown.NewWatcher(clk, now.Add(50*time.Millisecond), time.Millisecond, func() {
		atomic.AddInt64(&fired, 1)
	})

	// Let a few ticks pass before the deadline.
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt64(&fired))

	clk.Set(now.Add(time.Second))

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&fired) == 1
	}, time.Second, time.Millisecond)

	// Further ticks must not re-fire after expiry.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fired))

	w.Stop()
}

func TestWatcherPastDeadlineFiresImmediately(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	var fired int64
	// Interval is deliberately huge: expiry must not wait for a tick.
	w := countdown.NewWatcher(clk, now.Add(-time.Second), time.Hour, func() {
		atomic.AddInt64(&fired, 1)
	})

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&fired) == 1
	}, time.Second, time.Millisecond)

	assert.Equal(t, countdown.Snapshot{Expired: true}, w.Remaining())
	w.Stop()
}

func TestWatcherStopPreventsFiring(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	var fired int64
	w := countdown.NewWatcher(clk, now.Add(time.Hour), time.Millisecond, func() {
		atomic.AddInt64(&fired, 1)
	})
	w.Stop()
	w.Stop() // idempotent

	clk.Set(now.Add(2 * time.Hour))
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt64(&fired))
}

func TestRegistryReplacesWatcherOnDeadlineChange(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	reg := countdown.NewRegistry(clk, time.Millisecond)
	defer reg.StopAll()

	var first, second int64
	reg.Watch("session-1", now.Add(time.Minute), func() { atomic.AddInt64(&first, 1) })
	reg.Watch("session-1", now.Add(2*time.Minute), func() { atomic.AddInt64(&second, 1) })

	clk.Set(now.Add(3 * time.Minute))

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&second) == 1
	}, time.Second, time.Millisecond)
	assert.Zero(t, atomic.LoadInt64(&first), "replaced watcher must not fire")
}

func TestRegistryConcurrentWatchAndCancel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	reg := countdown.NewRegistry(clk, time.Millisecond)
	defer reg.StopAll()

	// Watch, Cancel, and StopAll from racing goroutines; the registry must
	// stay consistent and a cancelled watcher must never fire afterwards.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				reg.Watch("session-1", now.Add(-time.Second), func() {})
				reg.Cancel("session-1")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			reg.StopAll()
		}
	}()
	wg.Wait()
}

func TestRegistryCancel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	reg := countdown.NewRegistry(clk, time.Millisecond)
	defer reg.StopAll()

	var fired int64
	reg.Watch("session-1", now.Add(time.Minute), func() { atomic.AddInt64(&fired, 1) })
	reg.Cancel("session-1")
	reg.Cancel("session-1") // unknown key is a no-op

	clk.Set(now.Add(time.Hour))
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt64(&fired))
}
