package countdown

import (
	"sync"
	"time"

	"hiburan-booking-gateway/internal/pkg/clock"
)

// Watcher fires a callback once when a deadline passes. Every tick recomputes
// the remaining time from the injected clock rather than counting ticks, so
// the countdown self-corrects against scheduler jitter.
//
// NewWatcher starts watching immediately; there is no separate start step, so
// Stop can always wait for the watch goroutine without coordinating on extra
// state.
type Watcher struct {
	clock    clock.Clock
	deadline time.Time
	interval time.Duration
	onExpire func()

	expireOnce sync.Once
	stopOnce   sync.Once
	stop       chan struct{}
	done       chan struct{}
}

// NewWatcher begins watching the deadline. It is checked once immediately, so
// a deadline already in the past fires the callback without waiting a tick,
// then re-checked every interval.
func NewWatcher(clk clock.Clock, deadline time.Time, interval time.Duration, onExpire func()) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	w := &Watcher{
		clock:    clk,
		deadline: deadline,
		interval: interval,
		onExpire: onExpire,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Watcher) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		default:
		}

		if w.fireIfExpired() {
			return
		}

		select {
		case <-ticker.C:
		case <-w.stop:
			return
		}
	}
}

// Stop tears the watcher down. A callback that has not fired by the time
// Stop returns will never fire. Safe to call more than once and after expiry.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
	<-w.done
}

// Remaining reports the current snapshot against the watcher's clock.
func (w *Watcher) Remaining() Snapshot {
	return Compute(w.deadline, w.clock.Now())
}

func (w *Watcher) fireIfExpired() bool {
	if w.clock.Now().Before(w.deadline) {
		return false
	}
	w.expireOnce.Do(w.onExpire)
	return true
}
