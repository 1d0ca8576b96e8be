package countdown

import (
	"sync"
	"time"

	"hiburan-booking-gateway/internal/pkg/clock"
)

// Registry keeps at most one deadline watcher per booking session. Replacing
// a session's deadline stops the old watcher and starts a fresh one, the same
// way the payment page restarts its countdown when the deadline prop changes.
type Registry struct {
	clock    clock.Clock
	interval time.Duration

	mu       sync.Mutex
	watchers map[string]*Watcher
}

func NewRegistry(clk clock.Clock, interval time.Duration) *Registry {
	return &Registry{
		clock:    clk,
		interval: interval,
		watchers: make(map[string]*Watcher),
	}
}

// Watch starts watching a deadline for the given key. The callback runs at
// most once; the watcher removes itself from the registry after firing. The
// watcher is created and published under the lock, so Cancel and StopAll can
// never observe one they cannot stop.
func (r *Registry) Watch(key string, deadline time.Time, onExpire func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.watchers[key]; ok {
		delete(r.watchers, key)
		go old.Stop()
	}

	r.watchers[key] = NewWatcher(r.clock, deadline, r.interval, func() {
		r.remove(key)
		onExpire()
	})
}

// Cancel stops the watcher for a key, if any, without firing its callback.
func (r *Registry) Cancel(key string) {
	r.mu.Lock()
	w, ok := r.watchers[key]
	if ok {
		delete(r.watchers, key)
	}
	r.mu.Unlock()

	if ok {
		w.Stop()
	}
}

// StopAll cancels every active watcher. Called on shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	ws := make([]*Watcher, 0, len(r.watchers))
	for k, w := range r.watchers {
		ws = append(ws, w)
		delete(r.watchers, k)
	}
	r.mu.Unlock()

	for _, w := range ws {
		w.Stop()
	}
}

func (r *Registry) remove(key string) {
	r.mu.Lock()
	delete(r.watchers, key)
	r.mu.Unlock()
}
