// ABOUTME: Color-scheme change notifier: Subscribe(callback) returns an unsubscribe func
// ABOUTME: Polls a Prober for changes; callbacks fire once per change, never retroactively

package scheme

import (
	"sync"
	"time"
)

// Notifier delivers color-scheme change events to subscribers. Callbacks
// receive the new dark flag once per reported change; the state at
// subscription time is never replayed.
type Notifier struct {
	mu       sync.Mutex
	prober   Prober
	handlers map[int]func(dark bool)
	nextID   int
	interval time.Duration
	last     bool
	haveLast bool
	running  bool
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewNotifier creates a Notifier over the given prober.
func NewNotifier(p Prober) *Notifier {
	return &Notifier{
		prober:   p,
		handlers: make(map[int]func(bool)),
		interval: 2 * time.Second,
		stopCh:   make(chan struct{}),
	}
}

// SetInterval overrides the default polling interval (2s).
func (n *Notifier) SetInterval(d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.interval = d
}

// Subscribe registers a callback and returns an unsubscribe function.
// After the unsubscribe function returns, the callback is never invoked again.
func (n *Notifier) Subscribe(fn func(dark bool)) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.handlers[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.handlers, id)
		n.mu.Unlock()
	}
}

// Start begins polling in a goroutine. The current state is snapshotted
// first so subscribers only see subsequent changes. Safe to call multiple
// times; subsequent calls are no-ops.
func (n *Notifier) Start() {
	n.mu.Lock()
	if n.running {
		n.mu.Unlock()
		return
	}
	n.running = true
	n.snapshotLocked()
	interval := n.interval
	n.mu.Unlock()

	go n.loop(interval)
}

// Stop halts the polling goroutine. Safe to call multiple times.
func (n *Notifier) Stop() {
	n.stopOnce.Do(func() {
		n.mu.Lock()
		n.running = false
		n.mu.Unlock()
		close(n.stopCh)
	})
}

// ForceCheck probes immediately, outside the polling cycle.
func (n *Notifier) ForceCheck() {
	n.check()
}

func (n *Notifier) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-n.stopCh:
			return
		case <-ticker.C:
			n.check()
		}
	}
}

// check probes the host and publishes when the dark flag changed since the
// last observation. The first observation only seeds the baseline.
func (n *Notifier) check() {
	dark, ok := n.prober.Probe()
	if !ok {
		return
	}

	n.mu.Lock()
	if n.haveLast && n.last == dark {
		n.mu.Unlock()
		return
	}
	changed := n.haveLast
	n.last = dark
	n.haveLast = true

	// Snapshot handlers so callbacks run without holding the lock.
	snapshot := make([]func(bool), 0, len(n.handlers))
	for _, h := range n.handlers {
		snapshot = append(snapshot, h)
	}
	n.mu.Unlock()

	if !changed {
		return
	}
	for _, h := range snapshot {
		h(dark)
	}
}

// snapshotLocked seeds the change baseline. Must hold mu.
func (n *Notifier) snapshotLocked() {
	if dark, ok := n.prober.Probe(); ok {
		n.last = dark
		n.haveLast = true
	}
}
