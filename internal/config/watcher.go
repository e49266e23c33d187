// ABOUTME: Polling-based watcher for the config files, driving hot reload
// ABOUTME: Compares mtime and size fingerprints on an interval; no external deps

package config

import (
	"os"
	"sync"
	"time"
)

// fingerprint captures the observable state of one watched file.
type fingerprint struct {
	exists  bool
	modTime time.Time
	size    int64
}

// Watcher polls a fixed set of config file paths and invokes onChange when
// any of them appears, disappears, or changes.
type Watcher struct {
	paths    []string
	onChange func()
	interval time.Duration
	seen     map[string]fingerprint
	stopCh   chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a watcher over the given paths. The paths do not need
// to exist yet; a file created later counts as a change.
func NewWatcher(paths []string, onChange func()) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		interval: 2 * time.Second,
		seen:     make(map[string]fingerprint),
		stopCh:   make(chan struct{}),
	}
}

// SetInterval overrides the default 2s polling interval. Takes effect on
// the next Start.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = d
}

// Start snapshots the current file states and begins polling. Calling
// Start on a running watcher is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.rescanLocked()
	interval := w.interval
	w.mu.Unlock()

	go w.poll(interval)
}

// Stop halts polling. Safe to call repeatedly and concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.stopCh)
	})
}

// ForceCheck runs one comparison immediately, outside the polling cycle.
func (w *Watcher) ForceCheck() {
	w.mu.Lock()
	changed := w.diffLocked()
	if changed {
		w.rescanLocked()
	}
	w.mu.Unlock()

	if changed {
		go w.onChange()
	}
}

func (w *Watcher) poll(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.mu.Lock()
			changed := w.diffLocked()
			if changed {
				w.rescanLocked()
			}
			w.mu.Unlock()

			if changed {
				w.onChange()
			}
		}
	}
}

// diffLocked reports whether any path's fingerprint differs from the last
// rescan. Caller holds mu.
func (w *Watcher) diffLocked() bool {
	for _, path := range w.paths {
		if w.stat(path) != w.seen[path] {
			return true
		}
	}
	return false
}

// rescanLocked records the current fingerprints. Caller holds mu.
func (w *Watcher) rescanLocked() {
	for _, path := range w.paths {
		w.seen[path] = w.stat(path)
	}
}

func (w *Watcher) stat(path string) fingerprint {
	info, err := os.Stat(path)
	if err != nil {
		return fingerprint{}
	}
	return fingerprint{exists: true, modTime: info.ModTime(), size: info.Size()}
}
