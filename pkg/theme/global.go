// ABOUTME: Process-wide active theme, published atomically on reload
// ABOUTME: Readers hold a stable *Theme snapshot until they re-read Current

package theme

import "sync/atomic"

var active atomic.Pointer[Theme]

func init() {
	active.Store(builtins["default"])
}

// Current returns the active theme snapshot. Never nil; before any Set
// the built-in default is active.
func Current() *Theme {
	return active.Load()
}

// Set publishes t as the active theme. Views that cache derived state
// keyed on the theme pointer see the swap on their next read.
func Set(t *Theme) {
	active.Store(t)
}
