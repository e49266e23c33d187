// ABOUTME: Pre-sets the lipgloss dark-background answer before BubbleTea's init runs
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// Answer the background question up front so lipgloss never sends
	// OSC 10/11 terminal queries. BubbleTea's own init() calls
	// lipgloss.HasDarkBackground(); with the value already set, the
	// sync.Once that fires the query is skipped and no async query
	// response can leak into the UI.
	//
	// This package must NOT import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first. The real
	// light/dark decision is made by the scheme prober, which queries
	// the terminal through termenv and never reads this preset.
	lipgloss.SetHasDarkBackground(true)
}
