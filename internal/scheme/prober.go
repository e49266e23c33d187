// ABOUTME: Host color-scheme probing with modern (terminal query) and legacy (env) paths
// ABOUTME: PrefersDark degrades to false when no probe facility is available

package scheme

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Prober reports whether the host prefers a dark color scheme.
// The second return value is false when the probe facility is unavailable.
type Prober interface {
	Probe() (dark bool, ok bool)
}

// terminalProber queries the terminal background directly through termenv.
// It deliberately bypasses lipgloss.HasDarkBackground: that value can be
// preset at startup (see internal/termfix) and would then be returned
// unconditionally instead of reflecting the host.
type terminalProber struct {
	isTTY     func() bool
	queryDark func() bool
}

func newTerminalProber() terminalProber {
	return terminalProber{
		isTTY: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		queryDark: func() bool {
			return termenv.NewOutput(os.Stdout).HasDarkBackground()
		},
	}
}

func (p terminalProber) Probe() (bool, bool) {
	if !p.isTTY() {
		return false, false
	}
	return p.queryDark(), true
}

// envProber reads the legacy COLORFGBG variable ("fg;bg", background last).
// Backgrounds 0-6 and 8 are conventionally dark.
type envProber struct{}

func (envProber) Probe() (bool, bool) {
	v := os.Getenv("COLORFGBG")
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false, false
	}
	return bg <= 6 || bg == 8, true
}

// unavailableProber always reports no facility.
type unavailableProber struct{}

func (unavailableProber) Probe() (bool, bool) { return false, false }

// DefaultProber selects the probe path at startup: the terminal query when
// stdout is a TTY, the COLORFGBG fallback when the variable is set, and an
// always-unavailable prober otherwise.
func DefaultProber() Prober {
	p := newTerminalProber()
	if p.isTTY() {
		return p
	}
	if os.Getenv("COLORFGBG") != "" {
		return envProber{}
	}
	return unavailableProber{}
}

// PrefersDark probes the host with the default prober. Returns false when
// the probe facility is unavailable.
func PrefersDark() bool {
	dark, ok := DefaultProber().Probe()
	return dark && ok
}
