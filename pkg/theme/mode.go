// ABOUTME: Light/dark display mode flag with a Select helper for mode-dependent values
// ABOUTME: ParseMode treats any value other than "dark" as Light

package theme

// Mode is the light/dark display mode flag driving style selection.
type Mode int

const (
	// Light is the default display mode.
	Light Mode = iota
	// Dark selects dark-mode variants.
	Dark
)

// String returns "dark" or "light".
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode maps a mode name to a Mode. Anything other than "dark"
// behaves as Light, including the empty string.
func ParseMode(s string) Mode {
	if s == "dark" {
		return Dark
	}
	return Light
}

// Select returns darkVal when mode is Dark and lightVal otherwise.
func Select[T any](m Mode, lightVal, darkVal T) T {
	if m == Dark {
		return darkVal
	}
	return lightVal
}
