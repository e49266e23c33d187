// ABOUTME: Tests for Mode parsing and mode-dependent value selection
// ABOUTME: Verifies "dark" maps to Dark and everything else behaves as Light

package theme

import "testing"

func TestParseMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Mode
	}{
		{"dark", Dark},
		{"light", Light},
		{"", Light},
		{"DARK", Light}, // case-sensitive by contract
		{"solarized", Light},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()
	if got := Select(Dark, "a", "b"); got != "b" {
		t.Errorf("Select(Dark, a, b) = %q; want %q", got, "b")
	}
	if got := Select(Light, "a", "b"); got != "a" {
		t.Errorf("Select(Light, a, b) = %q; want %q", got, "a")
	}
}

func TestSelect_NonStringValues(t *testing.T) {
	t.Parallel()
	if got := Select(Dark, 1, 2); got != 2 {
		t.Errorf("Select(Dark, 1, 2) = %d; want 2", got)
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()
	if Dark.String() != "dark" {
		t.Errorf("Dark.String() = %q; want %q", Dark.String(), "dark")
	}
	if Light.String() != "light" {
		t.Errorf("Light.String() = %q; want %q", Light.String(), "light")
	}
}
