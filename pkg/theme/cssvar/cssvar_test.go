// ABOUTME: Tests for CSS custom-property helpers: Ref, RGBA, MapStore, Stylesheet
// ABOUTME: Verifies var() formatting, opacity rendering, trim-on-get, and sorted output

package cssvar

import (
	"strings"
	"testing"
)

func TestRef(t *testing.T) {
	t.Parallel()
	if got := Ref("x"); got != "var(--x)" {
		t.Errorf("Ref(x) = %q; want %q", got, "var(--x)")
	}
	if got := Ref("color-primary"); got != "var(--color-primary)" {
		t.Errorf("Ref(color-primary) = %q; want %q", got, "var(--color-primary)")
	}
}

func TestRGBA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		opacity float64
		want    string
	}{
		{"c", 0.5, "rgba(var(--c-rgb), 0.5)"},
		{"accent", 1, "rgba(var(--accent-rgb), 1)"},
		{"bg", 0.25, "rgba(var(--bg-rgb), 0.25)"},
		{"bg", 0, "rgba(var(--bg-rgb), 0)"},
	}
	for _, tt := range tests {
		if got := RGBA(tt.name, tt.opacity); got != tt.want {
			t.Errorf("RGBA(%q, %v) = %q; want %q", tt.name, tt.opacity, got, tt.want)
		}
	}
}

func TestMapStore_RoundTrip(t *testing.T) {
	t.Parallel()
	s := NewMapStore()
	s.Set("color-primary", "#00a4dc")
	if got := s.Get("color-primary"); got != "#00a4dc" {
		t.Errorf("Get() = %q; want %q", got, "#00a4dc")
	}
}

func TestMapStore_GetTrims(t *testing.T) {
	t.Parallel()
	s := NewMapStore()
	s.Set("pad", "  #fff  ")
	if got := s.Get("pad"); got != "#fff" {
		t.Errorf("Get() = %q; want trimmed %q", got, "#fff")
	}
}

func TestMapStore_UnsetReturnsEmpty(t *testing.T) {
	t.Parallel()
	s := NewMapStore()
	if got := s.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q; want empty", got)
	}
}

func TestMapStore_Overwrite(t *testing.T) {
	t.Parallel()
	s := NewMapStore()
	s.Set("k", "a")
	s.Set("k", "b")
	if got := s.Get("k"); got != "b" {
		t.Errorf("Get() = %q; want %q", got, "b")
	}
}

func TestStylesheet_SortedDeclarations(t *testing.T) {
	t.Parallel()
	s := NewMapStore()
	s.Set("zeta", "2")
	s.Set("alpha", "1")

	css := Stylesheet(s)
	if !strings.HasPrefix(css, ":root {") {
		t.Errorf("Stylesheet() should start with :root block, got %q", css)
	}
	alphaAt := strings.Index(css, "--alpha: 1;")
	zetaAt := strings.Index(css, "--zeta: 2;")
	if alphaAt == -1 || zetaAt == -1 {
		t.Fatalf("Stylesheet() missing declarations: %q", css)
	}
	if alphaAt > zetaAt {
		t.Errorf("Stylesheet() declarations not sorted: %q", css)
	}
}

func TestStylesheet_NonMapStore(t *testing.T) {
	t.Parallel()
	if got := Stylesheet(fakeStore{}); got != "" {
		t.Errorf("Stylesheet(non-MapStore) = %q; want empty", got)
	}
}

type fakeStore struct{}

func (fakeStore) Get(string) string { return "" }
func (fakeStore) Set(string, string) {}
