// ABOUTME: Tests for player command-line construction and empty-URL rejection
// ABOUTME: Does not start real processes; argv building is tested directly

package player

import (
	"runtime"
	"testing"
)

func TestArgv_ConfiguredCommandWithFlags(t *testing.T) {
	t.Parallel()
	l := New("mpv --fullscreen")
	got := l.argv("https://example.com/v.mp4")
	want := []string{"mpv", "--fullscreen", "https://example.com/v.mp4"}
	if len(got) != len(want) {
		t.Fatalf("argv = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("argv[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestArgv_DefaultUsesOSOpener(t *testing.T) {
	t.Parallel()
	l := New("")
	got := l.argv("https://example.com/v.mp4")
	if len(got) < 2 {
		t.Fatalf("argv = %v; want opener + url", got)
	}
	if runtime.GOOS == "linux" && got[0] != "xdg-open" {
		t.Errorf("argv[0] = %q; want xdg-open", got[0])
	}
	if got[len(got)-1] != "https://example.com/v.mp4" {
		t.Errorf("last arg = %q; want the URL", got[len(got)-1])
	}
}

func TestOpen_EmptyURL(t *testing.T) {
	t.Parallel()
	l := New("mpv")
	if err := l.Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}
