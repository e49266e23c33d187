// ABOUTME: Tests for settings merge and JSON loading
// ABOUTME: Covers project-over-global precedence and default author label

package config

import "testing"

func TestMerge_ProjectOverridesGlobal(t *testing.T) {
	t.Parallel()
	global := &Settings{Theme: "light", Player: "mpv", Author: "Alice"}
	project := &Settings{Theme: "dark", Verbose: true}

	got := merge(global, project)
	if got.Theme != "dark" {
		t.Errorf("Theme = %q; want %q", got.Theme, "dark")
	}
	if got.Player != "mpv" {
		t.Errorf("Player = %q; want global %q", got.Player, "mpv")
	}
	if got.Author != "Alice" {
		t.Errorf("Author = %q; want global %q", got.Author, "Alice")
	}
	if !got.Verbose {
		t.Error("Verbose = false; want true from project")
	}
}

func TestMerge_NilInputs(t *testing.T) {
	t.Parallel()
	if got := merge(nil, nil); got == nil {
		t.Fatal("merge(nil, nil) returned nil")
	}
	got := merge(nil, &Settings{Mode: "dark"})
	if got.Mode != "dark" {
		t.Errorf("Mode = %q; want %q", got.Mode, "dark")
	}
	got = merge(&Settings{Mode: "light"}, nil)
	if got.Mode != "light" {
		t.Errorf("Mode = %q; want %q", got.Mode, "light")
	}
}

func TestEffectiveAuthor(t *testing.T) {
	t.Parallel()
	s := &Settings{}
	if got := s.EffectiveAuthor(); got != "You" {
		t.Errorf("EffectiveAuthor() = %q; want %q", got, "You")
	}
	s.Author = "Bram"
	if got := s.EffectiveAuthor(); got != "Bram" {
		t.Errorf("EffectiveAuthor() = %q; want %q", got, "Bram")
	}
}

func TestMerge_EmptyProjectKeepsGlobal(t *testing.T) {
	t.Parallel()
	global := &Settings{Theme: "dark", Mode: "dark", CoursesDir: "/srv/courses"}
	got := merge(global, &Settings{})
	if got.Theme != "dark" || got.Mode != "dark" || got.CoursesDir != "/srv/courses" {
		t.Errorf("merge lost global values: %+v", got)
	}
}
