// ABOUTME: Tests for the course list view
// ABOUTME: Covers cursor movement, selection messages, and column alignment

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lectern/lectern/internal/catalog"
	"github.com/lectern/lectern/internal/textwidth"
)

func TestCourseList_CursorSelectsCourse(t *testing.T) {
	t.Parallel()
	m := NewCourseListModel(catalog.Builtin())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok {
		t.Fatalf("message = %T; want navigateMsg", cmd())
	}
	if nav.courseID != "go-concurrency" {
		t.Errorf("courseID = %q; want %q", nav.courseID, "go-concurrency")
	}
}

func TestCourseList_ColumnsAligned(t *testing.T) {
	t.Parallel()
	m := NewCourseListModel(catalog.Builtin())
	view := m.View()

	widest := 0
	for _, c := range catalog.Builtin().Courses() {
		if w := textwidth.VisibleWidth(c.Title); w > widest {
			widest = w
		}
	}
	padded := textwidth.PadToWidth("Concurrency in Go", widest)
	if !strings.Contains(view, padded) {
		t.Errorf("shorter title not padded to the widest column:\n%s", view)
	}
}

func TestCourseList_EmptyCatalog(t *testing.T) {
	t.Parallel()
	m := NewCourseListModel(catalog.New(nil))
	if !strings.Contains(m.View(), "empty") {
		t.Error("empty catalog view missing placeholder")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter on an empty list should be a no-op")
	}
}
