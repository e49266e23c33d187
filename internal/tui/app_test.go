// ABOUTME: Tests for the root model: navigation resolution and view states
// ABOUTME: Covers not-found states, first-lesson defaults, and state retention

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lectern/lectern/internal/catalog"
	"github.com/lectern/lectern/internal/config"
	"github.com/lectern/lectern/internal/player"
	"github.com/lectern/lectern/pkg/theme"
)

func testDeps() *AppDeps {
	return &AppDeps{
		Catalog:  catalog.Builtin(),
		Settings: &config.Settings{Author: "tester"},
		Player:   player.New("true"),
		Mode:     theme.Dark,
		Version:  "test",
	}
}

func TestApp_StartsOnCourseList(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "", "")
	if m.state != viewCourseList {
		t.Errorf("state = %d; want viewCourseList", m.state)
	}
	if !strings.Contains(m.View(), "Courses") {
		t.Error("course list view missing heading")
	}
}

func TestApp_UnknownCourse(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "no-such-course", "")
	if m.state != viewCourseNotFound {
		t.Fatalf("state = %d; want viewCourseNotFound", m.state)
	}
	view := m.View()
	if !strings.Contains(view, "Course Not Found") {
		t.Errorf("view missing not-found heading: %q", view)
	}
	if !strings.Contains(view, "no-such-course") {
		t.Error("view should name the missing course id")
	}
}

func TestApp_EmptyLessonDefaultsToFirst(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "web-dev-101", "")
	if m.state != viewLesson {
		t.Fatalf("state = %d; want viewLesson", m.state)
	}
	if got := m.lesson.Lesson().ID; got != "lesson-1" {
		t.Errorf("lesson = %q; want %q", got, "lesson-1")
	}
}

func TestApp_LessonByID(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "web-dev-101", "lesson-2")
	if got := m.lesson.Lesson().Title; got != "Styling with CSS" {
		t.Errorf("lesson title = %q; want %q", got, "Styling with CSS")
	}
}

func TestApp_UnknownLesson(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "web-dev-101", "lesson-99")
	if m.state != viewLessonNotFound {
		t.Fatalf("state = %d; want viewLessonNotFound", m.state)
	}
	if !strings.Contains(m.View(), "Lesson Not Found") {
		t.Error("view missing not-found heading")
	}
}

func TestApp_SameTargetKeepsSessionState(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "web-dev-101", "lesson-1")

	updated, _ := m.Update(keyRunes("abc"))
	m = updated.(AppModel)
	if got := m.lesson.notes.Value(); got != "abc" {
		t.Fatalf("notes = %q; want %q", got, "abc")
	}

	updated, _ = m.Update(navigateMsg{courseID: "web-dev-101", lessonID: "lesson-1"})
	m = updated.(AppModel)
	if got := m.lesson.notes.Value(); got != "abc" {
		t.Errorf("re-navigating to the same lesson reset notes: %q", got)
	}

	updated, _ = m.Update(navigateMsg{courseID: "web-dev-101", lessonID: "lesson-2"})
	m = updated.(AppModel)
	if got := m.lesson.notes.Value(); got != "" {
		t.Errorf("navigating to a new lesson kept old notes: %q", got)
	}
}

func TestApp_CompletionTogglesLocally(t *testing.T) {
	t.Parallel()
	deps := testDeps()
	m := NewAppModel(deps, "web-dev-101", "lesson-1")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = updated.(AppModel)
	if !m.lesson.Lesson().Completed {
		t.Fatal("first toggle should mark completed")
	}

	course, _ := deps.Catalog.Course("web-dev-101")
	if course.Lessons[0].Completed {
		t.Error("toggle leaked into the catalog")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = updated.(AppModel)
	if m.lesson.Lesson().Completed {
		t.Error("second toggle should restore the original state")
	}
}

func TestApp_Comments(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "web-dev-101", "lesson-1")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(AppModel)
	updated, _ = m.Update(keyRunes("hello"))
	m = updated.(AppModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(AppModel)

	if got := len(m.lesson.comments.Comments()); got != 1 {
		t.Fatalf("comments = %d; want 1", got)
	}
	if got := m.lesson.comments.Comments()[0].Text; got != "hello" {
		t.Errorf("comment text = %q; want %q", got, "hello")
	}

	updated, _ = m.Update(keyRunes("   "))
	m = updated.(AppModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(AppModel)

	if got := len(m.lesson.comments.Comments()); got != 1 {
		t.Errorf("whitespace-only comment was added, comments = %d", got)
	}
}

func TestApp_ModeChangeReachesRenderer(t *testing.T) {
	t.Parallel()
	deps := testDeps()
	m := NewAppModel(deps, "web-dev-101", "lesson-1")
	if m.lesson.md.mode != theme.Dark {
		t.Fatalf("startup renderer mode = %v; want Dark", m.lesson.md.mode)
	}

	updated, _ := m.Update(ModeChangedMsg{Mode: theme.Light})
	m = updated.(AppModel)

	if deps.Mode != theme.Light {
		t.Errorf("deps.Mode = %v; want Light after mode change", deps.Mode)
	}
	if m.lesson.md.mode != theme.Light {
		t.Errorf("renderer mode = %v; want Light after mode change", m.lesson.md.mode)
	}
}

func TestApp_EscReturnsToCourseList(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "web-dev-101", "lesson-1")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(AppModel)
	if m.state != viewCourseList {
		t.Errorf("state = %d; want viewCourseList", m.state)
	}
}

func TestApp_NotFoundRecovers(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "no-such-course", "")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(AppModel)
	if m.state != viewCourseList {
		t.Errorf("state = %d; want viewCourseList", m.state)
	}
}

func TestApp_SwitcherOverlay(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "", "")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m = updated.(AppModel)
	if m.switcher == nil {
		t.Fatal("ctrl+k did not open the switcher")
	}

	updated, _ = m.Update(switchSelectMsg{courseID: "web-dev-101", lessonID: "lesson-3"})
	m = updated.(AppModel)
	if m.switcher != nil {
		t.Error("selection should close the switcher")
	}
	if m.state != viewLesson || m.lesson.Lesson().ID != "lesson-3" {
		t.Errorf("selection did not navigate: state=%d lesson=%q", m.state, m.lesson.Lesson().ID)
	}
}

func TestApp_CourseListEnterOpensFirstLesson(t *testing.T) {
	t.Parallel()
	m := NewAppModel(testDeps(), "", "")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(AppModel)
	if cmd == nil {
		t.Fatal("enter on the course list produced no command")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok {
		t.Fatalf("message = %T; want navigateMsg", cmd())
	}
	if nav.lessonID != "" {
		t.Errorf("lessonID = %q; want empty (first lesson)", nav.lessonID)
	}
	updated, _ = m.Update(nav)
	m = updated.(AppModel)
	if m.state != viewLesson || m.lesson.Lesson().ID != "lesson-1" {
		t.Errorf("enter did not open the first lesson: state=%d", m.state)
	}
}
