// ABOUTME: Terminal views for unresolvable navigation targets
// ABOUTME: Course-not-found and lesson-not-found with a recovery hint

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CourseNotFoundModel is shown when a requested course id does not exist.
// It is a terminal state: nothing resolves until the user navigates away.
type CourseNotFoundModel struct {
	CourseID string
}

var _ tea.Model = CourseNotFoundModel{}

func (m CourseNotFoundModel) Init() tea.Cmd { return nil }

func (m CourseNotFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m CourseNotFoundModel) View() string {
	s := Styles()
	var b strings.Builder
	b.WriteString(s.Error.Render("Course Not Found"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("No course with id %q exists in the catalog.\n", m.CourseID))
	b.WriteString(s.Muted.Render("esc: back to courses  ·  /: quick switch"))
	return b.String()
}

// LessonNotFoundModel is shown when the course resolved but the lesson
// id did not.
type LessonNotFoundModel struct {
	CourseID string
	LessonID string
}

var _ tea.Model = LessonNotFoundModel{}

func (m LessonNotFoundModel) Init() tea.Cmd { return nil }

func (m LessonNotFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m LessonNotFoundModel) View() string {
	s := Styles()
	var b strings.Builder
	b.WriteString(s.Error.Render("Lesson Not Found"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Course %q has no lesson with id %q.\n", m.CourseID, m.LessonID))
	b.WriteString(s.Muted.Render("esc: back to courses  ·  /: quick switch"))
	return b.String()
}
