// ABOUTME: Course catalog list: the app's home view
// ABOUTME: Enter opens the selected course at its first lesson

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lectern/lectern/internal/catalog"
	"github.com/lectern/lectern/internal/textwidth"
)

// CourseListModel lists the catalog's courses.
type CourseListModel struct {
	courses []catalog.Course
	cursor  int
}

func NewCourseListModel(c *catalog.Catalog) CourseListModel {
	return CourseListModel{courses: c.Courses()}
}

// Update handles list navigation. Enter emits a navigateMsg with an empty
// lesson id so the course opens at its first lesson.
func (m CourseListModel) Update(msg tea.KeyMsg) (CourseListModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.courses)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		if len(m.courses) == 0 {
			return m, nil
		}
		id := m.courses[m.cursor].ID
		return m, func() tea.Msg { return navigateMsg{courseID: id} }
	default:
		switch msg.String() {
		case "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "j":
			if m.cursor < len(m.courses)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m CourseListModel) View() string {
	s := Styles()
	var b strings.Builder
	b.WriteString(s.Bold.Render("Courses"))
	b.WriteString("\n\n")

	if len(m.courses) == 0 {
		b.WriteString(s.Muted.Render("The catalog is empty."))
		b.WriteString("\n")
		return b.String()
	}

	// Pad titles so the lesson counts line up in a column.
	titleWidth := 0
	for _, course := range m.courses {
		if w := textwidth.VisibleWidth(course.Title); w > titleWidth {
			titleWidth = w
		}
	}

	for i, course := range m.courses {
		count := fmt.Sprintf("%d lessons", len(course.Lessons))
		if len(course.Lessons) == 1 {
			count = "1 lesson"
		}
		title := textwidth.PadToWidth(course.Title, titleWidth)
		if i == m.cursor {
			b.WriteString(s.Selection.Render("› " + title))
		} else {
			b.WriteString("  " + title)
		}
		b.WriteString("  " + s.Muted.Render(count))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Muted.Render("enter: open  ·  /: quick switch  ·  q: quit"))
	return b.String()
}
