// ABOUTME: Root Bubble Tea model: view states, navigation, and the switcher overlay
// ABOUTME: Navigation re-resolves only when the target id actually changes

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lectern/lectern/pkg/theme"
)

// viewState selects which body view the app renders.
type viewState int

const (
	viewCourseList viewState = iota
	viewLesson
	viewCourseNotFound
	viewLessonNotFound
)

// navigateMsg asks the app to show a lesson. An empty lessonID means the
// course's first lesson.
type navigateMsg struct {
	courseID string
	lessonID string
}

// statusMsg updates the footer status line.
type statusMsg string

// ModeChangedMsg announces the display mode resolved after a config
// reload or a host scheme change. Handling it inside the update loop
// keeps the shared deps mutation single-threaded.
type ModeChangedMsg struct {
	Mode theme.Mode
}

// AppModel is the root model.
type AppModel struct {
	deps   *AppDeps
	state  viewState
	width  int
	height int

	courseList CourseListModel
	lesson     LessonModel
	courseNF   CourseNotFoundModel
	lessonNF   LessonNotFoundModel
	switcher   *SwitcherModel

	status string
}

var _ tea.Model = AppModel{}

// NewAppModel builds the root model. When startCourse is non-empty the app
// opens directly on that course (and lesson, when given) instead of the
// course list.
func NewAppModel(deps *AppDeps, startCourse, startLesson string) AppModel {
	m := AppModel{
		deps:       deps,
		courseList: NewCourseListModel(deps.Catalog),
		width:      80,
		height:     24,
	}
	if startCourse != "" {
		m = m.navigate(startCourse, startLesson)
	}
	return m
}

func (m AppModel) Init() tea.Cmd { return nil }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lesson = m.lesson.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		return m.navigate(msg.courseID, msg.lessonID), nil

	case switchSelectMsg:
		m.switcher = nil
		return m.navigate(msg.courseID, msg.lessonID), nil

	case switchDismissMsg:
		m.switcher = nil
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case ModeChangedMsg:
		m.deps.Mode = msg.Mode
		m.lesson = m.lesson.SetMode(msg.Mode)
		return m, nil
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.switcher != nil {
		updated, cmd := m.switcher.Update(msg)
		sw := updated.(SwitcherModel)
		m.switcher = &sw
		return m, cmd
	}

	if msg.Type == tea.KeyCtrlK {
		m.openSwitcher()
		return m, nil
	}

	switch m.state {
	case viewCourseList:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "/":
			m.openSwitcher()
			return m, nil
		}
		var cmd tea.Cmd
		m.courseList, cmd = m.courseList.Update(msg)
		return m, cmd

	case viewCourseNotFound, viewLessonNotFound:
		switch msg.String() {
		case "esc", "q":
			m.state = viewCourseList
			return m, nil
		case "/":
			m.openSwitcher()
			return m, nil
		}
		return m, nil

	case viewLesson:
		if msg.Type == tea.KeyEsc {
			m.state = viewCourseList
			m.status = ""
			return m, nil
		}
		var cmd tea.Cmd
		m.lesson, cmd = m.lesson.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *AppModel) openSwitcher() {
	sw := NewSwitcherModel(m.deps.Catalog)
	m.switcher = &sw
}

// navigate resolves a course/lesson target into the next view state. When
// the target is the lesson already on screen, the current view (and its
// notes, comments, and completion state) is kept as-is.
func (m AppModel) navigate(courseID, lessonID string) AppModel {
	m.status = ""

	course, ok := m.deps.Catalog.Course(courseID)
	if !ok {
		m.state = viewCourseNotFound
		m.courseNF = CourseNotFoundModel{CourseID: courseID}
		return m
	}

	lesson, ok := course.Lesson(lessonID)
	if !ok {
		m.state = viewLessonNotFound
		m.lessonNF = LessonNotFoundModel{CourseID: courseID, LessonID: lessonID}
		return m
	}

	if m.state == viewLesson &&
		m.lesson.Course().ID == course.ID &&
		m.lesson.Lesson().ID == lesson.ID {
		return m
	}

	m.state = viewLesson
	m.lesson = NewLessonModel(m.deps, course, lesson).SetWidth(m.width)
	return m
}

func (m AppModel) View() string {
	s := Styles()
	var b strings.Builder

	header := s.Primary.Render("lectern")
	if m.deps.Version != "" {
		header += s.Muted.Render(" " + m.deps.Version)
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.switcher != nil {
		b.WriteString(m.switcher.View())
		return b.String()
	}

	switch m.state {
	case viewCourseList:
		b.WriteString(m.courseList.View())
	case viewLesson:
		b.WriteString(m.lesson.View())
	case viewCourseNotFound:
		b.WriteString(m.courseNF.View())
	case viewLessonNotFound:
		b.WriteString(m.lessonNF.View())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(s.Info.Render(m.status))
	}
	return b.String()
}
