// ABOUTME: Lesson view: header, video launch, description, resources, notes/comments tabs
// ABOUTME: Completion toggles on a session-local copy; the catalog stays untouched

package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lectern/lectern/internal/catalog"
	"github.com/lectern/lectern/internal/export"
	"github.com/lectern/lectern/internal/textwidth"
	"github.com/lectern/lectern/pkg/theme"
	"github.com/lectern/lectern/pkg/theme/cssvar"
)

// lessonTab selects the active bottom pane.
type lessonTab int

const (
	tabNotes lessonTab = iota
	tabComments
)

// LessonModel renders one lesson and owns its session state.
type LessonModel struct {
	deps     *AppDeps
	course   catalog.Course
	lesson   catalog.Lesson
	tab      lessonTab
	notes    NotesModel
	comments CommentsModel
	md       *MarkdownRenderer
	width    int
	status   string
}

func NewLessonModel(deps *AppDeps, course catalog.Course, lesson catalog.Lesson) LessonModel {
	return LessonModel{
		deps:     deps,
		course:   course,
		lesson:   lesson,
		notes:    NewNotesModel(),
		comments: NewCommentsModel(deps.Settings.EffectiveAuthor()),
		md:       NewMarkdownRenderer(deps.Mode),
		width:    80,
	}
}

// Course returns the course this view belongs to.
func (m LessonModel) Course() catalog.Course { return m.course }

// Lesson returns the session-local lesson copy, including any completion
// toggles made in this view.
func (m LessonModel) Lesson() catalog.Lesson { return m.lesson }

func (m LessonModel) SetWidth(w int) LessonModel {
	if w > 0 {
		m.width = w
	}
	return m
}

// SetMode swaps in a renderer for the new display mode. Export picks up
// the mode from the shared deps, so only the markdown cache needs
// rebuilding here.
func (m LessonModel) SetMode(mode theme.Mode) LessonModel {
	if m.md != nil && m.md.mode == mode {
		return m
	}
	m.md = NewMarkdownRenderer(mode)
	return m
}

func (m LessonModel) Update(msg tea.KeyMsg) (LessonModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		if m.tab == tabNotes {
			m.tab = tabComments
		} else {
			m.tab = tabNotes
		}
		return m, nil
	case tea.KeyCtrlP:
		return m, m.playCmd()
	case tea.KeyCtrlD:
		m.lesson.Completed = !m.lesson.Completed
		return m, nil
	case tea.KeyCtrlE:
		return m, m.exportCmd()
	}

	switch m.tab {
	case tabNotes:
		m.notes = m.notes.Update(msg)
	case tabComments:
		m.comments = m.comments.Update(msg)
	}
	return m, nil
}

// playCmd launches the external video player for this lesson.
func (m LessonModel) playCmd() tea.Cmd {
	url := m.lesson.VideoURL
	return func() tea.Msg {
		if err := m.deps.Player.Open(url); err != nil {
			return statusMsg(fmt.Sprintf("play failed: %v", err))
		}
		return statusMsg("opened " + url)
	}
}

// exportCmd writes the lesson page, including session notes and comments,
// to an HTML file in the working directory.
func (m LessonModel) exportCmd() tea.Cmd {
	page := export.LessonPage{
		Course:   m.course,
		Lesson:   m.lesson,
		Notes:    m.notes.Value(),
		Comments: m.comments.Comments(),
	}
	mode := m.deps.Mode
	name := fmt.Sprintf("%s-%s.html", m.course.ID, m.lesson.ID)
	return func() tea.Msg {
		f, err := os.Create(name)
		if err != nil {
			return statusMsg(fmt.Sprintf("export failed: %v", err))
		}
		defer f.Close()

		store := cssvar.NewMapStore()
		export.SeedVars(store, mode)
		if err := export.WriteLessonPage(f, page, store); err != nil {
			return statusMsg(fmt.Sprintf("export failed: %v", err))
		}
		return statusMsg("exported " + name)
	}
}

func (m LessonModel) View() string {
	s := Styles()
	var b strings.Builder

	mark := s.Pending.Render("○")
	if m.lesson.Completed {
		mark = s.Completed.Render("✓")
	}
	title := fmt.Sprintf("%s %s", mark, s.LessonTitle.Render(m.lesson.Title))
	b.WriteString(textwidth.TruncateToWidth(title, m.width))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(m.course.Title) + s.Duration.Render("  "+m.lesson.Duration))
	b.WriteString("\n\n")

	b.WriteString(s.Accent.Render("▶ " + m.lesson.VideoURL))
	b.WriteString(s.Muted.Render("  (ctrl+p to play)"))
	b.WriteString("\n")

	if m.lesson.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.md.Render(m.lesson.Description, m.width))
		b.WriteString("\n")
	}

	if len(m.lesson.Resources) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Bold.Render("Resources"))
		b.WriteString("\n")
		for _, r := range m.lesson.Resources {
			line := "  " + s.ResourceName.Render(r.Name) + " " + s.ResourceKind.Render("["+r.Kind+"]") + " " + s.Muted.Render(r.Link)
			b.WriteString(textwidth.TruncateToWidth(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.tabBar(s))
	b.WriteString("\n")
	switch m.tab {
	case tabNotes:
		b.WriteString(m.notes.View())
	case tabComments:
		b.WriteString(m.comments.View(m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render("tab: switch pane  ·  ctrl+d: done  ·  ctrl+e: export  ·  esc: back"))
	return b.String()
}

func (m LessonModel) tabBar(s ThemeStyles) string {
	notes, comments := s.TabInactive, s.TabInactive
	switch m.tab {
	case tabNotes:
		notes = s.TabActive
	case tabComments:
		comments = s.TabActive
	}
	return notes.Render(" Notes ") + " " + comments.Render(fmt.Sprintf(" Comments (%d) ", len(m.comments.Comments())))
}
