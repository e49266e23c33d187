// ABOUTME: Quick-switch overlay: fuzzy-filtered jump to any lesson in the catalog
// ABOUTME: Emits switchSelectMsg on enter, switchDismissMsg on esc

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lectern/lectern/internal/catalog"
	"github.com/sahilm/fuzzy"
)

// switchSelectMsg is emitted when the user picks an entry.
type switchSelectMsg struct {
	courseID string
	lessonID string
}

// switchDismissMsg is emitted when the overlay is closed without a pick.
type switchDismissMsg struct{}

// switchEntry is one selectable lesson in the switcher.
type switchEntry struct {
	courseID string
	lessonID string
	label    string
}

// entrySource adapts []switchEntry to fuzzy.Source.
type entrySource []switchEntry

func (s entrySource) String(i int) string { return s[i].label }
func (s entrySource) Len() int            { return len(s) }

// SwitcherModel is the quick-switch palette over all lessons.
type SwitcherModel struct {
	entries  entrySource
	filtered []int
	query    string
	cursor   int
}

var _ tea.Model = SwitcherModel{}

// NewSwitcherModel builds a switcher over every lesson in the catalog.
func NewSwitcherModel(c *catalog.Catalog) SwitcherModel {
	var entries entrySource
	for _, course := range c.Courses() {
		for _, l := range course.Lessons {
			entries = append(entries, switchEntry{
				courseID: course.ID,
				lessonID: l.ID,
				label:    fmt.Sprintf("%s › %s", course.Title, l.Title),
			})
		}
	}
	m := SwitcherModel{entries: entries}
	m.refilter()
	return m
}

func (m SwitcherModel) Init() tea.Cmd { return nil }

func (m SwitcherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyEsc:
		return m, func() tea.Msg { return switchDismissMsg{} }
	case tea.KeyEnter:
		if len(m.filtered) == 0 {
			return m, func() tea.Msg { return switchDismissMsg{} }
		}
		e := m.entries[m.filtered[m.cursor]]
		return m, func() tea.Msg {
			return switchSelectMsg{courseID: e.courseID, lessonID: e.lessonID}
		}
	case tea.KeyUp, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown, tea.KeyCtrlN:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case tea.KeyBackspace:
		if m.query != "" {
			r := []rune(m.query)
			m.query = string(r[:len(r)-1])
			m.refilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(key.Runes)
		m.refilter()
	}
	return m, nil
}

// refilter recomputes the visible entries for the current query and
// clamps the cursor.
func (m *SwitcherModel) refilter() {
	m.filtered = m.filtered[:0]
	if m.query == "" {
		for i := range m.entries {
			m.filtered = append(m.filtered, i)
		}
	} else {
		for _, match := range fuzzy.FindFrom(m.query, m.entries) {
			m.filtered = append(m.filtered, match.Index)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m SwitcherModel) View() string {
	s := Styles()
	var b strings.Builder
	b.WriteString(s.Prompt.Render("go to: "))
	b.WriteString(m.query)
	b.WriteString(s.Prompt.Render("▌"))
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(s.Muted.Render("  no matches"))
		b.WriteString("\n")
		return b.String()
	}
	for i, idx := range m.filtered {
		label := m.entries[idx].label
		if i == m.cursor {
			b.WriteString(s.Selection.Render("› " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	return b.String()
}
