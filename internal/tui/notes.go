// ABOUTME: Notes tab: a free-form text buffer scoped to the current session
// ABOUTME: Saving is a local echo only; nothing is persisted

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// NotesModel is the editable notes buffer for one lesson view.
type NotesModel struct {
	buffer string
	status string
}

func NewNotesModel() NotesModel {
	return NotesModel{}
}

// Value returns the current buffer contents.
func (m NotesModel) Value() string { return m.buffer }

func (m NotesModel) Update(msg tea.KeyMsg) NotesModel {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.buffer += string(msg.Runes)
		m.status = ""
	case tea.KeyEnter:
		m.buffer += "\n"
		m.status = ""
	case tea.KeyBackspace:
		if m.buffer != "" {
			r := []rune(m.buffer)
			m.buffer = string(r[:len(r)-1])
		}
		m.status = ""
	case tea.KeyCtrlS:
		// Notes live for the session only; saving just acknowledges.
		m.status = "notes kept for this session"
	}
	return m
}

func (m NotesModel) View() string {
	s := Styles()
	var b strings.Builder
	if m.buffer == "" {
		b.WriteString(s.Muted.Render("Type to take notes for this lesson."))
	} else {
		b.WriteString(m.buffer)
		b.WriteString(s.Prompt.Render("▌"))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(s.Success.Render(m.status))
	}
	return b.String()
}
