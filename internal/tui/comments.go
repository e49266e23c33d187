// ABOUTME: Comments tab: per-lesson comment list plus a single-line composer
// ABOUTME: Enter posts; whitespace-only input is rejected without a new entry

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lectern/lectern/internal/catalog"
	"github.com/lectern/lectern/internal/textwidth"
)

// CommentsModel holds the comment thread for one lesson view. Comments are
// session-local; leaving the lesson discards them.
type CommentsModel struct {
	author   string
	comments []catalog.Comment
	input    string
}

func NewCommentsModel(author string) CommentsModel {
	return CommentsModel{author: author}
}

// Comments returns the posted comments in insertion order.
func (m CommentsModel) Comments() []catalog.Comment { return m.comments }

func (m CommentsModel) Update(msg tea.KeyMsg) CommentsModel {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.input += string(msg.Runes)
	case tea.KeyBackspace:
		if m.input != "" {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyEnter:
		if c, ok := catalog.NewComment(m.author, m.input); ok {
			m.comments = append(m.comments, c)
		}
		m.input = ""
	}
	return m
}

func (m CommentsModel) View(width int) string {
	s := Styles()
	var b strings.Builder

	if len(m.comments) == 0 {
		b.WriteString(s.Muted.Render("No comments yet."))
		b.WriteString("\n")
	}
	for _, c := range m.comments {
		meta := s.CommentAuthor.Render(c.Author) + s.CommentTime.Render(" · "+c.CreatedAt.Format("15:04"))
		b.WriteString(textwidth.TruncateToWidth(meta, width))
		b.WriteString("\n")
		b.WriteString(c.Text)
		b.WriteString("\n\n")
	}

	b.WriteString(s.Prompt.Render("> "))
	b.WriteString(m.input)
	b.WriteString(s.Prompt.Render("▌"))
	return b.String()
}
