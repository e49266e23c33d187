// ABOUTME: Comment record posted against a lesson during a session
// ABOUTME: Ids are time-derived; records live only in view state, never persisted

package catalog

import (
	"strings"
	"time"
)

// Comment is a user-submitted remark on a lesson. It exists only for the
// lifetime of the view that created it.
type Comment struct {
	ID        int64
	Author    string
	CreatedAt time.Time
	Text      string
}

// NewComment builds a comment with a time-derived id and trimmed text.
// Returns false for empty or whitespace-only text; callers treat that as a
// silent no-op, not an error.
func NewComment(author, text string) (Comment, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Comment{}, false
	}
	now := time.Now()
	return Comment{
		ID:        now.UnixMilli(),
		Author:    author,
		CreatedAt: now,
		Text:      trimmed,
	}, true
}
