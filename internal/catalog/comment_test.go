// ABOUTME: Tests for comment creation: trimming, rejection, and id generation
// ABOUTME: Whitespace-only text must be rejected as a silent no-op

package catalog

import "testing"

func TestNewComment_TrimsText(t *testing.T) {
	t.Parallel()
	c, ok := NewComment("You", "  hello  ")
	if !ok {
		t.Fatal("NewComment rejected valid text")
	}
	if c.Text != "hello" {
		t.Errorf("Text = %q; want %q", c.Text, "hello")
	}
	if c.Author != "You" {
		t.Errorf("Author = %q; want %q", c.Author, "You")
	}
	if c.ID == 0 {
		t.Error("ID not generated")
	}
}

func TestNewComment_RejectsWhitespaceOnly(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"", "   ", "\t\n  "} {
		if _, ok := NewComment("You", text); ok {
			t.Errorf("NewComment(%q) accepted; want rejection", text)
		}
	}
}
