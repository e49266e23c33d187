// ABOUTME: Display-width helpers: VisibleWidth and TruncateToWidth for styled text
// ABOUTME: ANSI sequences count zero columns; grapheme clusters measure via runewidth

package textwidth

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the display width of s, ignoring ANSI escape
// sequences and measuring grapheme clusters (wide for East Asian text and
// emoji).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	w := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipANSI(s, i)
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w += clusterWidth(cluster)
		i += len(s[i:]) - len(rest)
	}
	return w
}

// TruncateToWidth shortens s to at most maxWidth columns, appending an
// ellipsis when truncation happens. ANSI sequences are preserved and a
// reset is emitted before the ellipsis so styling never leaks.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	var b strings.Builder
	col := 0
	target := maxWidth - 1 // room for the ellipsis
	i := 0
	for i < len(s) && col < target {
		if s[i] == '\x1b' {
			end := skipANSI(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := clusterWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	b.WriteString("\x1b[0m")
	b.WriteRune('…')
	return b.String()
}

// PadToWidth right-pads s with spaces to exactly width columns, truncating
// first when s is too wide.
func PadToWidth(s string, width int) string {
	s = TruncateToWidth(s, width)
	for VisibleWidth(s) < width {
		s += " "
	}
	return s
}

// clusterWidth returns the display width of a single grapheme cluster.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// skipANSI advances past the escape sequence starting at s[i] and returns
// the index of the first byte after it. Handles CSI (ESC [ ... final) and
// OSC (ESC ] ... BEL/ST) forms.
func skipANSI(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		i++
		for i < len(s) {
			c := s[i]
			i++
			if c >= 0x40 && c <= 0x7E {
				break
			}
		}
		return i
	case ']':
		i++
		for i < len(s) {
			if s[i] == '\a' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		return i + 1
	}
}
