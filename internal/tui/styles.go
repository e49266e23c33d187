// ABOUTME: Lipgloss style bridge from theme.Color ANSI escape codes
// ABOUTME: Parses SGR sequences into lipgloss styles; Styles() returns the full palette

package tui

import (
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/lectern/lectern/pkg/theme"
)

// themeStylesEntry pairs a theme pointer with its pre-built styles.
type themeStylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

// cachedStyles is the package-level atomic cache for ThemeStyles.
// Cache key is the theme pointer identity; invalidated when the theme changes.
var cachedStyles atomic.Pointer[themeStylesEntry]

// sgrRe matches a single ANSI SGR sequence like \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]+)m`)

// sgr holds everything parsed out of an ANSI escape code string.
type sgr struct {
	color      string // lipgloss 256-color spec, "" when attribute-only
	background bool
	bold       bool
	dim        bool
	italic     bool
	underline  bool
	reverse    bool
}

// parseSGR interprets all SGR sequences in code. The last color-bearing
// sequence wins; attributes accumulate.
func parseSGR(code string) sgr {
	var out sgr
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		params := strings.Split(m[1], ";")

		// 256-color form: 38;5;N (fg) or 48;5;N (bg)
		if len(params) >= 3 && (params[0] == "38" || params[0] == "48") && params[1] == "5" {
			out.color = params[2]
			out.background = params[0] == "48"
			continue
		}

		for _, p := range params {
			n, err := strconv.Atoi(p)
			if err != nil {
				continue
			}
			switch {
			case n == 1:
				out.bold = true
			case n == 2:
				out.dim = true
			case n == 3:
				out.italic = true
			case n == 4:
				out.underline = true
			case n == 7:
				out.reverse = true
			case n >= 30 && n <= 37:
				out.color = strconv.Itoa(n - 30)
				out.background = false
			case n >= 40 && n <= 47:
				out.color = strconv.Itoa(n - 40)
				out.background = true
			case n >= 90 && n <= 97:
				out.color = strconv.Itoa(n - 90 + 8)
				out.background = false
			case n >= 100 && n <= 107:
				out.color = strconv.Itoa(n - 100 + 8)
				out.background = true
			}
		}
	}
	return out
}

// colorToStyle builds a lipgloss.Style from a raw ANSI escape code string.
func colorToStyle(code string) lipgloss.Style {
	parsed := parseSGR(code)
	s := lipgloss.NewStyle()
	if parsed.color != "" {
		if parsed.background {
			s = s.Background(lipgloss.Color(parsed.color))
		} else {
			s = s.Foreground(lipgloss.Color(parsed.color))
		}
	}
	if parsed.bold {
		s = s.Bold(true)
	}
	if parsed.dim {
		s = s.Faint(true)
	}
	if parsed.italic {
		s = s.Italic(true)
	}
	if parsed.underline {
		s = s.Underline(true)
	}
	if parsed.reverse {
		s = s.Reverse(true)
	}
	return s
}

// ThemeStyles holds pre-built lipgloss styles for all semantic palette fields.
type ThemeStyles struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	Border    lipgloss.Style
	Selection lipgloss.Style
	Prompt    lipgloss.Style

	LessonTitle lipgloss.Style
	Duration    lipgloss.Style

	Completed lipgloss.Style
	Pending   lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ResourceName lipgloss.Style
	ResourceKind lipgloss.Style

	CommentAuthor lipgloss.Style
	CommentTime   lipgloss.Style

	Bold      lipgloss.Style
	Dim       lipgloss.Style
	Italic    lipgloss.Style
	Underline lipgloss.Style
}

// Styles returns ThemeStyles for the current theme, using a cached value
// when the theme pointer has not changed. This avoids rebuilding every
// lipgloss style on each View() call.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t)
	cachedStyles.Store(&themeStylesEntry{theme: t, styles: s})
	return s
}

// buildStyles constructs ThemeStyles from a theme's palette.
func buildStyles(t *theme.Theme) ThemeStyles {
	p := t.Palette
	return ThemeStyles{
		Primary:   colorToStyle(p.Primary.Code()),
		Secondary: colorToStyle(p.Secondary.Code()),
		Muted:     colorToStyle(p.Muted.Code()),
		Accent:    colorToStyle(p.Accent.Code()),

		Success: colorToStyle(p.Success.Code()),
		Warning: colorToStyle(p.Warning.Code()),
		Error:   colorToStyle(p.Error.Code()),
		Info:    colorToStyle(p.Info.Code()),

		Border:    colorToStyle(p.Border.Code()),
		Selection: colorToStyle(p.Selection.Code()),
		Prompt:    colorToStyle(p.Prompt.Code()),

		LessonTitle: colorToStyle(p.LessonTitle.Code()),
		Duration:    colorToStyle(p.Duration.Code()),

		Completed: colorToStyle(p.Completed.Code()),
		Pending:   colorToStyle(p.Pending.Code()),

		TabActive:   colorToStyle(p.TabActive.Code()),
		TabInactive: colorToStyle(p.TabInactive.Code()),

		ResourceName: colorToStyle(p.ResourceName.Code()),
		ResourceKind: colorToStyle(p.ResourceKind.Code()),

		CommentAuthor: colorToStyle(p.CommentAuthor.Code()),
		CommentTime:   colorToStyle(p.CommentTime.Code()),

		Bold:      colorToStyle(p.Bold.Code()),
		Dim:       colorToStyle(p.Dim.Code()),
		Italic:    colorToStyle(p.Italic.Code()),
		Underline: colorToStyle(p.Underline.Code()),
	}
}
