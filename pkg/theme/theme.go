// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Color carries a raw ANSI code; Palette maps player UI roles to colors

package theme

// Color is a terminal color held as its raw ANSI escape code. Rendering
// goes through the lipgloss bridge, which consumes Code().
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Dim returns a new Color that prepends dim (\x1b[2m) to the code.
func (c Color) Dim() Color {
	return Color{code: "\x1b[2m" + c.code}
}

// Palette holds all semantic colors for a theme.
type Palette struct {
	// Text
	Primary   Color
	Secondary Color
	Muted     Color
	Accent    Color

	// Semantic
	Success Color
	Warning Color
	Error   Color
	Info    Color

	// UI
	Border    Color
	Selection Color
	Prompt    Color

	// Lesson header
	LessonTitle Color
	Duration    Color

	// Completion markers
	Completed Color
	Pending   Color

	// Tabs
	TabActive   Color
	TabInactive Color

	// Resource list
	ResourceName Color
	ResourceKind Color

	// Comments
	CommentAuthor Color
	CommentTime   Color

	// Formatting
	Bold      Color
	Dim       Color
	Italic    Color
	Underline Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		// Text
		Primary:   NewColor("\x1b[0m"),
		Secondary: NewColor("\x1b[90m"),
		Muted:     NewColor("").Dim(),
		Accent:    NewColor("\x1b[38;5;75m"),

		// Semantic
		Success: NewColor("\x1b[32m"),
		Warning: NewColor("\x1b[33m"),
		Error:   NewColor("\x1b[31m"),
		Info:    NewColor("\x1b[36m"),

		// UI
		Border:    NewColor("\x1b[90m"),
		Selection: NewColor("\x1b[7m"),
		Prompt:    NewColor("").Bold(),

		// Lesson header
		LessonTitle: NewColor("").Bold(),
		Duration:    NewColor("\x1b[90m"),

		// Completion markers
		Completed: NewColor("\x1b[32m"),
		Pending:   NewColor("\x1b[90m"),

		// Tabs
		TabActive:   NewColor("\x1b[38;5;75m").Bold(),
		TabInactive: NewColor("\x1b[90m"),

		// Resource list
		ResourceName: NewColor("\x1b[36m"),
		ResourceKind: NewColor("\x1b[90m"),

		// Comments
		CommentAuthor: NewColor("\x1b[36m").Bold(),
		CommentTime:   NewColor("\x1b[90m"),

		// Formatting
		Bold:      NewColor("\x1b[1m"),
		Dim:       NewColor("\x1b[2m"),
		Italic:    NewColor("\x1b[3m"),
		Underline: NewColor("\x1b[4m"),
	}
}
