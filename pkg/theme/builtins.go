// ABOUTME: Built-in themes: default, dark, light
// ABOUTME: Provides Builtin(name) lookup, BuiltinNames() enumeration, and ForMode selection

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Primary:   NewColor("\x1b[97m"),
			Secondary: NewColor("\x1b[90m"),
			Muted:     NewColor("").Dim(),
			Accent:    NewColor("\x1b[38;5;117m"),

			Success: NewColor("\x1b[38;5;114m"),
			Warning: NewColor("\x1b[38;5;221m"),
			Error:   NewColor("\x1b[38;5;203m"),
			Info:    NewColor("\x1b[38;5;117m"),

			Border:    NewColor("\x1b[38;5;240m"),
			Selection: NewColor("\x1b[48;5;236m"),
			Prompt:    NewColor("\x1b[97m").Bold(),

			LessonTitle: NewColor("\x1b[97m").Bold(),
			Duration:    NewColor("\x1b[38;5;245m"),

			Completed: NewColor("\x1b[38;5;114m"),
			Pending:   NewColor("\x1b[38;5;240m"),

			TabActive:   NewColor("\x1b[38;5;117m").Bold(),
			TabInactive: NewColor("\x1b[38;5;245m"),

			ResourceName: NewColor("\x1b[38;5;117m"),
			ResourceKind: NewColor("\x1b[38;5;245m"),

			CommentAuthor: NewColor("\x1b[38;5;117m").Bold(),
			CommentTime:   NewColor("\x1b[38;5;245m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Primary:   NewColor("\x1b[30m"),
			Secondary: NewColor("\x1b[37m"),
			Muted:     NewColor("").Dim(),
			Accent:    NewColor("\x1b[38;5;25m"),

			Success: NewColor("\x1b[38;5;28m"),
			Warning: NewColor("\x1b[38;5;130m"),
			Error:   NewColor("\x1b[38;5;160m"),
			Info:    NewColor("\x1b[38;5;25m"),

			Border:    NewColor("\x1b[38;5;249m"),
			Selection: NewColor("\x1b[48;5;254m"),
			Prompt:    NewColor("\x1b[30m").Bold(),

			LessonTitle: NewColor("\x1b[30m").Bold(),
			Duration:    NewColor("\x1b[38;5;242m"),

			Completed: NewColor("\x1b[38;5;28m"),
			Pending:   NewColor("\x1b[38;5;249m"),

			TabActive:   NewColor("\x1b[38;5;25m").Bold(),
			TabInactive: NewColor("\x1b[38;5;242m"),

			ResourceName: NewColor("\x1b[38;5;25m"),
			ResourceKind: NewColor("\x1b[38;5;242m"),

			CommentAuthor: NewColor("\x1b[38;5;25m").Bold(),
			CommentTime:   NewColor("\x1b[38;5;242m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light"}
}

// ForMode returns the built-in theme matching a display mode.
func ForMode(m Mode) *Theme {
	return builtins[Select(m, "light", "dark")]
}
