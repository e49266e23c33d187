// ABOUTME: CLI entry point for lectern
// ABOUTME: Parses flags, loads config, resolves theme and mode, runs the TUI or export

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground in its init(), preventing
	// BubbleTea's tea_init.go from sending OSC 10/11 terminal queries whose
	// async responses leak garbage into the UI.
	_ "github.com/lectern/lectern/internal/termfix"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lectern/lectern/internal/catalog"
	"github.com/lectern/lectern/internal/config"
	"github.com/lectern/lectern/internal/export"
	"github.com/lectern/lectern/internal/log"
	"github.com/lectern/lectern/internal/player"
	"github.com/lectern/lectern/internal/scheme"
	"github.com/lectern/lectern/internal/tui"
	"github.com/lectern/lectern/pkg/theme"
	"github.com/lectern/lectern/pkg/theme/cssvar"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("lectern %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and dispatches to the
// export path or the interactive TUI.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyCLIOverrides(settings, args)

	if settings.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	mode := resolveMode(settings)
	resolveTheme(settings, cwd, mode)

	cat := catalog.Builtin()
	coursesDir := settings.CoursesDir
	if coursesDir == "" {
		coursesDir = config.CoursesDir()
	}
	if err := cat.LoadDir(coursesDir); err != nil {
		return fmt.Errorf("loading courses from %s: %w", coursesDir, err)
	}

	deps := &tui.AppDeps{
		Catalog:  cat,
		Settings: settings,
		Player:   player.New(settings.Player),
		Mode:     mode,
		Version:  version,
	}

	if args.export != "" {
		return runExport(deps, args)
	}
	return runInteractive(deps, args, cwd)
}

// applyCLIOverrides layers flag values on top of the merged settings.
func applyCLIOverrides(s *config.Settings, args cliArgs) {
	if args.theme != "" {
		s.Theme = args.theme
	}
	if args.mode != "" {
		s.Mode = args.mode
	}
	if args.verbose {
		s.Verbose = true
	}
}

// resolveMode picks the display mode: an explicit config value wins,
// otherwise the terminal's color scheme is probed.
func resolveMode(s *config.Settings) theme.Mode {
	if s.Mode != "" {
		return theme.ParseMode(s.Mode)
	}
	if scheme.PrefersDark() {
		return theme.Dark
	}
	return theme.Light
}

// resolveTheme activates the configured theme: built-in by name, then a
// JSON file in the themes dirs, then the mode default.
func resolveTheme(s *config.Settings, projectRoot string, mode theme.Mode) {
	if s.Theme == "" {
		theme.Set(theme.ForMode(mode))
		return
	}
	if t := theme.Builtin(s.Theme); t != nil {
		theme.Set(t)
		return
	}
	for _, dir := range config.ThemesDirs(projectRoot) {
		t, err := theme.LoadFile(filepath.Join(dir, s.Theme+".json"))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Warn("theme %s: %v", s.Theme, err)
			}
			continue
		}
		theme.Set(t)
		return
	}
	log.Warn("theme %q not found, falling back to %s default", s.Theme, mode)
	theme.Set(theme.ForMode(mode))
}

// runExport writes a lesson page to the given HTML file without starting
// the TUI.
func runExport(deps *tui.AppDeps, args cliArgs) error {
	if args.course == "" {
		return fmt.Errorf("-export requires -course")
	}
	course, ok := deps.Catalog.Course(args.course)
	if !ok {
		return fmt.Errorf("course %q not found", args.course)
	}
	lesson, ok := course.Lesson(args.lesson)
	if !ok {
		return fmt.Errorf("lesson %q not found in course %q", args.lesson, args.course)
	}

	f, err := os.Create(args.export)
	if err != nil {
		return fmt.Errorf("creating %s: %w", args.export, err)
	}
	defer f.Close()

	store := cssvar.NewMapStore()
	export.SeedVars(store, deps.Mode)
	page := export.LessonPage{Course: course, Lesson: lesson}
	if err := export.WriteLessonPage(f, page, store); err != nil {
		return fmt.Errorf("writing %s: %w", args.export, err)
	}
	log.Info("exported %s/%s to %s", course.ID, lesson.ID, args.export)
	return nil
}

// runInteractive starts the Bubble Tea program with config hot reload and
// color scheme tracking.
func runInteractive(deps *tui.AppDeps, args cliArgs, cwd string) error {
	p := tea.NewProgram(
		tui.NewAppModel(deps, args.course, args.lesson),
		tea.WithAltScreen(),
	)

	watcher := config.NewWatcher(
		[]string{config.GlobalConfigFile(), config.ProjectConfigFile(cwd)},
		func() {
			fresh, err := config.Load(cwd)
			if err != nil {
				log.Warn("config reload: %v", err)
				return
			}
			applyCLIOverrides(fresh, args)
			*deps.Settings = *fresh
			mode := resolveMode(deps.Settings)
			resolveTheme(deps.Settings, cwd, mode)
			p.Send(tui.ModeChangedMsg{Mode: mode})
		},
	)
	watcher.Start()
	defer watcher.Stop()

	// Track the terminal scheme only when no mode is pinned in config.
	if deps.Settings.Mode == "" {
		notifier := scheme.NewNotifier(scheme.DefaultProber())
		unsubscribe := notifier.Subscribe(func(dark bool) {
			m := theme.Light
			if dark {
				m = theme.Dark
			}
			resolveTheme(deps.Settings, cwd, m)
			p.Send(tui.ModeChangedMsg{Mode: m})
		})
		notifier.Start()
		defer func() {
			unsubscribe()
			notifier.Stop()
		}()
	}

	_, err := p.Run()
	return err
}
