// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration using encoding/json; no external libs

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged configuration.
type Settings struct {
	// Theme names a built-in theme or a JSON theme file in the themes dir.
	Theme string `json:"theme,omitempty"`
	// Mode forces "light" or "dark"; empty means follow the host scheme.
	Mode string `json:"mode,omitempty"`
	// Player is the external video player command. Empty uses the OS opener.
	Player string `json:"player,omitempty"`
	// Author is the label attached to posted comments.
	Author string `json:"author,omitempty"`
	// CoursesDir holds extra YAML course files loaded at startup.
	CoursesDir string `json:"courses_dir,omitempty"`
	Verbose    bool   `json:"verbose,omitempty"`
}

// EffectiveAuthor returns the comment author label, defaulting to "You".
func (s *Settings) EffectiveAuthor() string {
	if s.Author != "" {
		return s.Author
	}
	return "You"
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.Mode != "" {
		result.Mode = project.Mode
	}
	if project.Player != "" {
		result.Player = project.Player
	}
	if project.Author != "" {
		result.Author = project.Author
	}
	if project.CoursesDir != "" {
		result.CoursesDir = project.CoursesDir
	}
	if project.Verbose {
		result.Verbose = true
	}

	return &result
}
