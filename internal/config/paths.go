// ABOUTME: Standard filesystem paths for lectern configuration and data
// ABOUTME: Resolves ~/.lectern/ for global and .lectern/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".lectern"
	projectDirName = ".lectern"
)

// GlobalDir returns the user-global config directory (~/.lectern/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.lectern/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// ThemesDirs returns the directories searched for JSON theme files, most
// specific first.
func ThemesDirs(projectRoot string) []string {
	return []string{
		filepath.Join(ProjectDir(projectRoot), "themes"),
		filepath.Join(GlobalDir(), "themes"),
	}
}

// CoursesDir returns the default directory for extra YAML course files.
func CoursesDir() string {
	return filepath.Join(GlobalDir(), "courses")
}
