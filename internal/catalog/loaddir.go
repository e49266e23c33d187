// ABOUTME: Loads additional courses from YAML files in a directory
// ABOUTME: Malformed or empty files are skipped with a log line, never fatal

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lectern/lectern/internal/log"
)

// LoadDir reads every *.yaml / *.yml file in dir as a Course and appends it
// to the catalog. A missing directory is not an error. Files that fail to
// parse or lack an id are skipped.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading courses dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		course, err := loadCourseFile(path)
		if err != nil {
			log.Warn("skipping course file %s: %v", e.Name(), err)
			continue
		}
		c.Add(course)
	}
	return nil
}

// loadCourseFile parses one YAML course file.
func loadCourseFile(path string) (Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Course{}, fmt.Errorf("reading: %w", err)
	}

	var course Course
	if err := yaml.Unmarshal(data, &course); err != nil {
		return Course{}, fmt.Errorf("parsing: %w", err)
	}
	if course.ID == "" {
		return Course{}, fmt.Errorf("missing course id")
	}
	return course, nil
}
