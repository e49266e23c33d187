// ABOUTME: Course/lesson data model and lookup over an ordered in-memory catalog
// ABOUTME: Lookups return value copies; empty lesson id resolves to the first lesson

package catalog

// Resource is a downloadable artifact attached to a lesson.
type Resource struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"`
	Kind string `yaml:"kind"` // "pdf", "code", "link"
}

// Lesson is a single playable unit of course content.
type Lesson struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	VideoURL    string     `yaml:"video_url"`
	Duration    string     `yaml:"duration"` // display string, e.g. "12:34"
	Description string     `yaml:"description"`
	Completed   bool       `yaml:"completed"`
	Resources   []Resource `yaml:"resources"`
}

// Course is an ordered list of lessons with metadata.
type Course struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Lessons     []Lesson `yaml:"lessons"`
}

// Lesson finds a lesson by id within the course. An empty id resolves to
// the first lesson. Returns a copy; mutations never reach the catalog.
func (c Course) Lesson(id string) (Lesson, bool) {
	if len(c.Lessons) == 0 {
		return Lesson{}, false
	}
	if id == "" {
		return c.Lessons[0], true
	}
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// Catalog holds the ordered course list.
type Catalog struct {
	courses []Course
}

// New creates a catalog over the given courses.
func New(courses []Course) *Catalog {
	return &Catalog{courses: courses}
}

// Course finds a course by id. Returns a copy.
func (c *Catalog) Course(id string) (Course, bool) {
	for _, course := range c.courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}

// Courses returns the ordered course list.
func (c *Catalog) Courses() []Course {
	return c.courses
}

// Add appends a course to the catalog.
func (c *Catalog) Add(course Course) {
	c.courses = append(c.courses, course)
}

// LessonCount returns the total number of lessons across all courses.
func (c *Catalog) LessonCount() int {
	n := 0
	for _, course := range c.courses {
		n += len(course.Lessons)
	}
	return n
}
