// ABOUTME: Built-in demo catalog compiled into the binary
// ABOUTME: Two courses with hand-authored unique ids; lesson order is significant

package catalog

// Builtin returns the catalog shipped with the binary.
func Builtin() *Catalog {
	return New([]Course{
		{
			ID:          "web-dev-101",
			Title:       "Web Development Fundamentals",
			Description: "HTML, CSS, and JavaScript from first principles.",
			Lessons: []Lesson{
				{
					ID:       "lesson-1",
					Title:    "Introduction to HTML",
					VideoURL: "https://player.vimeo.com/video/76979871",
					Duration: "12:34",
					Description: "What HTML is, how documents are structured, " +
						"and writing your first page.",
					Resources: []Resource{
						{Name: "Lesson slides", Link: "https://example.com/web-dev-101/slides-1.pdf", Kind: "pdf"},
						{Name: "Starter project", Link: "https://example.com/web-dev-101/starter.zip", Kind: "code"},
					},
				},
				{
					ID:       "lesson-2",
					Title:    "Styling with CSS",
					VideoURL: "https://player.vimeo.com/video/76979872",
					Duration: "18:05",
					Description: "Selectors, the cascade, and custom properties " +
						"for theming.",
					Resources: []Resource{
						{Name: "CSS reference", Link: "https://developer.mozilla.org/docs/Web/CSS", Kind: "link"},
					},
				},
				{
					ID:       "lesson-3",
					Title:    "JavaScript Basics",
					VideoURL: "https://player.vimeo.com/video/76979873",
					Duration: "21:47",
					Description: "Variables, functions, and wiring up your first " +
						"event handlers.",
					Resources: []Resource{
						{Name: "Exercise pack", Link: "https://example.com/web-dev-101/exercises-3.zip", Kind: "code"},
					},
				},
			},
		},
		{
			ID:          "go-concurrency",
			Title:       "Concurrency in Go",
			Description: "Goroutines, channels, and the patterns that hold them together.",
			Lessons: []Lesson{
				{
					ID:          "lesson-1",
					Title:       "Goroutines and the Scheduler",
					VideoURL:    "https://player.vimeo.com/video/53221558",
					Duration:    "15:20",
					Description: "Lightweight threads, GOMAXPROCS, and what blocking really means.",
				},
				{
					ID:          "lesson-2",
					Title:       "Channels in Practice",
					VideoURL:    "https://player.vimeo.com/video/53221559",
					Duration:    "19:11",
					Description: "Unbuffered vs buffered, select, and ownership transfer.",
					Resources: []Resource{
						{Name: "Pipeline examples", Link: "https://go.dev/blog/pipelines", Kind: "link"},
					},
				},
			},
		},
	})
}
