// ABOUTME: HTML exporter for lesson pages using Go html/template
// ABOUTME: Stylesheet is built from CSS custom properties seeded by display mode

package export

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/lectern/lectern/internal/catalog"
	"github.com/lectern/lectern/pkg/theme"
	"github.com/lectern/lectern/pkg/theme/cssvar"
)

// LessonPage bundles everything rendered on an exported lesson page.
type LessonPage struct {
	Course   catalog.Course
	Lesson   catalog.Lesson
	Notes    string
	Comments []catalog.Comment
}

// SeedVars populates the style root with the color variables the lesson
// template references. Every color variable gets a companion "-rgb"
// property holding comma-separated R,G,B components for rgba() use.
func SeedVars(store cssvar.Store, mode theme.Mode) {
	set := func(name, light, lightRGB, dark, darkRGB string) {
		store.Set(name, theme.Select(mode, light, dark))
		store.Set(name+"-rgb", theme.Select(mode, lightRGB, darkRGB))
	}
	set("color-bg", "#f5f5f7", "245,245,247", "#101014", "16,16,20")
	set("color-surface", "#ffffff", "255,255,255", "#1c1c24", "28,28,36")
	set("color-text", "#1c1c24", "28,28,36", "#e0e0e0", "224,224,224")
	set("color-muted", "#6e6e78", "110,110,120", "#90909c", "144,144,156")
	set("color-accent", "#0a84d0", "10,132,208", "#00a4dc", "0,164,220")
}

// WriteLessonPage renders a lesson page as a standalone HTML document to w.
// The style root's declarations become a :root block; rule values reference
// them through var() and rgba(var(--*-rgb), o) so the exported page can be
// re-themed by editing one block.
func WriteLessonPage(w io.Writer, page LessonPage, store cssvar.Store) error {
	data := struct {
		LessonPage
		Stylesheet template.CSS
	}{
		LessonPage: page,
		Stylesheet: template.CSS(stylesheet(store)),
	}
	return lessonTmpl.Execute(w, data)
}

// stylesheet combines the :root declarations with the page rules.
func stylesheet(store cssvar.Store) string {
	var b strings.Builder
	b.WriteString(cssvar.Stylesheet(store))
	b.WriteString(fmt.Sprintf(`
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    background: %s;
    color: %s;
    font-family: -apple-system, 'Segoe UI', Roboto, sans-serif;
    line-height: 1.6;
    padding: 24px;
    max-width: 820px;
    margin: 0 auto;
  }
  h1 { font-size: 22px; margin-bottom: 4px; }
  .duration { color: %s; font-size: 13px; margin-bottom: 16px; }
  .video {
    aspect-ratio: 16 / 9;
    width: 100%%;
    border: 0;
    border-radius: 8px;
    background: %s;
  }
  section { margin-top: 24px; }
  section h2 {
    font-size: 15px;
    text-transform: uppercase;
    letter-spacing: 0.5px;
    color: %s;
    margin-bottom: 8px;
  }
  .card {
    background: %s;
    border: 1px solid %s;
    border-radius: 8px;
    padding: 12px 16px;
    margin-bottom: 8px;
  }
  .resource a { color: %s; text-decoration: none; }
  .kind {
    display: inline-block;
    font-size: 11px;
    padding: 1px 8px;
    border-radius: 4px;
    background: %s;
    color: %s;
    margin-left: 8px;
  }
  .comment .meta { color: %s; font-size: 12px; margin-bottom: 4px; }
  .comment .meta b { color: %s; }
  .notes { white-space: pre-wrap; }
  .completed {
    color: %s;
    font-size: 13px;
  }
`,
		cssvar.Ref("color-bg"),
		cssvar.Ref("color-text"),
		cssvar.Ref("color-muted"),
		cssvar.RGBA("color-text", 0.08),
		cssvar.Ref("color-muted"),
		cssvar.Ref("color-surface"),
		cssvar.RGBA("color-text", 0.08),
		cssvar.Ref("color-accent"),
		cssvar.RGBA("color-accent", 0.15),
		cssvar.Ref("color-accent"),
		cssvar.Ref("color-muted"),
		cssvar.Ref("color-text"),
		cssvar.Ref("color-accent"),
	))
	return b.String()
}

// fmtTime renders a comment timestamp for the page.
func fmtTime(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}

var lessonTmpl = template.Must(template.New("lesson").Funcs(template.FuncMap{
	"fmtTime": fmtTime,
}).Parse(lessonTemplate))

const lessonTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Lesson.Title}} — {{.Course.Title}}</title>
<style>{{.Stylesheet}}</style>
</head>
<body>
<h1>{{.Lesson.Title}}</h1>
<div class="duration">{{.Course.Title}} · {{.Lesson.Duration}}{{if .Lesson.Completed}} · <span class="completed">✓ completed</span>{{end}}</div>
<iframe class="video" src="{{.Lesson.VideoURL}}" allow="autoplay; fullscreen; picture-in-picture" allowfullscreen></iframe>
{{if .Lesson.Description}}
<section>
<h2>About this lesson</h2>
<div class="card">{{.Lesson.Description}}</div>
</section>
{{end}}
{{if .Lesson.Resources}}
<section>
<h2>Resources</h2>
{{range .Lesson.Resources}}
<div class="card resource"><a href="{{.Link}}">{{.Name}}</a><span class="kind">{{.Kind}}</span></div>
{{end}}
</section>
{{end}}
{{if .Notes}}
<section>
<h2>Notes</h2>
<div class="card notes">{{.Notes}}</div>
</section>
{{end}}
{{if .Comments}}
<section>
<h2>Comments</h2>
{{range .Comments}}
<div class="card comment"><div class="meta"><b>{{.Author}}</b> · {{fmtTime .CreatedAt}}</div>{{.Text}}</div>
{{end}}
</section>
{{end}}
</body>
</html>
`
