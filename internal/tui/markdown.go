// ABOUTME: Glamour-backed markdown rendering for lesson descriptions
// ABOUTME: Caches rendered output keyed by content hash and wrap width

package tui

import (
	"crypto/sha256"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/lectern/lectern/pkg/theme"
)

// mdCacheKey identifies one rendered markdown document.
type mdCacheKey struct {
	hash  [32]byte
	width int
	mode  theme.Mode
}

// MarkdownRenderer renders markdown to styled terminal text. Rendering is
// expensive, so output is cached per content hash and width.
type MarkdownRenderer struct {
	mu    sync.Mutex
	mode  theme.Mode
	cache map[mdCacheKey]string
}

func NewMarkdownRenderer(mode theme.Mode) *MarkdownRenderer {
	return &MarkdownRenderer{
		mode:  mode,
		cache: make(map[mdCacheKey]string),
	}
}

// Render returns md rendered for the given wrap width. On renderer failure
// the raw markdown is returned so content is never lost.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	key := mdCacheKey{hash: sha256.Sum256([]byte(md)), width: width, mode: r.mode}

	r.mu.Lock()
	defer r.mu.Unlock()
	if out, ok := r.cache[key]; ok {
		return out
	}

	style := theme.Select(r.mode, glamour.WithStandardStyle("light"), glamour.WithStandardStyle("dark"))
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	out = strings.Trim(out, "\n")

	r.cache[key] = out
	return out
}
