// ABOUTME: CSS custom-property helpers backed by an injected key-value Store
// ABOUTME: Ref/RGBA format var() references; MapStore is the in-memory style root

package cssvar

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Store is the style root abstraction: a mutable map of CSS custom
// properties. Names carry no "--" prefix; Get returns "" for unset names.
type Store interface {
	Get(name string) string
	Set(name, value string)
}

// MapStore is an in-memory Store safe for concurrent use.
type MapStore struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{vars: make(map[string]string)}
}

// Get returns the trimmed value of a property, or "" when unset.
func (s *MapStore) Get(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.TrimSpace(s.vars[name])
}

// Set writes a property value, overwriting any previous value.
func (s *MapStore) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = value
}

// Names returns all set property names in sorted order.
func (s *MapStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Ref returns the CSS reference for a custom property: "var(--name)".
// The name is not validated.
func Ref(name string) string {
	return "var(--" + name + ")"
}

// RGBA returns an rgba() color built from a property's companion "-rgb"
// variable: "rgba(var(--name-rgb), <opacity>)". The referenced variable
// must hold comma-separated R,G,B components or the resulting color is
// invalid. Opacity is expected in [0,1]; no clamping is performed.
func RGBA(name string, opacity float64) string {
	return "rgba(var(--" + name + "-rgb), " + formatOpacity(opacity) + ")"
}

// formatOpacity renders an opacity with no trailing zeros (0.5, not 0.50).
func formatOpacity(o float64) string {
	return strconv.FormatFloat(o, 'g', -1, 64)
}

// Stylesheet renders a ":root { ... }" block declaring every property in
// the store, in sorted name order. Stores that are not MapStore render
// nothing (no enumeration contract on the interface).
func Stylesheet(s Store) string {
	ms, ok := s.(*MapStore)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range ms.Names() {
		b.WriteString("  --")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(ms.Get(name))
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
