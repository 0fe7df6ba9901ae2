// Package language maps file names to language ids and holds per-language
// editing metadata such as the line comment marker.
package language

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownLanguage is returned by lookups for an unregistered id.
var ErrUnknownLanguage = errors.New("unknown language")

// DefaultCommentMarker is returned for languages without a line comment.
const DefaultCommentMarker = "//"

// Language describes one language.
type Language struct {
	ID          string
	Name        string
	Extensions  []string // lower-case, with leading dot
	Filenames   []string // exact base names such as "Makefile"
	LineComment string
}

// Registry is a concurrency-safe set of languages.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]*Language
	byExt map[string]string
	byFn  map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:  make(map[string]*Language),
		byExt: make(map[string]string),
		byFn:  make(map[string]string),
	}
}

// NewBuiltinRegistry creates a registry holding the built-in table.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, l := range builtin {
		r.Register(l)
	}
	return r
}

// Register adds or replaces a language. Extensions and file names claimed
// by another language move to this one.
func (r *Registry) Register(l Language) {
	l.ID = strings.ToLower(l.ID)
	l.Extensions = normalizeExtensions(l.Extensions)
	l.Filenames = slices.Clone(l.Filenames)

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byID[l.ID]; ok {
		r.forgetLocked(old)
	}
	r.byID[l.ID] = &l
	for _, ext := range l.Extensions {
		r.byExt[ext] = l.ID
	}
	for _, fn := range l.Filenames {
		r.byFn[fn] = l.ID
	}
}

// Override merges non-empty fields of l into the registered language with
// the same id, registering it when absent.
func (r *Registry) Override(l Language) {
	cur, ok := r.Get(l.ID)
	if !ok {
		r.Register(l)
		return
	}
	if l.Name != "" {
		cur.Name = l.Name
	}
	if l.LineComment != "" {
		cur.LineComment = l.LineComment
	}
	if len(l.Extensions) > 0 {
		cur.Extensions = l.Extensions
	}
	if len(l.Filenames) > 0 {
		cur.Filenames = l.Filenames
	}
	r.Register(cur)
}

func (r *Registry) forgetLocked(l *Language) {
	for _, ext := range l.Extensions {
		if r.byExt[ext] == l.ID {
			delete(r.byExt, ext)
		}
	}
	for _, fn := range l.Filenames {
		if r.byFn[fn] == l.ID {
			delete(r.byFn, fn)
		}
	}
}

// Get returns a copy of the language with the given id.
func (r *Registry) Get(id string) (Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[strings.ToLower(id)]
	if !ok {
		return Language{}, false
	}
	out := *l
	out.Extensions = slices.Clone(l.Extensions)
	out.Filenames = slices.Clone(l.Filenames)
	return out, true
}

// IDs returns all registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Detect returns the language id for a file path, or "" when unknown.
func (r *Registry) Detect(path string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	base := filepath.Base(path)
	if id, ok := r.byFn[base]; ok {
		return id
	}
	if id, ok := r.byExt[strings.ToLower(filepath.Ext(base))]; ok {
		return id
	}
	return ""
}

// CommentMarker returns the line comment marker for id, or
// DefaultCommentMarker when the language is unknown or has none.
func (r *Registry) CommentMarker(id string) string {
	l, ok := r.Get(id)
	if !ok || l.LineComment == "" {
		return DefaultCommentMarker
	}
	return l.LineComment
}

// Lookup is Get with an error for unknown ids.
func (r *Registry) Lookup(id string) (Language, error) {
	l, ok := r.Get(id)
	if !ok {
		return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, id)
	}
	return l, nil
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
