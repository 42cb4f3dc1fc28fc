// Package paths stores the named search directories a resolver scans when
// locating templates. Insertion order is significant: it defines the
// fallback scan order.
package paths

import (
	"strings"
	"sync"

	"github.com/goliatone/go-views/internal/ident"
)

// Entry is one registered search directory. Directory always uses forward
// slashes and ends with a trailing slash.
type Entry struct {
	ID        string
	Directory string
}

// Registry keeps search directories keyed by id while preserving the order
// in which they were added.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Entry
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Add registers a search directory and returns the id it was stored under.
// When id is omitted, or does not pass the identifier check, one is derived
// from the path itself. Re-adding an existing id overwrites the entry while
// keeping its original scan position.
func (r *Registry) Add(path string, id ...string) string {
	dir := Normalize(path)

	key := ""
	if len(id) > 0 {
		key = strings.TrimSpace(id[0])
	}
	if !ident.Valid(key) {
		key = ident.Derive(dir)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; !exists {
		r.order = append(r.order, key)
	}
	r.entries[key] = Entry{ID: key, Directory: dir}
	return key
}

// Set clears the registry and registers each path in order with derived ids.
func (r *Registry) Set(paths ...string) {
	r.clear()
	for _, path := range paths {
		r.Add(path)
	}
}

// SetEntries clears the registry and registers each entry in order. Entry
// ids go through the same validation and derivation as Add.
func (r *Registry) SetEntries(entries []Entry) {
	r.clear()
	for _, entry := range entries {
		r.Add(entry.Directory, entry.ID)
	}
}

func (r *Registry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.entries = make(map[string]Entry)
}

// Get retrieves an entry by id.
func (r *Registry) Get(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	return entry, ok
}

// Has reports whether an id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// All returns the registered entries in insertion order.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Normalize rewrites a path to use forward slashes and guarantees a single
// trailing slash.
func Normalize(path string) string {
	dir := strings.ReplaceAll(path, "\\", "/")
	for strings.HasSuffix(dir, "/") {
		dir = strings.TrimSuffix(dir, "/")
	}
	return dir + "/"
}
