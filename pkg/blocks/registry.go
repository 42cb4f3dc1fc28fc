// Package blocks implements the nested output-capture protocol: templates
// open named blocks whose captured output is post-processed by a registered
// transform before being emitted into the enclosing scope.
package blocks

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Transform post-processes the text captured by a block. payload carries the
// value supplied when the block was opened.
type Transform func(captured string, payload any) string

// Definition binds a block name to its transform.
type Definition struct {
	Name      string
	Transform Transform
}

// Registry stores block definitions by name. Unlike renderer registries,
// re-registering a name overwrites the previous definition: callers tune
// block behavior per engine instance.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]Definition),
	}
}

// Register adds or replaces a block definition.
func (r *Registry) Register(name string, transform Transform) error {
	key := strings.TrimSpace(name)
	if key == "" {
		return fmt.Errorf("blocks: block name is required")
	}
	if transform == nil {
		return fmt.Errorf("blocks: transform for %q is required", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs[key] = Definition{Name: key, Transform: transform}
	return nil
}

// Get retrieves a block definition by name.
func (r *Registry) Get(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	return def, ok
}

// Has reports whether a block is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns a sorted list of registered block names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
