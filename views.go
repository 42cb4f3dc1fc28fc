// Package views re-exports the rendering engine for callers that only need
// the top-level surface: register search paths, assign data, render.
package views

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-views/pkg/blocks"
	"github.com/goliatone/go-views/pkg/engine"
	"github.com/goliatone/go-views/pkg/executor"
	"github.com/goliatone/go-views/pkg/resolver"
)

// Engine renders templates resolved across registered search paths.
type Engine = engine.Engine

// Option customises engine construction.
type Option = engine.Option

// Config is the YAML construction surface.
type Config = engine.Config

// Transform post-processes captured block output.
type Transform = blocks.Transform

// Reference is a literal-or-supplier template reference.
type Reference = resolver.Reference

// Match is the Found/NotFound outcome of a resolution attempt.
type Match = resolver.Match

// Executor is the seam a host implements to plug in a template language.
type Executor = executor.Executor

// ErrInvalidReference reports a reference that is neither a string nor a
// zero-argument producer of one.
var ErrInvalidReference = resolver.ErrInvalidReference

// New constructs an engine, applying the built-in defaults for anything not
// configured: pongo2 execution, the "html" extension, and the builtin
// minimize/sanitize block transforms.
func New(options ...Option) (*Engine, error) {
	return engine.New(options...)
}

// NewFromConfig loads a YAML config file and constructs an engine from it.
// Extra options apply after the file's, so they win on conflict.
func NewFromConfig(path string, extra ...Option) (*Engine, error) {
	cfg, err := engine.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return engine.New(append(cfg.Options(), extra...)...)
}

// Literal wraps a fixed reference string.
func Literal(name string) Reference {
	return resolver.Literal(name)
}

// Supplier wraps a reference producer evaluated lazily during resolution.
func Supplier(fn func() string) Reference {
	return resolver.Supplier(fn)
}

// WithPaths registers search directories in order with derived ids.
func WithPaths(dirs ...string) Option {
	return engine.WithPaths(dirs...)
}

// WithNamedPath registers a search directory under an explicit id.
func WithNamedPath(id, dir string) Option {
	return engine.WithNamedPath(id, dir)
}

// WithExtensions sets the ordered extension fallback list.
func WithExtensions(extensions ...string) Option {
	return engine.WithExtensions(extensions...)
}

// WithDefaultTemplate sets the fallback reference for unresolvable renders.
func WithDefaultTemplate(ref any) Option {
	return engine.WithDefaultTemplate(ref)
}

// WithDebug toggles the not-found diagnostic.
func WithDebug(debug bool) Option {
	return engine.WithDebug(debug)
}

// WithBlock registers a block transform alongside the builtins.
func WithBlock(name string, transform Transform) Option {
	return engine.WithBlock(name, transform)
}

// WithExecutor swaps the template executor.
func WithExecutor(exec Executor) Option {
	return engine.WithExecutor(exec)
}

// WithTheme resolves a go-theme selection and exposes it to templates under
// the "theme" variable.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return engine.WithTheme(selector, name, variant)
}
