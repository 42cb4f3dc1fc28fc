// Package engine merges assigned data with call-local data, resolves
// logical template references against registered search paths, and delegates
// execution to a pluggable template executor inside a LIFO capture context.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-views/pkg/blocks"
	"github.com/goliatone/go-views/pkg/executor"
	"github.com/goliatone/go-views/pkg/executor/pongo"
	"github.com/goliatone/go-views/pkg/paths"
	"github.com/goliatone/go-views/pkg/resolver"
)

// Engine renders templates. The data bag assigned via Assign persists for
// the lifetime of the instance; block definitions and search paths are
// shared engine state. A single logical render runs at a time.
type Engine struct {
	registry *paths.Registry
	finder   *resolver.Finder
	blocks   *blocks.Registry
	exec     executor.Executor
	data     map[string]any

	// stack is the capture context of the render in flight; nil between
	// renders.
	stack *blocks.Stack
}

// New constructs an Engine applying any provided options. Missing
// dependencies are initialised with the built-in implementations: the pongo2
// executor, the OS file prober, and the builtin block transforms.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		logger:  slog.Default(),
		globals: make(map[string]any),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	registry := paths.NewRegistry()
	for _, entry := range cfg.entries {
		registry.Add(entry.Directory, entry.ID)
	}

	finderOpts := []resolver.Option{
		resolver.WithDebug(cfg.debug),
		resolver.WithLogger(cfg.logger),
	}
	if cfg.prober != nil {
		finderOpts = append(finderOpts, resolver.WithProber(cfg.prober))
	}
	if len(cfg.extensions) > 0 {
		finderOpts = append(finderOpts, resolver.WithExtensions(cfg.extensions...))
	}
	if cfg.defaultTemplate != nil {
		ref, err := resolver.Normalize(cfg.defaultTemplate)
		if err != nil {
			return nil, fmt.Errorf("engine: default template: %w", err)
		}
		finderOpts = append(finderOpts, resolver.WithDefaultTemplate(ref))
	}

	registryBlocks := blocks.Builtins()
	for _, def := range cfg.blockDefs {
		if err := registryBlocks.Register(def.Name, def.Transform); err != nil {
			return nil, fmt.Errorf("engine: register block: %w", err)
		}
	}

	exec := cfg.exec
	if exec == nil {
		var err error
		exec, err = pongo.New()
		if err != nil {
			return nil, fmt.Errorf("engine: default executor: %w", err)
		}
	}

	e := &Engine{
		registry: registry,
		finder:   resolver.New(registry, finderOpts...),
		blocks:   registryBlocks,
		exec:     exec,
		data:     cfg.globals,
	}

	if cfg.theme != nil {
		if err := e.applyTheme(cfg.theme); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Assign stores a value in the engine's data bag. Later assignments to the
// same key overwrite earlier ones; assigned data is visible to every
// subsequent render.
func (e *Engine) Assign(key string, value any) {
	e.data[key] = value
}

// AssignMap shallow-merges data into the engine's data bag.
func (e *Engine) AssignMap(data map[string]any) {
	for key, value := range data {
		e.data[key] = value
	}
}

// AddBlock registers a block transform, replacing any previous definition
// under the same name.
func (e *Engine) AddBlock(name string, transform blocks.Transform) error {
	return e.blocks.Register(name, transform)
}

// AddPath registers a search directory and returns its id.
func (e *Engine) AddPath(dir string, id ...string) string {
	return e.registry.Add(dir, id...)
}

// SetPaths replaces all registered search directories.
func (e *Engine) SetPaths(dirs ...string) {
	e.registry.Set(dirs...)
}

// Paths exposes the search-path registry.
func (e *Engine) Paths() *paths.Registry {
	return e.registry
}

// Find resolves a reference without rendering it.
func (e *Engine) Find(ref any) (resolver.Match, error) {
	return e.finder.Find(ref)
}

// Render resolves ref and executes it with the union of assigned and local
// data, local entries winning on collision. An unresolvable reference
// produces no output and no error. The rendered text is returned and
// mirrored to any provided writers; capture frames left open by the template
// are force-closed first so no buffered output is lost.
func (e *Engine) Render(ref any, local map[string]any, out ...io.Writer) (string, error) {
	return e.RenderContext(context.Background(), ref, local, out...)
}

// RenderContext is Render with a caller-supplied context, handed through to
// the executor.
func (e *Engine) RenderContext(ctx context.Context, ref any, local map[string]any, out ...io.Writer) (string, error) {
	match, err := e.finder.Find(ref)
	if err != nil {
		return "", err
	}
	if !match.Found {
		return "", nil
	}

	var buf bytes.Buffer
	parent := e.stack
	e.stack = blocks.NewStack(&buf)

	execErr := e.exec.Execute(ctx, match.Path, e.scope(local), e.stack)
	e.stack.CloseAll()
	e.stack = parent

	if execErr != nil {
		return "", fmt.Errorf("engine: render %q: %w", match.Path, execErr)
	}

	rendered := buf.String()
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

// Embed renders ref into the currently active capture context, sharing the
// engine's assigned data. It is intended for composition from inside an
// executing template. With no render in flight the template is executed
// top-level and its output discarded.
func (e *Engine) Embed(ref any, local map[string]any) error {
	return e.EmbedContext(context.Background(), ref, local)
}

// EmbedContext is Embed with a caller-supplied context.
func (e *Engine) EmbedContext(ctx context.Context, ref any, local map[string]any) error {
	if e.stack == nil {
		_, err := e.RenderContext(ctx, ref, local)
		return err
	}

	match, err := e.finder.Find(ref)
	if err != nil {
		return err
	}
	if !match.Found {
		return nil
	}

	if err := e.exec.Execute(ctx, match.Path, e.scope(local), e.stack); err != nil {
		return fmt.Errorf("engine: embed %q: %w", match.Path, err)
	}
	return nil
}

// Block opens a capture frame for the named block. It reports whether a
// frame was opened: an unregistered name, or a call outside an active
// render, is skipped without error.
func (e *Engine) Block(name string, payload any) bool {
	if e.stack == nil {
		return false
	}
	def, ok := e.blocks.Get(name)
	if !ok {
		return false
	}
	e.stack.Open(def, payload)
	return true
}

// EndBlock closes the innermost open capture frame, applying its transform.
// With no open frame it is a no-op and reports false.
func (e *Engine) EndBlock() bool {
	if e.stack == nil {
		return false
	}
	return e.stack.Close()
}

func (e *Engine) scope(local map[string]any) executor.Scope {
	vars := make(map[string]any, len(e.data)+len(local))
	for key, value := range e.data {
		vars[key] = value
	}
	for key, value := range local {
		vars[key] = value
	}
	return executor.Scope{Vars: vars, Controls: controls{engine: e}}
}

// controls adapts the engine to the executor.Controls seam handed to
// template code.
type controls struct {
	engine *Engine
}

func (c controls) OpenBlock(name string, payload any) bool {
	return c.engine.Block(name, payload)
}

func (c controls) CloseBlock() bool {
	return c.engine.EndBlock()
}

func (c controls) Embed(reference string, data map[string]any) error {
	return c.engine.Embed(reference, data)
}
