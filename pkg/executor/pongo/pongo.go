// Package pongo is the default template executor, backed by a pongo2
// template set loaded from the local filesystem.
package pongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-views/pkg/executor"
)

// Option configures the pongo executor before construction.
type Option func(*config)

type config struct {
	baseDir string
	globals map[string]any
}

// WithBaseDir resolves template paths relative to dir instead of the working
// directory.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithGlobals seeds values available to every template executed by this
// engine, independent of the per-call scope.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Engine executes pongo2 template files. Parsed templates are cached by
// path; execution streams output unbuffered so block captures opened
// mid-template see writes in program order.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

var _ executor.Executor = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
	if err != nil {
		return nil, fmt.Errorf("pongo: create loader: %w", err)
	}

	engine := &Engine{
		set:       pongo2.NewSet("views", loader),
		templates: make(map[string]*pongo2.Template),
	}
	if len(cfg.globals) > 0 {
		engine.set.Globals = pongo2.Context{}
		for key, value := range cfg.globals {
			engine.set.Globals[key] = value
		}
	}
	return engine, nil
}

// Execute evaluates the template at file with the given scope, streaming
// output into out.
func (e *Engine) Execute(ctx context.Context, file string, scope executor.Scope, out io.Writer) error {
	if e == nil || e.set == nil {
		return errors.New("pongo: engine is nil")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	tmpl, err := e.template(file)
	if err != nil {
		return err
	}

	viewCtx := buildContext(scope)
	if err := tmpl.ExecuteWriterUnbuffered(viewCtx, out); err != nil {
		return fmt.Errorf("pongo: execute template %q: %w", file, err)
	}
	return nil
}

// RegisterFilter registers a template filter with pongo2's global filter
// table, translating between native values and pongo2's value wrappers.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already exists", name)
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "views_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
	return pongo2.RegisterFilter(name, filter)
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", path, err)
	}

	e.templates[path] = tmpl
	return tmpl, nil
}

func buildContext(scope executor.Scope) pongo2.Context {
	out := make(pongo2.Context, len(scope.Vars)+3)
	for key, value := range scope.Vars {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = value
	}
	if scope.Controls != nil {
		attachControls(out, scope.Controls)
	}
	return out
}

// attachControls exposes the capture protocol to template code. The helpers
// produce no inline output themselves; block transforms and embeds write
// through the engine's current sink.
func attachControls(ctx pongo2.Context, controls executor.Controls) {
	ctx["block"] = func(args ...*pongo2.Value) *pongo2.Value {
		if len(args) == 0 {
			return pongo2.AsValue("")
		}
		var payload any
		if len(args) > 1 {
			payload = args[1].Interface()
		}
		controls.OpenBlock(args[0].String(), payload)
		return pongo2.AsValue("")
	}
	ctx["endBlock"] = func(...*pongo2.Value) *pongo2.Value {
		controls.CloseBlock()
		return pongo2.AsValue("")
	}
	ctx["embed"] = func(args ...*pongo2.Value) *pongo2.Value {
		if len(args) == 0 {
			return pongo2.AsValue("")
		}
		var data map[string]any
		if len(args) > 1 {
			if m, ok := args[1].Interface().(map[string]any); ok {
				data = m
			}
		}
		// Embed misses are silent, matching the engine's render contract.
		_ = controls.Embed(args[0].String(), data)
		return pongo2.AsValue("")
	}
}
