package engine

import (
	"log/slog"

	"github.com/goliatone/go-views/pkg/blocks"
	"github.com/goliatone/go-views/pkg/executor"
	"github.com/goliatone/go-views/pkg/paths"
	"github.com/goliatone/go-views/pkg/resolver"
)

// Option customises the engine configuration.
type Option func(*config)

type config struct {
	entries         []paths.Entry
	extensions      []string
	defaultTemplate any
	debug           bool
	logger          *slog.Logger
	exec            executor.Executor
	prober          resolver.Prober
	blockDefs       []blocks.Definition
	globals         map[string]any
	theme           *themeConfig
}

// WithPaths registers search directories in order, deriving their ids from
// the paths themselves.
func WithPaths(dirs ...string) Option {
	return func(cfg *config) {
		for _, dir := range dirs {
			cfg.entries = append(cfg.entries, paths.Entry{Directory: dir})
		}
	}
}

// WithNamedPath registers a search directory under an explicit id. Invalid
// ids fall back to derivation, matching PathRegistry.Add.
func WithNamedPath(id, dir string) Option {
	return func(cfg *config) {
		cfg.entries = append(cfg.entries, paths.Entry{ID: id, Directory: dir})
	}
}

// WithExtensions sets the ordered extension fallback list. The default is a
// single "html" entry.
func WithExtensions(extensions ...string) Option {
	return func(cfg *config) {
		if len(extensions) > 0 {
			cfg.extensions = extensions
		}
	}
}

// WithDefaultTemplate sets the reference rendered when a requested one does
// not resolve. Accepts a string, a func() string, or a resolver.Reference.
func WithDefaultTemplate(ref any) Option {
	return func(cfg *config) {
		cfg.defaultTemplate = ref
	}
}

// WithDebug toggles the not-found diagnostic.
func WithDebug(debug bool) Option {
	return func(cfg *config) {
		cfg.debug = debug
	}
}

// WithLogger injects the logger used for diagnostics. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithExecutor injects a custom template executor. The default is the
// pongo2-backed executor.
func WithExecutor(exec executor.Executor) Option {
	return func(cfg *config) {
		if exec != nil {
			cfg.exec = exec
		}
	}
}

// WithProber swaps the file-existence oracle used during resolution.
func WithProber(prober resolver.Prober) Option {
	return func(cfg *config) {
		if prober != nil {
			cfg.prober = prober
		}
	}
}

// WithBlock registers a block transform at construction time, alongside the
// builtins. Later registrations for the same name overwrite earlier ones.
func WithBlock(name string, transform blocks.Transform) Option {
	return func(cfg *config) {
		cfg.blockDefs = append(cfg.blockDefs, blocks.Definition{Name: name, Transform: transform})
	}
}

// WithGlobals seeds the engine's data bag, as if Assign had been called for
// each entry before the first render.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[key] = value
		}
	}
}
