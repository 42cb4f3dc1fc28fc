// Package resolver locates template files across registered search paths,
// trying extension×path combinations before falling back to a configured
// default template.
package resolver

import (
	"log/slog"

	"github.com/goliatone/go-views/pkg/paths"
)

// ScopeSeparator splits a reference into a path id and a relative template
// name, restricting the scan to that single registered path.
const ScopeSeparator = "::"

// Match is the outcome of a resolution attempt. Found distinguishes a real
// hit from the soft not-found result; a miss is not an error.
type Match struct {
	Path  string
	Found bool
}

// Option configures a Finder.
type Option func(*Finder)

// WithProber swaps the file-existence oracle. Defaults to OSProber.
func WithProber(prober Prober) Option {
	return func(f *Finder) {
		if prober != nil {
			f.prober = prober
		}
	}
}

// WithExtensions sets the ordered extension fallback list. Leading dots are
// accepted and stripped.
func WithExtensions(extensions ...string) Option {
	return func(f *Finder) {
		cleaned := make([]string, 0, len(extensions))
		for _, ext := range extensions {
			if trimmed := trimExtension(ext); trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}
		if len(cleaned) > 0 {
			f.extensions = cleaned
		}
	}
}

// WithDefaultTemplate registers the reference tried when the requested one
// cannot be resolved. The fallback is applied once, never recursively.
func WithDefaultTemplate(ref Reference) Option {
	return func(f *Finder) {
		f.defaultTemplate = ref
	}
}

// WithDebug enables the not-found diagnostic.
func WithDebug(debug bool) Option {
	return func(f *Finder) {
		f.debug = debug
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Finder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// DefaultExtension is used when no extension list is configured.
const DefaultExtension = "html"

// Finder resolves logical template references to concrete files.
type Finder struct {
	registry        *paths.Registry
	prober          Prober
	extensions      []string
	defaultTemplate Reference
	debug           bool
	logger          *slog.Logger
}

// New creates a Finder scanning the given registry.
func New(registry *paths.Registry, options ...Option) *Finder {
	f := &Finder{
		registry:   registry,
		prober:     OSProber{},
		extensions: []string{DefaultExtension},
		logger:     slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Find resolves ref to a concrete file. A supplier reference is invoked at
// most once per attempt. When the primary lookup misses, the configured
// default template is tried with the identical algorithm; a final miss
// yields a NotFound match and, in debug mode, a diagnostic naming the
// originally requested reference.
func (f *Finder) Find(ref any) (Match, error) {
	reference, err := Normalize(ref)
	if err != nil {
		return Match{}, err
	}

	name := reference.Resolve()
	if match := f.locate(name); match.Found {
		return match, nil
	}

	if !f.defaultTemplate.IsZero() {
		if match := f.locate(f.defaultTemplate.Resolve()); match.Found {
			return match, nil
		}
	}

	if f.debug {
		f.logger.Debug("template not found", "reference", name)
	}
	return Match{}, nil
}

// locate runs one pass of the scan algorithm: extension-major, path-minor,
// then a working-directory probe. The loop nesting is load-bearing: a
// preferred extension wins across every path before the next extension is
// tried anywhere.
func (f *Finder) locate(name string) Match {
	scope := f.registry.All()

	id, relative, scoped := Split(name)
	if scoped {
		entry, ok := f.registry.Get(id)
		if !ok {
			// Strict scoping: an unknown id empties the search set.
			scope = nil
		} else {
			scope = []paths.Entry{entry}
		}
	}

	for _, ext := range f.extensions {
		for _, entry := range scope {
			candidate := entry.Directory + relative + "." + ext
			if f.prober.Exists(candidate) {
				return Match{Path: candidate, Found: true}
			}
		}
	}

	if len(scope) > 0 {
		for _, ext := range f.extensions {
			candidate := relative + "." + ext
			if f.prober.Exists(candidate) {
				return Match{Path: candidate, Found: true}
			}
		}
	}

	return Match{}
}

func trimExtension(ext string) string {
	for len(ext) > 0 && ext[0] == '.' {
		ext = ext[1:]
	}
	return ext
}
