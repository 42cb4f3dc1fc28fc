package resolver

import "os"

// Prober answers whether a candidate path exists as a regular file. The
// resolver treats it as a pure, side-effect-free oracle, which keeps the
// scan algorithm testable without touching a real filesystem.
type Prober interface {
	Exists(path string) bool
}

// OSProber checks candidates against the local filesystem.
type OSProber struct{}

// Exists reports whether path is a regular file.
func (OSProber) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// MapProber is a Prober backed by a fixed set of paths, useful in tests and
// for embedded template sets.
type MapProber map[string]struct{}

// NewMapProber builds a MapProber from the provided paths.
func NewMapProber(paths ...string) MapProber {
	m := make(MapProber, len(paths))
	for _, path := range paths {
		m[path] = struct{}{}
	}
	return m
}

// Exists reports whether path is in the set.
func (m MapProber) Exists(path string) bool {
	_, ok := m[path]
	return ok
}
