// Package testsupport provides fixture helpers shared by the package tests:
// scratch template trees and fixture loading.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree materialises files (relative path → content) under a fresh
// temporary directory and returns its path. Parent directories are created
// as needed.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %q: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %q: %v", path, err)
		}
	}
	return root
}

// MustReadString reads a fixture file, failing the test on error.
func MustReadString(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %q: %v", path, err)
	}
	return string(data)
}
