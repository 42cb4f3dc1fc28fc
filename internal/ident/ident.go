// Package ident derives stable identifiers for registered search paths.
package ident

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashTag prefixes identifiers derived from a content hash so callers can
// tell synthesized ids apart from human-supplied ones.
const HashTag = "path_"

const hashLen = 12

// Valid reports whether s matches the identifier pattern: a letter or
// underscore followed by letters, digits, or underscores.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Derive produces a deterministic identifier for a normalized path. Paths
// with separators yield "<parent>.<last>"; a bare path that is itself a
// valid identifier is used as-is; anything else falls back to Hash.
func Derive(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return Hash(path)
	}

	if strings.Contains(trimmed, "/") {
		segments := strings.Split(trimmed, "/")
		last := segments[len(segments)-1]
		parent := segments[len(segments)-2]
		if parent != "" && last != "" {
			return parent + "." + last
		}
		return Hash(path)
	}

	if Valid(trimmed) {
		return trimmed
	}
	return Hash(path)
}

// Hash returns a stable, collision-resistant identifier for a path that
// cannot be expressed as a readable id. The same path always hashes to the
// same identifier.
func Hash(path string) string {
	sum := sha256.Sum256([]byte(path))
	return HashTag + hex.EncodeToString(sum[:])[:hashLen]
}
