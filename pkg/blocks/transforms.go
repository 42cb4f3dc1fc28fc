package blocks

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Well-known names the engine registers at construction time.
const (
	MinimizeName = "minimize"
	SanitizeName = "sanitize"
)

// Minimize splits the captured text on any newline convention, trims each
// resulting segment, and concatenates the segments with no separator.
func Minimize(captured string, _ any) string {
	var b strings.Builder
	b.Grow(len(captured))
	for _, segment := range splitLines(captured) {
		b.WriteString(strings.TrimSpace(segment))
	}
	return b.String()
}

func splitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// Sanitize strips markup that is unsafe for user-generated content from the
// captured text using bluemonday's UGC policy.
func Sanitize(policy *bluemonday.Policy) Transform {
	if policy == nil {
		policy = bluemonday.UGCPolicy()
	}
	return func(captured string, _ any) string {
		return policy.Sanitize(captured)
	}
}

// Builtins returns a registry pre-populated with the well-known transforms.
func Builtins() *Registry {
	registry := NewRegistry()
	_ = registry.Register(MinimizeName, Minimize)
	_ = registry.Register(SanitizeName, Sanitize(nil))
	return registry
}
