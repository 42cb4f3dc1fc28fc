// Package executor defines the seam between the render engine and the
// template language that actually evaluates files. The engine only needs the
// capability "execute this file, streaming writes into the current capture
// target".
package executor

import (
	"context"
	"io"
)

// Controls is the handle an executing template uses to drive the engine's
// capture and composition protocol. Implementations live on the engine; the
// executor exposes them to template code as callables.
type Controls interface {
	// OpenBlock starts capturing output into the named block. It reports
	// whether a frame was opened; an unregistered name is skipped.
	OpenBlock(name string, payload any) bool

	// CloseBlock ends the innermost open block, applying its transform. It
	// reports whether a frame was closed.
	CloseBlock() bool

	// Embed renders another template into the current capture context,
	// sharing the engine's assigned data.
	Embed(reference string, data map[string]any) error
}

// Scope is the evaluation scope handed to an executing template.
type Scope struct {
	// Vars is the union of engine-assigned and call-local data.
	Vars map[string]any

	// Controls drives block capture and embedding from template code. May be
	// nil when the host renders without an engine.
	Controls Controls
}

// Executor evaluates a resolved template file. Output must be written to out
// incrementally, in program order, so that block captures opened mid-template
// intercept exactly the writes produced after them.
type Executor interface {
	Execute(ctx context.Context, file string, scope Scope, out io.Writer) error
}
