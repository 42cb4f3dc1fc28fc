package blocks

import (
	"bytes"
	"io"
)

// Stack is the LIFO set of open capture frames for one render. It
// implements io.Writer: writes land in the innermost open frame, or in the
// base writer when no frame is open. Open and Close swap the current sink,
// which keeps capture an explicit call/return protocol with no ambient
// buffering state.
type Stack struct {
	base   io.Writer
	frames []*frame
}

type frame struct {
	def     Definition
	payload any
	buf     bytes.Buffer
}

// NewStack creates a capture stack writing top-level output to base.
func NewStack(base io.Writer) *Stack {
	return &Stack{base: base}
}

// Write sends p to the current sink.
func (s *Stack) Write(p []byte) (int, error) {
	return s.sink().Write(p)
}

func (s *Stack) sink() io.Writer {
	if n := len(s.frames); n > 0 {
		return &s.frames[n-1].buf
	}
	return s.base
}

// Open pushes a capture frame. All output written until the matching Close
// accumulates in the frame's buffer, including the transformed output of any
// nested frames.
func (s *Stack) Open(def Definition, payload any) {
	s.frames = append(s.frames, &frame{def: def, payload: payload})
}

// Close pops the innermost frame, applies its transform to the captured
// text, and writes the result to the next-outer sink. With no open frame it
// is a no-op and reports false.
func (s *Stack) Close() bool {
	n := len(s.frames)
	if n == 0 {
		return false
	}

	f := s.frames[n-1]
	s.frames = s.frames[:n-1]

	out := f.buf.String()
	if f.def.Transform != nil {
		out = f.def.Transform(out, f.payload)
	}
	_, _ = io.WriteString(s.sink(), out)
	return true
}

// CloseAll closes every frame still open. Render calls this on completion so
// unmatched opens cannot silently swallow buffered output.
func (s *Stack) CloseAll() {
	for s.Close() {
	}
}

// Depth returns the number of open frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}
