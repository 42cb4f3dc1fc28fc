package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidReference is returned when a template reference is neither a
// string nor a zero-argument producer of one. This is the only hard failure
// the resolver surfaces; resolution misses degrade to NotFound instead.
var ErrInvalidReference = errors.New("resolver: reference must be a string or a func() string")

// Reference is a template reference that is either a literal name or a
// supplier evaluated lazily, once per resolution attempt.
type Reference struct {
	literal  string
	supplier func() string
}

// Literal wraps a fixed reference string.
func Literal(name string) Reference {
	return Reference{literal: name}
}

// Supplier wraps a producer invoked when the reference is resolved.
func Supplier(fn func() string) Reference {
	return Reference{supplier: fn}
}

// IsZero reports whether the reference carries neither a literal nor a
// supplier.
func (r Reference) IsZero() bool {
	return r.literal == "" && r.supplier == nil
}

// Resolve returns the reference string, invoking the supplier when present.
func (r Reference) Resolve() string {
	if r.supplier != nil {
		return r.supplier()
	}
	return r.literal
}

// Normalize coerces the accepted reference shapes into a Reference. It
// accepts a string, a func() string, or a Reference value; anything else
// fails with ErrInvalidReference.
func Normalize(ref any) (Reference, error) {
	switch v := ref.(type) {
	case string:
		return Literal(v), nil
	case func() string:
		if v == nil {
			return Reference{}, fmt.Errorf("%w, got a nil func", ErrInvalidReference)
		}
		return Supplier(v), nil
	case Reference:
		return v, nil
	case nil:
		return Reference{}, fmt.Errorf("%w, got nil", ErrInvalidReference)
	default:
		return Reference{}, fmt.Errorf("%w, got %T", ErrInvalidReference, ref)
	}
}

// Split separates an "id::name" reference into its path id and relative
// name. The second return is the relative name; scoped reports whether the
// separator was present.
func Split(name string) (id, relative string, scoped bool) {
	id, relative, scoped = strings.Cut(name, ScopeSeparator)
	if !scoped {
		return "", name, false
	}
	return id, relative, true
}
