package bot

import "github.com/flemzord/tgbind/pkg/types"

// RawRequest calls a method that has no dedicated request type. Fields are
// sent in the order they are first set.
type RawRequest[T any] struct{ Request[T] }

// Raw builds a request for an arbitrary method.
func Raw[T any](b *Bot, method string) *RawRequest[T] {
	s := newSchema(method)
	s.open = true
	return &RawRequest[T]{newRequest[T](b, s)}
}

// Param sets a field. Structured values are JSON-encoded.
func (r *RawRequest[T]) Param(name string, v any) *RawRequest[T] {
	r.set(name, v)
	return r
}

// File sets a file field.
func (r *RawRequest[T]) File(name string, f types.InputFile) *RawRequest[T] {
	r.set(name, &f)
	return r
}
