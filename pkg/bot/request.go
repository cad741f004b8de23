package bot

import (
	"context"
	"fmt"

	"github.com/flemzord/tgbind/pkg/form"
)

type fieldSpec struct {
	name     string
	required bool
	nullable bool
}

// schema describes the fields of one Bot API method in wire order.
type schema struct {
	method string
	fields []fieldSpec
	index  map[string]int
	open   bool
}

func newSchema(method string) *schema {
	return &schema{method: method, index: make(map[string]int)}
}

func (s *schema) required(names ...string) *schema {
	return s.add(true, names)
}

func (s *schema) optional(names ...string) *schema {
	return s.add(false, names)
}

// nullable marks fields for which an explicit null is meaningful, such as
// a caption that can be cleared.
func (s *schema) nullable(names ...string) *schema {
	for _, name := range names {
		i, ok := s.index[name]
		if !ok {
			panic(fmt.Sprintf("bot: %s: nullable field %q is not declared", s.method, name))
		}
		s.fields[i].nullable = true
	}
	return s
}

func (s *schema) add(required bool, names []string) *schema {
	for _, name := range names {
		if _, dup := s.index[name]; dup {
			panic(fmt.Sprintf("bot: %s: field %q declared twice", s.method, name))
		}
		s.index[name] = len(s.fields)
		s.fields = append(s.fields, fieldSpec{name: name, required: required})
	}
	return s
}

func (s *schema) lookup(name string) (fieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return fieldSpec{}, false
	}
	return s.fields[i], true
}

// Request is an unsent call to a Bot API method whose result decodes into
// T. Endpoint types embed it and add typed setters; it is consumed by Send.
type Request[T any] struct {
	bot    *Bot
	schema *schema
	values map[string]any
	extra  []string
	sent   bool
}

func newRequest[T any](b *Bot, s *schema) Request[T] {
	return Request[T]{bot: b, schema: s, values: make(map[string]any)}
}

// set records a field value, replacing any earlier one.
func (r *Request[T]) set(name string, v any) {
	spec, declared := r.schema.lookup(name)
	switch {
	case declared:
		if v == form.Null && !spec.nullable {
			panic(fmt.Sprintf("bot: %s: field %q cannot be null", r.schema.method, name))
		}
	case r.schema.open:
		if _, seen := r.values[name]; !seen {
			r.extra = append(r.extra, name)
		}
	default:
		panic(fmt.Sprintf("bot: %s has no field %q", r.schema.method, name))
	}
	r.values[name] = v
}

// Method returns the Bot API method name.
func (r *Request[T]) Method() string { return r.schema.method }

// Payload encodes the fields set so far without sending anything.
func (r *Request[T]) Payload() (*form.Params, error) {
	b := form.New()
	add := func(name string, required bool) {
		v, ok := r.values[name]
		if !ok {
			return
		}
		if required {
			b.Add(name, v)
			return
		}
		b.AddIfSome(name, v)
	}
	for _, f := range r.schema.fields {
		add(f.name, f.required)
	}
	for _, name := range r.extra {
		add(name, false)
	}
	return b.Build()
}

// Send encodes the request, performs the HTTP exchange and decodes the
// result. The request is consumed: a second call returns ErrAlreadySent
// without touching the network.
func (r *Request[T]) Send(ctx context.Context) (T, error) {
	var zero T
	if r.sent {
		return zero, ErrAlreadySent
	}
	r.sent = true

	params, err := r.Payload()
	if err != nil {
		return zero, fmt.Errorf("telegram: encode %s request: %w", r.schema.method, err)
	}
	return dispatch[T](ctx, r.bot, r.schema.method, params)
}
