// Package form turns the fields of a Bot API request into a parameter set
// and picks the transport for it: a JSON object, or a multipart body when
// at least one inline file has to be uploaded.
package form

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/flemzord/tgbind/pkg/types"
)

// Mode is the HTTP body encoding of a request.
type Mode int

const (
	// ModeJSON sends the parameters as a JSON object.
	ModeJSON Mode = iota
	// ModeMultipart sends the parameters as multipart/form-data parts.
	ModeMultipart
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == ModeMultipart {
		return "multipart"
	}
	return "json"
}

// Null is a field value that encodes as an explicit null rather than
// being omitted. Only fields whose contract gives null a meaning use it.
var Null = null{}

type null struct{}

type tag uint8

const (
	tagValue tag = iota
	tagFile
	tagNull
)

// pending is a field collected by the Builder, not yet rendered.
type pending struct {
	name  string
	tag   tag
	value any
	file  *types.InputFile
}

// Builder collects request fields in call order.
type Builder struct {
	fields []pending
	index  map[string]int
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{index: make(map[string]int)}
}

// Add appends a field. Adding a name twice replaces the earlier value
// in place. InputFile values are registered as files.
func (b *Builder) Add(name string, v any) *Builder {
	switch f := v.(type) {
	case types.InputFile:
		return b.AddFile(name, &f)
	case *types.InputFile:
		return b.AddFile(name, f)
	case null:
		return b.put(pending{name: name, tag: tagNull})
	}
	return b.put(pending{name: name, tag: tagValue, value: v})
}

// AddIfSome appends a field only when v holds a value: nil interfaces and
// nil pointers, slices, maps and funcs are skipped.
func (b *Builder) AddIfSome(name string, v any) *Builder {
	if isNone(v) {
		return b
	}
	return b.Add(name, v)
}

// AddFile registers a file field. Inline files force multipart transport.
// A nil file is skipped.
func (b *Builder) AddFile(name string, f *types.InputFile) *Builder {
	if f == nil {
		return b
	}
	return b.put(pending{name: name, tag: tagFile, file: f})
}

func (b *Builder) put(p pending) *Builder {
	if i, ok := b.index[p.name]; ok {
		b.fields[i] = p
		return b
	}
	b.index[p.name] = len(b.fields)
	b.fields = append(b.fields, p)
	return b
}

// Build renders the collected fields. The transport is only chosen after
// every field, including files nested anywhere inside structured values,
// was scanned. Build never modifies the values it was given.
func (b *Builder) Build() (*Params, error) {
	inline := false
	scan := newInlineScan()
	for _, p := range b.fields {
		switch p.tag {
		case tagFile:
			inline = inline || p.file.IsInline()
		case tagValue:
			scan.walk(reflect.ValueOf(p.value))
		}
	}
	nested := scan.files

	mode := ModeJSON
	if inline || len(nested) > 0 {
		mode = ModeMultipart
	}

	// Nested inline files are referenced from their parent field as
	// attach://<part>. Part names skip the names of top-level fields.
	parts := make([]string, len(nested))
	refs := make([]string, 0, 2*len(nested))
	next := 0
	for i, f := range nested {
		name := fmt.Sprintf("file%d", next)
		for b.taken(name) {
			next++
			name = fmt.Sprintf("file%d", next)
		}
		next++
		parts[i] = name
		from, _ := json.Marshal(types.Attach(f.UploadID()))
		to, _ := json.Marshal(types.Attach(name))
		refs = append(refs, string(from), string(to))
	}
	rewrite := strings.NewReplacer(refs...)

	out := &Params{mode: mode, params: make([]Param, 0, len(b.fields)+len(nested))}
	for _, p := range b.fields {
		param, err := render(p, mode, rewrite)
		if err != nil {
			return nil, err
		}
		out.params = append(out.params, param)
	}
	for i, f := range nested {
		out.params = append(out.params, Param{Name: parts[i], Kind: KindFile, File: f})
	}
	return out, nil
}

func (b *Builder) taken(name string) bool {
	_, ok := b.index[name]
	return ok
}

func render(p pending, mode Mode, rewrite *strings.Replacer) (Param, error) {
	switch p.tag {
	case tagNull:
		if mode == ModeMultipart {
			return Param{Name: p.name, Kind: KindText}, nil
		}
		return Param{Name: p.name, Kind: KindJSON, JSON: json.RawMessage("null")}, nil

	case tagFile:
		if p.file.IsInline() {
			return Param{Name: p.name, Kind: KindFile, File: p.file}, nil
		}
		if mode == ModeMultipart {
			return Param{Name: p.name, Kind: KindText, Text: p.file.Ref()}, nil
		}
		raw, err := json.Marshal(p.file)
		if err != nil {
			return Param{}, fmt.Errorf("form: encode field %q: %w", p.name, err)
		}
		return Param{Name: p.name, Kind: KindJSON, JSON: raw}, nil
	}

	raw, err := json.Marshal(p.value)
	if err != nil {
		return Param{}, fmt.Errorf("form: encode field %q: %w", p.name, err)
	}
	raw = []byte(rewrite.Replace(string(raw)))
	if mode == ModeJSON {
		return Param{Name: p.name, Kind: KindJSON, JSON: raw}, nil
	}

	// Multipart parts are flat strings: JSON strings are sent unquoted,
	// everything else as its JSON text.
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Param{}, fmt.Errorf("form: encode field %q: %w", p.name, err)
		}
		return Param{Name: p.name, Kind: KindText, Text: s}, nil
	}
	return Param{Name: p.name, Kind: KindText, Text: string(raw)}, nil
}

func isNone(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
