package form

import (
	"reflect"

	"github.com/flemzord/tgbind/pkg/types"
)

var (
	inputFileType = reflect.TypeFor[types.InputFile]()
	carrierType   = reflect.TypeFor[types.FileCarrier]()
)

// inlineScan collects the inline files reachable from field values, once
// per upload ID, in discovery order. It only reads the values it visits.
type inlineScan struct {
	files []*types.InputFile
	seen  map[string]bool
	ptrs  map[visit]bool
}

type visit struct {
	typ reflect.Type
	ptr uintptr
}

func newInlineScan() *inlineScan {
	return &inlineScan{seen: make(map[string]bool), ptrs: make(map[visit]bool)}
}

func (s *inlineScan) add(f types.InputFile) {
	if !f.IsInline() || s.seen[f.UploadID()] {
		return
	}
	s.seen[f.UploadID()] = true
	s.files = append(s.files, &f)
}

// walk descends through pointers, interfaces, slices, arrays, maps and the
// exported fields of structs. FileCarrier values report their own files.
func (s *inlineScan) walk(v reflect.Value) {
	if !v.IsValid() {
		return
	}
	switch v.Kind() {
	case reflect.Pointer:
		key := visit{typ: v.Type(), ptr: v.Pointer()}
		if v.IsNil() || s.ptrs[key] {
			return
		}
		s.ptrs[key] = true
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		s.walk(v.Elem())
		return
	}

	t := v.Type()
	if t == inputFileType {
		s.add(v.Interface().(types.InputFile))
		return
	}
	if t.Implements(carrierType) && v.CanInterface() {
		for _, f := range v.Interface().(types.FileCarrier).InputFiles() {
			if f != nil {
				s.add(*f)
			}
		}
		return
	}

	switch v.Kind() {
	case reflect.Pointer:
		s.walk(v.Elem())
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return
		}
		for i := range v.Len() {
			s.walk(v.Index(i))
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			s.walk(iter.Value())
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if t.Field(i).IsExported() {
				s.walk(v.Field(i))
			}
		}
	}
}
