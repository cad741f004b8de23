package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/flemzord/tgbind/pkg/types"
)

// Kind tells how a Param is carried on the wire.
type Kind uint8

const (
	// KindJSON is a JSON value inside the request object.
	KindJSON Kind = iota
	// KindText is a text part of a multipart body.
	KindText
	// KindFile is a file part of a multipart body.
	KindFile
)

// Param is one rendered request field.
type Param struct {
	Name string
	Kind Kind
	JSON json.RawMessage
	Text string
	File *types.InputFile
}

// Params is the ordered parameter set of one request.
type Params struct {
	mode   Mode
	params []Param
}

// Mode returns the transport chosen for the parameters.
func (p *Params) Mode() Mode { return p.mode }

// Len returns the number of parameters.
func (p *Params) Len() int { return len(p.params) }

// Names returns the parameter names in wire order.
func (p *Params) Names() []string {
	names := make([]string, len(p.params))
	for i, param := range p.params {
		names[i] = param.Name
	}
	return names
}

// Get returns the parameter with the given name.
func (p *Params) Get(name string) (Param, bool) {
	for _, param := range p.params {
		if param.Name == name {
			return param, true
		}
	}
	return Param{}, false
}

// EncodeJSON renders a ModeJSON parameter set as a JSON object whose keys
// keep the field order.
func (p *Params) EncodeJSON() ([]byte, error) {
	if p.mode != ModeJSON {
		return nil, errors.New("form: parameters require multipart transport")
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, param := range p.params {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(param.Name)
		if err != nil {
			return nil, fmt.Errorf("form: encode key %q: %w", param.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(param.JSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteMultipart writes a ModeMultipart parameter set to w and returns the
// Content-Type header value carrying the boundary.
func (p *Params) WriteMultipart(w io.Writer) (string, error) {
	if p.mode != ModeMultipart {
		return "", errors.New("form: parameters use json transport")
	}
	mw := multipart.NewWriter(w)
	for _, param := range p.params {
		switch param.Kind {
		case KindText:
			if err := mw.WriteField(param.Name, param.Text); err != nil {
				return "", fmt.Errorf("form: write field %q: %w", param.Name, err)
			}
		case KindFile:
			part, err := mw.CreateFormFile(param.Name, param.File.FileName())
			if err != nil {
				return "", fmt.Errorf("form: create part %q: %w", param.Name, err)
			}
			if _, err := io.Copy(part, param.File.Open()); err != nil {
				return "", fmt.Errorf("form: write part %q: %w", param.Name, err)
			}
		default:
			return "", fmt.Errorf("form: field %q has no multipart representation", param.Name)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("form: close multipart body: %w", err)
	}
	return mw.FormDataContentType(), nil
}
