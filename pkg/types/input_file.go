package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
)

type fileKind uint8

const (
	fileInline fileKind = iota + 1
	fileID
	fileURL
)

// attachScheme prefixes references to multipart parts inside JSON values.
const attachScheme = "attach://"

var uploadSeq atomic.Uint64

func nextUploadID() string {
	return "tgbind-upload-" + strconv.FormatUint(uploadSeq.Add(1), 10)
}

// Attach returns the JSON string that references the multipart part name.
func Attach(part string) string { return attachScheme + part }

// InputFile is a file to send: inline content uploaded with the request,
// the ID of a file already stored on Telegram servers, or an HTTP URL
// Telegram downloads itself. Only inline content needs a multipart upload.
type InputFile struct {
	kind   fileKind
	name   string
	data   []byte
	reader io.Reader
	ref    string
	upload string
}

// FileFromBytes returns an inline file with the given file name.
func FileFromBytes(name string, data []byte) InputFile {
	return InputFile{kind: fileInline, name: name, data: data, upload: nextUploadID()}
}

// FileFromReader returns an inline file whose content is read from r when
// the request body is written. r is consumed once.
func FileFromReader(name string, r io.Reader) InputFile {
	return InputFile{kind: fileInline, name: name, reader: r, upload: nextUploadID()}
}

// FileFromID references a file already uploaded to Telegram.
func FileFromID(id string) InputFile {
	return InputFile{kind: fileID, ref: id}
}

// FileFromURL references a file Telegram fetches from url.
func FileFromURL(url string) InputFile {
	return InputFile{kind: fileURL, ref: url}
}

// IsInline reports whether the file content travels with the request.
func (f InputFile) IsInline() bool { return f.kind == fileInline }

// FileName returns the name of an inline file.
func (f InputFile) FileName() string { return f.name }

// Ref returns the file ID or URL of a non-inline file.
func (f InputFile) Ref() string { return f.ref }

// UploadID identifies an inline file and every copy of it. It is fixed at
// construction, so encoding a file never modifies it.
func (f InputFile) UploadID() string { return f.upload }

// Open returns a reader over the inline content.
func (f InputFile) Open() io.Reader {
	if f.reader != nil {
		return f.reader
	}
	return bytes.NewReader(f.data)
}

// MarshalJSON implements json.Marshaler. Inline files encode as
// "attach://<UploadID>"; the form encoder rewrites that reference to the
// multipart part it uploads the content under.
func (f InputFile) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case fileInline:
		return json.Marshal(Attach(f.upload))
	case fileID, fileURL:
		return json.Marshal(f.ref)
	default:
		return nil, fmt.Errorf("types: empty input file")
	}
}

// FileCarrier is implemented by values that embed input files, so the
// form encoder can find inline uploads nested inside structured fields.
type FileCarrier interface {
	InputFiles() []*InputFile
}
