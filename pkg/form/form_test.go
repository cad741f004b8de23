package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/flemzord/tgbind/pkg/types"
)

func TestBuilderOmitsUnsetOptionalFields(t *testing.T) {
	t.Parallel()

	var caption *string
	var markup types.ReplyMarkup
	var entities []types.MessageEntity

	params, err := New().
		Add("chat_id", types.ChatIDFromInt(1)).
		AddIfSome("caption", caption).
		AddIfSome("reply_markup", markup).
		AddIfSome("entities", entities).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if got := params.Names(); !reflect.DeepEqual(got, []string{"chat_id"}) {
		t.Errorf("Names() = %v, want [chat_id]", got)
	}
	if _, ok := params.Get("caption"); ok {
		t.Error("unset optional field must not be present")
	}

	body, err := params.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON() error: %v", err)
	}
	if string(body) != `{"chat_id":1}` {
		t.Errorf("EncodeJSON() = %s, want {\"chat_id\":1}", body)
	}
}

func TestBuilderKeepsOrderAndReplacesInPlace(t *testing.T) {
	t.Parallel()

	params, err := New().
		Add("b", 1).
		Add("a", 2).
		Add("b", 3).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	body, _ := params.EncodeJSON()
	if string(body) != `{"b":3,"a":2}` {
		t.Errorf("EncodeJSON() = %s, want {\"b\":3,\"a\":2}", body)
	}
}

func TestBuilderJSONKeepsStructuredValues(t *testing.T) {
	t.Parallel()

	markup := types.InlineKeyboardMarkup{
		InlineKeyboard: [][]types.InlineKeyboardButton{{{Text: "ok", CallbackData: "yes"}}},
	}
	params, err := New().
		Add("chat_id", types.ChatIDFromUsername("@news")).
		Add("photo", types.FileFromID("AgAD")).
		Add("reply_markup", markup).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if params.Mode() != ModeJSON {
		t.Fatalf("Mode() = %v, want json", params.Mode())
	}

	body, err := params.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON() error: %v", err)
	}
	want := `{"chat_id":"@news","photo":"AgAD","reply_markup":{"inline_keyboard":[[{"text":"ok","callback_data":"yes"}]]}}`
	if string(body) != want {
		t.Errorf("EncodeJSON() = %s, want %s", body, want)
	}
	if _, err := params.WriteMultipart(io.Discard); err == nil {
		t.Error("WriteMultipart() on json params should fail")
	}
}

func TestBuilderTransportSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() *Builder
		want  Mode
	}{
		{
			name: "no files",
			build: func() *Builder {
				return New().Add("chat_id", 1).Add("text", "hi")
			},
			want: ModeJSON,
		},
		{
			name: "remote file only",
			build: func() *Builder {
				return New().Add("chat_id", 1).AddFile("photo", ptr(types.FileFromURL("https://example.com/a.png")))
			},
			want: ModeJSON,
		},
		{
			name: "top-level inline file",
			build: func() *Builder {
				return New().Add("chat_id", 1).Add("photo", types.FileFromBytes("a.png", []byte("png")))
			},
			want: ModeMultipart,
		},
		{
			name: "inline file nested in a list",
			build: func() *Builder {
				return New().Add("chat_id", 1).Add("media", types.MediaGroup{
					types.NewInputMediaPhoto(types.FileFromID("abc")),
					types.NewInputMediaPhoto(types.FileFromBytes("b.png", []byte("png"))),
				})
			},
			want: ModeMultipart,
		},
		{
			name: "list of remote files",
			build: func() *Builder {
				return New().Add("media", types.MediaGroup{
					types.NewInputMediaPhoto(types.FileFromID("abc")),
					types.NewInputMediaDocument(types.FileFromURL("https://example.com/d.pdf")),
				})
			},
			want: ModeJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params, err := tt.build().Build()
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if params.Mode() != tt.want {
				t.Errorf("Mode() = %v, want %v", params.Mode(), tt.want)
			}
		})
	}
}

func TestBuilderMultipartFlattensEveryField(t *testing.T) {
	t.Parallel()

	params, err := New().
		Add("chat_id", types.ChatIDFromUsername("@news")).
		Add("disable_notification", true).
		Add("reply_to_message_id", 42).
		Add("reply_markup", types.NewForceReply()).
		Add("document", types.FileFromBytes("report.pdf", []byte("%PDF"))).
		Add("thumbnail", types.FileFromID("thumb-id")).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	parts := readMultipart(t, params)
	want := map[string]string{
		"chat_id":              "@news",
		"disable_notification": "true",
		"reply_to_message_id":  "42",
		"reply_markup":         `{"force_reply":true}`,
		"document":             "%PDF",
		"thumbnail":            "thumb-id",
	}
	if !reflect.DeepEqual(parts.values, want) {
		t.Errorf("parts = %v, want %v", parts.values, want)
	}
	if parts.filenames["document"] != "report.pdf" {
		t.Errorf("document filename = %q, want %q", parts.filenames["document"], "report.pdf")
	}
	wantOrder := []string{"chat_id", "disable_notification", "reply_to_message_id", "reply_markup", "document", "thumbnail"}
	if !reflect.DeepEqual(parts.order, wantOrder) {
		t.Errorf("part order = %v, want %v", parts.order, wantOrder)
	}
}

func TestBuilderNestedInlineFilesGetAttachParts(t *testing.T) {
	t.Parallel()

	group := types.MediaGroup{
		types.NewInputMediaPhoto(types.FileFromBytes("one.jpg", []byte("1"))),
		types.NewInputMediaPhoto(types.FileFromID("remote")),
		types.NewInputMediaPhoto(types.FileFromBytes("two.jpg", []byte("2"))),
	}
	params, err := New().
		Add("chat_id", 7).
		Add("media", group).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	parts := readMultipart(t, params)

	var media []map[string]any
	if err := json.Unmarshal([]byte(parts.values["media"]), &media); err != nil {
		t.Fatalf("media part is not JSON: %v (%q)", err, parts.values["media"])
	}
	gotRefs := []any{media[0]["media"], media[1]["media"], media[2]["media"]}
	wantRefs := []any{"attach://file0", "remote", "attach://file1"}
	if !reflect.DeepEqual(gotRefs, wantRefs) {
		t.Errorf("media refs = %v, want %v", gotRefs, wantRefs)
	}
	if parts.values["file0"] != "1" || parts.values["file1"] != "2" {
		t.Errorf("file parts = %q, %q", parts.values["file0"], parts.values["file1"])
	}
	if parts.filenames["file1"] != "two.jpg" {
		t.Errorf("file1 filename = %q, want two.jpg", parts.filenames["file1"])
	}
}

func TestBuilderFindsInlineFilesInPlainCollections(t *testing.T) {
	t.Parallel()

	photo := types.FileFromBytes("a.jpg", []byte("A"))
	doc := types.FileFromBytes("b.pdf", []byte("B"))
	type attachment struct {
		Kind string           `json:"kind"`
		File *types.InputFile `json:"file"`
	}

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"slice of media", []types.InputMedia{types.NewInputMediaPhoto(photo)}, `[{"type":"photo","media":"attach://file0"}]`},
		{"slice of any", []any{types.NewInputMediaPhoto(photo)}, `[{"type":"photo","media":"attach://file0"}]`},
		{"map of files", map[string]types.InputFile{"x": photo}, `{"x":"attach://file0"}`},
		{"pointer to struct", &attachment{Kind: "doc", File: &doc}, `{"kind":"doc","file":"attach://file0"}`},
		{"array of pointers", [1]*types.InputMedia{ptr(types.NewInputMediaPhoto(photo))}, `[{"type":"photo","media":"attach://file0"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params, err := New().Add("items", tt.value).Build()
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			parts := readMultipart(t, params)
			if parts.values["items"] != tt.want {
				t.Errorf("items = %s, want %s", parts.values["items"], tt.want)
			}
			if _, ok := parts.filenames["file0"]; !ok {
				t.Errorf("no file0 part in %v", parts.order)
			}
		})
	}
}

func TestBuilderUploadsSharedFileOnce(t *testing.T) {
	t.Parallel()

	shared := types.FileFromBytes("same.jpg", []byte("S"))
	params, err := New().
		Add("media", []types.InputMedia{types.NewInputMediaPhoto(shared), types.NewInputMediaPhoto(shared)}).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	parts := readMultipart(t, params)
	want := []string{"media", "file0"}
	if !reflect.DeepEqual(parts.order, want) {
		t.Errorf("part order = %v, want %v", parts.order, want)
	}
}

func TestBuilderPartNamesAvoidFieldNames(t *testing.T) {
	t.Parallel()

	params, err := New().
		Add("file0", types.FileFromBytes("top.txt", []byte("top"))).
		Add("media", types.MediaGroup{types.NewInputMediaDocument(types.FileFromBytes("nested.txt", []byte("nested")))}).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	parts := readMultipart(t, params)
	want := []string{"file0", "media", "file1"}
	if !reflect.DeepEqual(parts.order, want) {
		t.Fatalf("part order = %v, want %v", parts.order, want)
	}
	if parts.values["file0"] != "top" || parts.values["file1"] != "nested" {
		t.Errorf("file parts = %q, %q", parts.values["file0"], parts.values["file1"])
	}
	if parts.values["media"] != `[{"type":"document","media":"attach://file1"}]` {
		t.Errorf("media = %s", parts.values["media"])
	}
}

func TestBuilderLeavesValuesUntouched(t *testing.T) {
	t.Parallel()

	thumb := types.FileFromBytes("thumb.jpg", []byte("t"))
	video := types.NewInputMediaVideo(types.FileFromBytes("v.mp4", []byte("v")))
	video.Thumbnail = &thumb
	group := types.MediaGroup{types.NewInputMediaPhoto(types.FileFromBytes("p.jpg", []byte("p"))), video}

	before := make([]types.InputFile, 0, 3)
	for _, f := range group.InputFiles() {
		before = append(before, *f)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			params, err := New().Add("media", group).Build()
			if err != nil {
				errs <- err
				return
			}
			if p, ok := params.Get("media"); !ok || !strings.Contains(p.Text, "attach://file2") {
				errs <- fmt.Errorf("media = %+v", p)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	for i, f := range group.InputFiles() {
		if !reflect.DeepEqual(*f, before[i]) {
			t.Errorf("file %d changed during Build: %+v", i, *f)
		}
	}
}

func TestBuilderExplicitNull(t *testing.T) {
	t.Parallel()

	params, err := New().Add("chat_id", 1).Add("caption", Null).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	body, _ := params.EncodeJSON()
	if string(body) != `{"chat_id":1,"caption":null}` {
		t.Errorf("EncodeJSON() = %s", body)
	}

	params, err = New().
		Add("caption", Null).
		Add("photo", types.FileFromBytes("p.png", nil)).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	caption, ok := params.Get("caption")
	if !ok || caption.Kind != KindText || caption.Text != "" {
		t.Errorf("multipart null caption = %+v, %v", caption, ok)
	}
}

func TestBuilderMarshalError(t *testing.T) {
	t.Parallel()

	_, err := New().Add("bad", make(chan int)).Build()
	if err == nil {
		t.Fatal("Build() should fail for an unencodable value")
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("error should name the field: %v", err)
	}
}

type multipartParts struct {
	order     []string
	values    map[string]string
	filenames map[string]string
}

func readMultipart(t *testing.T, params *Params) multipartParts {
	t.Helper()

	if params.Mode() != ModeMultipart {
		t.Fatalf("Mode() = %v, want multipart", params.Mode())
	}
	if _, err := params.EncodeJSON(); err == nil {
		t.Fatal("EncodeJSON() on multipart params should fail")
	}

	var buf bytes.Buffer
	contentType, err := params.WriteMultipart(&buf)
	if err != nil {
		t.Fatalf("WriteMultipart() error: %v", err)
	}
	mediaType, mp, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("content type = %q (%v)", contentType, err)
	}

	out := multipartParts{values: map[string]string{}, filenames: map[string]string{}}
	reader := multipart.NewReader(&buf, mp["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart() error: %v", err)
		}
		data, _ := io.ReadAll(part)
		out.order = append(out.order, part.FormName())
		out.values[part.FormName()] = string(data)
		if name := part.FileName(); name != "" {
			out.filenames[part.FormName()] = name
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }
