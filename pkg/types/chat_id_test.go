package types

import (
	"encoding/json"
	"testing"
)

func TestChatIDMarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   ChatID
		want string
	}{
		{name: "numeric", id: ChatIDFromInt(-1001234567890), want: `-1001234567890`},
		{name: "username", id: ChatIDFromUsername("@channel"), want: `"@channel"`},
		{name: "numeric-looking username", id: ChatIDFromUsername("12345"), want: `"12345"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.id)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestChatIDUnmarshalPreservesVariant(t *testing.T) {
	t.Parallel()

	var numeric ChatID
	if err := json.Unmarshal([]byte(`42`), &numeric); err != nil {
		t.Fatalf("Unmarshal(42) error: %v", err)
	}
	if id, ok := numeric.Int(); !ok || id != 42 {
		t.Errorf("Int() = (%d, %v), want (42, true)", id, ok)
	}

	var named ChatID
	if err := json.Unmarshal([]byte(`"42"`), &named); err != nil {
		t.Fatalf("Unmarshal(\"42\") error: %v", err)
	}
	if !named.IsUsername() {
		t.Fatal("string input must decode to the username variant")
	}
	if name, _ := named.Username(); name != "42" {
		t.Errorf("Username() = %q, want %q", name, "42")
	}
	if named == numeric {
		t.Error("numeric and username variants must not compare equal")
	}
}

func TestChatIDUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{`true`, `1.5`, `{}`} {
		var id ChatID
		if err := json.Unmarshal([]byte(input), &id); err == nil {
			t.Errorf("Unmarshal(%s) = %v, want error", input, id)
		}
	}
}

func TestChatIDString(t *testing.T) {
	t.Parallel()

	if got := ChatIDFromInt(7).String(); got != "7" {
		t.Errorf("String() = %q, want %q", got, "7")
	}
	if got := ChatIDFromUsername("@news").String(); got != "@news" {
		t.Errorf("String() = %q, want %q", got, "@news")
	}
	if !(ChatID{}).IsZero() {
		t.Error("zero ChatID must report IsZero")
	}
}
