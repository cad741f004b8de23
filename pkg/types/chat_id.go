package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ChatID identifies a chat either by numeric ID or by the username of a
// channel or supergroup ("@channelusername"). The two forms are never
// converted into each other.
type ChatID struct {
	id       int64
	username string
	named    bool
}

// ChatIDFromInt returns a numeric chat identifier.
func ChatIDFromInt(id int64) ChatID {
	return ChatID{id: id}
}

// ChatIDFromUsername returns a username chat identifier.
func ChatIDFromUsername(username string) ChatID {
	return ChatID{username: username, named: true}
}

// IsUsername reports whether the identifier holds a username.
func (c ChatID) IsUsername() bool { return c.named }

// Int returns the numeric ID and whether the identifier holds one.
func (c ChatID) Int() (int64, bool) { return c.id, !c.named }

// Username returns the username and whether the identifier holds one.
func (c ChatID) Username() (string, bool) { return c.username, c.named }

// IsZero reports whether c is the zero value.
func (c ChatID) IsZero() bool { return !c.named && c.id == 0 }

// String returns the held variant in its text form.
func (c ChatID) String() string {
	if c.named {
		return c.username
	}
	return strconv.FormatInt(c.id, 10)
}

// MarshalJSON implements json.Marshaler.
func (c ChatID) MarshalJSON() ([]byte, error) {
	if c.named {
		return json.Marshal(c.username)
	}
	return strconv.AppendInt(nil, c.id, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON string decodes to the
// username variant, a JSON integer to the numeric variant.
func (c *ChatID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		return fmt.Errorf("types: empty chat id")
	case string(data) == "null":
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("types: decode chat id: %w", err)
		}
		*c = ChatIDFromUsername(s)
		return nil
	}
	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("types: chat id must be an integer or a string, got %s", data)
	}
	*c = ChatIDFromInt(id)
	return nil
}
