package security

import (
	"regexp"
	"strings"
	"testing"
)

const testToken = "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw"

func TestRedactor_Redact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		leak  string
	}{
		{name: "bare token", input: "token=" + testToken, leak: testToken},
		{name: "request path", input: "Post https://api.telegram.org/bot" + testToken + "/getMe: EOF", leak: testToken},
		{name: "file path", input: "https://api.telegram.org/file/bot" + testToken + "/photos/a.jpg", leak: testToken},
	}

	r := NewRedactor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.Redact(tt.input)
			if strings.Contains(got, tt.leak) {
				t.Errorf("Redact(%q) = %q, still contains secret", tt.input, got)
			}
			if !strings.Contains(got, RedactPlaceholder) {
				t.Errorf("Redact(%q) = %q, want placeholder", tt.input, got)
			}
		})
	}
}

func TestRedactor_LeavesOrdinaryText(t *testing.T) {
	t.Parallel()

	r := NewRedactor()
	for _, s := range []string{"", "sendMessage ok", "chat 12345:short", "update_id=987654321"} {
		if got := r.Redact(s); got != s {
			t.Errorf("Redact(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestRedactor_Literals(t *testing.T) {
	t.Parallel()

	r := NewRedactor()
	r.AddLiteral("")
	r.AddLiteral("webhook-secret-value")

	got := r.Redact("header=webhook-secret-value")
	if got != "header="+RedactPlaceholder {
		t.Errorf("Redact() = %q", got)
	}
}

func TestRedactor_AddPattern(t *testing.T) {
	t.Parallel()

	r := NewRedactor()
	r.AddPattern(regexp.MustCompile(`pw-[0-9]+`))

	if got := r.Redact("login pw-4242"); got != "login "+RedactPlaceholder {
		t.Errorf("Redact() = %q", got)
	}
}

func TestRedactor_RedactMap(t *testing.T) {
	t.Parallel()

	r := NewRedactor()
	doc := map[string]any{
		"version": "1",
		"bot": map[string]any{
			"token":   "anything",
			"api_url": "https://api.telegram.org",
		},
		"updates": map[string]any{
			"webhook_secret": "s3cr3t",
			"webhook_url":    "https://example.com/hook",
		},
		"schedules": []any{
			map[string]any{"name": "ping", "params": map[string]any{"text": "token " + testToken}},
		},
	}

	r.RedactMap(doc)

	bot := doc["bot"].(map[string]any)
	if bot["token"] != RedactPlaceholder {
		t.Errorf("bot.token = %v", bot["token"])
	}
	if bot["api_url"] != "https://api.telegram.org" {
		t.Errorf("bot.api_url = %v", bot["api_url"])
	}
	if doc["updates"].(map[string]any)["webhook_secret"] != RedactPlaceholder {
		t.Error("webhook_secret not redacted")
	}
	params := doc["schedules"].([]any)[0].(map[string]any)["params"].(map[string]any)
	if strings.Contains(params["text"].(string), testToken) {
		t.Errorf("nested token not redacted: %v", params["text"])
	}
}
