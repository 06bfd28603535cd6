package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeSensitiveInfo(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain message", "plain message"},
		{"token sk-abcdefgh12345678 used", "token sk-*** used"},
		{"fetch https://example.com/docs/a.json", "fetch https://***/docs/a.json"},
		{"host www.example.com", "host www.***"},
		{"short sk-abc", "short sk-abc"},
	}
	for _, tt := range tests {
		got := SanitizeSensitiveInfo(tt.input)
		if got != tt.expected {
			t.Errorf("SanitizeSensitiveInfo(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abc"); got != "abc" {
		t.Errorf("short text should be kept, got %q", got)
	}
	long := strings.Repeat("x", maxMessageLen+10)
	got := truncate(long)
	if !strings.HasSuffix(got, "...(4106 bytes)") || len(got) != maxMessageLen+len("...(4106 bytes)") {
		t.Errorf("unexpected truncation %q", got[maxMessageLen:])
	}
}

func TestFormat(t *testing.T) {
	got := format("a\tb\nc\\%d", 1)
	if got != `a\tb\nc\\1` {
		t.Errorf("format = %q", got)
	}
}

func TestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	os.Setenv(envLogName, path)
	defer os.Unsetenv(envLogName)

	Load()

	l := New("test-module")
	l.Info("test info message")
	l.Warn("multi\nline")
	l.Debug("hidden debug message")
	SetDebug(true)
	l.Debug("test debug message")
	SetDebug(false)
	l.Error("test error message")

	Shutdown()
	l.Info("after shutdown")
	Shutdown()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	content := string(data)
	for _, want := range []string{
		"[INFO][log] log inited",
		"[INFO][test-module] test info message",
		`[WARN][test-module] multi\nline`,
		"[DEBUG][test-module] test debug message",
		"[ERROR][test-module] test error message",
		"[INFO][test-module] after shutdown",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("log should contain %q, got:\n%s", want, content)
		}
	}
	if strings.Contains(content, "hidden debug message") {
		t.Errorf("debug messages should be dropped while debug is off")
	}
	if Dropped() != 0 {
		t.Errorf("no message should be dropped, got %d", Dropped())
	}
}
