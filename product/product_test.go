package product

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	// 版本号应为 x.y.z
	if parts := strings.Split(Version, "."); len(parts) != 3 {
		t.Errorf("Version should be in x.y.z format, got %s", Version)
	}
	if VersionID <= 0 {
		t.Errorf("VersionID should be positive, got %d", VersionID)
	}
}

func TestUserAgent(t *testing.T) {
	// 应该类似: Tinyjson/0.1.0 (linux amd64) Go/go1.26.2
	if !strings.HasPrefix(UserAgent, "Tinyjson/"+Version+" ") {
		t.Errorf("UserAgent should start with the version, got %s", UserAgent)
	}
	for _, want := range []string{"(" + runtime.GOOS + " " + runtime.GOARCH + ")", "Go/" + runtime.Version()} {
		if !strings.Contains(UserAgent, want) {
			t.Errorf("UserAgent should contain %q, got %s", want, UserAgent)
		}
	}
	if strings.Contains(UserAgent, "{") {
		t.Errorf("UserAgent should not contain placeholders, got %s", UserAgent)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		tmpl     string
		expected string
	}{
		{"{version}", Version},
		{"{system}/{sysArch}", runtime.GOOS + "/" + runtime.GOARCH},
		{"v{version} v{version}", "v" + Version + " v" + Version},
		{"{unknown}", "{unknown}"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Render(tt.tmpl); got != tt.expected {
			t.Errorf("Render(%q) = %q; want %q", tt.tmpl, got, tt.expected)
		}
	}
}
