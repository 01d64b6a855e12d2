package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	Version = "v1.2.3"
	Commit = "abcdef0123456789"

	if Short() != "v1.2.3" {
		t.Errorf("Short() = %q", Short())
	}
	info := Info()
	if !strings.HasPrefix(info, "toyrobot v1.2.3 (commit: abcdef0,") {
		t.Errorf("Info() = %q", info)
	}
	if !strings.Contains(Full(), "Commit:     abcdef0123456789") {
		t.Errorf("Full() = %q", Full())
	}
}

func TestShortCommit(t *testing.T) {
	oldCommit := Commit
	defer func() { Commit = oldCommit }()

	tests := []struct {
		commit   string
		expected string
	}{
		{"abcdef0123456789", "abcdef0"},
		{"abcdef0", "abcdef0"},
		{"abc", "abc"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		Commit = tt.commit
		if got := ShortCommit(); got != tt.expected {
			t.Errorf("ShortCommit() with %q = %q, want %q", tt.commit, got, tt.expected)
		}
	}
}
