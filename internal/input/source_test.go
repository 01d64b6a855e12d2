package input

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func readAll(t *testing.T, next func() (string, error)) []string {
	t.Helper()
	var out []string
	for {
		line, err := next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, line)
	}
}

func TestReaderSource(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"MOVE", []string{"MOVE"}},
		{"PLACE 0,0,NORTH\nMOVE\nREPORT\n", []string{"PLACE 0,0,NORTH", "MOVE", "REPORT"}},
		{"LEFT\r\nRIGHT\r\n", []string{"LEFT", "RIGHT"}},
		{"\n\nREPORT", []string{"", "", "REPORT"}},
	}

	for _, tt := range tests {
		src := NewReaderSource(strings.NewReader(tt.input))
		got := readAll(t, src.Next)
		if len(got) != len(tt.expected) {
			t.Errorf("%q: lines = %q, want %q", tt.input, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("%q: line %d = %q, want %q", tt.input, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestReaderSourceStaysAtEOF(t *testing.T) {
	src := NewReaderSource(strings.NewReader("MOVE\n"))
	src.Next()
	for i := 0; i < 3; i++ {
		if _, err := src.Next(); err != io.EOF {
			t.Fatalf("call %d: err = %v, want io.EOF", i, err)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte("PLACE 1,2,EAST\nREPORT\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer src.Close()

	got := readAll(t, src.Next)
	if len(got) != 2 || got[0] != "PLACE 1,2,EAST" || got[1] != "REPORT" {
		t.Errorf("lines = %q", got)
	}
}

func TestOpenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := OpenFile(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("error %v does not wrap a not-exist error", err)
	}
}

func TestIsTerminalOnFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
