// Package input provides the line sources the interpreter reads commands from.
package input

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ReaderSource yields the lines of an io.Reader.
type ReaderSource struct {
	scanner *bufio.Scanner
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{scanner: bufio.NewScanner(r)}
}

// Next returns the next line without its terminator, or io.EOF.
func (s *ReaderSource) Next() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// FileSource is a ReaderSource that owns the file it reads.
type FileSource struct {
	*ReaderSource
	file *os.File
}

func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open script %s", path)
	}
	return &FileSource{ReaderSource: NewReaderSource(f), file: f}, nil
}

func (s *FileSource) Close() error {
	return s.file.Close()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
