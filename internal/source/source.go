// Package source turns source names into buffered readable streams. The
// distinguished name "-" binds to standard input; anything else is opened as
// a file path.
package source

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
)

// Stdin is the pseudo-name denoting the process's standard input.
const Stdin = "-"

const bufSize = 64 * 1024

// OpenError reports a source that could not be opened. Its message is the
// diagnostic form "<name>: <cause>".
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ReadError reports a failure while reading an already-open source. Same
// diagnostic form and same recovery policy as OpenError.
type ReadError struct {
	Name string
	Err  error
}

// NewReadError wraps a read failure, stripping the os wrapper the same way
// Open does for its failures.
func NewReadError(name string, err error) *ReadError {
	return &ReadError{Name: name, Err: cause(err)}
}

func (e *ReadError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Stream is a buffered byte stream over a single source. It is owned
// exclusively by whoever processes that source and must be closed when the
// source completes or fails.
type Stream struct {
	*bufio.Reader
	name   string
	closer io.Closer
}

// Name returns the source name the stream was opened under.
func (s *Stream) Name() string {
	return s.name
}

// Close releases the underlying file. Closing a stdin-backed stream is a
// no-op: the process owns standard input, not the stream.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open resolves a source name into a ready-to-read stream. Opening "-" never
// fails; any other name is opened as a file path and failures come back as
// *OpenError.
func Open(name string) (*Stream, error) {
	if name == Stdin {
		return &Stream{Reader: bufio.NewReaderSize(os.Stdin, bufSize), name: name}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, &OpenError{Name: name, Err: cause(err)}
	}
	return &Stream{Reader: bufio.NewReaderSize(f, bufSize), name: name, closer: f}, nil
}

// cause strips the os wrapper so diagnostics read "<name>: no such file or
// directory" rather than repeating the path.
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
