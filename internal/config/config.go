// Package config builds the validated run configuration out of raw
// command-line input and the optional defaults file.
package config

import (
	"errors"
	"fmt"

	"peek/internal/count"
)

// DefaultLines is the line count used when neither the command line nor the
// defaults file supplies one.
const DefaultLines = 10

// ErrConflictingModes indicates that both a line count and a byte count were
// explicitly supplied. Reported before any source is touched.
var ErrConflictingModes = errors.New("cannot combine --lines with --bytes")

// Config is the validated input to the printer.
type Config struct {
	// Sources is the ordered list of source names; never empty. The name "-"
	// denotes standard input.
	Sources []string

	// Lines is the line count; positive. Ignored while byte mode is active.
	Lines int

	// Bytes is the byte count; zero means byte mode is inactive.
	Bytes int

	// Quiet suppresses headers even with multiple sources.
	Quiet bool

	// Verbose forces headers even with a single source.
	Verbose bool
}

// ByteMode reports whether truncation is byte-based. Byte count presence
// always wins over the line count.
func (c Config) ByteMode() bool {
	return c.Bytes > 0
}

// Input carries the raw command-line values into Build. Numeric flags arrive
// as the untouched textual tokens so validation errors can echo them back.
type Input struct {
	Sources []string

	// LinesToken is the raw --lines value; empty when the flag was not
	// explicitly set.
	LinesToken string

	// BytesToken is the raw --bytes value; empty when the flag was not
	// explicitly set.
	BytesToken string

	// DefaultLines overrides the built-in line count default when positive.
	// Used by the defaults file; an explicit --lines still wins.
	DefaultLines int

	Quiet   bool
	Verbose bool
}

// Build validates raw command-line input into a Config.
func Build(in Input) (Config, error) {
	if in.LinesToken != "" && in.BytesToken != "" {
		return Config{}, ErrConflictingModes
	}

	lines := DefaultLines
	if in.DefaultLines > 0 {
		lines = in.DefaultLines
	}
	if in.LinesToken != "" {
		n, err := count.ParsePositive(in.LinesToken)
		if err != nil {
			return Config{}, fmt.Errorf("illegal line count -- %s", err)
		}
		lines = n
	}

	bytes := 0
	if in.BytesToken != "" {
		n, err := count.ParsePositive(in.BytesToken)
		if err != nil {
			return Config{}, fmt.Errorf("illegal byte count -- %s", err)
		}
		bytes = n
	}

	sources := in.Sources
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	return Config{
		Sources: sources,
		Lines:   lines,
		Bytes:   bytes,
		Quiet:   in.Quiet,
		Verbose: in.Verbose,
	}, nil
}
