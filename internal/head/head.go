// Package head implements the truncated reader / header printer: per source,
// the leading N lines or N bytes are copied to the output, with a
// "==> name <==" header separating sources when more than one is configured.
package head

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/encoding/unicode"

	"peek/internal/config"
	"peek/internal/source"
)

// Printer drives per-source truncated copying. Failures opening or reading a
// source are downgraded to diagnostics on the error writer; failures writing
// to the output writer abort the whole run.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	header *color.Color
}

// New builds a Printer over the given output and diagnostic writers.
// Colorize controls ANSI coloring of headers; it must already be resolved
// (tty detection happens in the CLI layer).
func New(out, errOut io.Writer, colorize bool) *Printer {
	header := color.New(color.FgCyan, color.Bold)
	if colorize {
		header.EnableColor()
	} else {
		header.DisableColor()
	}
	return &Printer{out: out, errOut: errOut, header: header}
}

// Run processes every configured source in order. Per-source open and read
// failures become stderr diagnostics and the run continues; the returned
// error is non-nil only for output-stream failures.
func (p *Printer) Run(cfg config.Config) error {
	showHeaders := (len(cfg.Sources) > 1 || cfg.Verbose) && !cfg.Quiet
	for i, name := range cfg.Sources {
		st, err := source.Open(name)
		if err != nil {
			p.diag(err)
			continue
		}
		err = p.printSource(st, cfg, showHeaders, i > 0)
		_ = st.Close()
		if err != nil {
			var readErr *source.ReadError
			if errors.As(err, &readErr) {
				p.diag(readErr)
				continue
			}
			return err
		}
	}
	return nil
}

func (p *Printer) printSource(st *source.Stream, cfg config.Config, withHeader, separate bool) error {
	if withHeader {
		if err := p.printHeader(st.Name(), separate); err != nil {
			return err
		}
	}
	if cfg.ByteMode() {
		return p.copyBytes(st, cfg.Bytes)
	}
	return p.copyLines(st, cfg.Lines)
}

// printHeader emits "==> name <==". The blank separator line is keyed on the
// source index: every source but the first gets one, whether or not the
// previous source produced output.
func (p *Printer) printHeader(name string, separate bool) error {
	if separate {
		if _, err := fmt.Fprintln(p.out); err != nil {
			return err
		}
	}
	if _, err := p.header.Fprintf(p.out, "==> %s <==", name); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.out)
	return err
}

// copyBytes reads up to n bytes in one bounded pass and writes them lossily
// decoded as UTF-8. Only what the source actually yields is buffered, so a
// count far beyond the source's size is satisfied with the available
// content. A multi-byte sequence split by the cutoff comes out as U+FFFD, so
// the written byte length may differ from n.
func (p *Printer) copyBytes(st *source.Stream, n int) error {
	var buf bytes.Buffer
	_, err := io.Copy(&buf, io.LimitReader(st, int64(n)))
	if buf.Len() > 0 {
		if _, werr := p.out.Write(decodeLossy(buf.Bytes())); werr != nil {
			return werr
		}
	}
	if err != nil {
		return source.NewReadError(st.Name(), err)
	}
	return nil
}

// copyLines emits up to n lines, each written immediately as read with its
// trailing newline preserved. End-of-source before n lines is not an error.
func (p *Printer) copyLines(st *source.Stream, n int) error {
	for i := 0; i < n; i++ {
		line, err := st.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(p.out, line); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return source.NewReadError(st.Name(), err)
		}
	}
	return nil
}

func (p *Printer) diag(err error) {
	// Diagnostics already carry the "<name>: <cause>" form.
	fmt.Fprintf(p.errOut, "%v\n", err)
}

func decodeLossy(b []byte) []byte {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return b
	}
	return out
}
