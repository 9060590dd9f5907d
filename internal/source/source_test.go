package source

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	defer st.Close()

	if st.Name() != path {
		t.Fatalf("Name() = %q, want %q", st.Name(), path)
	}
	data, err := io.ReadAll(st)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "one\ntwo\n" {
		t.Fatalf("read %q, want fixture content", data)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nope.txt")
	_, err := Open(name)
	if err == nil {
		t.Fatalf("Open(%q) expected error", name)
	}
	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Open error type %T, want *OpenError", err)
	}
	if openErr.Name != name {
		t.Fatalf("OpenError.Name = %q, want %q", openErr.Name, name)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("OpenError does not wrap fs.ErrNotExist: %v", err)
	}
	// The diagnostic form is "<name>: <cause>" with the bare OS error text,
	// not Go's "open <name>:" wrapper.
	if !strings.HasPrefix(err.Error(), name+": ") {
		t.Fatalf("diagnostic = %q, want %q prefix", err.Error(), name+": ")
	}
	if strings.Contains(err.Error(), "open "+name) {
		t.Fatalf("diagnostic %q repeats the os wrapper", err.Error())
	}
}

func TestOpenStdin(t *testing.T) {
	st, err := Open(Stdin)
	if err != nil {
		t.Fatalf("Open(-): %v", err)
	}
	if st.Name() != Stdin {
		t.Fatalf("Name() = %q, want -", st.Name())
	}
	// Closing a stdin stream must not touch the process's stdin.
	if err := st.Close(); err != nil {
		t.Fatalf("close stdin stream: %v", err)
	}
	if _, err := os.Stdin.Stat(); err != nil {
		t.Fatalf("os.Stdin closed by stream close: %v", err)
	}
}
