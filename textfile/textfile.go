// Package textfile reads tokenizer inputs and writes tokenizer outputs.
//
// All errors returned are [*IOError]s.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/textlex/debug"
	"github.com/signadot/textlex/format"
)

type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err.Error())
}

// Resolve joins name onto dir.  An empty dir leaves name unchanged.
func Resolve(dir, name string) string {
	if dir == "" || name == "-" {
		return name
	}
	return filepath.Join(dir, name)
}

// OutputPath returns the path the tokens of in are written to by
// default: in with the suffix of f appended.
func OutputPath(in string, f format.Format) string {
	return in + f.Suffix()
}

// Read returns the full contents of path.
func Read(path string) (string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	if debug.Read() {
		debug.Logf("read %d bytes from %s\n", len(d), path)
	}
	return string(d), nil
}

// Write replaces the contents of path with d.  The data is first
// written to a temporary file in the same directory, so path is
// either fully written or left as it was.
func Write(path string, d []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(d); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if debug.Write() {
		debug.Logf("wrote %d bytes to %s\n", len(d), path)
	}
	return nil
}
