// Package fileio reads and writes whole documents.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const defaultPerm fs.FileMode = 0o644

// OS stores documents on the local file system.
type OS struct{}

func (OS) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteFile replaces the file at path with text, keeping the permissions of
// an existing file.
func (OS) WriteFile(path, text string) error {
	perm := defaultPerm
	if fi, err := os.Stat(path); err == nil {
		if fi.IsDir() {
			return fmt.Errorf("%s: %w", path, errIsDir)
		}
		perm = fi.Mode().Perm()
	}
	return os.WriteFile(path, []byte(text), perm)
}

var errIsDir = errors.New("is a directory")

// Mem is an in-memory store. WriteErr, when set, fails every write.
type Mem struct {
	files    map[string]string
	WriteErr error
}

// NewMem returns a store preloaded with files.
func NewMem(files map[string]string) *Mem {
	m := &Mem{files: make(map[string]string, len(files))}
	for k, v := range files {
		m.files[k] = v
	}
	return m
}

func (m *Mem) ReadFile(path string) (string, error) {
	text, ok := m.files[path]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return text, nil
}

func (m *Mem) WriteFile(path, text string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if m.files == nil {
		m.files = make(map[string]string)
	}
	m.files[path] = text
	return nil
}

// File returns the stored text of path.
func (m *Mem) File(path string) (string, bool) {
	text, ok := m.files[path]
	return text, ok
}
