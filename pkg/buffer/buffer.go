// Package buffer holds the text being edited and moves it to and from disk.
//
// The buffer keeps the exact bytes it was loaded with, so a load followed by a
// save reproduces the file unchanged. Edits made through a text widget only
// replace the lines that changed.
package buffer

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

var (
	ErrNotRegularFile = errors.New("not a regular file")
	ErrEmptyPath      = errors.New("empty path")
)

const defaultPerm os.FileMode = 0644

// Buffer is an in-memory text buffer backed by a file system
type Buffer struct {
	fs   afero.Fs
	text string
}

// New creates an empty buffer on the given file system
func New(fs afero.Fs) *Buffer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Buffer{fs: fs}
}

// Text returns the current content
func (b *Buffer) Text() string {
	return b.text
}

// SetText replaces the whole content
func (b *Buffer) SetText(text string) {
	b.text = text
}

// Clear empties the buffer
func (b *Buffer) Clear() {
	b.text = ""
}

// Empty reports whether the buffer holds no characters
func (b *Buffer) Empty() bool {
	return b.text == ""
}

// Len returns the content length in bytes
func (b *Buffer) Len() int {
	return len(b.text)
}

// Load replaces the content with the file at path
func (b *Buffer) Load(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	info, err := b.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("failed to load %s: %w", path, ErrNotRegularFile)
	}

	content, err := afero.ReadFile(b.fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	b.text = string(content)
	return nil
}

// Save writes the content to path, keeping the permissions of an existing file
func (b *Buffer) Save(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	perm := defaultPerm
	if info, err := b.fs.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("failed to write %s: %w", path, ErrNotRegularFile)
		}
		perm = info.Mode().Perm()
	}

	if err := afero.WriteFile(b.fs, path, []byte(b.text), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
