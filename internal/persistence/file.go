package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileSlot stores each key as a JSON file inside a directory.
// Writes go through a temp file and rename so a crash never leaves half a document.
type FileSlot struct {
	dir string
}

// NewFileSlot creates a slot rooted at dir
func NewFileSlot(dir string) *FileSlot {
	return &FileSlot{dir: dir}
}

// Path returns the file backing key
func (s *FileSlot) Path(key string) string {
	return filepath.Join(s.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

// Get returns the stored bytes, or ErrSlotEmpty
func (s *FileSlot) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if os.IsNotExist(err) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path(key), err)
	}
	return data, nil
}

// Put overwrites the stored bytes
func (s *FileSlot) Put(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".slot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.Path(key), err)
	}
	return nil
}
