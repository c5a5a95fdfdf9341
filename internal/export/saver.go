package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Saver writes an exported file somewhere the user can pick it up
type Saver interface {
	Save(filename string, data []byte) (string, error)
}

// DirSaver writes files into a directory, replacing existing ones
type DirSaver struct {
	Dir string
}

// Save writes data to Dir/filename and returns the absolute path
func (s DirSaver) Save(filename string, data []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
