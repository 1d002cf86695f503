package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore writes files under a base directory on local disk. Relative
// paths returned by Save are plain filenames resolved against the base dir.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates the base directory if needed.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save writes data to disk and returns the relative path.
func (s *LocalStore) Save(ctx context.Context, data []byte, filename string) (string, error) {
	// filenames are derived upstream; reject anything that escapes the base dir
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	if err := os.WriteFile(filepath.Join(s.baseDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return filename, nil
}

// Delete removes the file at relativePath. Missing files are not an error.
func (s *LocalStore) Delete(ctx context.Context, relativePath string) error {
	if filepath.Base(relativePath) != relativePath {
		return fmt.Errorf("invalid path %q", relativePath)
	}
	err := os.Remove(filepath.Join(s.baseDir, relativePath))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}
