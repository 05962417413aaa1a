package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore implements ObjectStore on the local filesystem, for development
// runs without a MinIO endpoint.
type FileStore struct {
	basePath string
}

// NewFileStore creates the base directory if missing.
func NewFileStore(basePath string) (*FileStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Get reads an object from disk.
func (f *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read object: %w", err)
	}
	return string(data), true, nil
}

// Put writes an object, replacing any previous version.
func (f *FileStore) Put(ctx context.Context, key, text string) error {
	if err := os.WriteFile(f.path(key), []byte(text), 0o644); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}

func (f *FileStore) path(key string) string {
	// Keys are flat names like "book-84.txt"; strip any path components.
	return filepath.Join(f.basePath, filepath.Base(key))
}
