package scripts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps script blobs as files in a single directory, one file per
// version.
type FileStore struct {
	dir string
}

// NewFileStore creates the storage directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("script dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Read(ctx context.Context, version string) ([]byte, error) {
	name, err := blobName(version)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("script read: %w", err)
	}

	return data, nil
}

func (s *FileStore) Write(ctx context.Context, version string, data []byte) error {
	name, err := blobName(version)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("script write: %w", err)
	}

	return nil
}
