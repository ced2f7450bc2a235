package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/osse101/SimpleIG_Go/internal/repository"
)

// FileStore writes one JSON file per save key into a directory.
// Writes go through a temp file and rename so a crash never leaves a truncated save.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateDirFailed, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the save directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errEmptyKey
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	return data, nil
}

func (s *FileStore) Put(ctx context.Context, key string, payload []byte) error {
	if key == "" {
		return errEmptyKey
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := os.Chmod(tmpName, FilePermissions); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteFailed, err)
	}
	return nil
}

// path escapes the key so player ids cannot traverse outside the directory.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+FileExtension)
}
