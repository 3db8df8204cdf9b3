package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps uploads as plain files under one directory.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// path rejects anything trying to escape the upload dir.
func (s *LocalStorage) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

func (s *LocalStorage) Save(ctx context.Context, name, contentType string, r io.Reader) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write upload file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	return os.Remove(s.path(name))
}

func (s *LocalStorage) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}
