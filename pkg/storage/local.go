package storage

import (
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes uploaded files into a single flat directory. Names are
// assigned by the caller from random ids, so writes never collide and files
// are never rewritten.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Save streams src into <dir>/<name> and returns the stored path.
func (s *LocalStore) Save(name string, src io.Reader) (string, error) {
	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}
