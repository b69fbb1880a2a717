package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes files under a directory on disk. Meant for development
// and tests; the served URL is base_url joined with the object path.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(basePath, baseURL string) *LocalStorage {
	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalStorage) Save(ctx context.Context, objectPath string, contentType string, r io.Reader) (string, error) {
	dst := filepath.Join(s.basePath, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.baseURL + "/" + objectPath, nil
}
