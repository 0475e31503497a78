package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"testly/internal/filex"
)

// LocalStore keeps objects on the local filesystem under a root directory.
// Saved keys map to "<root>/<area>/<name>" and are served by the static
// file routes, so URL joins the public base with the key.
type LocalStore struct {
	root    string
	baseURL string
}

// NewLocalStore creates the uploads and outputs directories under root.
func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	for _, area := range []Area{AreaUploads, AreaOutputs} {
		if _, err := filex.EnsureDir(filepath.Join(root, string(area))); err != nil {
			return nil, fmt.Errorf("storage init error: %w", err)
		}
	}
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(ctx context.Context, area Area, name string, r io.Reader) (string, error) {
	key := path.Join(string(area), name)

	f, err := os.Create(filepath.Join(s.root, string(area), name))
	if err != nil {
		return "", fmt.Errorf("storage create error: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("storage write error: %w", err)
	}
	return key, nil
}

func (s *LocalStore) URL(key string) string {
	return s.baseURL + "/" + key
}

// Root returns the directory objects are stored under, for static serving.
func (s *LocalStore) Root() string {
	return s.root
}
