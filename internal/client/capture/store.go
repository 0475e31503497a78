// Package capture handles the local side of taking pictures: persisting
// shots into app-private storage and tracking the transient working set of
// the capture screen.
package capture

import (
	"fmt"

	"testly/internal/filex"
)

// Store copies captured images out of their transient location (a camera
// buffer, a picker temp file) into the app-private photos directory before
// their uri is registered anywhere, so the registered uri stays valid even
// after the original buffer is reclaimed.
type Store struct {
	dir string
}

// NewStore ensures the photos directory exists and returns a store rooted
// there.
func NewStore(dir string) (*Store, error) {
	d, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("init capture store: %w", err)
	}
	return &Store{dir: d}, nil
}

// Dir returns the photos directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save copies the image at fromPath into the photos directory under a fresh
// timestamp-based name and returns the durable path.
func (s *Store) Save(fromPath string) (string, error) {
	dst, err := filex.CopyUnique(fromPath, s.dir)
	if err != nil {
		return "", fmt.Errorf("save capture: %w", err)
	}
	return dst, nil
}
