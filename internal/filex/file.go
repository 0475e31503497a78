// Package filex contains small filesystem helpers shared by the capture
// client and the processing server.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// now is a test seam so unique-name generation can be made deterministic.
var now = time.Now

// EnsureDir creates dir (and any missing parents) if it does not exist yet
// and returns the cleaned path. Calling it on an existing directory is a
// no-op; calling it on a path occupied by a regular file is an error.
func EnsureDir(dir string) (string, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// EnsureSubDir creates a subdirectory with the given name inside the current
// working directory and returns its absolute path.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return EnsureDir(filepath.Join(cwd, dirName))
}

// CopyUnique copies the file at src into dir under a fresh timestamp-based
// name, preserving the source extension, and returns the destination path.
// The destination directory is created if absent. If the generated name is
// already taken a numeric suffix is appended until a free one is found, so
// two copies in the same nanosecond cannot collide.
func CopyUnique(src, dir string) (string, error) {
	dir, err := EnsureDir(dir)
	if err != nil {
		return "", err
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	base := strconv.FormatInt(now().UnixNano(), 10)
	ext := filepath.Ext(src)

	dst := filepath.Join(dir, base+ext)
	for i := 1; ; i++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			break
		}
		dst = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, i, ext))
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", fmt.Errorf("copy %s: %w", dst, err)
	}

	return dst, nil
}
