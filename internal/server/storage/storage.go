// Package storage persists uploaded originals and processed crops.
//
// Objects are addressed by a key like "uploads/abc.jpg" or
// "outputs/abc_final.png". The local backend keeps them under the storage
// root and serves them through the HTTP static routes; the s3 backend
// writes them to an S3-compatible bucket.
package storage

import (
	"context"
	"io"
)

// Area separates originals from processed results inside a store.
type Area string

const (
	AreaUploads Area = "uploads"
	AreaOutputs Area = "outputs"
)

// Store is the backend-neutral object interface used by the HTTP layer.
type Store interface {
	// Save writes the object and returns its key.
	Save(ctx context.Context, area Area, name string, r io.Reader) (string, error)
	// URL returns the public URL for a previously saved key.
	URL(key string) string
}
