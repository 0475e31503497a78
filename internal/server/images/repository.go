package images

import "context"

// Repository is the persistence interface for processed image records.
type Repository interface {
	Create(ctx context.Context, img *Image) error
	SelectRecent(ctx context.Context, limit int) ([]*Image, error)
}
