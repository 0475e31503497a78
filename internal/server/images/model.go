// Package images persists metadata about processed uploads.
package images

import "time"

// Image is one processed upload: the storage keys of the original and the
// crop, plus the crop's pixel dimensions.
type Image struct {
	ID           string
	OriginalKey  string
	ProcessedKey string
	Width        int
	Height       int
	CreatedAt    time.Time
}
