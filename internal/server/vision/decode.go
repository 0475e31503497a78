package vision

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imgExts lists the upload extensions the pipeline accepts.
var imgExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// AllowedExt reports whether the file name carries a supported image
// extension. Matching is case-insensitive.
func AllowedExt(name string) bool {
	return imgExts[strings.ToLower(filepath.Ext(name))]
}

// Decode reads one image in any of the supported formats.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image decode error: %w", err)
	}
	return img, nil
}

// EncodePNG writes img to w in PNG format. Processed crops are always
// stored as PNG regardless of the upload format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode error: %w", err)
	}
	return nil
}
