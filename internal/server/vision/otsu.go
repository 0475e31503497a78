package vision

import (
	"image"
	"image/color"
)

// histogram counts gray levels inside the given region of g.
func histogram(g *image.Gray, r image.Rectangle) [256]int {
	var h [256]int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := g.Pix[(y-g.Rect.Min.Y)*g.Stride:]
		for x := r.Min.X; x < r.Max.X; x++ {
			h[row[x-g.Rect.Min.X]]++
		}
	}
	return h
}

// otsuThreshold picks the gray level that maximizes between-class variance.
// Pixels at or below the returned level are treated as ink.
func otsuThreshold(hist [256]int) uint8 {
	var total, sum int64
	for i, n := range hist {
		total += int64(n)
		sum += int64(i) * int64(n)
	}
	if total == 0 {
		return 127
	}

	var sumBg, wBg int64
	var best float64
	var threshold uint8

	for t := 0; t < 256; t++ {
		wBg += int64(hist[t])
		if wBg == 0 {
			continue
		}
		wFg := total - wBg
		if wFg == 0 {
			break
		}
		sumBg += int64(t) * int64(hist[t])

		mBg := float64(sumBg) / float64(wBg)
		mFg := float64(sum-sumBg) / float64(wFg)
		d := mBg - mFg
		v := float64(wBg) * float64(wFg) * d * d
		if v > best {
			best = v
			threshold = uint8(t)
		}
	}
	return threshold
}

// grayscale converts src to 8-bit grayscale using the standard luma weights.
func grayscale(src image.Image) *image.Gray {
	b := src.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, gr, bl, _ := src.At(x, y).RGBA()
			// 0.299 R + 0.587 G + 0.114 B on 16-bit channels.
			v := (299*r + 587*gr + 114*bl) / 1000
			g.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: uint8(v >> 8)})
		}
	}
	return g
}
