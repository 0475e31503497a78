// Package vision turns a raw photo of an exam page into a clean
// black-on-white crop of the question block.
//
// The pipeline is a pure-Go rendition of the classic document scan chain:
// grayscale, global Otsu binarization, a page crop restricted to the
// central part of the frame, text block merging over a coarse ink grid,
// candidate scoring, and a final binarized crop.
package vision

import (
	"errors"
	"image"
	"image/color"
	"math"
)

// ErrNoCandidate is returned when no region of the page looks like a
// question block, e.g. for a blank or uniformly noisy photo.
var ErrNoCandidate = errors.New("no candidate block")

// Meta describes the chosen block in source page coordinates plus the
// dimensions of the final crop.
type Meta struct {
	// BestBox holds the four corners of the chosen block, ordered
	// tl, tr, br, bl, in page-crop coordinates.
	BestBox [4][2]int `json:"best_box"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
}

// Result is the output of Refine: a black-text-on-white crop and its meta.
type Result struct {
	Final *image.Gray
	Meta  Meta
}

// Refine extracts the most question-looking block from a photo.
//
// The photo is first reduced to the page content: ink inside the central
// 80% of the frame defines the page's bounding box. Within that page the
// ink is merged into blocks on a coarse grid, each block is scored by fill,
// centering and aspect ratio, and the best one is cropped with a small
// margin and re-binarized to black text on white.
func Refine(src image.Image) (*Result, error) {
	gray := grayscale(src)

	page := pageCrop(gray)
	mask := inkMask(page)

	box, ok := bestBlock(mask)
	if !ok {
		return nil, ErrNoCandidate
	}

	padded := pad(box, mask.rect(), maxInt(box.Dx(), box.Dy())/10)
	final := binarizeCrop(page, padded)

	return &Result{
		Final: final,
		Meta: Meta{
			BestBox: corners(padded),
			Width:   final.Rect.Dx(),
			Height:  final.Rect.Dy(),
		},
	}, nil
}

// pageCrop trims the photo to the bounding box of the ink found in the
// central 80% of the frame. Borders, desk edges and fingers at the frame
// edge fall outside the mask and are cut away. A frame without ink is
// returned unchanged.
func pageCrop(g *image.Gray) *image.Gray {
	b := g.Bounds()
	th := otsuThreshold(histogram(g, b))

	// sqrt(0.8) per side keeps 80% of the area centered.
	scale := math.Sqrt(0.8)
	mw := int(float64(b.Dx()) * scale)
	mh := int(float64(b.Dy()) * scale)
	x0 := b.Min.X + (b.Dx()-mw)/2
	y0 := b.Min.Y + (b.Dy()-mh)/2
	central := image.Rect(x0, y0, x0+mw, y0+mh)

	bound := image.Rectangle{}
	for y := central.Min.Y; y < central.Max.Y; y++ {
		for x := central.Min.X; x < central.Max.X; x++ {
			if g.GrayAt(x, y).Y <= th {
				p := image.Rect(x, y, x+1, y+1)
				if bound.Empty() {
					bound = p
				} else {
					bound = bound.Union(p)
				}
			}
		}
	}
	if bound.Empty() {
		return g
	}
	return g.SubImage(bound).(*image.Gray)
}

// cell is the side of one grid tile in pixels, derived from page width the
// same way the morphology kernel size would be.
func cellSize(w int) int {
	c := w / 100
	if c < 4 {
		c = 4
	}
	return c
}

// grid is a coarse boolean ink map over the page.
type grid struct {
	cells  []bool
	cols   int
	rows   int
	cell   int
	bounds image.Rectangle
}

func (m *grid) at(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= m.cols || cy >= m.rows {
		return false
	}
	return m.cells[cy*m.cols+cx]
}

func (m *grid) set(cx, cy int, v bool) {
	m.cells[cy*m.cols+cx] = v
}

func (m *grid) rect() image.Rectangle { return m.bounds }

// inkMask binarizes the page with a global Otsu threshold and folds the
// result onto a coarse grid: a tile is ink when at least 4% of its pixels
// are. The grid is then dilated one step horizontally and vertically so
// letters of one block fuse, mirroring the HV-dilate of the original
// morphology chain.
func inkMask(g *image.Gray) *grid {
	b := g.Bounds()
	th := otsuThreshold(histogram(g, b))
	cell := cellSize(b.Dx())

	m := &grid{
		cols:   (b.Dx() + cell - 1) / cell,
		rows:   (b.Dy() + cell - 1) / cell,
		cell:   cell,
		bounds: b,
	}
	m.cells = make([]bool, m.cols*m.rows)

	for cy := 0; cy < m.rows; cy++ {
		for cx := 0; cx < m.cols; cx++ {
			x0 := b.Min.X + cx*cell
			y0 := b.Min.Y + cy*cell
			x1 := minInt(x0+cell, b.Max.X)
			y1 := minInt(y0+cell, b.Max.Y)

			ink, total := 0, 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					total++
					if g.GrayAt(x, y).Y <= th {
						ink++
					}
				}
			}
			m.set(cx, cy, total > 0 && ink*25 >= total)
		}
	}

	return dilate(m, 3, 1)
}

// dilate grows ink tiles by rx tiles horizontally and ry vertically.
func dilate(m *grid, rx, ry int) *grid {
	out := &grid{
		cells:  make([]bool, len(m.cells)),
		cols:   m.cols,
		rows:   m.rows,
		cell:   m.cell,
		bounds: m.bounds,
	}
	for cy := 0; cy < m.rows; cy++ {
		for cx := 0; cx < m.cols; cx++ {
			if !m.at(cx, cy) {
				continue
			}
			for dy := -ry; dy <= ry; dy++ {
				for dx := -rx; dx <= rx; dx++ {
					tx, ty := cx+dx, cy+dy
					if tx >= 0 && ty >= 0 && tx < m.cols && ty < m.rows {
						out.set(tx, ty, true)
					}
				}
			}
		}
	}
	return out
}

// bestBlock labels connected ink regions on the grid and scores each one
// by fill ratio, distance from the page center, and aspect ratio. The
// winning bounding box is returned in page coordinates.
func bestBlock(m *grid) (image.Rectangle, bool) {
	seen := make([]bool, len(m.cells))
	W := m.bounds.Dx()
	H := m.bounds.Dy()

	var best image.Rectangle
	bestScore := -1.0

	for start := range m.cells {
		if seen[start] || !m.cells[start] {
			continue
		}

		// BFS over the tile component.
		minX, minY := m.cols, m.rows
		maxX, maxY := 0, 0
		count := 0
		queue := []int{start}
		seen[start] = true
		for len(queue) > 0 {
			idx := queue[0]
			queue = queue[1:]
			cx, cy := idx%m.cols, idx/m.cols
			count++
			minX = minInt(minX, cx)
			minY = minInt(minY, cy)
			maxX = maxInt(maxX, cx)
			maxY = maxInt(maxY, cy)
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				tx, ty := cx+d[0], cy+d[1]
				if m.at(tx, ty) && !seen[ty*m.cols+tx] {
					seen[ty*m.cols+tx] = true
					queue = append(queue, ty*m.cols+tx)
				}
			}
		}

		box := image.Rect(
			m.bounds.Min.X+minX*m.cell,
			m.bounds.Min.Y+minY*m.cell,
			minInt(m.bounds.Min.X+(maxX+1)*m.cell, m.bounds.Max.X),
			minInt(m.bounds.Min.Y+(maxY+1)*m.cell, m.bounds.Max.Y),
		)

		// Too small to be a question block.
		if box.Dx()*box.Dy() < W*H/100 {
			continue
		}

		tiles := (maxX - minX + 1) * (maxY - minY + 1)
		extent := float64(count) / float64(tiles)

		cx := float64(box.Min.X+box.Max.X)/2 - float64(m.bounds.Min.X) - float64(W)/2
		cy := float64(box.Min.Y+box.Max.Y)/2 - float64(m.bounds.Min.Y) - float64(H)/2
		centerScore := 1 - math.Hypot(cx, cy)/math.Hypot(float64(W)/2, float64(H)/2)

		ar := float64(box.Dx()) / float64(box.Dy())
		arScore := gaussianScore(ar, 1.0, 0.8)

		fill := float64(box.Dx()*box.Dy()) / float64(W*H)
		score := 0.45*extent + 0.25*centerScore + 0.15*arScore + 0.15*fill
		if fill > 0.95 {
			score -= (fill - 0.95) * 3
		}

		if score > bestScore {
			bestScore = score
			best = box
		}
	}

	if bestScore < 0 {
		return image.Rectangle{}, false
	}
	return best, true
}

// binarizeCrop re-thresholds the crop with its own Otsu level and renders
// black text on white.
func binarizeCrop(g *image.Gray, box image.Rectangle) *image.Gray {
	th := otsuThreshold(histogram(g, box))

	out := image.NewGray(image.Rect(0, 0, box.Dx(), box.Dy()))
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			c := color.Gray{Y: 255}
			if g.GrayAt(x, y).Y <= th {
				c = color.Gray{Y: 0}
			}
			out.SetGray(x-box.Min.X, y-box.Min.Y, c)
		}
	}
	return out
}

// pad grows box by margin on every side, clamped to limit.
func pad(box, limit image.Rectangle, margin int) image.Rectangle {
	return box.Inset(-margin).Intersect(limit)
}

func corners(r image.Rectangle) [4][2]int {
	return [4][2]int{
		{r.Min.X, r.Min.Y},
		{r.Max.X, r.Min.Y},
		{r.Max.X, r.Max.Y},
		{r.Min.X, r.Max.Y},
	}
}

func gaussianScore(x, mu, tol float64) float64 {
	if tol <= 0 {
		return 0
	}
	z := (x - mu) / tol
	return math.Exp(-0.5 * z * z)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
