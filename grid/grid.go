/*
Package grid lays fixed-size sprites out on a near-square uniform grid and
composites them onto a single canvas.

For n sprites the grid has ceil(sqrt(n)) columns and as many rows as needed
to hold them. Sprite i occupies column i mod cols and row i div cols, and
every cell is the sprite size plus padding wide and tall, with the padding
on the right and bottom edge of each cell. Cells never overlap.
*/
package grid

import (
	"errors"
	"image"
)

var (
	errCount   = errors.New("grid: need at least one sprite")
	errSize    = errors.New("grid: sprite size must be positive")
	errPadding = errors.New("grid: padding must not be negative")
)

// Layout describes the placement of N sprites of Size by Size pixels
type Layout struct {
	N       int
	Cols    int
	Rows    int
	Size    int
	Padding int
}

// columns returns ceil(sqrt(n)) without going through floating point
func columns(n int) int {
	c := 1
	for c*c < n {
		c++
	}
	return c
}

// New computes the layout for n sprites
func New(n, size, padding int) (*Layout, error) {
	switch {
	case n < 1:
		return nil, errCount
	case size < 1:
		return nil, errSize
	case padding < 0:
		return nil, errPadding
	}

	cols := columns(n)
	return &Layout{
		N:       n,
		Cols:    cols,
		Rows:    (n + cols - 1) / cols,
		Size:    size,
		Padding: padding,
	}, nil
}

// Pitch is the distance in pixels between the origins of adjacent cells
func (l *Layout) Pitch() int {
	return l.Size + l.Padding
}

// Len returns the number of cells in the grid which may exceed N
func (l *Layout) Len() int {
	return l.Cols * l.Rows
}

// Cell returns the column and row for sprite i
func (l *Layout) Cell(i int) image.Point {
	return image.Pt(i%l.Cols, i/l.Cols)
}

// Offset returns the top-left pixel of sprite i on the canvas
func (l *Layout) Offset(i int) image.Point {
	return l.Cell(i).Mul(l.Pitch())
}

// Rect returns the pixels covered by sprite i, excluding padding
func (l *Layout) Rect(i int) image.Rectangle {
	p := l.Offset(i)
	return image.Rectangle{p, p.Add(image.Pt(l.Size, l.Size))}
}

// Bounds returns the size of the whole canvas
func (l *Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Cols*l.Pitch(), l.Rows*l.Pitch())
}

// Canvas allocates a fully transparent canvas for the layout
func (l *Layout) Canvas() *image.NRGBA {
	return image.NewNRGBA(l.Bounds())
}

// Paste copies src onto dst with its top-left corner at p. Pixels are
// replaced outright, including alpha, so nothing already on dst shows
// through. Anything falling outside dst is clipped.
func Paste(dst, src *image.NRGBA, p image.Point) {
	r := image.Rectangle{p, p.Add(src.Rect.Size())}.Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	sp := src.Rect.Min.Add(r.Min.Sub(p))
	n := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		di := dst.PixOffset(r.Min.X, r.Min.Y+y)
		si := src.PixOffset(sp.X, sp.Y+y)
		copy(dst.Pix[di:di+n], src.Pix[si:si+n])
	}
}
