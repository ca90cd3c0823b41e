/*
Package resample scales sprites to a fixed square size.

Only nearest-neighbor sampling is provided. Each destination pixel copies the
source pixel under its centre so hard pixel-art edges stay crisp and no new
colors or alpha values are introduced.
*/
package resample

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

var (
	errBadSize = errors.New("resample: size must be positive")
	errEmpty   = errors.New("resample: empty image")
)

// Nearest returns m scaled to size by size pixels using nearest-neighbor
// sampling. The result always has its origin at (0, 0).
func Nearest(m image.Image, size int) (*image.NRGBA, error) {
	if size < 1 {
		return nil, errBadSize
	}
	if m.Bounds().Empty() {
		return nil, errEmpty
	}
	return imaging.Resize(m, size, size, imaging.NearestNeighbor), nil
}
