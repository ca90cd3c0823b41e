/*
Package alpha implements the per-pixel transparency filters used to clean up
sprite backgrounds.

Both filters work in place on non-premultiplied *image.NRGBA images so that
the color of a pixel is never disturbed by its opacity. A pixel that is made
transparent is always written as (255, 255, 255, 0).
*/
package alpha

import "image"

const (
	// DefaultWhite is the channel value that all of red, green and blue
	// must exceed for a pixel to be considered background
	DefaultWhite = 240

	// DefaultThreshold is the default alpha cut-off for Binarize
	DefaultThreshold = 10
)

func walk(m *image.NRGBA, fn func(p []uint8)) {
	b := m.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			fn(m.Pix[i : i+4 : i+4])
			i += 4
		}
	}
}

func erase(p []uint8) {
	p[0], p[1], p[2], p[3] = 0xff, 0xff, 0xff, 0x00
}

// ThresholdWhite makes every pixel whose red, green and blue components all
// exceed white fully transparent. Every other pixel is left untouched, it
// doesn't look at neighbouring pixels.
func ThresholdWhite(m *image.NRGBA, white uint8) {
	walk(m, func(p []uint8) {
		if p[0] > white && p[1] > white && p[2] > white {
			erase(p)
		}
	})
}

// Binarize forces every pixel to be either fully transparent or fully
// opaque. Pixels with an alpha below threshold are cleared, the rest keep
// their color with the alpha raised to 255. This strips the semi-transparent
// fringe left behind by background removal.
func Binarize(m *image.NRGBA, threshold uint8) {
	walk(m, func(p []uint8) {
		if p[3] < threshold {
			erase(p)
		} else {
			p[3] = 0xff
		}
	})
}

// IsBinary reports whether every pixel in m is either fully transparent or
// fully opaque.
func IsBinary(m *image.NRGBA) bool {
	ok := true
	walk(m, func(p []uint8) {
		if p[3] != 0x00 && p[3] != 0xff {
			ok = false
		}
	})
	return ok
}
