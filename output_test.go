package atlaspack

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletted(t *testing.T) {
	// Left half transparent, right half in bands of red, green and blue
	m := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		c := []color.NRGBA{red, green, blue}[y*3/64]
		for x := 32; x < 64; x++ {
			m.SetNRGBA(x, y, c)
		}
	}

	pm := paletted(m, 4)
	require.LessOrEqual(t, len(pm.Palette), 4)

	var got []color.NRGBA
	for _, c := range pm.Palette {
		got = append(got, color.NRGBAModel.Convert(c).(color.NRGBA))
	}

	assert.Zero(t, got[0].A)
	for _, c := range []color.NRGBA{red, green, blue} {
		assert.Contains(t, got, c)
	}

	assert.Zero(t, at(pm, 0, 0).A)
	assert.Equal(t, red, at(pm, 63, 0))
	assert.Equal(t, green, at(pm, 63, 32))
	assert.Equal(t, blue, at(pm, 63, 63))
}
