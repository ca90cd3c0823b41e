package alpha

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func single(c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	m.SetNRGBA(0, 0, c)
	return m
}

func TestThresholdWhite(t *testing.T) {
	tables := []struct {
		name string
		in   color.NRGBA
		out  color.NRGBA
	}{
		{"white", color.NRGBA{255, 255, 255, 255}, color.NRGBA{255, 255, 255, 0}},
		{"black", color.NRGBA{0, 0, 0, 255}, color.NRGBA{0, 0, 0, 255}},
		{"near white", color.NRGBA{241, 241, 241, 255}, color.NRGBA{255, 255, 255, 0}},
		{"boundary", color.NRGBA{240, 240, 240, 255}, color.NRGBA{240, 240, 240, 255}},
		{"yellowish", color.NRGBA{241, 241, 200, 255}, color.NRGBA{241, 241, 200, 255}},
		{"translucent white", color.NRGBA{250, 250, 250, 128}, color.NRGBA{255, 255, 255, 0}},
		{"transparent black", color.NRGBA{0, 0, 0, 0}, color.NRGBA{0, 0, 0, 0}},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			m := single(table.in)
			ThresholdWhite(m, DefaultWhite)
			assert.Equal(t, table.out, m.NRGBAAt(0, 0))
		})
	}
}

func TestBinarize(t *testing.T) {
	tables := []struct {
		name      string
		threshold uint8
		in        color.NRGBA
		out       color.NRGBA
	}{
		{"below", 10, color.NRGBA{12, 34, 56, 9}, color.NRGBA{255, 255, 255, 0}},
		{"at", 10, color.NRGBA{12, 34, 56, 10}, color.NRGBA{12, 34, 56, 255}},
		{"above", 10, color.NRGBA{12, 34, 56, 200}, color.NRGBA{12, 34, 56, 255}},
		{"opaque", 200, color.NRGBA{1, 2, 3, 255}, color.NRGBA{1, 2, 3, 255}},
		{"aggressive", 200, color.NRGBA{1, 2, 3, 199}, color.NRGBA{255, 255, 255, 0}},
		{"zero keeps all", 0, color.NRGBA{1, 2, 3, 0}, color.NRGBA{1, 2, 3, 255}},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			m := single(table.in)
			Binarize(m, table.threshold)
			assert.Equal(t, table.out, m.NRGBAAt(0, 0))
		})
	}
}

func TestBinarizeIdempotent(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range m.Pix {
		m.Pix[i] = uint8(i * 7)
	}

	Binarize(m, DefaultThreshold)
	assert.True(t, IsBinary(m))

	once := append([]uint8(nil), m.Pix...)
	Binarize(m, DefaultThreshold)
	assert.Equal(t, once, m.Pix)
}

func TestSubImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}

	ThresholdWhite(m.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA), DefaultWhite)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			assert.Equal(t, inside, m.NRGBAAt(x, y).A == 0, "pixel %d,%d", x, y)
		}
	}
}
