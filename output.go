package atlaspack

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/bodgit/atlaspack/atlas"
	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/pkg/errors"
)

// opaqueWeight leaves fully transparent pixels out of the median cut,
// palette entry 0 already covers them
func opaqueWeight(m image.Image, x, y int) uint32 {
	if _, _, _, a := m.At(x, y).RGBA(); a == 0 {
		return 0
	}
	return 1
}

// paletted reduces m to at most colors colors. The first palette entry is
// always fully transparent so empty cells and cleared backgrounds survive.
func paletted(m image.Image, colors int) *image.Paletted {
	q := quantize.MedianCutQuantizer{
		Weighting: opaqueWeight,
	}
	p := q.Quantize(append(make(color.Palette, 0, colors), color.Transparent), m)

	b := m.Bounds()
	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

func writeSheet(file string, m image.Image, colors int) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if colors > 0 {
		m = paletted(m, colors)
	}

	return imaging.Encode(f, m, imaging.PNG)
}

func writeMap(file string, m *atlas.Map) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = m.WriteTo(f)
	return err
}

func (p *Packer) write(r *Result) error {
	r.SheetFile = filepath.Join(p.cfg.OutputDir, p.cfg.SheetName)
	if err := writeSheet(r.SheetFile, r.Sheet, p.cfg.Colors); err != nil {
		return errors.Wrapf(err, "writing sheet %s", r.SheetFile)
	}

	r.MapFile = filepath.Join(p.cfg.OutputDir, p.cfg.MapName)
	if err := writeMap(r.MapFile, r.Map); err != nil {
		return errors.Wrapf(err, "writing map %s", r.MapFile)
	}

	return nil
}
