package atlaspack

import (
	"bytes"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const svgExt = ".svg"

// rasterize renders an SVG icon at size by size pixels
func rasterize(r io.Reader, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	m := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, m, m.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return m, nil
}

func (p *Packer) decode(b []byte, ext string) (image.Image, error) {
	if ext == svgExt {
		return rasterize(bytes.NewReader(b), p.cfg.TargetSize)
	}
	return imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(p.cfg.AutoOrient))
}

// encodable returns b in a form the extractor can read, rendering vector
// sources and baking in the orientation when asked to
func (p *Packer) encodable(b []byte, ext string) ([]byte, error) {
	if ext != svgExt && !p.cfg.AutoOrient {
		return b, nil
	}

	m, err := p.decode(b, ext)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, m, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
