package atlaspack

import (
	"context"
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/atlaspack/atlas"
	"github.com/bodgit/atlaspack/grid"
	"github.com/pkg/errors"
)

// Result describes a finished packing run
type Result struct {
	// Map holds the location of every packed sprite
	Map *atlas.Map
	// Layout is the grid the sheet was built from
	Layout *grid.Layout
	// Sheet is the composited sprite sheet
	Sheet *image.NRGBA
	// Packed and Failed count the images that were and weren't placed
	Packed int
	Failed int
	// SheetFile and MapFile are the paths written to
	SheetFile string
	MapFile   string
}

type sprite struct {
	index int
	name  string
	image *image.NRGBA
}

func (p *Packer) place(r *Result, s sprite) {
	at := r.Layout.Offset(s.index)
	grid.Paste(r.Sheet, s.image, at)
	r.Map.Set(s.name, atlas.Entry{
		X: at.X,
		Y: at.Y,
		W: r.Layout.Size,
		H: r.Layout.Size,
	})
	r.Packed++
}

func (p *Packer) layout(r *Result, n int) error {
	l, err := grid.New(n, p.cfg.TargetSize, p.cfg.Padding)
	if err != nil {
		return err
	}
	r.Layout = l
	r.Sheet = l.Canvas()
	return nil
}

// Pack processes every image in the input directory in order and writes the
// sheet and map to the output directory. An image that fails is logged and
// skipped, the run only stops for a missing or empty input directory, a
// cancelled context, or a failure writing the output.
func (p *Packer) Pack(ctx context.Context) (*Result, error) {
	files, err := p.findImages()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0755); err != nil {
		return nil, err
	}

	p.logger.Printf("Packing %d images from \"%s\" (%s)\n", len(files), p.cfg.InputDir, p.cfg.Mode)

	r := &Result{
		Map: atlas.New(),
	}

	// Unless compacting, every file reserves its cell up front so a
	// failure leaves a transparent gap and the rest stay put
	if !p.cfg.Compact {
		if err := p.layout(r, len(files)); err != nil {
			return nil, err
		}
	}

	var pending []sprite
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		base := filepath.Base(file)

		m, err := p.sprite(ctx, file)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logger.Printf("Skipping \"%s\": %v\n", base, err)
			r.Failed++
			continue
		}

		s := sprite{
			index: i,
			name:  atlas.Name(base),
			image: m,
		}

		if p.cfg.Compact {
			pending = append(pending, s)
			continue
		}

		p.place(r, s)
		p.logger.Printf("Packed \"%s\" as \"%s\"\n", base, s.name)
	}

	if p.cfg.Compact {
		if len(pending) == 0 {
			return nil, errors.Wrap(ErrNoSprites, p.cfg.InputDir)
		}
		if err := p.layout(r, len(pending)); err != nil {
			return nil, err
		}
		for i, s := range pending {
			s.index = i
			p.place(r, s)
			p.logger.Printf("Packed \"%s\"\n", s.name)
		}
	}

	if err := p.write(r); err != nil {
		return nil, err
	}

	p.logger.Printf("Wrote %dx%d sheet with %d sprites to \"%s\"\n", r.Layout.Cols, r.Layout.Rows, r.Map.Len(), r.SheetFile)

	return r, nil
}
