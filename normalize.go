package atlaspack

import (
	"bytes"
	"context"
	"image"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/bodgit/atlaspack/alpha"
	"github.com/bodgit/atlaspack/resample"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// normalize loads file and returns it with a clean alpha channel according
// to the configured mode
func (p *Packer) normalize(ctx context.Context, file string) (*image.NRGBA, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(file))

	if p.cfg.Mode.extracts() {
		return p.extract(ctx, b, ext)
	}

	m, err := p.decode(b, ext)
	if err != nil {
		return nil, errors.Wrap(err, "decoding")
	}

	n := imaging.Clone(m)
	if p.cfg.Mode == ModeWhite {
		alpha.ThresholdWhite(n, alpha.DefaultWhite)
	}
	return n, nil
}

func (p *Packer) extract(ctx context.Context, b []byte, ext string) (*image.NRGBA, error) {
	b, err := p.encodable(b, ext)
	if err != nil {
		return nil, errors.Wrap(err, "decoding")
	}

	out, err := p.extractor.Extract(ctx, b)
	if err != nil {
		return nil, errors.Wrap(err, "removing background")
	}

	m, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, errors.Wrap(err, "decoding extracted subject")
	}

	n := imaging.Clone(m)
	if p.cfg.Mode == ModeAIClean {
		alpha.Binarize(n, uint8(p.cfg.AlphaThreshold))
	}
	return n, nil
}

// sprite produces the finished sprite for file
func (p *Packer) sprite(ctx context.Context, file string) (*image.NRGBA, error) {
	n, err := p.normalize(ctx, file)
	if err != nil {
		return nil, err
	}
	return resample.Nearest(n, p.cfg.TargetSize)
}
