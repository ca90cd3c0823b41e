/*
Package atlaspack packs a folder of icon images into a single sprite sheet and
a JSON map describing where each icon landed.

Every source image has its background normalized, is scaled to a fixed square
size with nearest-neighbor sampling and is pasted into a cell of a near-square
grid. Cells are assigned in enumeration order, which is lexical by filename,
so packing the same folder twice produces the same sheet.
*/
package atlaspack

import (
	"io/ioutil"
	"log"

	"github.com/bodgit/atlaspack/extract"
	"github.com/pkg/errors"
)

var (
	// ErrMissingInputDirectory is returned when the input directory does
	// not exist. The directory is created so it can be filled before the
	// next run.
	ErrMissingInputDirectory = errors.New("input directory not found, created it")

	// ErrEmptyInputSet is returned when the input directory contains no
	// eligible images
	ErrEmptyInputSet = errors.New("no images found in input directory")

	// ErrNoSprites is returned in compact mode when every image failed
	ErrNoSprites = errors.New("no images could be processed")

	errNoExtractor = errors.New("atlaspack: background removal mode needs an extractor")
)

// Packer turns a directory of images into a sprite sheet
type Packer struct {
	cfg       Config
	extractor extract.Extractor
	logger    *log.Logger
}

// New returns a Packer for cfg. A nil cfg uses DefaultConfig. The extractor
// is only required by the AI background removal modes and logger may be nil
// to discard progress messages.
func New(cfg *Config, extractor extract.Extractor, logger *log.Logger) (*Packer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mode.extracts() && extractor == nil {
		return nil, errNoExtractor
	}
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}

	c := *cfg
	c.Extensions = append([]string(nil), cfg.Extensions...)

	return &Packer{
		cfg:       c,
		extractor: extractor,
		logger:    logger,
	}, nil
}

// Config returns a copy of the configuration in use
func (p *Packer) Config() Config {
	c := p.cfg
	c.Extensions = append([]string(nil), p.cfg.Extensions...)
	return c
}
