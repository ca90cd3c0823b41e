package atlaspack

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// findImages lists the eligible images in the input directory in lexical
// order. A missing directory is created before returning an error.
func (p *Packer) findImages() ([]string, error) {
	dir := p.cfg.InputDir

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		return nil, errors.Wrap(ErrMissingInputDirectory, dir)
	case err != nil:
		return nil, err
	case !info.IsDir():
		return nil, errors.Errorf("%s: not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		// Ignore any hidden files, otherwise we end up fighting with things like Spotlight, etc.
		if entry.Name()[0] == '.' {
			continue
		}

		if !p.cfg.eligible(filepath.Ext(entry.Name())) {
			continue
		}

		file := filepath.Join(dir, entry.Name())

		// Follow symlinks but ignore anything that isn't a normal file
		if !entry.Type().IsRegular() {
			info, err := os.Stat(file)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, errors.Wrap(ErrEmptyInputSet, dir)
	}

	return files, nil
}
