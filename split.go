package atlaspack

import (
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/atlaspack/atlas"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Split cuts every sprite in m out of sheet and writes it to dir as
// <name>.png. It returns the number of sprites written.
func Split(sheet image.Image, m *atlas.Map, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	b := sheet.Bounds()
	for i, name := range m.Names() {
		// Names must be plain filenames
		if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
			return i, errors.Errorf("invalid sprite name %q", name)
		}

		e, _ := m.Get(name)
		r := e.Rect().Add(b.Min)
		if r.Empty() || !r.In(b) {
			return i, errors.Errorf("sprite %q at %v is outside the sheet", name, e.Rect())
		}

		file := filepath.Join(dir, name+".png")
		if err := imaging.Save(imaging.Crop(sheet, r), file); err != nil {
			return i, errors.Wrapf(err, "writing %s", file)
		}
	}

	return m.Len(), nil
}
