package atlaspack

import (
	"strings"

	"github.com/bodgit/atlaspack/alpha"
	"github.com/pkg/errors"
)

// Mode selects how image backgrounds are made transparent
type Mode int

const (
	// ModeNone converts images to RGBA and otherwise leaves them alone
	ModeNone Mode = iota
	// ModeWhite makes near-white pixels transparent
	ModeWhite
	// ModeAI delegates background removal to an extract.Extractor
	ModeAI
	// ModeAIClean is ModeAI followed by forcing every pixel to be either
	// fully transparent or fully opaque
	ModeAIClean
)

var modeNames = [...]string{
	ModeNone:    "none",
	ModeWhite:   "white",
	ModeAI:      "ai",
	ModeAIClean: "ai-clean",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode returns the Mode with the given name
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, errors.Errorf("unknown background mode %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(b []byte) error {
	mode, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m Mode) extracts() bool {
	return m == ModeAI || m == ModeAIClean
}

// Config is the packer configuration
type Config struct {
	// InputDir holds the source images
	InputDir string
	// OutputDir receives the sheet and the map
	OutputDir string
	// TargetSize is the width and height of every sprite in pixels
	TargetSize int
	// Padding is the empty margin after each sprite in pixels
	Padding int
	// Mode selects the background removal policy
	Mode Mode
	// AlphaThreshold is the cut-off used by ModeAIClean, 0-255
	AlphaThreshold int
	// Extensions lists the eligible file extensions, matched without
	// regard to case
	Extensions []string
	// SheetName and MapName are the output filenames
	SheetName string
	MapName   string
	// Compact packs only the images that were processed successfully
	// instead of leaving an empty cell for each failure
	Compact bool
	// Colors writes an indexed sheet with at most this many colors
	// when non-zero
	Colors int
	// AutoOrient applies the EXIF orientation of JPEG sources
	AutoOrient bool
}

// DefaultConfig returns the default config for the packer
func DefaultConfig() *Config {
	return &Config{
		InputDir:       "raw_images",
		OutputDir:      "assets",
		TargetSize:     64,
		Padding:        2,
		Mode:           ModeWhite,
		AlphaThreshold: alpha.DefaultThreshold,
		Extensions:     []string{".png", ".jpg", ".jpeg"},
		SheetName:      "sprite_sheet.png",
		MapName:        "sprite_map.json",
	}
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	switch {
	case c.InputDir == "":
		return errors.New("atlaspack: no input directory")
	case c.OutputDir == "":
		return errors.New("atlaspack: no output directory")
	case c.TargetSize < 1:
		return errors.Errorf("atlaspack: target size %d must be positive", c.TargetSize)
	case c.Padding < 0:
		return errors.Errorf("atlaspack: padding %d must not be negative", c.Padding)
	case c.Mode < ModeNone || c.Mode > ModeAIClean:
		return errors.Errorf("atlaspack: unknown background mode %d", c.Mode)
	case c.AlphaThreshold < 0 || c.AlphaThreshold > 255:
		return errors.Errorf("atlaspack: alpha threshold %d outside 0-255", c.AlphaThreshold)
	case c.Colors != 0 && (c.Colors < 2 || c.Colors > 256):
		return errors.Errorf("atlaspack: palette size %d outside 2-256", c.Colors)
	case len(c.Extensions) == 0:
		return errors.New("atlaspack: no eligible file extensions")
	case c.SheetName == "" || c.MapName == "":
		return errors.New("atlaspack: missing output filename")
	}
	return nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func (c *Config) eligible(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range c.Extensions {
		if normalizeExt(e) == ext {
			return true
		}
	}
	return false
}
