package atlaspack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tables := map[string]Mode{
		"none":     ModeNone,
		"white":    ModeWhite,
		"ai":       ModeAI,
		"AI-Clean": ModeAIClean,
	}

	for in, want := range tables {
		mode, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, mode)
	}

	_, err := ParseMode("magic")
	assert.Error(t, err)
}

func TestModeText(t *testing.T) {
	for _, mode := range []Mode{ModeNone, ModeWhite, ModeAI, ModeAIClean} {
		b, err := mode.MarshalText()
		require.NoError(t, err)

		var m Mode
		require.NoError(t, m.UnmarshalText(b))
		assert.Equal(t, mode, m)
	}

	assert.Equal(t, "unknown", Mode(42).String())
}

func TestValidate(t *testing.T) {
	tables := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero padding", func(c *Config) { c.Padding = 0 }, true},
		{"threshold bounds", func(c *Config) { c.AlphaThreshold = 255 }, true},
		{"palette", func(c *Config) { c.Colors = 256 }, true},
		{"no input", func(c *Config) { c.InputDir = "" }, false},
		{"no output", func(c *Config) { c.OutputDir = "" }, false},
		{"zero size", func(c *Config) { c.TargetSize = 0 }, false},
		{"negative padding", func(c *Config) { c.Padding = -1 }, false},
		{"unknown mode", func(c *Config) { c.Mode = Mode(9) }, false},
		{"threshold high", func(c *Config) { c.AlphaThreshold = 256 }, false},
		{"threshold low", func(c *Config) { c.AlphaThreshold = -1 }, false},
		{"palette too small", func(c *Config) { c.Colors = 1 }, false},
		{"palette too big", func(c *Config) { c.Colors = 257 }, false},
		{"no extensions", func(c *Config) { c.Extensions = nil }, false},
		{"no sheet name", func(c *Config) { c.SheetName = "" }, false},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			cfg := DefaultConfig()
			table.modify(cfg)
			if table.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestEligible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = append(cfg.Extensions, "WEBP")

	for _, ext := range []string{".png", ".PNG", ".jpg", ".Jpeg", ".webp"} {
		assert.True(t, cfg.eligible(ext), ext)
	}
	for _, ext := range []string{"", ".gif", ".svg", "png"} {
		assert.False(t, cfg.eligible(ext), ext)
	}
}
