package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/signal"

	"github.com/bodgit/atlaspack"
	"github.com/bodgit/atlaspack/atlas"
	"github.com/bodgit/atlaspack/extract"
	"github.com/disintegration/imaging"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newExtractor(c *cli.Context) (extract.Extractor, func() error, error) {
	var (
		e     extract.Extractor
		model string
	)

	if line := c.String("rembg-cmd"); line != "" {
		cmd, err := extract.ParseCommand(line)
		if err != nil {
			return nil, nil, err
		}
		e, model = cmd, cmd.String()
	} else {
		h := extract.NewHTTP(c.String("rembg-url"))
		h.Model = c.String("rembg-model")
		e, model = h, h.String()
	}

	if file := c.String("cache"); file != "" {
		cache, err := extract.NewCache(file, model, e)
		if err != nil {
			return nil, nil, err
		}
		return cache, cache.Close, nil
	}

	return e, func() error { return nil }, nil
}

func config(c *cli.Context) (*atlaspack.Config, error) {
	mode, err := atlaspack.ParseMode(c.String("mode"))
	if err != nil {
		return nil, err
	}

	cfg := atlaspack.DefaultConfig()
	cfg.InputDir = c.String("input")
	cfg.OutputDir = c.String("output")
	cfg.TargetSize = c.Int("size")
	cfg.Padding = c.Int("padding")
	cfg.Mode = mode
	cfg.AlphaThreshold = c.Int("alpha-threshold")
	cfg.Extensions = c.StringSlice("ext")
	cfg.SheetName = c.String("sheet")
	cfg.MapName = c.String("map")
	cfg.Compact = c.Bool("compact")
	cfg.Colors = c.Int("colors")
	cfg.AutoOrient = c.Bool("auto-orient")

	return cfg, cfg.Validate()
}

func pack(c *cli.Context) error {
	cfg, err := config(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	var e extract.Extractor
	if cfg.Mode == atlaspack.ModeAI || cfg.Mode == atlaspack.ModeAIClean {
		var closer func() error
		e, closer, err = newExtractor(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer closer()
	}

	p, err := atlaspack.New(cfg, e, newLogger(c))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := p.Pack(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintf(c.App.Writer, "Packed %d images (%d failed) into %dx%d grid\n", r.Packed, r.Failed, r.Layout.Cols, r.Layout.Rows)
	fmt.Fprintf(c.App.Writer, "Sheet: %s\n", r.SheetFile)
	fmt.Fprintf(c.App.Writer, "Map:   %s\n", r.MapFile)

	return nil
}

func split(c *cli.Context) error {
	if c.NArg() < 3 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	sheet, err := imaging.Open(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	m, err := atlas.Load(c.Args().Get(1))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	n, err := atlaspack.Split(sheet, m, c.Args().Get(2))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	newLogger(c).Printf("Wrote %d sprites to \"%s\"\n", n, c.Args().Get(2))

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "atlaspack"
	app.Usage = "Sprite sheet packing utility"
	app.Version = "1.0.0"

	defaults := atlaspack.DefaultConfig()

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "pack",
			Usage:       "Pack a directory of images into a sprite sheet",
			Description: "Every image is scaled to SIZE x SIZE pixels and placed on a near-square grid. The sheet is written as a PNG with a JSON map of sprite name to rectangle.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"i"},
					EnvVars: []string{"ATLASPACK_INPUT"},
					Value:   defaults.InputDir,
					Usage:   "directory of source images",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					EnvVars: []string{"ATLASPACK_OUTPUT"},
					Value:   defaults.OutputDir,
					Usage:   "directory to write the sheet and map to",
				},
				&cli.IntFlag{
					Name:    "size",
					EnvVars: []string{"ATLASPACK_SIZE"},
					Value:   defaults.TargetSize,
					Usage:   "width and height of each sprite in pixels",
				},
				&cli.IntFlag{
					Name:    "padding",
					EnvVars: []string{"ATLASPACK_PADDING"},
					Value:   defaults.Padding,
					Usage:   "pixels between adjacent sprites",
				},
				&cli.StringFlag{
					Name:    "mode",
					EnvVars: []string{"ATLASPACK_MODE"},
					Value:   defaults.Mode.String(),
					Usage:   "background removal: none, white, ai or ai-clean",
				},
				&cli.IntFlag{
					Name:    "alpha-threshold",
					EnvVars: []string{"ATLASPACK_ALPHA_THRESHOLD"},
					Value:   defaults.AlphaThreshold,
					Usage:   "alpha below which ai-clean makes a pixel transparent (0-255)",
				},
				&cli.StringSliceFlag{
					Name:  "ext",
					Value: cli.NewStringSlice(defaults.Extensions...),
					Usage: "eligible file extension, may be repeated",
				},
				&cli.BoolFlag{
					Name:  "compact",
					Usage: "don't leave empty cells for images that failed",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "write an indexed sheet with at most this many colors (2-256)",
				},
				&cli.BoolFlag{
					Name:  "auto-orient",
					Usage: "apply JPEG EXIF orientation",
				},
				&cli.StringFlag{
					Name:  "sheet",
					Value: defaults.SheetName,
					Usage: "sheet filename",
				},
				&cli.StringFlag{
					Name:  "map",
					Value: defaults.MapName,
					Usage: "map filename",
				},
				&cli.StringFlag{
					Name:    "rembg-url",
					EnvVars: []string{"ATLASPACK_REMBG_URL"},
					Value:   extract.DefaultURL,
					Usage:   "background removal server endpoint",
				},
				&cli.StringFlag{
					Name:    "rembg-model",
					EnvVars: []string{"ATLASPACK_REMBG_MODEL"},
					Usage:   "model requested from the background removal server",
				},
				&cli.StringFlag{
					Name:    "rembg-cmd",
					EnvVars: []string{"ATLASPACK_REMBG_CMD"},
					Usage:   "background removal command reading stdin and writing stdout, used instead of the server",
				},
				&cli.StringFlag{
					Name:    "cache",
					EnvVars: []string{"ATLASPACK_CACHE"},
					Usage:   "path to background removal cache database",
				},
			},
			Action: pack,
		},
		{
			Name:        "split",
			Usage:       "Split a sprite sheet back into individual images",
			Description: "",
			ArgsUsage:   "SHEET MAP DIRECTORY",
			Action:      split,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
