//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"mapsketch/internal/app"
	"mapsketch/internal/config"
	"mapsketch/internal/core"
	"mapsketch/internal/palette"
	"mapsketch/internal/quantize"
	"mapsketch/internal/sketch"
)

func main() {
	flags := config.Default()
	fs := pflag.NewFlagSet("viewer", pflag.ExitOnError)
	mode := fs.String("mode", string(app.ModeCave), "generator to drive: cave or rooms")
	configPath := fs.StringP("config", "c", "", "YAML settings file")
	scale := fs.Int("scale", 8, "screen pixels per square")
	hudWidth := fs.Int("hud-width", 220, "parameter panel width in pixels (0 hides it)")
	tps := fs.Int("tps", 10, "generations per second while running")
	flags.Bind(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: viewer [flags] [sketch]")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	cfg, err := flags.Resolve(*configPath, fs)
	if err != nil {
		fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	g, err := loadGrid(app.Mode(*mode), cfg, fs.Arg(0), logger)
	if err != nil {
		fatal(err)
	}
	session, err := app.NewSession(app.Mode(*mode), g, cfg, logger)
	if err != nil {
		fatal(err)
	}

	seed := cfg.Rooms.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	viewer := app.New(session, *scale, *hudWidth, seed, logger)

	ebiten.SetWindowTitle("mapsketch: " + *mode)
	ebiten.SetTPS(*tps)
	width, height := g.Cols()*(*scale)+*hudWidth, g.Rows()*(*scale)
	ebiten.SetWindowSize(width, height)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// loadGrid quantizes the sketch at path, or starts from an empty canvas of
// the configured size when no path is given.
func loadGrid(mode app.Mode, cfg *config.Config, path string, logger *slog.Logger) (*core.Grid, error) {
	var set palette.Set
	var err error
	if mode == app.ModeRooms {
		set, err = cfg.BuildRoomPalette()
	} else {
		set, err = cfg.BuildCavePalette()
	}
	if err != nil {
		return nil, err
	}

	side := cfg.Scale.Pixel * cfg.Scale.Subpixel
	if path == "" {
		fill := palette.White
		if rp, ok := set.(palette.Room); ok {
			fill = rp.Empty
		}
		return core.UniformGrid(cfg.Canvas.Cols, cfg.Canvas.Rows, side, fill), nil
	}

	img, _, err := sketch.Load(path)
	if err != nil {
		return nil, err
	}
	return quantize.Quantize(quantize.FromImage(img), quantize.Options{
		PixelScale:    cfg.Scale.Pixel,
		SubpixelScale: cfg.Scale.Subpixel,
		Palette:       set,
		Logger:        logger,
	})
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
