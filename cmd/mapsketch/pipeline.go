package main

import (
	"fmt"

	"mapsketch/internal/core"
	"mapsketch/internal/export"
	"mapsketch/internal/palette"
	"mapsketch/internal/quantize"
	"mapsketch/internal/sketch"
)

// quantizeSketch loads the sketch at path and snaps it onto squares biased
// toward set.
func (c *cli) quantizeSketch(path string, set palette.Set) (*core.Grid, error) {
	img, format, err := sketch.Load(path)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("loaded sketch", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	g, err := quantize.Quantize(quantize.FromImage(img), quantize.Options{
		PixelScale:    c.cfg.Scale.Pixel,
		SubpixelScale: c.cfg.Scale.Subpixel,
		Palette:       set,
		Logger:        c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("quantize %s: %w", path, err)
	}
	return g, nil
}

// write exports g to out and, unless skipped, its manifest alongside.
func (c *cli) write(g *core.Grid, out string, m *export.Manifest, skipManifest bool) error {
	if err := export.Save(out, export.Render(g)); err != nil {
		return err
	}
	c.logger.Info("map written", "path", out, "cols", g.Cols(), "rows", g.Rows())
	if skipManifest {
		return nil
	}
	m.Output = out
	path := export.ManifestPath(out)
	if err := export.WriteManifest(path, m); err != nil {
		return err
	}
	c.logger.Debug("manifest written", "path", path, "run_id", m.RunID)
	return nil
}
