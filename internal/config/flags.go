package config

import "github.com/spf13/pflag"

// flagFields copies one flag-backed field from src to dst. Keys are flag
// names registered by Bind.
var flagFields = map[string]func(dst, src *Config){
	"pixel-scale":    func(d, s *Config) { d.Scale.Pixel = s.Scale.Pixel },
	"subpixel-scale": func(d, s *Config) { d.Scale.Subpixel = s.Scale.Subpixel },
	"cols":           func(d, s *Config) { d.Canvas.Cols = s.Canvas.Cols },
	"rows":           func(d, s *Config) { d.Canvas.Rows = s.Canvas.Rows },
	"size":           func(d, s *Config) { d.Cave.NeighborhoodSize = s.Cave.NeighborhoodSize },
	"threshold":      func(d, s *Config) { d.Cave.NeighborhoodThreshold = s.Cave.NeighborhoodThreshold },
	"generations":    func(d, s *Config) { d.Cave.Generations = s.Cave.Generations },
	"rooms":          func(d, s *Config) { d.Rooms.Count = s.Rooms.Count },
	"seed":           func(d, s *Config) { d.Rooms.Seed = s.Rooms.Seed },
	"floor-revision": func(d, s *Config) { d.RoomPalette.FloorRevision = s.RoomPalette.FloorRevision },
	"log-level":      func(d, s *Config) { d.Log.Level = s.Log.Level },
}

// Bind registers the generation flags on fs, writing into c.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale.Pixel, "pixel-scale", c.Scale.Pixel, "source pixels per square side")
	fs.IntVar(&c.Scale.Subpixel, "subpixel-scale", c.Scale.Subpixel, "multiplier applied to the pixel scale")
	fs.IntVar(&c.Canvas.Cols, "cols", c.Canvas.Cols, "blank canvas width in squares")
	fs.IntVar(&c.Canvas.Rows, "rows", c.Canvas.Rows, "blank canvas height in squares")
	fs.IntVar(&c.Cave.NeighborhoodSize, "size", c.Cave.NeighborhoodSize, "cave neighbourhood radius")
	fs.IntVar(&c.Cave.NeighborhoodThreshold, "threshold", c.Cave.NeighborhoodThreshold, "wall count at which a cave cell becomes wall")
	fs.IntVar(&c.Cave.Generations, "generations", c.Cave.Generations, "cave generations to run")
	fs.IntVar(&c.Rooms.Count, "rooms", c.Rooms.Count, "random room starts to add (0 picks a count from the grid size)")
	fs.Int64Var(&c.Rooms.Seed, "seed", c.Rooms.Seed, "seed for room start placement (0 uses the clock)")
	fs.StringVar(&c.RoomPalette.FloorRevision, "floor-revision", c.RoomPalette.FloorRevision, "room floor colour revision: current or legacy")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level: debug, info, warn or error")
}

// Overlay returns base with every flag that was set on fs taken from c,
// the Config that Bind wrote into.
func (c *Config) Overlay(base *Config, fs *pflag.FlagSet) *Config {
	out := *base
	fs.Visit(func(f *pflag.Flag) {
		if copyField, ok := flagFields[f.Name]; ok {
			copyField(&out, c)
		}
	})
	return &out
}

// Resolve produces the effective settings: Default, then the file at path
// when one is given, then the flags set on fs. The result is validated.
func (c *Config) Resolve(path string, fs *pflag.FlagSet) (*Config, error) {
	base := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		base = loaded
	}
	out := c.Overlay(base, fs)
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
