package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Cave.NeighborhoodSize)
	assert.Equal(t, 5, cfg.Cave.NeighborhoodThreshold)
	assert.Equal(t, 2, cfg.Scale.Pixel*cfg.Scale.Subpixel)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero pixel scale":   func(c *Config) { c.Scale.Pixel = 0 },
		"zero radius":        func(c *Config) { c.Cave.NeighborhoodSize = 0 },
		"threshold too high": func(c *Config) { c.Cave.NeighborhoodThreshold = 21 },
		"negative rooms":     func(c *Config) { c.Rooms.Count = -1 },
		"bad revision":       func(c *Config) { c.RoomPalette.FloorRevision = "beige" },
		"bad hex":            func(c *Config) { c.CavePalette.Wall = "black" },
		"bad log level":      func(c *Config) { c.Log.Level = "loud" },
		"tiny canvas":        func(c *Config) { c.Canvas.Cols = 2 },
		"floor as empty":     func(c *Config) { c.RoomPalette.Floor = "#ffffff" },
		"cave wall as floor": func(c *Config) { c.CavePalette.Wall = "#ffffff" },
		"magenta door":       func(c *Config) { c.RoomPalette.Door = "#ff00ff" },
		"magenta stairs":     func(c *Config) { c.CavePalette.Stairs = "#FF00FF" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Cave.NeighborhoodThreshold = 20
	assert.NoError(t, cfg.Validate(), "20 is the radius-1 maximum")
}

func TestPaletteClashNamesBothRoles(t *testing.T) {
	cfg := Default()
	cfg.RoomPalette.Floor = "#ffffff"
	_, err := cfg.BuildRoomPalette()
	require.ErrorIs(t, err, ErrPaletteClash)
	assert.Contains(t, err.Error(), "empty and floor")
	assert.ErrorIs(t, cfg.Validate(), ErrPaletteClash)

	cfg = Default()
	cfg.RoomPalette.FloorRevision = FloorLegacy
	cfg.RoomPalette.Empty = "#e6e6e6"
	_, err = cfg.BuildRoomPalette()
	assert.ErrorIs(t, err, ErrPaletteClash, "legacy floor is #e6e6e6")

	cfg = Default()
	cfg.CavePalette.Wall = "#00ff00"
	cfg.CavePalette.Stairs = "#000000"
	_, err = cfg.BuildCavePalette()
	assert.NoError(t, err, "swapping two roles keeps them distinct")
}

func TestDecodeLayersOverDefault(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
cave:
  neighborhood_size: 2
  neighborhood_threshold: 13
room_palette:
  floor_revision: legacy
  door: "#00f"
`))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Cave.NeighborhoodSize)
	assert.Equal(t, 13, cfg.Cave.NeighborhoodThreshold)
	assert.Equal(t, Default().Cave.Generations, cfg.Cave.Generations)

	p, err := cfg.BuildRoomPalette()
	require.NoError(t, err)
	assert.Equal(t, palette.LegacyRoomFloor, p.Floor)
	assert.Equal(t, palette.Blue, p.Door)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("cave:\n  radius: 3\n"))
	assert.Error(t, err)
}

func TestDecodeEmptyInput(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestBuildCavePalette(t *testing.T) {
	cfg := Default()
	cfg.CavePalette.Stairs = "#ffaa00"
	p, err := cfg.BuildCavePalette()
	require.NoError(t, err)
	assert.Equal(t, core.RGB{R: 255, G: 170, B: 0}, p.Stairs)
	assert.Equal(t, palette.Black, p.Wall)
	assert.Equal(t, cfg.Cave.NeighborhoodSize, cfg.CaveAutomaton().NeighborhoodSize)
}

func TestResolveFlagsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapsketch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cave:\n  generations: 9\n  neighborhood_threshold: 6\n"), 0o644))

	flags := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--threshold", "4", "--seed", "12"}))

	cfg, err := flags.Resolve(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Cave.NeighborhoodThreshold, "flag wins over file")
	assert.Equal(t, 9, cfg.Cave.Generations, "file wins over default")
	assert.Equal(t, int64(12), cfg.Rooms.Seed)

	cfg, err = flags.Resolve("", fs)
	require.NoError(t, err)
	assert.Equal(t, Default().Cave.Generations, cfg.Cave.Generations)

	_, err = flags.Resolve(filepath.Join(t.TempDir(), "missing.yaml"), fs)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveValidatesFlags(t *testing.T) {
	flags := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--size", "0"}))
	_, err := flags.Resolve("", fs)
	assert.Error(t, err)
}
