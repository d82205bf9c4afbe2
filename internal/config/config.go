// Package config holds the generation settings shared by the commands. A
// YAML file is layered over Default and explicitly set flags are layered
// over the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"mapsketch/internal/cave"
	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

// Floor revisions selectable for the room palette.
const (
	FloorCurrent = "current"
	FloorLegacy  = "legacy"
)

// Scale controls how many source pixels make up one square side.
type Scale struct {
	Pixel    int `yaml:"pixel" validate:"gte=1"`
	Subpixel int `yaml:"subpixel" validate:"gte=1"`
}

// Canvas sizes a blank sketch, in squares.
type Canvas struct {
	Cols int `yaml:"cols" validate:"gte=3,lte=1000"`
	Rows int `yaml:"rows" validate:"gte=3,lte=1000"`
}

// Cave configures the cellular automaton.
type Cave struct {
	NeighborhoodSize      int `yaml:"neighborhood_size" validate:"gte=1,lte=16"`
	NeighborhoodThreshold int `yaml:"neighborhood_threshold" validate:"gte=0"`
	Generations           int `yaml:"generations" validate:"gte=0,lte=1000"`
}

// Rooms configures room start placement. A zero count picks a random one
// from the grid size; a zero seed draws one from the clock.
type Rooms struct {
	Count int   `yaml:"count" validate:"gte=0"`
	Seed  int64 `yaml:"seed"`
}

// CavePalette overrides cave colours. Empty strings keep the defaults.
type CavePalette struct {
	Wall   string `yaml:"wall,omitempty" validate:"omitempty,hexcolor"`
	Floor  string `yaml:"floor,omitempty" validate:"omitempty,hexcolor"`
	Stairs string `yaml:"stairs,omitempty" validate:"omitempty,hexcolor"`
}

// RoomPalette overrides room colours. Empty strings keep the defaults of
// the selected floor revision.
type RoomPalette struct {
	FloorRevision string `yaml:"floor_revision" validate:"oneof=current legacy"`
	Wall          string `yaml:"wall,omitempty" validate:"omitempty,hexcolor"`
	Empty         string `yaml:"empty,omitempty" validate:"omitempty,hexcolor"`
	Floor         string `yaml:"floor,omitempty" validate:"omitempty,hexcolor"`
	Start         string `yaml:"room_start,omitempty" validate:"omitempty,hexcolor"`
	Door          string `yaml:"door,omitempty" validate:"omitempty,hexcolor"`
	Stairs        string `yaml:"stairs,omitempty" validate:"omitempty,hexcolor"`
}

// Log configures the slog handler.
type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Config is the full settings tree.
type Config struct {
	Scale       Scale       `yaml:"scale"`
	Canvas      Canvas      `yaml:"canvas"`
	Cave        Cave        `yaml:"cave"`
	Rooms       Rooms       `yaml:"rooms"`
	CavePalette CavePalette `yaml:"cave_palette"`
	RoomPalette RoomPalette `yaml:"room_palette"`
	Log         Log         `yaml:"log"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	ca := cave.DefaultConfig()
	return &Config{
		Scale:  Scale{Pixel: 2, Subpixel: 1},
		Canvas: Canvas{Cols: 50, Rows: 50},
		Cave: Cave{
			NeighborhoodSize:      ca.NeighborhoodSize,
			NeighborhoodThreshold: ca.NeighborhoodThreshold,
			Generations:           5,
		},
		RoomPalette: RoomPalette{FloorRevision: FloorCurrent},
		Log:         Log{Level: "info"},
	}
}

var validate = validator.New()

// ErrPaletteClash is returned when two palette roles share a colour or a
// role uses the reserved magenta sentinel.
var ErrPaletteClash = errors.New("palette colours must be distinct")

// Validate checks field ranges, the threshold against the largest count the
// chosen radius can produce, and that both palettes keep their roles apart.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if limit := cave.MaxThreshold(c.Cave.NeighborhoodSize); c.Cave.NeighborhoodThreshold > limit {
		return fmt.Errorf("invalid config: neighborhood_threshold %d exceeds %d for radius %d",
			c.Cave.NeighborhoodThreshold, limit, c.Cave.NeighborhoodSize)
	}
	if _, err := c.BuildCavePalette(); err != nil {
		return fmt.Errorf("invalid config: cave_palette: %w", err)
	}
	if _, err := c.BuildRoomPalette(); err != nil {
		return fmt.Errorf("invalid config: room_palette: %w", err)
	}
	return nil
}

// Decode reads YAML from r over Default. Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the YAML file at path over Default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// CaveAutomaton returns the automaton rule.
func (c *Config) CaveAutomaton() cave.Config {
	return cave.Config{
		NeighborhoodSize:      c.Cave.NeighborhoodSize,
		NeighborhoodThreshold: c.Cave.NeighborhoodThreshold,
	}
}

// BuildCavePalette applies the cave overrides to the default palette.
func (c *Config) BuildCavePalette() (palette.Cave, error) {
	p := palette.DefaultCave()
	err := override(
		hexField{c.CavePalette.Wall, &p.Wall},
		hexField{c.CavePalette.Floor, &p.Floor},
		hexField{c.CavePalette.Stairs, &p.Stairs},
	)
	if err != nil {
		return p, err
	}
	return p, distinct(
		namedColor{"wall", p.Wall},
		namedColor{"floor", p.Floor},
		namedColor{"stairs", p.Stairs},
	)
}

// BuildRoomPalette applies the room overrides to the selected revision.
func (c *Config) BuildRoomPalette() (palette.Room, error) {
	p := palette.DefaultRoom()
	if c.RoomPalette.FloorRevision == FloorLegacy {
		p = palette.LegacyRoom()
	}
	rp := c.RoomPalette
	err := override(
		hexField{rp.Wall, &p.Wall},
		hexField{rp.Empty, &p.Empty},
		hexField{rp.Floor, &p.Floor},
		hexField{rp.Start, &p.Start},
		hexField{rp.Door, &p.Door},
		hexField{rp.Stairs, &p.Stairs},
	)
	if err != nil {
		return p, err
	}
	return p, distinct(
		namedColor{"wall", p.Wall},
		namedColor{"empty", p.Empty},
		namedColor{"floor", p.Floor},
		namedColor{"room_start", p.Start},
		namedColor{"door", p.Door},
		namedColor{"stairs", p.Stairs},
	)
}

type hexField struct {
	value string
	dst   *core.RGB
}

func override(fields ...hexField) error {
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		c, err := core.ParseHex(f.value)
		if err != nil {
			return err
		}
		*f.dst = c
	}
	return nil
}

type namedColor struct {
	name  string
	color core.RGB
}

// distinct rejects a palette whose roles could not be told apart when
// classifying a square.
func distinct(colors ...namedColor) error {
	seen := make(map[core.RGB]string, len(colors))
	for _, c := range colors {
		if c.color == core.Magenta {
			return fmt.Errorf("%w: %s is the reserved magenta", ErrPaletteClash, c.name)
		}
		if other, ok := seen[c.color]; ok {
			return fmt.Errorf("%w: %s and %s are both %s", ErrPaletteClash, other, c.name, c.color.Hex())
		}
		seen[c.color] = c.name
	}
	return nil
}
