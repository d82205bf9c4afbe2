package app

import (
	"errors"
	"fmt"
	"log/slog"

	"mapsketch/internal/cave"
	"mapsketch/internal/config"
	"mapsketch/internal/core"
	"mapsketch/internal/palette"
	"mapsketch/internal/rooms"
	"mapsketch/internal/ui"
)

// Mode selects which generator a session drives.
type Mode string

const (
	ModeCave  Mode = "cave"
	ModeRooms Mode = "rooms"
)

// ErrWrongMode is returned when an action does not apply to the session's mode.
var ErrWrongMode = errors.New("action not available in this mode")

// Session owns a quantized map and the generator working on it. It keeps
// the map as loaded so it can be restored.
type Session struct {
	mode     Mode
	original *core.Grid
	grid     *core.Grid

	automaton *cave.Automaton
	grower    *rooms.Grower
	stairs    core.RGB
	roomCount int
	logger    *slog.Logger
}

// NewSession prepares a session over g using cfg for the generator.
func NewSession(mode Mode, g *core.Grid, cfg *config.Config, logger *slog.Logger) (*Session, error) {
	if g == nil {
		return nil, errors.New("session needs a grid")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{mode: mode, original: g.Clone(), grid: g, roomCount: cfg.Rooms.Count, logger: logger}
	switch mode {
	case ModeCave:
		p, err := cfg.BuildCavePalette()
		if err != nil {
			return nil, err
		}
		s.automaton = cave.NewWithConfig(cfg.CaveAutomaton())
		s.automaton.SetPalette(p)
		s.automaton.SetLogger(logger)
		s.automaton.SetGrid(g)
		s.stairs = p.Stairs
	case ModeRooms:
		p, err := cfg.BuildRoomPalette()
		if err != nil {
			return nil, err
		}
		s.grower = rooms.New()
		s.grower.SetPalette(p)
		s.grower.SetLogger(logger)
		if cfg.Rooms.Seed != 0 {
			s.grower.SetSeed(cfg.Rooms.Seed)
		}
		s.grower.SetGrid(g)
		s.stairs = p.Stairs
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	return s, nil
}

// Mode reports the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Grid returns the map being worked on.
func (s *Session) Grid() *core.Grid { return s.grid }

// Subject returns the active generator for the parameter panel.
func (s *Session) Subject() ui.Subject {
	if s.mode == ModeCave {
		return s.automaton
	}
	return s.grower
}

// Step runs one cave generation.
func (s *Session) Step() error {
	if s.automaton == nil {
		return fmt.Errorf("step: %w", ErrWrongMode)
	}
	if !s.automaton.RunGeneration() {
		return cave.ErrNoGrid
	}
	s.logger.Debug("cave generation", "generation", s.automaton.Generations())
	return nil
}

// Grow grows the painted room starts.
func (s *Session) Grow() error {
	if s.grower == nil {
		return fmt.Errorf("grow: %w", ErrWrongMode)
	}
	return s.grower.GrowRoomsFromStarts()
}

// Reseed restores the loaded map and places fresh random room starts.
func (s *Session) Reseed(seed int64) error {
	if s.grower == nil {
		return fmt.Errorf("reseed: %w", ErrWrongMode)
	}
	s.Reset()
	s.grower.SetSeed(seed)
	return s.grower.AddRandomRoomStarts(s.roomCount)
}

// Reset restores the map as it was loaded.
func (s *Session) Reset() {
	// original is a clone of grid, so the sizes always match.
	_ = s.grid.CopyColors(s.original)
	if s.automaton != nil {
		s.automaton.ResetGenerations()
	}
	if s.grower != nil {
		s.grower.Forget()
	}
}

// Features lists what the overlay can highlight.
func (s *Session) Features() ui.Features {
	f := ui.Features{Connections: palette.Find(s.grid, s.stairs)}
	if s.grower != nil {
		for _, r := range s.grower.Rooms() {
			f.Rooms = append(f.Rooms, r.Bounds)
		}
	}
	return f
}
