//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mapsketch/internal/render"
	"mapsketch/internal/ui"
)

// Viewer adapts a Session to the ebiten.Game interface.
type Viewer struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	logger  *slog.Logger

	scale     int
	hudWidth  int
	paused    bool
	tickOnce  bool
	seed      int64
	lastError string
}

// New constructs a Viewer for s. The panel is hudWidth pixels wide; zero
// hides it.
func New(s *Session, scale, hudWidth int, seed int64, logger *slog.Logger) *Viewer {
	if scale <= 0 {
		scale = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	g := s.Grid()
	return &Viewer{
		session:  s,
		painter:  render.NewGridPainter(g.Cols(), g.Rows()),
		overlay:  ui.NewOverlay(g.Cols(), g.Rows(), scale),
		hud:      ui.NewHUD(s.Subject(), hudWidth),
		logger:   logger,
		scale:    scale,
		hudWidth: hudWidth,
		paused:   true,
		seed:     seed,
	}
}

// Update handles keys. In cave mode Space toggles continuous generations
// and N runs one; in rooms mode G grows and R reseeds. Backspace restores
// the loaded map.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		v.session.Reset()
	}

	switch v.session.Mode() {
	case ModeCave:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			v.paused = !v.paused
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			v.tickOnce = true
		}
		if !v.paused || v.tickOnce {
			v.report(v.session.Step())
			v.tickOnce = false
		}
	case ModeRooms:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			v.seed = time.Now().UnixNano()
			v.report(v.session.Reseed(v.seed))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyG) {
			v.report(v.session.Grow())
		}
	}

	v.overlay.Update()
	v.hud.Update(v.mapWidth())
	return nil
}

func (v *Viewer) report(err error) {
	if err == nil {
		return
	}
	if msg := err.Error(); msg != v.lastError {
		v.logger.Warn("viewer action failed", "mode", v.session.Mode(), "err", err)
		v.lastError = msg
	}
}

// Draw renders the map, the overlay and the panel.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.painter.Blit(screen, v.session.Grid(), v.scale)
	v.overlay.Draw(screen, v.session.Features())
	v.hud.Draw(screen, v.mapWidth(), v.session.Grid().Rows()*v.scale)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.mapWidth() + v.hudWidth, v.session.Grid().Rows() * v.scale
}

func (v *Viewer) mapWidth() int { return v.session.Grid().Cols() * v.scale }
