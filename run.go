package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS overrides ebiten's ticks per second when positive.
	TPS int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		drawFPS(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene with ebiten's game loop until the
// window closes or the update callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if err := ebiten.RunGame(&game{scene: scene, cfg: cfg}); err != nil {
		return fmt.Errorf("canopy: run: %w", err)
	}
	return nil
}

// drawFPS prints the current FPS and TPS with ebitenutil.DebugPrint.
func drawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
