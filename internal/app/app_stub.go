//go:build !ebiten

package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"minesweeper/pkg/minesweeper"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*minesweeper.Game, *Config, logrus.FieldLogger) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// ScreenSize returns zeros in the headless build.
func (h *Game) ScreenSize() (int, int) { return 0, 0 }

// Update always reports that the GUI build tag is missing.
func (h *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (h *Game) Layout(int, int) (int, int) { return 0, 0 }
