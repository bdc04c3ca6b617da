//go:build !ebiten

package ui

import "minesweeper/internal/render"

// TopBarHeight is the height of the counter strip above the board.
const TopBarHeight = 40

// TopBar is a no-op placeholder for headless builds.
type TopBar struct{}

// NewTopBar constructs a stub top bar.
func NewTopBar() *TopBar { return &TopBar{} }

// Pressed is always false in headless builds.
func (tb *TopBar) Pressed() bool { return false }

// Update is a no-op in headless builds.
func (tb *TopBar) Update(int) bool { return false }

// Draw is a no-op placeholder.
func (tb *TopBar) Draw(any, int, string, string, render.Smiley) {}
