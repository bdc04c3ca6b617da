//go:build !ebiten

package ui

import "minesweeper/pkg/minesweeper"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int, int) *Overlay { return &Overlay{} }

// SetBanner is a no-op in headless builds.
func (o *Overlay) SetBanner(string) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, *minesweeper.Snapshot) {}
