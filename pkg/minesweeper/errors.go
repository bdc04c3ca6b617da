package minesweeper

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDimension indicates a board width or height below one.
	ErrZeroDimension = errors.New("minesweeper: board must have at least one row and one column")
	// ErrNegativeMines indicates a negative mine count.
	ErrNegativeMines = errors.New("minesweeper: mine count must not be negative")
	// ErrTooManyMines indicates the mine count leaves no room for the
	// first-click safe zone.
	ErrTooManyMines = errors.New("minesweeper: not enough space for mines")
	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("minesweeper: invalid configuration")
	// ErrUnknownPreset indicates a preset name that was never registered.
	ErrUnknownPreset = errors.New("minesweeper: unknown preset")
)

// safeZoneTiles is the size of the 3x3 first-click neighborhood reserved
// from mine placement, regardless of clipping at the board edge.
const safeZoneTiles = 9

// MaxMines returns the largest mine count a width x height board accepts.
// It is negative when the board is smaller than the safe zone.
func MaxMines(width, height int) int {
	return width*height - safeZoneTiles
}

// Validate checks board parameters. A mine-free board is accepted at any
// size; otherwise the mine count must leave the safe zone free.
func Validate(width, height, mines int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrZeroDimension, width, height)
	}
	if mines < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeMines, mines)
	}
	if mines > 0 && mines > MaxMines(width, height) {
		return fmt.Errorf("%w: %d mines on a %dx%d board (max %d)",
			ErrTooManyMines, mines, width, height, MaxMines(width, height))
	}
	return nil
}
