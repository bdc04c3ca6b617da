package app

// Layout places the top bar, the board and the settings panel on screen.
type Layout struct {
	Cols, Rows int
	// Scale is the tile size in pixels.
	Scale int
	// Top is the height of the bar above the board.
	Top      int
	HUDWidth int
	// MinHeight keeps room for the settings panel on short boards.
	MinHeight int
}

// BoardWidth is the board width in pixels.
func (l Layout) BoardWidth() int { return l.Cols * l.Scale }

// ScreenSize returns the logical screen size.
func (l Layout) ScreenSize() (int, int) {
	h := l.Top + l.Rows*l.Scale
	if h < l.MinHeight {
		h = l.MinHeight
	}
	return l.BoardWidth() + l.HUDWidth, h
}

// CellAt maps a screen position to a tile.
func (l Layout) CellAt(px, py int) (int, int, bool) {
	if l.Scale <= 0 || px < 0 || py < l.Top {
		return 0, 0, false
	}
	x, y := px/l.Scale, (py-l.Top)/l.Scale
	if x >= l.Cols || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}
