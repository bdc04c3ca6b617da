package app

import (
	"minesweeper/pkg/core"
	"minesweeper/pkg/minesweeper"
)

// Pointer is the mouse state for one tick, already mapped to a tile.
type Pointer struct {
	X, Y   int
	Inside bool

	LeftHeld      bool
	LeftReleased  bool
	RightPressed  bool
	MiddleHeld    bool
	MiddlePressed bool
}

// Controller turns pointer input into game calls. A held left button lights
// the tile under the cursor, a held middle button its 3x3 neighborhood.
type Controller struct {
	game *minesweeper.Game
	lit  [][2]int
}

// NewController returns a controller driving g.
func NewController(g *minesweeper.Game) *Controller {
	return &Controller{game: g}
}

// SetGame points the controller at a different game.
func (c *Controller) SetGame(g *minesweeper.Game) {
	c.clear()
	c.game = g
}

func (c *Controller) clear() {
	for _, p := range c.lit {
		c.game.RemoveHighlight(p[0], p[1])
	}
	c.lit = c.lit[:0]
}

func (c *Controller) light(x, y int) {
	c.game.Highlight(x, y)
	c.lit = append(c.lit, [2]int{x, y})
}

// Handle applies one tick of input. It reports whether a button is held
// over the board.
func (c *Controller) Handle(p Pointer) bool {
	c.clear()
	if !p.Inside {
		return false
	}
	switch {
	case p.MiddleHeld:
		for _, o := range core.MooreWithCenter {
			c.light(p.X+o.DX, p.Y+o.DY)
		}
	case p.LeftHeld:
		c.light(p.X, p.Y)
	}

	if p.LeftReleased {
		c.game.Reveal(p.X, p.Y)
	}
	if p.RightPressed {
		c.game.Modify(p.X, p.Y)
	}
	if p.MiddlePressed {
		c.game.Chord(p.X, p.Y)
	}
	return p.LeftHeld || p.MiddleHeld
}
