package minesweeper

// Chord reveals every unmarked neighbor of a revealed numbered tile once the
// player has placed as many flags around it as it has adjacent mines. A
// wrong flag makes the chord lose like any other reveal.
func (g *Game) Chord(x, y int) {
	if g.state != Playing {
		return
	}
	t, ok := g.board.Tile(x, y)
	if !ok || !t.Swept || t.Adjacent == 0 {
		return
	}
	var flags uint8
	var targets [][2]int
	g.board.tiles.Neighbors(x, y, func(nx, ny int) {
		n := g.board.tiles.Ptr(nx, ny)
		switch {
		case n.Modifier == Flagged:
			flags++
		case !n.Swept:
			targets = append(targets, [2]int{nx, ny})
		}
	})
	if flags != t.Adjacent {
		return
	}
	for _, p := range targets {
		if g.state != Playing {
			return
		}
		g.Reveal(p[0], p[1])
	}
}
