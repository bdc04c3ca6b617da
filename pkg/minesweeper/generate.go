package minesweeper

import "minesweeper/pkg/core"

// generate places the mines, keeping the 3x3 block around (avoidX, avoidY)
// clear, and computes adjacency counts.
func (b *Board) generate(avoidX, avoidY int) {
	for _, o := range core.MooreWithCenter {
		if t := b.tiles.Ptr(avoidX+o.DX, avoidY+o.DY); t != nil {
			t.Safe = true
		}
	}

	// Rejection sampling terminates: Validate reserves at least nine
	// non-mine tiles and the clipped safe zone never exceeds nine.
	placed := 0
	for placed < b.mines {
		x := b.rng.IntN(b.width)
		y := b.rng.IntN(b.height)
		t := b.tiles.Ptr(x, y)
		if t == nil || t.State == Mine || t.Safe {
			continue
		}
		t.State = Mine
		placed++
	}

	cells := b.tiles.Cells()
	for i := range cells {
		if cells[i].State != Mine {
			continue
		}
		x, y := b.tiles.Coord(i)
		b.tiles.Neighbors(x, y, func(nx, ny int) {
			b.tiles.Ptr(nx, ny).IncrementAdjacent()
		})
	}
	b.generated = true
}
