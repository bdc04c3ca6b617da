package minesweeper

// Sweep reveals the tile at (x, y), generating the mine field first if
// needed. It reports a terminal state when the sweep ends the round.
//
// Out-of-range coordinates, flagged or question-marked tiles and tiles that
// are already revealed are ignored.
func (b *Board) Sweep(x, y int, q *Queue) (GameState, bool) {
	if !b.tiles.InBounds(x, y) {
		return Playing, false
	}
	if !b.generated {
		b.generate(x, y)
	}
	t := b.tiles.Ptr(x, y)
	if t.Modifier != NoModifier || t.Swept {
		return Playing, false
	}

	t.Swept = true
	if t.State == Mine {
		q.Push(tileEvent(EventRevealTile, x, y, *t))
		q.Push(tileEvent(EventLose, x, y, *t))
		q.Push(Event{Kind: EventGameEnd, Board: b.Snapshot()})
		return GameOver, true
	}
	b.revealedTiles++
	q.Push(tileEvent(EventRevealTile, x, y, *t))

	q.Push(Event{Kind: EventSweepBegin})
	b.floodFill(x, y, q)

	if b.revealedTiles == b.nonMineTiles {
		q.Push(Event{Kind: EventWin})
		q.Push(Event{Kind: EventGameEnd, Board: b.Snapshot()})
		return Victory, true
	}
	return Playing, false
}

// floodFill expands breadth-first from an already swept tile, continuing
// only through tiles with no adjacent mines.
func (b *Board) floodFill(x, y int, q *Queue) {
	queue := []int{b.tiles.Index(x, y)}
	cells := b.tiles.Cells()
	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		if cells[idx].Adjacent > 0 {
			continue
		}
		cx, cy := b.tiles.Coord(idx)
		b.tiles.Neighbors(cx, cy, func(nx, ny int) {
			n := b.tiles.Ptr(nx, ny)
			if n.Swept || n.Modifier != NoModifier {
				return
			}
			n.Swept = true
			b.revealedTiles++
			q.Push(tileEvent(EventRevealTile, nx, ny, *n))
			queue = append(queue, b.tiles.Index(nx, ny))
		})
	}
}
