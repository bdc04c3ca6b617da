package minesweeper

import (
	"time"
)

// placementRand answers IntN calls with a fixed sequence of cells, x then y,
// cycling when exhausted.
type placementRand struct {
	vals []int
	i    int
}

func placeAt(cells ...[2]int) *placementRand {
	r := &placementRand{}
	for _, c := range cells {
		r.vals = append(r.vals, c[0], c[1])
	}
	return r
}

func (r *placementRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func countKind(events []Event, k EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// wallBoard returns a 7x3 board whose mines fill column 3 once the first
// sweep lands in the left half.
func wallBoard() *Board {
	b, err := NewBoard(7, 3, 3, placeAt([2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2}))
	if err != nil {
		panic(err)
	}
	return b
}

func bruteAdjacent(b *Board, x, y int) uint8 {
	var n uint8
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if t, ok := b.Tile(x+dx, y+dy); ok && t.State == Mine {
				n++
			}
		}
	}
	return n
}
