package core

// Offset is a relative grid displacement.
type Offset struct {
	DX, DY int
}

// Moore lists the eight neighbor offsets around a cell, row by row.
var Moore = [8]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// MooreWithCenter lists the 3x3 block of offsets centered on a cell.
var MooreWithCenter = [9]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// produce an empty grid.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		return &Grid[T]{}
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// Coord converts a linear index back into coordinates.
func (g *Grid[T]) Coord(idx int) (int, int) { return idx % g.W, idx / g.W }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y) and whether the coordinates were valid.
func (g *Grid[T]) At(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.data[g.Index(x, y)], true
}

// Ptr returns a pointer to the cell at (x, y), or nil when out of range.
func (g *Grid[T]) Ptr(x, y int) *T {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.data[g.Index(x, y)]
}

// Neighbors calls fn for every in-bounds Moore neighbor of (x, y).
func (g *Grid[T]) Neighbors(x, y int, fn func(nx, ny int)) {
	for _, o := range Moore {
		nx, ny := x+o.DX, y+o.DY
		if g.InBounds(nx, ny) {
			fn(nx, ny)
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{W: g.W, H: g.H, data: make([]T, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Clear resets every cell to the zero value.
func (g *Grid[T]) Clear() {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
}
