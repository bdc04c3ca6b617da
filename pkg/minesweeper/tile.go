package minesweeper

// TileState is what a tile holds. It is fixed when the mine field is generated.
type TileState uint8

const (
	Clear TileState = iota
	Mine
)

func (s TileState) String() string {
	if s == Mine {
		return "mine"
	}
	return "clear"
}

// Modifier is a player-applied marker. A tile carries at most one.
type Modifier uint8

const (
	NoModifier Modifier = iota
	Flagged
	Unsure
)

func (m Modifier) String() string {
	switch m {
	case Flagged:
		return "flagged"
	case Unsure:
		return "unsure"
	default:
		return "none"
	}
}

// Tile is one cell of the board. It is a value type; copies are snapshots.
type Tile struct {
	State    TileState
	Modifier Modifier
	// Swept is set once the tile is revealed and never cleared.
	Swept bool
	// Adjacent counts neighboring mines. Only meaningful for Clear tiles.
	Adjacent uint8
	// Safe marks the first-click neighborhood during generation.
	Safe bool
	// Highlighted is cosmetic hover state.
	Highlighted bool
}

// IsMine reports whether the tile holds a mine.
func (t Tile) IsMine() bool { return t.State == Mine }

// IncrementAdjacent bumps the neighbor count of a Clear tile.
func (t *Tile) IncrementAdjacent() {
	if t.State == Clear {
		t.Adjacent++
	}
}

// Highlight marks an unrevealed tile as hovered.
func (t *Tile) Highlight() {
	if !t.Swept {
		t.Highlighted = true
	}
}

func (t *Tile) RemoveHighlight() {
	t.Highlighted = false
}
