package minesweeper

import (
	"github.com/google/uuid"

	"minesweeper/pkg/core"
)

// Rand is the random source used for mine placement.
type Rand interface {
	// IntN returns a uniformly distributed int in [0, n).
	IntN(n int) int
}

// ModifyMode selects how Modify cycles markers on a flagged tile.
type ModifyMode uint8

const (
	// ModifyFlag toggles between no marker and a flag.
	ModifyFlag ModifyMode = iota
	// ModifyQuestion cycles none, flag, question mark.
	ModifyQuestion
)

func (m ModifyMode) String() string {
	if m == ModifyQuestion {
		return "question"
	}
	return "flag"
}

// Board is the grid of tiles plus the counters needed to decide a round.
// Mines are placed lazily on the first sweep.
type Board struct {
	tiles *core.Grid[Tile]

	width, height int
	mines         int
	nonMineTiles  int
	revealedTiles int
	flags         int
	generated     bool

	mode ModifyMode
	rng  Rand
}

// NewBoard validates the parameters and returns an ungenerated board. A nil
// rng seeds a generator from the clock.
func NewBoard(width, height, mines int, rng Rand) (*Board, error) {
	if err := Validate(width, height, mines); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewTimeSeededRNG()
	}
	b := &Board{
		width:        width,
		height:       height,
		mines:        mines,
		nonMineTiles: width*height - mines,
		rng:          rng,
	}
	b.tiles = core.NewGrid[Tile](width, height)
	return b, nil
}

func (b *Board) Width() int         { return b.width }
func (b *Board) Height() int        { return b.height }
func (b *Board) Mines() int         { return b.mines }
func (b *Board) NonMineTiles() int  { return b.nonMineTiles }
func (b *Board) RevealedTiles() int { return b.revealedTiles }
func (b *Board) Flags() int         { return b.flags }
func (b *Board) Generated() bool    { return b.generated }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.width, H: b.height} }

// ModifyMode returns the current marker cycling mode.
func (b *Board) ModifyMode() ModifyMode { return b.mode }

// SetModifyMode changes the marker cycling mode. Existing markers are kept.
func (b *Board) SetModifyMode(m ModifyMode) { b.mode = m }

// RemainingFlags returns mines minus placed flags. It goes negative when the
// player places more flags than there are mines.
func (b *Board) RemainingFlags() int { return b.mines - b.flags }

// InBounds reports whether (x, y) addresses a tile.
func (b *Board) InBounds(x, y int) bool { return b.tiles.InBounds(x, y) }

// Tile returns a copy of the tile at (x, y).
func (b *Board) Tile(x, y int) (Tile, bool) { return b.tiles.At(x, y) }

// Reset clears every tile and counter and returns the board to the
// ungenerated state, keeping its dimensions and mine count.
func (b *Board) Reset() {
	b.tiles = core.NewGrid[Tile](b.width, b.height)
	b.revealedTiles = 0
	b.flags = 0
	b.generated = false
}

// Resize replaces the dimensions and mine count. The tiles are rebuilt by
// the next Reset.
func (b *Board) Resize(width, height, mines int) error {
	if err := Validate(width, height, mines); err != nil {
		return err
	}
	b.width = width
	b.height = height
	b.mines = mines
	b.nonMineTiles = width*height - mines
	b.generated = false
	return nil
}

// Highlight sets the hover flag of the tile at (x, y).
func (b *Board) Highlight(x, y int) {
	if t := b.tiles.Ptr(x, y); t != nil {
		t.Highlight()
	}
}

// RemoveHighlight clears the hover flag of the tile at (x, y).
func (b *Board) RemoveHighlight(x, y int) {
	if t := b.tiles.Ptr(x, y); t != nil {
		t.RemoveHighlight()
	}
}

// Modify cycles the marker on an unrevealed tile:
//
//	none                 -> flagged   (FlagTile)
//	flagged, ModifyFlag  -> none      (FlagTile)
//	flagged, ModifyQuestion -> unsure (QuestionTile)
//	unsure               -> none
func (b *Board) Modify(x, y int, q *Queue) {
	t := b.tiles.Ptr(x, y)
	if t == nil || t.Swept {
		return
	}
	switch t.Modifier {
	case NoModifier:
		t.Modifier = Flagged
		b.flags++
		q.Push(tileEvent(EventFlagTile, x, y, *t))
	case Flagged:
		b.flags--
		if b.mode == ModifyQuestion {
			t.Modifier = Unsure
			q.Push(tileEvent(EventQuestionTile, x, y, *t))
			return
		}
		t.Modifier = NoModifier
		q.Push(tileEvent(EventFlagTile, x, y, *t))
	case Unsure:
		t.Modifier = NoModifier
	}
}

// Snapshot is a detached copy of a board.
type Snapshot struct {
	Round         uuid.UUID
	Width, Height int
	Mines         int
	NonMineTiles  int
	RevealedTiles int
	Flags         int
	// Tiles are stored row-major: index y*Width + x.
	Tiles []Tile
}

// Tile returns the snapshot tile at (x, y).
func (s *Snapshot) Tile(x, y int) (Tile, bool) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return Tile{}, false
	}
	return s.Tiles[y*s.Width+x], true
}

// Snapshot copies the board state.
func (b *Board) Snapshot() *Snapshot {
	tiles := make([]Tile, len(b.tiles.Cells()))
	copy(tiles, b.tiles.Cells())
	return &Snapshot{
		Width:         b.width,
		Height:        b.height,
		Mines:         b.mines,
		NonMineTiles:  b.nonMineTiles,
		RevealedTiles: b.revealedTiles,
		Flags:         b.flags,
		Tiles:         tiles,
	}
}
