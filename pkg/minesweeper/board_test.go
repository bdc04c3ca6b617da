package minesweeper

import (
	"errors"
	"testing"

	"minesweeper/pkg/core"
)

func TestNewBoardValidation(t *testing.T) {
	cases := []struct {
		name        string
		w, h, mines int
		err         error
	}{
		{"Beginner", 9, 9, 10, nil},
		{"MaxMines", 10, 10, 91, nil},
		{"OneTooMany", 10, 10, 92, ErrTooManyMines},
		{"ExactSafeZone", 3, 3, 0, nil},
		{"NoRoomForSafeZone", 3, 3, 1, ErrTooManyMines},
		{"TinyMineFree", 2, 1, 0, nil},
		{"ZeroWidth", 0, 5, 0, ErrZeroDimension},
		{"ZeroHeight", 5, 0, 0, ErrZeroDimension},
		{"NegativeWidth", -1, 5, 0, ErrZeroDimension},
		{"NegativeMines", 4, 4, -1, ErrNegativeMines},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBoard(tc.w, tc.h, tc.mines, nil)
			if !errors.Is(err, tc.err) {
				t.Fatalf("NewBoard(%d,%d,%d) error = %v; want %v", tc.w, tc.h, tc.mines, err, tc.err)
			}
			if tc.err == nil {
				if b.NonMineTiles() != tc.w*tc.h-tc.mines {
					t.Fatalf("non-mine tiles = %d; want %d", b.NonMineTiles(), tc.w*tc.h-tc.mines)
				}
				if b.Generated() {
					t.Fatal("new board must not be generated")
				}
			}
		})
	}
}

func TestNewBoardAcceptsEveryMineCountUpToBound(t *testing.T) {
	for w := 3; w <= 6; w++ {
		for h := 3; h <= 6; h++ {
			for m := 0; m <= w*h-9; m++ {
				if _, err := NewBoard(w, h, m, nil); err != nil {
					t.Fatalf("NewBoard(%d,%d,%d) unexpected error %v", w, h, m, err)
				}
			}
			if _, err := NewBoard(w, h, w*h-8, nil); !errors.Is(err, ErrTooManyMines) {
				t.Fatalf("NewBoard(%d,%d,%d) error = %v; want ErrTooManyMines", w, h, w*h-8, err)
			}
		}
	}
}

func TestFirstSweepIsSafe(t *testing.T) {
	clicks := [][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}, {4, 4}, {0, 4}, {4, 8}}
	for seed := int64(1); seed <= 20; seed++ {
		for _, c := range clicks {
			b, err := NewBoard(9, 9, 72, core.NewRNG(seed))
			if err != nil {
				t.Fatalf("NewBoard error: %v", err)
			}
			b.Sweep(c[0], c[1], nil)

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					tile, ok := b.Tile(c[0]+dx, c[1]+dy)
					if ok && tile.State == Mine {
						t.Fatalf("seed %d click %v: mine inside safe zone at (%d,%d)", seed, c, c[0]+dx, c[1]+dy)
					}
				}
			}

			mines := 0
			for _, tile := range b.tiles.Cells() {
				if tile.State == Mine {
					mines++
				}
			}
			if mines != 72 {
				t.Fatalf("seed %d click %v: placed %d mines; want 72", seed, c, mines)
			}
		}
	}
}

func TestSafeZoneOverridesRandomSource(t *testing.T) {
	// The source proposes the clicked cell first; placement must skip it.
	b, err := NewBoard(4, 4, 1, placeAt([2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}))
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	b.Sweep(1, 1, nil)
	if tile, _ := b.Tile(1, 1); tile.State == Mine {
		t.Fatal("first click became a mine")
	}
	if tile, _ := b.Tile(3, 3); tile.State != Mine {
		t.Fatal("expected the mine at the first proposal outside the safe zone, (3,3)")
	}

	if _, err := NewBoard(3, 3, 1, placeAt([2]int{1, 1})); !errors.Is(err, ErrTooManyMines) {
		t.Fatalf("3x3 board with a mine error = %v; want ErrTooManyMines", err)
	}
}

func TestAdjacencyMatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		b, err := NewBoard(16, 16, 40, core.NewRNG(seed))
		if err != nil {
			t.Fatalf("NewBoard error: %v", err)
		}
		b.Sweep(7, 7, nil)
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				tile, _ := b.Tile(x, y)
				if tile.State == Mine {
					continue
				}
				if want := bruteAdjacent(b, x, y); tile.Adjacent != want {
					t.Fatalf("seed %d tile (%d,%d) adjacent=%d; want %d", seed, x, y, tile.Adjacent, want)
				}
			}
		}
	}
}

func TestSweepCascadeStopsAtNumbers(t *testing.T) {
	b := wallBoard()
	q := NewQueue()

	if _, done := b.Sweep(0, 1, q); done {
		t.Fatal("sweeping the left half must not end the round")
	}

	// Columns 0-1 are empty, column 2 borders the wall.
	if b.RevealedTiles() != 9 {
		t.Fatalf("revealed tiles = %d; want 9", b.RevealedTiles())
	}
	events := q.Drain()
	if got := countKind(events, EventRevealTile); got != 9 {
		t.Fatalf("RevealTile events = %d; want 9", got)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			tile, _ := b.Tile(x, y)
			if want := x < 3; tile.Swept != want {
				t.Fatalf("tile (%d,%d) swept=%v; want %v", x, y, tile.Swept, want)
			}
		}
	}
	if events[0].Kind != EventRevealTile || events[0].X != 0 || events[0].Y != 1 {
		t.Fatalf("first event = %v at (%d,%d); want reveal of the clicked tile", events[0].Kind, events[0].X, events[0].Y)
	}
	if events[1].Kind != EventSweepBegin {
		t.Fatalf("second event = %v; want sweep_begin", events[1].Kind)
	}
}

func TestSweepSkipsMarkedTiles(t *testing.T) {
	b := wallBoard()
	b.Sweep(0, 1, nil)

	b.Modify(5, 1, nil)
	b.Sweep(6, 0, nil)
	if tile, _ := b.Tile(5, 1); tile.Swept {
		t.Fatal("flood fill revealed a flagged tile")
	}
	if b.RevealedTiles() != 17 {
		t.Fatalf("revealed tiles = %d; want 17", b.RevealedTiles())
	}

	q := NewQueue()
	if _, done := b.Sweep(5, 1, q); done {
		t.Fatal("sweeping a flagged tile must be ignored")
	}
	if q.Len() != 0 {
		t.Fatalf("expected no events for a flagged tile, got %v", kinds(q.Drain()))
	}

	b.Modify(5, 1, nil)
	state, done := b.Sweep(5, 1, q)
	if !done || state != Victory {
		t.Fatalf("Sweep = %v,%v; want victory", state, done)
	}
	events := q.Drain()
	if n := len(events); events[n-2].Kind != EventWin || events[n-1].Kind != EventGameEnd {
		t.Fatalf("trailing events = %v; want win, game_end", kinds(events[n-2:]))
	}
	if events[len(events)-1].Board.RevealedTiles != 18 {
		t.Fatalf("snapshot revealed = %d; want 18", events[len(events)-1].Board.RevealedTiles)
	}
}

func TestSweepMineLoses(t *testing.T) {
	b := wallBoard()
	b.Sweep(0, 1, nil)
	before := b.RevealedTiles()

	q := NewQueue()
	state, done := b.Sweep(3, 1, q)
	if !done || state != GameOver {
		t.Fatalf("Sweep = %v,%v; want game over", state, done)
	}
	got := kinds(q.Drain())
	want := []EventKind{EventRevealTile, EventLose, EventGameEnd}
	if len(got) != len(want) {
		t.Fatalf("events = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v; want %v", got, want)
		}
	}
	if b.RevealedTiles() != before {
		t.Fatalf("revealed tiles changed from %d to %d on a mine", before, b.RevealedTiles())
	}
	if b.RevealedTiles() > b.NonMineTiles() {
		t.Fatal("revealed tiles exceed non-mine tiles")
	}
}

func TestSweepOutOfRangeIsIgnored(t *testing.T) {
	b := wallBoard()
	q := NewQueue()
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {7, 0}, {0, 3}} {
		if _, done := b.Sweep(c[0], c[1], q); done {
			t.Fatalf("Sweep(%d,%d) reported a terminal state", c[0], c[1])
		}
		b.Modify(c[0], c[1], q)
	}
	if q.Len() != 0 {
		t.Fatalf("expected no events, got %v", kinds(q.Drain()))
	}
	if b.Generated() {
		t.Fatal("out-of-range sweep must not generate the board")
	}
}

func TestSweepTwoByOneMineFreeWins(t *testing.T) {
	for x := 0; x < 2; x++ {
		b, err := NewBoard(2, 1, 0, nil)
		if err != nil {
			t.Fatalf("NewBoard error: %v", err)
		}
		q := NewQueue()
		state, done := b.Sweep(x, 0, q)
		if !done || state != Victory {
			t.Fatalf("Sweep(%d,0) = %v,%v; want victory", x, state, done)
		}
		if b.RevealedTiles() != 2 || b.NonMineTiles() != 2 {
			t.Fatalf("revealed=%d nonMine=%d; want 2,2", b.RevealedTiles(), b.NonMineTiles())
		}
		got := kinds(q.Drain())
		want := []EventKind{EventRevealTile, EventSweepBegin, EventRevealTile, EventWin, EventGameEnd}
		if len(got) != len(want) {
			t.Fatalf("events = %v; want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("events = %v; want %v", got, want)
			}
		}
	}
}

func TestModifyFlagMode(t *testing.T) {
	b, _ := NewBoard(9, 9, 10, nil)
	q := NewQueue()

	b.Modify(2, 2, q)
	if tile, _ := b.Tile(2, 2); tile.Modifier != Flagged {
		t.Fatalf("modifier = %v; want flagged", tile.Modifier)
	}
	if b.RemainingFlags() != 9 {
		t.Fatalf("remaining flags = %d; want 9", b.RemainingFlags())
	}

	b.Modify(2, 2, q)
	if tile, _ := b.Tile(2, 2); tile.Modifier != NoModifier {
		t.Fatalf("modifier = %v; want none", tile.Modifier)
	}
	if b.Flags() != 0 || b.RemainingFlags() != 10 {
		t.Fatalf("flags=%d remaining=%d; want 0,10", b.Flags(), b.RemainingFlags())
	}

	events := q.Drain()
	if len(events) != 2 || events[0].Kind != EventFlagTile || events[1].Kind != EventFlagTile {
		t.Fatalf("events = %v; want two flag_tile", kinds(events))
	}
	if events[0].Tile.Modifier != Flagged || events[1].Tile.Modifier != NoModifier {
		t.Fatal("flag events must carry the updated tile")
	}
}

func TestModifyQuestionMode(t *testing.T) {
	b, _ := NewBoard(9, 9, 10, nil)
	b.SetModifyMode(ModifyQuestion)
	q := NewQueue()

	want := []Modifier{Flagged, Unsure, NoModifier, Flagged}
	wantFlags := []int{1, 0, 0, 1}
	for i := range want {
		b.Modify(4, 4, q)
		tile, _ := b.Tile(4, 4)
		if tile.Modifier != want[i] {
			t.Fatalf("step %d modifier = %v; want %v", i, tile.Modifier, want[i])
		}
		if b.Flags() != wantFlags[i] {
			t.Fatalf("step %d flags = %d; want %d", i, b.Flags(), wantFlags[i])
		}
	}
	got := kinds(q.Drain())
	wantEvents := []EventKind{EventFlagTile, EventQuestionTile, EventFlagTile}
	if len(got) != len(wantEvents) {
		t.Fatalf("events = %v; want %v", got, wantEvents)
	}
	for i := range wantEvents {
		if got[i] != wantEvents[i] {
			t.Fatalf("events = %v; want %v", got, wantEvents)
		}
	}
}

func TestRemainingFlagsGoesNegative(t *testing.T) {
	b, _ := NewBoard(9, 9, 10, nil)
	for i := 0; i < 12; i++ {
		b.Modify(i%9, i/9, nil)
	}
	if b.RemainingFlags() != -2 {
		t.Fatalf("remaining flags = %d; want -2", b.RemainingFlags())
	}
	for i := 0; i < 12; i++ {
		b.Modify(i%9, i/9, nil)
	}
	if b.RemainingFlags() != 10 {
		t.Fatalf("remaining flags = %d; want 10", b.RemainingFlags())
	}
}

func TestModifySweptTileIgnored(t *testing.T) {
	b := wallBoard()
	b.Sweep(0, 1, nil)
	q := NewQueue()
	b.Modify(0, 1, q)
	if tile, _ := b.Tile(0, 1); tile.Modifier != NoModifier {
		t.Fatal("swept tile accepted a marker")
	}
	if q.Len() != 0 || b.Flags() != 0 {
		t.Fatal("modifying a swept tile must not emit events or count flags")
	}
}

func TestResetAndResize(t *testing.T) {
	b := wallBoard()
	b.Sweep(0, 1, nil)
	b.Modify(6, 2, nil)

	b.Reset()
	if b.Generated() || b.RevealedTiles() != 0 || b.Flags() != 0 {
		t.Fatal("reset must clear counters and generation")
	}
	for _, tile := range b.tiles.Cells() {
		if tile != (Tile{}) {
			t.Fatalf("reset left tile state %+v", tile)
		}
	}
	if b.Width() != 7 || b.Height() != 3 || b.Mines() != 3 {
		t.Fatal("reset must keep dimensions")
	}

	if err := b.Resize(4, 4, 8); !errors.Is(err, ErrTooManyMines) {
		t.Fatalf("Resize error = %v; want ErrTooManyMines", err)
	}
	if b.Width() != 7 {
		t.Fatal("failed resize must keep the old dimensions")
	}
	if err := b.Resize(5, 4, 11); err != nil {
		t.Fatalf("Resize error: %v", err)
	}
	b.Reset()
	if b.NonMineTiles() != 9 {
		t.Fatalf("non-mine tiles = %d; want 9", b.NonMineTiles())
	}
	if !b.InBounds(4, 3) || b.InBounds(5, 0) {
		t.Fatal("resized board reports wrong bounds")
	}
}

func TestHighlightSkipsSweptTiles(t *testing.T) {
	b := wallBoard()
	b.Highlight(5, 1)
	if tile, _ := b.Tile(5, 1); !tile.Highlighted {
		t.Fatal("expected highlight on hidden tile")
	}
	b.RemoveHighlight(5, 1)
	if tile, _ := b.Tile(5, 1); tile.Highlighted {
		t.Fatal("expected highlight removed")
	}
	b.Sweep(0, 1, nil)
	b.Highlight(0, 1)
	if tile, _ := b.Tile(0, 1); tile.Highlighted {
		t.Fatal("swept tile must not highlight")
	}
	b.Highlight(-3, 9)
}
