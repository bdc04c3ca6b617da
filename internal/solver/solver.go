// Package solver plays minesweeper using only what a player can see: the
// numbers on revealed tiles and the flags already placed.
package solver

import (
	"minesweeper/pkg/core"
	"minesweeper/pkg/minesweeper"
)

// MoveType distinguishes reveals from flag placements.
type MoveType int

const (
	MoveOpen MoveType = iota
	MoveFlag
)

func (t MoveType) String() string {
	if t == MoveFlag {
		return "flag"
	}
	return "open"
}

// Move is a single solver decision.
type Move struct {
	X, Y int
	Type MoveType
	// Guess is set when no deduction applied and the tile was picked at random.
	Guess bool
}

// Solver picks moves from a board snapshot.
type Solver struct {
	rng minesweeper.Rand
}

// New returns a solver that breaks ties with rng. A nil rng is seeded from
// the clock.
func New(rng minesweeper.Rand) *Solver {
	if rng == nil {
		rng = core.NewTimeSeededRNG()
	}
	return &Solver{rng: rng}
}

type neighborInfo struct {
	hidden int
	flags  int
	open   [][2]int
}

func neighbors(s *minesweeper.Snapshot, x, y int) neighborInfo {
	var info neighborInfo
	for _, o := range core.Moore {
		nx, ny := x+o.DX, y+o.DY
		t, ok := s.Tile(nx, ny)
		if !ok || t.Swept {
			continue
		}
		info.hidden++
		if t.Modifier != minesweeper.NoModifier {
			if t.Modifier == minesweeper.Flagged {
				info.flags++
			}
			continue
		}
		info.open = append(info.open, [2]int{nx, ny})
	}
	return info
}

// Next returns the next move for the snapshot, or false when no unmarked
// hidden tile is left. The first move of a round targets the center.
func (s *Solver) Next(snap *minesweeper.Snapshot) (Move, bool) {
	if snap.RevealedTiles == 0 {
		return Move{X: snap.Width / 2, Y: snap.Height / 2, Type: MoveOpen}, true
	}
	if m, ok := findSafe(snap); ok {
		return m, true
	}
	if m, ok := findFlag(snap); ok {
		return m, true
	}
	return s.guess(snap)
}

func numbered(snap *minesweeper.Snapshot, fn func(x, y int, t minesweeper.Tile) bool) bool {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			t, _ := snap.Tile(x, y)
			if !t.Swept || t.IsMine() || t.Adjacent == 0 {
				continue
			}
			if fn(x, y, t) {
				return true
			}
		}
	}
	return false
}

// findSafe opens a neighbor of a number whose mines are all flagged.
func findSafe(snap *minesweeper.Snapshot) (Move, bool) {
	var m Move
	found := numbered(snap, func(x, y int, t minesweeper.Tile) bool {
		info := neighbors(snap, x, y)
		if info.flags != int(t.Adjacent) || len(info.open) == 0 {
			return false
		}
		p := info.open[0]
		m = Move{X: p[0], Y: p[1], Type: MoveOpen}
		return true
	})
	return m, found
}

// findFlag flags a neighbor of a number whose hidden tiles must all be mines.
func findFlag(snap *minesweeper.Snapshot) (Move, bool) {
	var m Move
	found := numbered(snap, func(x, y int, t minesweeper.Tile) bool {
		info := neighbors(snap, x, y)
		if info.hidden != int(t.Adjacent) || len(info.open) == 0 {
			return false
		}
		p := info.open[0]
		m = Move{X: p[0], Y: p[1], Type: MoveFlag}
		return true
	})
	return m, found
}

func (s *Solver) guess(snap *minesweeper.Snapshot) (Move, bool) {
	var candidates [][2]int
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			t, _ := snap.Tile(x, y)
			if !t.Swept && t.Modifier == minesweeper.NoModifier {
				candidates = append(candidates, [2]int{x, y})
			}
		}
	}
	if len(candidates) == 0 {
		return Move{}, false
	}
	p := candidates[s.rng.IntN(len(candidates))]
	return Move{X: p[0], Y: p[1], Type: MoveOpen, Guess: true}, true
}

// Apply performs the move on the game.
func Apply(g *minesweeper.Game, m Move) {
	switch m.Type {
	case MoveFlag:
		if t, ok := g.Tile(m.X, m.Y); ok && t.Modifier == minesweeper.NoModifier {
			g.Modify(m.X, m.Y)
		}
	default:
		g.Reveal(m.X, m.Y)
	}
}

// Step picks and applies one move. It reports false when the round is
// already over or no move is available.
func (s *Solver) Step(g *minesweeper.Game) (Move, bool) {
	if g.State().Terminal() {
		return Move{}, false
	}
	m, ok := s.Next(g.Board().Snapshot())
	if !ok {
		return Move{}, false
	}
	Apply(g, m)
	return m, true
}

// Result summarizes a finished round.
type Result struct {
	State   minesweeper.GameState
	Moves   int
	Guesses int
	Flags   int
}

// Play drives the game until the round ends or maxMoves is reached. The
// game's events are drained after every move.
func (s *Solver) Play(g *minesweeper.Game, maxMoves int) Result {
	var res Result
	for res.Moves < maxMoves {
		m, ok := s.Step(g)
		if !ok {
			break
		}
		g.Events().Drain()
		res.Moves++
		if m.Guess {
			res.Guesses++
		}
		if m.Type == MoveFlag {
			res.Flags++
		}
	}
	res.State = g.State()
	return res
}
