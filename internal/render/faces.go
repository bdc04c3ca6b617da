package render

import (
	"fmt"
	"strconv"

	"minesweeper/pkg/minesweeper"
)

// TileFace is what a tile looks like on screen.
type TileFace uint8

const (
	FaceUnknown TileFace = iota
	FaceRevealed
	FaceFlag
	FaceQuestion
	// FaceInvalid covers revealed tiles whose count is out of range.
	FaceInvalid
	FaceMine
	FaceExplosion
	FaceFalseFlag
	FaceOne
	FaceTwo
	FaceThree
	FaceFour
	FaceFive
	FaceSix
	FaceSeven
	FaceEight

	faceCount
)

// FaceFor maps a tile to its face. over is true once the round has ended,
// which exposes mines and wrong flags and hides stale highlights.
func FaceFor(t minesweeper.Tile, over bool) TileFace {
	mine := t.IsMine()
	switch {
	case mine && t.Swept:
		return FaceExplosion
	case over && mine && t.Modifier == minesweeper.Flagged:
		return FaceFlag
	case over && !mine && t.Modifier == minesweeper.Flagged:
		return FaceFalseFlag
	case over && mine:
		return FaceMine
	case t.Swept:
		if t.Adjacent > 8 {
			return FaceInvalid
		}
		if t.Adjacent == 0 {
			return FaceRevealed
		}
		return FaceOne + TileFace(t.Adjacent-1)
	case t.Modifier == minesweeper.Flagged:
		return FaceFlag
	case t.Modifier == minesweeper.Unsure:
		return FaceQuestion
	case t.Highlighted && !over:
		return FaceRevealed
	default:
		return FaceUnknown
	}
}

// Number returns the adjacency count shown on the face, or 0.
func (f TileFace) Number() int {
	if f >= FaceOne && f <= FaceEight {
		return int(f-FaceOne) + 1
	}
	return 0
}

// Glyph is the label drawn over the face background.
func (f TileFace) Glyph() string {
	switch f {
	case FaceFlag:
		return "F"
	case FaceQuestion, FaceInvalid:
		return "?"
	case FaceMine, FaceExplosion:
		return "*"
	case FaceFalseFlag:
		return "X"
	}
	if n := f.Number(); n > 0 {
		return strconv.Itoa(n)
	}
	return ""
}

// FacesFor maps every tile of a snapshot.
func FacesFor(s *minesweeper.Snapshot, over bool, dst []TileFace) []TileFace {
	if cap(dst) < len(s.Tiles) {
		dst = make([]TileFace, len(s.Tiles))
	}
	dst = dst[:len(s.Tiles)]
	for i, t := range s.Tiles {
		dst[i] = FaceFor(t, over)
	}
	return dst
}

// Smiley is the state of the reset button.
type Smiley uint8

const (
	SmileyChillin Smiley = iota
	SmileyPressed
	SmileySuspense
	SmileyVictory
	SmileyDead
)

var smileyLabels = [...]string{":)", "(:)", ":o", "B)", "X("}

func (s Smiley) String() string {
	if int(s) >= len(smileyLabels) {
		return "?"
	}
	return smileyLabels[s]
}

// SmileyFor picks the face for the game state. pressingBoard is true while a
// mouse button is held over the minefield; pressingReset while the button
// itself is held.
func SmileyFor(state minesweeper.GameState, pressingBoard, pressingReset bool) Smiley {
	switch {
	case pressingReset:
		return SmileyPressed
	case state == minesweeper.GameOver:
		return SmileyDead
	case state == minesweeper.Victory:
		return SmileyVictory
	case pressingBoard:
		return SmileySuspense
	default:
		return SmileyChillin
	}
}

// FlagCounter formats remaining flags as a sign slot and at least two digits.
func FlagCounter(remaining int) string {
	if remaining < 0 {
		return fmt.Sprintf("-%02d", -remaining)
	}
	return fmt.Sprintf("0%02d", remaining)
}

// TimerCounter formats whole elapsed seconds as three digits, capped at 999.
func TimerCounter(seconds int) string {
	switch {
	case seconds < 0:
		seconds = 0
	case seconds > 999:
		seconds = 999
	}
	return fmt.Sprintf("%03d", seconds)
}
