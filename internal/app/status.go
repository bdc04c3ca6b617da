package app

import (
	"github.com/sirupsen/logrus"

	"minesweeper/pkg/minesweeper"
)

// Status folds drained game events into what the screen shows between
// frames.
type Status struct {
	log logrus.FieldLogger

	banner   string
	revealed int
	last     *minesweeper.Snapshot
	wins     int
	losses   int
}

// NewStatus returns a tracker that logs finished rounds to log.
func NewStatus(log logrus.FieldLogger) *Status {
	return &Status{log: log}
}

// Banner is the end-of-round message, empty while a round is open.
func (s *Status) Banner() string { return s.banner }

// Revealed counts tiles revealed this round.
func (s *Status) Revealed() int { return s.revealed }

// LastBoard is the board at the end of the most recent round.
func (s *Status) LastBoard() *minesweeper.Snapshot { return s.last }

// Record returns wins and losses since startup.
func (s *Status) Record() (wins, losses int) { return s.wins, s.losses }

// Observe consumes one tick of events.
func (s *Status) Observe(events []minesweeper.Event) {
	for _, e := range events {
		switch e.Kind {
		case minesweeper.EventReset:
			s.banner = ""
			s.revealed = 0
		case minesweeper.EventRevealTile:
			if !e.Tile.IsMine() {
				s.revealed++
			}
		case minesweeper.EventWin:
			s.banner = "You win!"
			s.wins++
		case minesweeper.EventLose:
			s.banner = "Boom! Press R to retry"
			s.losses++
		case minesweeper.EventGameEnd:
			s.last = e.Board
			s.log.WithFields(logrus.Fields{
				"round":    e.Round.String(),
				"outcome":  s.banner,
				"revealed": s.revealed,
				"wins":     s.wins,
				"losses":   s.losses,
			}).Info("round finished")
		}
	}
}
