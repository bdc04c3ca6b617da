package minesweeper

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GameState is the phase of a round.
type GameState uint8

const (
	// Empty is a fresh round waiting for the first reveal.
	Empty GameState = iota
	Playing
	GameOver
	Victory
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	case Victory:
		return "victory"
	default:
		return "empty"
	}
}

// Terminal reports whether the state ends a round.
func (s GameState) Terminal() bool { return s == GameOver || s == Victory }

// Option customizes a Game.
type Option func(*options)

type options struct {
	rng    Rand
	clock  Clock
	logger logrus.FieldLogger
	mode   ModifyMode
}

// WithRand sets the random source used for mine placement.
func WithRand(r Rand) Option { return func(o *options) { o.rng = r } }

// WithClock sets the clock read by the round timer.
func WithClock(c Clock) Option { return func(o *options) { o.clock = c } }

// WithLogger sets the logger that receives debug-level transition logs.
func WithLogger(l logrus.FieldLogger) Option { return func(o *options) { o.logger = l } }

// WithModifyMode sets the initial marker cycling mode.
func WithModifyMode(m ModifyMode) Option { return func(o *options) { o.mode = m } }

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Game composes a Board, a Timer and an event Queue behind the round state
// machine Empty -> Playing -> GameOver | Victory. It is not safe for
// concurrent use; a single owner drives it and drains Events between calls.
type Game struct {
	board  *Board
	timer  *Timer
	events *Queue
	state  GameState
	round  uuid.UUID
	log    logrus.FieldLogger
}

// NewGame returns a game in the Empty state.
func NewGame(width, height, mines int, opts ...Option) (*Game, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	board, err := NewBoard(width, height, mines, o.rng)
	if err != nil {
		return nil, err
	}
	board.SetModifyMode(o.mode)
	if o.logger == nil {
		o.logger = discardLogger()
	}
	g := &Game{
		board:  board,
		timer:  NewTimer(o.clock),
		events: NewQueue(),
		log:    o.logger,
	}
	g.newRound()
	return g, nil
}

func (g *Game) newRound() {
	g.round = uuid.New()
	g.events.SetRound(g.round)
}

// State returns the round phase.
func (g *Game) State() GameState { return g.state }

// Round identifies the current round; it changes on every reset.
func (g *Game) Round() uuid.UUID { return g.round }

// Board exposes the board for queries. Mutate it only through the Game.
func (g *Game) Board() *Board { return g.board }

// Events returns the outbox. Drain it at least once per tick.
func (g *Game) Events() *Queue { return g.events }

// Tile returns a copy of the tile at (x, y).
func (g *Game) Tile(x, y int) (Tile, bool) { return g.board.Tile(x, y) }

// RemainingFlags returns mines minus placed flags.
func (g *Game) RemainingFlags() int { return g.board.RemainingFlags() }

// Elapsed returns the round duration, or false before the first reveal.
func (g *Game) Elapsed() (time.Duration, bool) { return g.timer.Elapsed() }

// ModifyMode returns the marker cycling mode.
func (g *Game) ModifyMode() ModifyMode { return g.board.ModifyMode() }

// SetModifyMode changes the marker cycling mode.
func (g *Game) SetModifyMode(m ModifyMode) { g.board.SetModifyMode(m) }

func (g *Game) entry() logrus.FieldLogger {
	return g.log.WithField("round", g.round.String())
}

// Reveal sweeps the tile at (x, y). The first reveal of a round starts the
// timer and emits InitDone ahead of the sweep's own events; every accepted
// call ends with SweepDone.
func (g *Game) Reveal(x, y int) {
	if !g.board.InBounds(x, y) {
		return
	}
	if g.state == Empty {
		g.timer.Start()
		g.state = Playing
		g.events.Push(Event{Kind: EventInitDone})
		g.entry().WithFields(logrus.Fields{"x": x, "y": y}).Debug("round started")
	}
	if g.state != Playing {
		return
	}
	if state, done := g.board.Sweep(x, y, g.events); done {
		g.timer.Stop()
		g.state = state
		elapsed, _ := g.timer.Elapsed()
		g.entry().WithFields(logrus.Fields{
			"x":       x,
			"y":       y,
			"state":   state.String(),
			"elapsed": elapsed,
		}).Debug("round ended")
	}
	g.events.Push(Event{Kind: EventSweepDone})
}

// Modify cycles the marker on the tile at (x, y). Only allowed while Playing.
func (g *Game) Modify(x, y int) {
	if g.state != Playing {
		return
	}
	g.board.Modify(x, y, g.events)
}

func (g *Game) highlightable() bool { return g.state == Empty || g.state == Playing }

// Highlight marks the tile at (x, y) as hovered unless the round is over.
func (g *Game) Highlight(x, y int) {
	if g.highlightable() {
		g.board.Highlight(x, y)
	}
}

// RemoveHighlight clears hover state. Like Highlight it is a no-op once the
// round is over; Reset clears whatever is left.
func (g *Game) RemoveHighlight(x, y int) {
	if g.highlightable() {
		g.board.RemoveHighlight(x, y)
	}
}

// Reset starts a new round with the same dimensions. Pending events are
// dropped and a single Reset event is queued.
func (g *Game) Reset() {
	g.board.Reset()
	g.timer.Clear()
	g.state = Empty
	g.events.Clear()
	g.newRound()
	g.events.Push(Event{Kind: EventReset})
	g.entry().Debug("round reset")
}

// ResizeAndReset changes the board parameters and resets. On a validation
// error the game is left untouched.
func (g *Game) ResizeAndReset(width, height, mines int) error {
	if err := g.board.Resize(width, height, mines); err != nil {
		return err
	}
	g.Reset()
	return nil
}
