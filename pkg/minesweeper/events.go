package minesweeper

import (
	"fmt"

	"github.com/google/uuid"
)

// EventKind enumerates the domain events reported to observers.
type EventKind uint8

const (
	EventReset EventKind = iota
	EventInitDone
	EventSweepBegin
	EventRevealTile
	EventFlagTile
	EventQuestionTile
	EventSweepDone
	EventLose
	EventWin
	EventGameEnd
)

var eventNames = [...]string{
	EventReset:        "reset",
	EventInitDone:     "init_done",
	EventSweepBegin:   "sweep_begin",
	EventRevealTile:   "reveal_tile",
	EventFlagTile:     "flag_tile",
	EventQuestionTile: "question_tile",
	EventSweepDone:    "sweep_done",
	EventLose:         "lose",
	EventWin:          "win",
	EventGameEnd:      "game_end",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// Event is a single state transition. X, Y and Tile are set for tile events
// (RevealTile, FlagTile, QuestionTile, Lose); Board is set for GameEnd.
type Event struct {
	Kind  EventKind
	Round uuid.UUID
	X, Y  int
	Tile  Tile
	Board *Snapshot
}

func tileEvent(kind EventKind, x, y int, t Tile) Event {
	return Event{Kind: kind, X: x, Y: y, Tile: t}
}

// Queue is an append-only outbox of events. Events drain in FIFO order,
// the order they were appended. A nil *Queue discards pushes.
type Queue struct {
	round  uuid.UUID
	events []Event
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// SetRound stamps subsequent events with the given round ID.
func (q *Queue) SetRound(id uuid.UUID) {
	q.round = id
}

// Push appends an event, stamping it with the current round.
func (q *Queue) Push(e Event) {
	if q == nil {
		return
	}
	e.Round = q.round
	if e.Board != nil {
		e.Board.Round = q.round
	}
	q.events = append(q.events, e)
}

// Next removes and returns the oldest event.
func (q *Queue) Next() (Event, bool) {
	if q == nil || len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = q.events[:0:0]
	}
	return e, true
}

// Drain removes and returns every pending event, oldest first.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.events)
}

// Clear drops all pending events.
func (q *Queue) Clear() {
	if q == nil {
		return
	}
	q.events = q.events[:0]
}
