// Package minesweeper implements the game engine: a board with lazily
// generated mines, the round state machine and the stream of events a
// presentation layer consumes.
package minesweeper
