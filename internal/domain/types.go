package domain

import "fmt"

// Side is the occupancy state of a cell. Empty is never a side to move.
type Side int8

const (
	Empty   Side = 0
	PlayerA Side = 1
	PlayerB Side = 2
)

const (
	MinSize = 6
	MaxSize = 12
	ToWin   = 4
)

// Valid reports whether s is one of the two playing sides.
func (s Side) Valid() bool {
	return s == PlayerA || s == PlayerB
}

// Opponent returns the other playing side. Empty maps to Empty.
func (s Side) Opponent() Side {
	switch s {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

func (s Side) String() string {
	switch s {
	case Empty:
		return "empty"
	case PlayerA:
		return "player_a"
	case PlayerB:
		return "player_b"
	}
	return fmt.Sprintf("side(%d)", int8(s))
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidSize       Error = "board size must be between 6 and 12"
	ErrOutOfBounds       Error = "column out of bounds"
	ErrColumnFull        Error = "column is full"
	ErrInvalidSide       Error = "invalid side"
	ErrGameOver          Error = "game is over"
	ErrNotYourTurn       Error = "not your turn"
	ErrInvalidPlayerName Error = "invalid player name"
)

// OutOfBoundsError carries the rejected column and the board size.
// It matches ErrOutOfBounds with errors.Is.
type OutOfBoundsError struct {
	Column int
	Size   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("column %d out of bounds (board size %d)", e.Column, e.Size)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Cell addresses a single board position.
type Cell struct {
	Row    int
	Column int
}

// Line is a run of ToWin cells held by one side.
type Line [ToWin]Cell

// Contains reports whether the line passes through (row, column).
func (l Line) Contains(row, column int) bool {
	for _, c := range l {
		if c.Row == row && c.Column == column {
			return true
		}
	}
	return false
}

// Move is one successful drop.
type Move struct {
	Column int
	Row    int
	Side   Side
}
