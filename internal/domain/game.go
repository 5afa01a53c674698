package domain

import (
	"fmt"
	"strings"
)

// Config is the settled result of game setup.
type Config struct {
	Size    int
	PlayerA string
	PlayerB string
}

// Validate trims the player names and checks every field.
func (c Config) Validate() (Config, error) {
	if c.Size < MinSize || c.Size > MaxSize {
		return c, ErrInvalidSize
	}

	c.PlayerA = strings.TrimSpace(c.PlayerA)
	c.PlayerB = strings.TrimSpace(c.PlayerB)
	if c.PlayerA == "" || c.PlayerB == "" {
		return c, fmt.Errorf("%w: names must not be empty", ErrInvalidPlayerName)
	}
	if strings.EqualFold(c.PlayerA, c.PlayerB) {
		return c, fmt.Errorf("%w: %q is used by both players", ErrInvalidPlayerName, c.PlayerA)
	}
	return c, nil
}

// Name returns the configured name for side.
func (c Config) Name(side Side) string {
	switch side {
	case PlayerA:
		return c.PlayerA
	case PlayerB:
		return c.PlayerB
	}
	return ""
}

type Game struct {
	Config        Config
	Board         *Board
	CurrentPlayer Side
	Status        GameStatus
	Winner        Side
	WinningLine   Line
	MoveCount     int
}

func NewGame(cfg Config) (*Game, error) {
	cfg, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	board, err := NewBoard(cfg.Size)
	if err != nil {
		return nil, err
	}

	return &Game{
		Config:        cfg,
		Board:         board,
		CurrentPlayer: PlayerA,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
	}, nil
}

// MakeMove drops a disk for side and advances the game. A rejected move
// leaves the game exactly as it was.
func (g *Game) MakeMove(side Side, column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}

	if side != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	row, err := g.Board.Drop(column, side)
	if err != nil {
		return -1, err
	}

	g.MoveCount++

	// only the side that just moved can have completed a line
	if line, ok := FindWinningLine(g.Board, side); ok {
		g.Status = StatusWon
		g.Winner = side
		g.WinningLine = line
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = side.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
