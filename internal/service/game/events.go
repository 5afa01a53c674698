package game

import "github.com/iamasit07/4-in-a-row/console/internal/domain"

type EventType string

const (
	EventGameStart EventType = "game_start"
	EventMoveMade  EventType = "move_made"
	EventGameOver  EventType = "game_over"
)

const (
	ReasonConnectFour = "connect_four"
	ReasonDraw        = "draw"
)

// Event is what a Presenter receives after every state change. Board is a
// copy taken when the event was built; Status is the game status at that
// point.
type Event struct {
	Type        EventType
	GameID      string
	Config      domain.Config
	Board       *domain.Board
	Status      domain.GameStatus
	Player      domain.Side
	PlayerName  string
	Column      int
	Row         int
	NextTurn    domain.Side
	Winner      domain.Side
	WinnerName  string
	Reason      string
	WinningLine *domain.Line
	Score       Score
}

// Presenter shows game events to the players.
type Presenter interface {
	Notify(event Event) error
}

// Score is the running tally of a match.
type Score struct {
	PlayerA int
	PlayerB int
	Draws   int
}

func (s Score) Games() int {
	return s.PlayerA + s.PlayerB + s.Draws
}

func (s Score) Wins(side domain.Side) int {
	switch side {
	case domain.PlayerA:
		return s.PlayerA
	case domain.PlayerB:
		return s.PlayerB
	}
	return 0
}
