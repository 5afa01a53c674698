package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
)

// GameSession drives a single game from the first move to game over.
type GameSession struct {
	GameID     string
	Game       *domain.Game
	Moves      []domain.Move
	Reason     string
	CreatedAt  time.Time
	FinishedAt time.Time
	presenter  Presenter
	match      *Match
	log        *logrus.Entry
}

func NewGameSession(cfg domain.Config, presenter Presenter, logger logrus.FieldLogger, match *Match) (*GameSession, error) {
	newGame, err := domain.NewGame(cfg)
	if err != nil {
		return nil, err
	}

	gameID := uid.GenerateGameID()
	gs := &GameSession{
		GameID:    gameID,
		Game:      newGame,
		CreatedAt: time.Now(),
		presenter: presenter,
		match:     match,
		log:       logger.WithFields(logrus.Fields{"component": "session", "game_id": gameID}),
	}

	gs.log.WithFields(logrus.Fields{
		"size":     cfg.Size,
		"player_a": cfg.PlayerA,
		"player_b": cfg.PlayerB,
	}).Info("game created")

	if err := gs.notify(Event{
		Type:     EventGameStart,
		NextTurn: newGame.CurrentPlayer,
	}); err != nil {
		return nil, err
	}
	return gs, nil
}

// CurrentPlayer is the side expected to move next.
func (gs *GameSession) CurrentPlayer() domain.Side {
	return gs.Game.CurrentPlayer
}

func (gs *GameSession) GetUsername(side domain.Side) string {
	return gs.Game.Config.Name(side)
}

func (gs *GameSession) IsFinished() bool {
	return gs.Game.IsFinished()
}

// Duration is the time from creation to game over, or until now while the
// game is running.
func (gs *GameSession) Duration() time.Duration {
	if gs.FinishedAt.IsZero() {
		return time.Since(gs.CreatedAt)
	}
	return gs.FinishedAt.Sub(gs.CreatedAt)
}

// HandleMove plays column (0-based) for the side whose turn it is. Engine
// errors are returned as is and the session does not change.
func (gs *GameSession) HandleMove(column int) (domain.Move, error) {
	side := gs.Game.CurrentPlayer

	row, err := gs.Game.MakeMove(side, column)
	if err != nil {
		gs.log.WithError(err).WithFields(logrus.Fields{
			"player": side.String(),
			"column": column,
		}).Debug("move rejected")
		return domain.Move{}, err
	}

	move := domain.Move{Column: column, Row: row, Side: side}
	gs.Moves = append(gs.Moves, move)

	gs.log.WithFields(logrus.Fields{
		"player": side.String(),
		"column": column,
		"row":    row,
		"move":   gs.Game.MoveCount,
	}).Debug("move made")

	notifyErr := gs.notify(Event{
		Type:       EventMoveMade,
		Player:     side,
		PlayerName: gs.GetUsername(side),
		Column:     column,
		Row:        row,
		NextTurn:   gs.Game.CurrentPlayer,
	})

	// the result is recorded even when the presenter failed
	if gs.Game.IsFinished() {
		return move, errors.Join(notifyErr, gs.finish())
	}
	return move, notifyErr
}

func (gs *GameSession) finish() error {
	gs.FinishedAt = time.Now()

	gameOverMsg := Event{Type: EventGameOver}
	switch gs.Game.Status {
	case domain.StatusWon:
		gs.Reason = ReasonConnectFour
		line := gs.Game.WinningLine
		gameOverMsg.Winner = gs.Game.Winner
		gameOverMsg.WinnerName = gs.GetUsername(gs.Game.Winner)
		gameOverMsg.WinningLine = &line
	case domain.StatusDraw:
		gs.Reason = ReasonDraw
		gameOverMsg.WinnerName = "draw"
	default:
		return fmt.Errorf("game %s finished with status %q", gs.GameID, gs.Game.Status)
	}
	gameOverMsg.Reason = gs.Reason

	if gs.match != nil {
		gs.match.recordResult(gs)
		gameOverMsg.Score = gs.match.Score
	}

	gs.log.WithFields(logrus.Fields{
		"winner":   gameOverMsg.WinnerName,
		"reason":   gs.Reason,
		"moves":    gs.Game.MoveCount,
		"duration": gs.Duration().Round(time.Millisecond).String(),
	}).Info("game over")

	return gs.notify(gameOverMsg)
}

func (gs *GameSession) notify(event Event) error {
	if gs.presenter == nil {
		return nil
	}
	event.GameID = gs.GameID
	event.Config = gs.Game.Config
	event.Board = gs.Game.Board.Copy()
	event.Status = gs.Game.Status
	if err := gs.presenter.Notify(event); err != nil {
		return fmt.Errorf("notify %s: %w", event.Type, err)
	}
	return nil
}
