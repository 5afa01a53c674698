package game

import (
	"github.com/sirupsen/logrus"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// Match is a series of games between the same two players. Each rematch
// gets a fresh board; the score carries over.
type Match struct {
	Config    domain.Config
	Current   *GameSession
	Score     Score
	presenter Presenter
	logger    logrus.FieldLogger
}

func NewMatch(cfg domain.Config, presenter Presenter, logger logrus.FieldLogger) (*Match, error) {
	cfg, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &Match{
		Config:    cfg,
		presenter: presenter,
		logger:    logger,
	}, nil
}

// Start begins a new game. A running game is abandoned without a result.
func (m *Match) Start() (*GameSession, error) {
	if m.Current != nil && !m.Current.IsFinished() {
		m.logger.WithFields(logrus.Fields{
			"component": "match",
			"game_id":   m.Current.GameID,
		}).Warn("abandoning unfinished game")
	}

	session, err := NewGameSession(m.Config, m.presenter, m.logger, m)
	if err != nil {
		return nil, err
	}
	m.Current = session
	return session, nil
}

// recordResult is called by the session once, when it finishes.
func (m *Match) recordResult(gs *GameSession) {
	switch {
	case gs.Game.Status == domain.StatusDraw:
		m.Score.Draws++
	case gs.Game.Winner == domain.PlayerA:
		m.Score.PlayerA++
	case gs.Game.Winner == domain.PlayerB:
		m.Score.PlayerB++
	}
}
