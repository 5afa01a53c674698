package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

// Handler runs games on a terminal: setup, the move loop and rematches.
type Handler struct {
	Config   *config.Config
	Prompter *Prompter
	Renderer *Renderer
	logger   logrus.FieldLogger
	log      *logrus.Entry
}

func NewHandler(cfg *config.Config, in io.Reader, out io.Writer, logger logrus.FieldLogger) *Handler {
	styles := NewStyles(bool(cfg.NoColor))
	return &Handler{
		Config:   cfg,
		Prompter: NewPrompter(in, out, styles, cfg.MaxInputAttempts),
		Renderer: NewRenderer(out, styles),
		logger:   logger,
		log:      logger.WithField("component", "console"),
	}
}

// Run plays games until the players stop, the input ends or ctx is done.
func (h *Handler) Run(ctx context.Context) error {
	setup, err := h.Setup(ctx)
	if err != nil {
		return err
	}

	match, err := game.NewMatch(setup, h.Renderer, h.logger)
	if err != nil {
		return err
	}

	for {
		session, err := match.Start()
		if err != nil {
			return err
		}

		if err := h.Play(ctx, session); err != nil {
			h.log.WithError(err).WithField("game_id", session.GameID).Info("game aborted")
			return err
		}

		again, err := h.askRematch(ctx)
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	h.Prompter.styles.Info.Fprintln(h.Prompter.out, "Final "+FormatScore(match.Config, match.Score))
	return nil
}

// Setup collects names and board size. Values already present in the
// configuration are not asked for.
func (h *Handler) Setup(ctx context.Context) (domain.Config, error) {
	var cfg domain.Config
	var err error

	cfg.PlayerA, err = h.askName(ctx, 1, h.Config.Player1Name, config.DefaultPlayer1, "")
	if err != nil {
		return cfg, err
	}
	cfg.PlayerB, err = h.askName(ctx, 2, h.Config.Player2Name, config.DefaultPlayer2, cfg.PlayerA)
	if err != nil {
		return cfg, err
	}

	cfg.Size = h.Config.BoardSize
	if cfg.Size == 0 {
		cfg.Size, err = h.askSize(ctx)
		if err != nil {
			return cfg, err
		}
	}

	cfg, err = cfg.Validate()
	if err != nil {
		return cfg, err
	}

	h.log.WithFields(logrus.Fields{
		"size":     cfg.Size,
		"player_a": cfg.PlayerA,
		"player_b": cfg.PlayerB,
	}).Info("setup complete")
	return cfg, nil
}

// Play asks for moves until the session is finished.
func (h *Handler) Play(ctx context.Context, session *game.GameSession) error {
	size := session.Game.Board.Size()

	for !session.IsFinished() {
		side := session.CurrentPlayer()
		question := fmt.Sprintf("%s (%s), choose a column (1-%d)",
			session.GetUsername(side), markers[side], size)

		err := h.Prompter.Ask(ctx, question, func(answer string) error {
			column, err := strconv.Atoi(answer)
			if err != nil {
				return invalidInput("Please enter a valid column number")
			}

			// the console counts columns from 1
			_, err = session.HandleMove(column - 1)
			switch {
			case errors.Is(err, domain.ErrOutOfBounds):
				return invalidInput("Please enter a column between 1 and %d", size)
			case errors.Is(err, domain.ErrColumnFull):
				return invalidInput("Column %d is full, open columns: %s", column, openColumns(session.Game.Board))
			}
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) askName(ctx context.Context, number int, preset, fallback, taken string) (string, error) {
	if name := strings.TrimSpace(preset); name != "" && !strings.EqualFold(name, taken) {
		return name, nil
	}

	var name string
	err := h.Prompter.Ask(ctx, fmt.Sprintf("Enter name of player %d", number), func(answer string) error {
		if answer == "" {
			answer = fallback
		}
		if taken != "" && strings.EqualFold(answer, taken) {
			return invalidInput("%q is already taken by player 1", answer)
		}
		name = answer
		return nil
	})
	return name, err
}

func (h *Handler) askSize(ctx context.Context) (int, error) {
	var size int
	question := fmt.Sprintf("How large do you want your board to be? (%d-%d, default %d)",
		domain.MinSize, domain.MaxSize, config.DefaultBoardSize)

	err := h.Prompter.Ask(ctx, question, func(answer string) error {
		if answer == "" {
			size = config.DefaultBoardSize
			return nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			return invalidInput("Please enter a valid number")
		}
		if _, err := domain.NewBoard(n); errors.Is(err, domain.ErrInvalidSize) {
			return invalidInput("Please enter a number between %d - %d", domain.MinSize, domain.MaxSize)
		}
		size = n
		return nil
	})
	return size, err
}

func (h *Handler) askRematch(ctx context.Context) (bool, error) {
	var again bool
	err := h.Prompter.Ask(ctx, "Play again? (y/n)", func(answer string) error {
		switch strings.ToLower(answer) {
		case "y", "yes":
			again = true
		case "n", "no":
			again = false
		default:
			return invalidInput("Please answer y or n")
		}
		return nil
	})
	if errors.Is(err, ErrInputClosed) {
		return false, nil
	}
	return again, err
}

// openColumns lists the columns that still take a disk, counted from 1.
func openColumns(board *domain.Board) string {
	valid := board.ValidColumns()
	labels := make([]string, len(valid))
	for i, c := range valid {
		labels[i] = strconv.Itoa(c + 1)
	}
	return strings.Join(labels, ", ")
}
