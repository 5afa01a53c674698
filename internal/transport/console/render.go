package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

const tileWidth = 3

var markers = map[domain.Side]string{
	domain.PlayerA: "X",
	domain.PlayerB: "O",
}

// Styles groups the colors used on the console.
type Styles struct {
	Prompt  *color.Color
	Error   *color.Color
	Info    *color.Color
	PlayerA *color.Color
	PlayerB *color.Color
	Winning *color.Color
}

// NewStyles returns the console palette. With noColor every style prints
// plain text; otherwise fatih/color decides based on the terminal.
func NewStyles(noColor bool) *Styles {
	s := &Styles{
		Prompt:  color.New(color.FgBlue),
		Error:   color.New(color.FgRed),
		Info:    color.New(color.FgGreen),
		PlayerA: color.New(color.FgRed, color.Bold),
		PlayerB: color.New(color.FgYellow, color.Bold),
		Winning: color.New(color.FgBlack, color.BgGreen, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{s.Prompt, s.Error, s.Info, s.PlayerA, s.PlayerB, s.Winning} {
			c.DisableColor()
		}
	}
	return s
}

func (s *Styles) side(side domain.Side) *color.Color {
	if side == domain.PlayerB {
		return s.PlayerB
	}
	return s.PlayerA
}

// Renderer draws boards and game events. It is the console Presenter.
type Renderer struct {
	out    io.Writer
	styles *Styles
}

func NewRenderer(out io.Writer, styles *Styles) *Renderer {
	return &Renderer{out: out, styles: styles}
}

func (r *Renderer) Notify(event game.Event) error {
	var buf strings.Builder

	switch event.Type {
	case game.EventGameStart:
		buf.WriteString(r.styles.Info.Sprint("Populating board...") + "\n")
		fmt.Fprintf(&buf, "%s = %s, %s = %s\n",
			r.styles.PlayerA.Sprint(markers[domain.PlayerA]), event.Config.PlayerA,
			r.styles.PlayerB.Sprint(markers[domain.PlayerB]), event.Config.PlayerB)
		r.drawBoard(&buf, event.Board, nil)

	case game.EventMoveMade:
		fmt.Fprintf(&buf, "%s dropped a disk into column %d\n", event.PlayerName, event.Column+1)
		// the game over event draws the final board
		if event.Status == domain.StatusActive {
			r.drawBoard(&buf, event.Board, nil)
		}

	case game.EventGameOver:
		r.drawBoard(&buf, event.Board, event.WinningLine)
		if event.Reason == game.ReasonDraw {
			buf.WriteString(r.styles.Info.Sprint("The board is full. It's a draw!") + "\n")
		} else {
			buf.WriteString(r.styles.Info.Sprintf("%s connects four and wins!", event.WinnerName) + "\n")
		}
		buf.WriteString(FormatScore(event.Config, event.Score) + "\n")

	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}

	_, err := io.WriteString(r.out, buf.String())
	return err
}

func (r *Renderer) drawBoard(buf *strings.Builder, board *domain.Board, line *domain.Line) {
	n := board.Size()
	separator := "-" + strings.Repeat("-", n*(tileWidth+1)) + "\n"

	buf.WriteString(separator)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			buf.WriteString("|")
			buf.WriteString(r.tile(board.Get(row, col), line != nil && line.Contains(row, col)))
		}
		buf.WriteString("|\n")
		buf.WriteString(separator)
	}

	// column identifiers
	for col := 0; col < n; col++ {
		buf.WriteString(" " + center(fmt.Sprint(col+1), tileWidth))
	}
	buf.WriteString("\n")
}

func (r *Renderer) tile(side domain.Side, winning bool) string {
	if side == domain.Empty {
		return strings.Repeat(" ", tileWidth)
	}
	text := center(markers[side], tileWidth)
	if winning {
		return r.styles.Winning.Sprint(text)
	}
	return r.styles.side(side).Sprint(text)
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

// FormatScore renders the running tally of a match.
func FormatScore(cfg domain.Config, score game.Score) string {
	return fmt.Sprintf("Score: %s %d - %d %s (draws: %d)",
		cfg.PlayerA, score.PlayerA, score.PlayerB, cfg.PlayerB, score.Draws)
}
