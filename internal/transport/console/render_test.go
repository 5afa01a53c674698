package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

func plainRenderer(out *bytes.Buffer) *Renderer {
	return NewRenderer(out, NewStyles(true))
}

func drawPlain(board *domain.Board) string {
	var buf strings.Builder
	NewRenderer(nil, NewStyles(true)).drawBoard(&buf, board, nil)
	return buf.String()
}

func TestDraw_EmptyBoard(t *testing.T) {
	board, err := domain.NewBoard(6)
	require.NoError(t, err)

	out := drawPlain(board)

	sep := strings.Repeat("-", 25)
	row := "|   |   |   |   |   |   |"
	want := []string{sep}
	for i := 0; i < 6; i++ {
		want = append(want, row, sep)
	}
	want = append(want, "  1   2   3   4   5   6 ", "")
	assert.Equal(t, strings.Join(want, "\n"), out)
}

func TestDraw_MarkersAndTwoDigitFooter(t *testing.T) {
	board, err := domain.NewBoard(10)
	require.NoError(t, err)
	_, _ = board.Drop(0, domain.PlayerA)
	_, _ = board.Drop(0, domain.PlayerB)

	lines := strings.Split(drawPlain(board), "\n")
	// rows 8 and 9 are lines 17 and 19
	assert.True(t, strings.HasPrefix(lines[19], "| X |   |"), lines[19])
	assert.True(t, strings.HasPrefix(lines[17], "| O |   |"), lines[17])
	assert.True(t, strings.HasSuffix(lines[21], "  9  10 "), lines[21])
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " 1 ", center("1", 3))
	assert.Equal(t, "12 ", center("12", 3))
	assert.Equal(t, "123", center("123", 3))
	assert.Equal(t, "1234", center("1234", 3))
}

func TestNotify_GameOver(t *testing.T) {
	board, err := domain.NewBoard(6)
	require.NoError(t, err)
	cfg := domain.Config{Size: 6, PlayerA: "alice", PlayerB: "bob"}
	line := domain.Line{{Row: 5, Column: 0}, {Row: 5, Column: 1}, {Row: 5, Column: 2}, {Row: 5, Column: 3}}

	var out bytes.Buffer
	err = plainRenderer(&out).Notify(game.Event{
		Type:        game.EventGameOver,
		Config:      cfg,
		Board:       board,
		Winner:      domain.PlayerA,
		WinnerName:  "alice",
		Reason:      game.ReasonConnectFour,
		WinningLine: &line,
		Score:       game.Score{PlayerA: 2, PlayerB: 1, Draws: 1},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "alice connects four and wins!")
	assert.Contains(t, out.String(), "Score: alice 2 - 1 bob (draws: 1)")

	out.Reset()
	err = plainRenderer(&out).Notify(game.Event{Type: game.EventGameOver, Config: cfg, Board: board, Reason: game.ReasonDraw})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "It's a draw!")
}

func TestNotify_MoveMadeSkipsBoardWhenFinished(t *testing.T) {
	board, err := domain.NewBoard(6)
	require.NoError(t, err)

	var out bytes.Buffer
	r := plainRenderer(&out)

	require.NoError(t, r.Notify(game.Event{Type: game.EventMoveMade, Board: board, PlayerName: "bob", Column: 2, Status: domain.StatusActive}))
	assert.Contains(t, out.String(), "bob dropped a disk into column 3")
	assert.Contains(t, out.String(), "  1   2")

	out.Reset()
	require.NoError(t, r.Notify(game.Event{Type: game.EventMoveMade, Board: board, PlayerName: "bob", Column: 2, Status: domain.StatusWon}))
	assert.NotContains(t, out.String(), "  1   2")
}

func TestNotify_UnknownEvent(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, plainRenderer(&out).Notify(game.Event{Type: "bogus"}))
}
