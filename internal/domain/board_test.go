package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := NewBoard(size)
	require.NoError(t, err)
	return b
}

// place writes cells directly so tests can build positions gravity would not allow.
func place(b *Board, side Side, cells ...Cell) {
	for _, c := range cells {
		b.cells[c.Row][c.Column] = side
	}
}

func TestNewBoard_ValidSizes(t *testing.T) {
	for n := MinSize; n <= MaxSize; n++ {
		b := newTestBoard(t, n)
		assert.Equal(t, n, b.Size())
		assert.False(t, b.IsFull(), "size %d", n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				assert.Equal(t, Empty, b.Get(r, c))
			}
		}
	}
}

func TestNewBoard_InvalidSizes(t *testing.T) {
	for _, n := range []int{-1, 0, 4, 5, 13, 100} {
		b, err := NewBoard(n)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %d", n)
	}
}

func TestDrop_FillsBottomUp(t *testing.T) {
	const n = 8
	b := newTestBoard(t, n)

	for i := 0; i < n; i++ {
		row, err := b.Drop(3, PlayerA)
		require.NoError(t, err)
		assert.Equal(t, n-1-i, row)
	}

	row, err := b.Drop(3, PlayerB)
	assert.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, -1, row)
	assert.True(t, b.IsColumnFull(3))
	assert.Equal(t, PlayerA, b.Get(0, 3), "full column must not change")
}

func TestDrop_OutOfBoundsLeavesBoardUnchanged(t *testing.T) {
	b := newTestBoard(t, 6)
	_, err := b.Drop(0, PlayerA)
	require.NoError(t, err)
	before := b.Cells()

	for _, col := range []int{-1, 6, 42} {
		row, err := b.Drop(col, PlayerB)
		assert.Equal(t, -1, row)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		var oob *OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, col, oob.Column)
		assert.Equal(t, 6, oob.Size)
		assert.Equal(t, before, b.Cells())
	}
}

func TestDrop_RejectsEmptySide(t *testing.T) {
	b := newTestBoard(t, 6)
	_, err := b.Drop(2, Empty)
	assert.ErrorIs(t, err, ErrInvalidSide)
	assert.Equal(t, Empty, b.Get(5, 2))
}

func TestDrop_StacksMixedSides(t *testing.T) {
	b := newTestBoard(t, 6)
	_, _ = b.Drop(1, PlayerA)
	_, _ = b.Drop(1, PlayerB)

	assert.Equal(t, PlayerA, b.Get(5, 1))
	assert.Equal(t, PlayerB, b.Get(4, 1))
	assert.Equal(t, Empty, b.Get(3, 1))
}

func TestGet_OutOfRangeIsEmpty(t *testing.T) {
	b := newTestBoard(t, 6)
	for c := 0; c < 6; c++ {
		place(b, PlayerA, Cell{Row: 0, Column: c}, Cell{Row: 5, Column: c})
	}

	for _, p := range []Cell{{-1, 0}, {0, -1}, {6, 0}, {0, 6}, {-3, 9}} {
		assert.Equal(t, Empty, b.Get(p.Row, p.Column))
	}
}

func TestIsFull(t *testing.T) {
	b := newTestBoard(t, 6)
	side := PlayerA
	for c := 0; c < 6; c++ {
		for r := 0; r < 6; r++ {
			assert.False(t, b.IsFull())
			_, err := b.Drop(c, side)
			require.NoError(t, err)
			side = side.Opponent()
		}
	}
	assert.True(t, b.IsFull())
	assert.Empty(t, b.ValidColumns())
}

func TestValidColumns(t *testing.T) {
	b := newTestBoard(t, 6)
	for i := 0; i < 6; i++ {
		_, _ = b.Drop(4, PlayerB)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 5}, b.ValidColumns())
}

func TestCopy_IsIndependent(t *testing.T) {
	b := newTestBoard(t, 7)
	_, _ = b.Drop(0, PlayerA)

	cp := b.Copy()
	_, _ = cp.Drop(0, PlayerB)

	assert.Equal(t, Empty, b.Get(5, 0))
	assert.Equal(t, PlayerB, cp.Get(5, 0))
	assert.Equal(t, 7, cp.Size())
}

func TestSide(t *testing.T) {
	assert.Equal(t, PlayerB, PlayerA.Opponent())
	assert.Equal(t, PlayerA, PlayerB.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.False(t, Empty.Valid())
	assert.True(t, PlayerA.Valid())
	assert.Equal(t, "player_b", PlayerB.String())
	assert.Equal(t, "side(7)", Side(7).String())
}
