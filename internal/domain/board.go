package domain

// Board is a square grid. Row 0 is the top row, row Size()-1 the bottom.
type Board struct {
	size  int
	cells [][]Side
}

func NewBoard(size int) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	cells := make([][]Side, size)
	for i := range cells {
		cells[i] = make([]Side, size)
	}
	return &Board{size: size, cells: cells}, nil
}

func (b *Board) Size() int {
	return b.size
}

// Drop lets a disk fall down column until it rests on the bottom row or
// another disk, and returns the row it landed on. On error the board is
// left untouched.
func (b *Board) Drop(column int, side Side) (int, error) {
	if !side.Valid() {
		return -1, ErrInvalidSide
	}
	if column < 0 || column >= b.size {
		return -1, &OutOfBoundsError{Column: column, Size: b.size}
	}

	for row := b.size - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = side
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// Get returns Empty for coordinates outside the grid.
func (b *Board) Get(row, column int) Side {
	if row < 0 || row >= b.size || column < 0 || column >= b.size {
		return Empty
	}
	return b.cells[row][column]
}

// IsColumnFull reports whether column has no empty cell left. Columns
// outside the grid count as full.
func (b *Board) IsColumnFull(column int) bool {
	if column < 0 || column >= b.size {
		return true
	}
	// disks stack from the bottom, so the top cell is the last to fill
	return b.cells[0][column] != Empty
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.size; c++ {
		if !b.IsColumnFull(c) {
			return false
		}
	}
	return true
}

// ValidColumns lists the columns that can still take a disk.
func (b *Board) ValidColumns() []int {
	columns := []int{}
	for c := 0; c < b.size; c++ {
		if !b.IsColumnFull(c) {
			columns = append(columns, c)
		}
	}
	return columns
}

// Copy creates a deep copy of the board
func (b *Board) Copy() *Board {
	return &Board{size: b.size, cells: b.Cells()}
}

// Cells returns a snapshot of the grid that callers may keep or modify.
func (b *Board) Cells() [][]Side {
	cells := make([][]Side, len(b.cells))
	for i := range b.cells {
		cells[i] = make([]Side, len(b.cells[i]))
		copy(cells[i], b.cells[i])
	}
	return cells
}
