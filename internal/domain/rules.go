package domain

// CheckWin reports whether side holds four in a row anywhere on the board.
func CheckWin(board *Board, side Side) bool {
	_, ok := FindWinningLine(board, side)
	return ok
}

// FindWinningLine scans the whole board for side and returns the first
// four-in-a-row it meets. Rows and columns are checked before diagonals.
func FindWinningLine(board *Board, side Side) (Line, bool) {
	if !side.Valid() {
		return Line{}, false
	}

	if line, ok := checkHorizontal(board, side); ok {
		return line, true
	}
	if line, ok := checkVertical(board, side); ok {
		return line, true
	}
	if line, ok := checkPositiveDiagonal(board, side); ok {
		return line, true
	}
	return checkNegativeDiagonal(board, side)
}

func checkHorizontal(board *Board, side Side) (Line, bool) {
	n := board.Size()
	for r := 0; r < n; r++ {
		count := 0
		for c := 0; c < n; c++ {
			if board.Get(r, c) != side {
				count = 0
				continue
			}
			count++
			if count == ToWin {
				var line Line
				for i := range line {
					line[i] = Cell{Row: r, Column: c - (ToWin - 1) + i}
				}
				return line, true
			}
		}
	}
	return Line{}, false
}

func checkVertical(board *Board, side Side) (Line, bool) {
	n := board.Size()
	for c := 0; c < n; c++ {
		count := 0
		for r := 0; r < n; r++ {
			if board.Get(r, c) != side {
				count = 0
				continue
			}
			count++
			if count == ToWin {
				var line Line
				for i := range line {
					line[i] = Cell{Row: r - (ToWin - 1) + i, Column: c}
				}
				return line, true
			}
		}
	}
	return Line{}, false
}

// diagonal \ : anchor is the top-left cell
func checkPositiveDiagonal(board *Board, side Side) (Line, bool) {
	n := board.Size()
	for r := 0; r <= n-ToWin; r++ {
		for c := 0; c <= n-ToWin; c++ {
			if line, ok := probe(board, side, r, c, 1, 1); ok {
				return line, true
			}
		}
	}
	return Line{}, false
}

// diagonal / : anchor is the bottom-left cell
func checkNegativeDiagonal(board *Board, side Side) (Line, bool) {
	n := board.Size()
	for r := ToWin - 1; r < n; r++ {
		for c := 0; c <= n-ToWin; c++ {
			if line, ok := probe(board, side, r, c, -1, 1); ok {
				return line, true
			}
		}
	}
	return Line{}, false
}

// probe tests ToWin cells starting at the anchor and stepping by
// (deltaRow, deltaCol). Get keeps out-of-range probes Empty.
func probe(board *Board, side Side, row, column, deltaRow, deltaCol int) (Line, bool) {
	var line Line
	for i := range line {
		r, c := row+i*deltaRow, column+i*deltaCol
		if board.Get(r, c) != side {
			return Line{}, false
		}
		line[i] = Cell{Row: r, Column: c}
	}
	return line, true
}
