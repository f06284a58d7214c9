package entity

import "strings"

// Board is a square grid of cells indexed as board[row][col].
type Board [][]Color

func NewBoard(size int) Board {
	if size < 0 {
		size = 0
	}

	board := make(Board, size)
	for row := range board {
		board[row] = make([]Color, size)
	}

	return board
}

func (that Board) Size() int {
	return len(that)
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(that) && col >= 0 && col < len(that)
}

// At - returns EmptyCell for coordinates outside the board.
func (that Board) At(row, col int) Color {
	if !that.InBounds(row, col) {
		return EmptyCell
	}
	return that[row][col]
}

// Put - returns a new board with color at (row, col). Only the touched row is
// copied, all other rows are shared with the receiver.
func (that Board) Put(row, col int, color Color) Board {
	next := make(Board, len(that))
	copy(next, that)

	line := make([]Color, len(that[row]))
	copy(line, that[row])
	line[col] = color
	next[row] = line

	return next
}

func (that Board) Equal(other Board) bool {
	if len(that) != len(other) {
		return false
	}

	for row := range that {
		if len(that[row]) != len(other[row]) {
			return false
		}
		for col := range that[row] {
			if that[row][col] != other[row][col] {
				return false
			}
		}
	}

	return true
}

// String - renders the board as text: "." empty, "X" black, "O" white.
func (that Board) String() string {
	var sb strings.Builder

	for row := range that {
		for col, cell := range that[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			switch cell {
			case ColorBlack:
				sb.WriteByte('X')
			case ColorWhite:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
