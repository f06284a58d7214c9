package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

type direction struct {
	dRow, dCol int
}

// Each axis is walked forward and backward from the anchor.
var axes = [4]direction{
	{dRow: 1, dCol: 0},  // vertical
	{dRow: 0, dCol: 1},  // horizontal
	{dRow: 1, dCol: 1},  // main diagonal
	{dRow: 1, dCol: -1}, // anti diagonal
}

// IsWinningMove reports whether the stone at (row, col) is part of a run of at
// least runLength stones of its color along any axis. Overlines count as wins.
// The cell must hold the stone that was just placed.
func IsWinningMove(board entity.Board, row, col, runLength int) bool {
	color := board.At(row, col)
	if color.IsEmpty() {
		return false
	}

	for _, axis := range axes {
		count := 1
		count += countDirection(board, row, col, axis.dRow, axis.dCol, color)
		count += countDirection(board, row, col, -axis.dRow, -axis.dCol, color)

		if count >= runLength {
			return true
		}
	}

	return false
}

// countDirection - counts consecutive stones of color starting next to the anchor.
func countDirection(board entity.Board, row, col, dRow, dCol int, color entity.Color) int {
	count := 0
	for r, c := row+dRow, col+dCol; board.InBounds(r, c) && board[r][c] == color; r, c = r+dRow, c+dCol {
		count++
	}
	return count
}
