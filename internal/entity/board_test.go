package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	board := NewBoard(SizeNormal)

	require.Len(t, board, SizeNormal)
	for row := range board {
		require.Len(t, board[row], SizeNormal)
		for col := range board[row] {
			assert.Equal(t, EmptyCell, board[row][col])
		}
	}

	assert.Empty(t, NewBoard(-3))
}

func TestBoard_Put(t *testing.T) {
	t.Run("Put returns a new board and leaves the original untouched", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(5)

		// When: a black stone is put on (2, 3)
		next := board.Put(2, 3, ColorBlack)

		// Then: only the new board holds the stone
		assert.Equal(t, ColorBlack, next.At(2, 3))
		assert.Equal(t, EmptyCell, board.At(2, 3))
	})

	t.Run("Untouched rows are shared", func(t *testing.T) {
		board := NewBoard(5)

		next := board.Put(2, 3, ColorWhite)

		assert.Same(t, &board[0][0], &next[0][0])
		assert.NotSame(t, &board[2][0], &next[2][0])
	})
}

func TestBoard_At(t *testing.T) {
	board := NewBoard(3).Put(0, 0, ColorWhite)

	assert.Equal(t, ColorWhite, board.At(0, 0))
	assert.Equal(t, EmptyCell, board.At(-1, 0))
	assert.Equal(t, EmptyCell, board.At(0, 3))
	assert.False(t, board.InBounds(3, 3))
	assert.True(t, board.InBounds(2, 2))
}

func TestBoard_Equal(t *testing.T) {
	a := NewBoard(3).Put(1, 1, ColorBlack)
	b := NewBoard(3).Put(1, 1, ColorBlack)
	c := NewBoard(3).Put(1, 1, ColorWhite)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewBoard(4)))
}

func TestBoard_String(t *testing.T) {
	board := NewBoard(3).Put(0, 0, ColorBlack).Put(1, 2, ColorWhite)

	expected := "X . .\n" +
		". . O\n" +
		". . .\n"

	assert.Equal(t, expected, board.String())
}
