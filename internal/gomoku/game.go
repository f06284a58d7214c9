package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Reduce applies cmd to state and returns the resulting state. Commands that
// cannot be applied return state unchanged; Check tells why.
func Reduce(state entity.GameState, cmd Command) entity.GameState {
	if Check(state, cmd) != nil {
		return state
	}

	switch c := cmd.(type) {
	case PlacePiece:
		return placePiece(state, c)
	case Undo:
		return undo(state, c)
	case ResetBoard:
		return entity.NewGameState(state.Size)
	case SetSize:
		return entity.NewGameState(c.Size)
	default:
		return state
	}
}

// Check - returns the reason cmd would leave state unchanged, or nil if it applies.
func Check(state entity.GameState, cmd Command) error {
	switch c := cmd.(type) {
	case PlacePiece:
		return validateMove(state, c)
	case Undo:
		if !c.Variant.IsValid() {
			return fmt.Errorf("%w: %d", apperror.ErrUnknownVariant, c.Variant)
		}
		if !state.CanUndo() {
			return apperror.ErrNothingToUndo
		}
		return nil
	case ResetBoard:
		return nil
	case SetSize:
		if c.Size <= 0 {
			return fmt.Errorf("%w: %d", apperror.ErrInvalidSize, c.Size)
		}
		return nil
	default:
		return apperror.ErrUnknownCommand
	}
}

// validateMove - checks if the placement is legal.
func validateMove(state entity.GameState, move PlacePiece) error {
	if !move.Variant.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownVariant, move.Variant)
	}

	if state.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !state.Board.InBounds(move.Row, move.Col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if !state.Board.At(move.Row, move.Col).IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

func placePiece(state entity.GameState, move PlacePiece) entity.GameState {
	mover := state.CurrentColor
	board := state.Board.Put(move.Row, move.Col, mover)

	history := make([]entity.Board, len(state.History), len(state.History)+1)
	copy(history, state.History)
	history = append(history, board)

	next := state
	next.Board = board
	next.History = history
	next.CurrentColor = nextColor(state, move.Variant)
	next.PreviousColor = mover

	if IsWinningMove(board, move.Row, move.Col, move.Variant.RunLength()) {
		next.WinnerColor = mover
	}

	return next
}

// nextColor - the color to move after the current one has placed a stone.
// In six the opening stone passes the turn, after that each color places twice.
func nextColor(state entity.GameState, variant entity.Variant) entity.Color {
	if variant == entity.VariantFive {
		return state.CurrentColor.Toggle()
	}

	if state.PreviousColor.IsEmpty() || state.PreviousColor == state.CurrentColor {
		return state.CurrentColor.Toggle()
	}

	return state.CurrentColor
}

func undo(state entity.GameState, cmd Undo) entity.GameState {
	last := len(state.History) - 1
	history := state.History[:last:last]

	next := state
	next.Board = history[len(history)-1]
	next.History = history
	next.WinnerColor = entity.EmptyCell

	if cmd.Variant == entity.VariantFive {
		next.CurrentColor = state.CurrentColor.Toggle()
		return next
	}

	next.CurrentColor = state.PreviousColor
	switch {
	case len(history) == 1:
		next.PreviousColor = entity.EmptyCell
	case state.PreviousColor == state.CurrentColor:
		next.PreviousColor = state.CurrentColor.Toggle()
	default:
		next.PreviousColor = state.PreviousColor
	}

	return next
}
