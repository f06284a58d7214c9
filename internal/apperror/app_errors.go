package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidSize    = errors.New("invalid board size")
	ErrUnknownVariant = errors.New("unknown variant")
)
