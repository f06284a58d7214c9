package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

// Command is an action applied to a game state by Reduce.
type Command interface {
	Name() string
}

type PlacePiece struct {
	Variant entity.Variant `json:"variant"`
	Row     int            `json:"row"`
	Col     int            `json:"col"`
}

type Undo struct {
	Variant entity.Variant `json:"variant"`
}

type ResetBoard struct{}

type SetSize struct {
	Size int `json:"size"`
}

func (PlacePiece) Name() string { return "place_piece" }
func (Undo) Name() string       { return "undo" }
func (ResetBoard) Name() string { return "reset_board" }
func (SetSize) Name() string    { return "set_size" }
