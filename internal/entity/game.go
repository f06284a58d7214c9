package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

type Color string

const (
	ColorBlack Color = "BLACK"
	ColorWhite Color = "WHITE"

	EmptyCell Color = ""
)

// Board sizes offered to players.
const (
	SizeSmall  = 15
	SizeNormal = 17
	SizeLarge  = 19
)

// Toggle - returns the opponent color. The empty color has no opponent.
func (that Color) Toggle() Color {
	switch that {
	case ColorBlack:
		return ColorWhite
	case ColorWhite:
		return ColorBlack
	default:
		return EmptyCell
	}
}

func (that Color) IsEmpty() bool {
	return that == EmptyCell
}

// Variant selects the winning run length and the turn rule.
type Variant int8

const (
	VariantFive Variant = iota + 1
	VariantSix
)

var variantNames = [...]string{
	"unknown",
	"five",
	"six",
}

var variantLabels = [...]string{
	"",
	"五",
	"六",
}

// ParseVariant accepts "five"/"six" or "5"/"6", case-insensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case variantNames[VariantFive], "5":
		return VariantFive, nil
	case variantNames[VariantSix], "6":
		return VariantSix, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, s)
	}
}

func (that Variant) IsValid() bool {
	return that == VariantFive || that == VariantSix
}

// RunLength - the number of stones in a row needed to win.
func (that Variant) RunLength() int {
	switch that {
	case VariantFive:
		return 5
	case VariantSix:
		return 6
	default:
		return 0
	}
}

func (that Variant) Label() string {
	if !that.IsValid() {
		return variantLabels[0]
	}
	return variantLabels[that]
}

func (that Variant) String() string {
	if !that.IsValid() {
		return variantNames[0]
	}
	return variantNames[that]
}

func (that Variant) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Variant) UnmarshalText(text []byte) error {
	variant, err := ParseVariant(string(text))
	if err != nil {
		return err
	}

	*that = variant
	return nil
}

// GameState is a value: every accepted command produces a new one and
// never touches the boards of the previous one.
type GameState struct {
	Size          int     `json:"size"`
	Board         Board   `json:"board"`
	History       []Board `json:"history"`
	CurrentColor  Color   `json:"current_color"`
	PreviousColor Color   `json:"previous_color"`
	WinnerColor   Color   `json:"winner_color"`
}

// NewGameState - an empty board of the given size with black to move.
func NewGameState(size int) GameState {
	return GameState{
		Size:          size,
		Board:         NewBoard(size),
		History:       []Board{NewBoard(size)},
		CurrentColor:  ColorBlack,
		PreviousColor: EmptyCell,
		WinnerColor:   EmptyCell,
	}
}

func (that GameState) IsFinished() bool {
	return !that.WinnerColor.IsEmpty()
}

func (that GameState) CanUndo() bool {
	return len(that.History) > 1
}

// MoveCount - the number of placements recorded since the last reset.
func (that GameState) MoveCount() int {
	if len(that.History) == 0 {
		return 0
	}
	return len(that.History) - 1
}
