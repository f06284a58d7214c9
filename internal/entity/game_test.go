package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_Toggle(t *testing.T) {
	assert.Equal(t, ColorWhite, ColorBlack.Toggle())
	assert.Equal(t, ColorBlack, ColorWhite.Toggle())
	assert.Equal(t, EmptyCell, EmptyCell.Toggle())
}

func TestParseVariant(t *testing.T) {
	t.Run("Parses names and digits", func(t *testing.T) {
		for input, expected := range map[string]Variant{
			"five": VariantFive,
			"FIVE": VariantFive,
			"5":    VariantFive,
			"six":  VariantSix,
			" Six": VariantSix,
			"6":    VariantSix,
		} {
			variant, err := ParseVariant(input)
			require.NoError(t, err, input)
			assert.Equal(t, expected, variant, input)
		}
	})

	t.Run("Returns ErrUnknownVariant for anything else", func(t *testing.T) {
		// When: parsing an unsupported variant
		_, err := ParseVariant("seven")

		// Then: the sentinel error should be wrapped
		require.ErrorIs(t, err, apperror.ErrUnknownVariant)
		assert.Contains(t, err.Error(), "seven")
	})
}

func TestVariant_Properties(t *testing.T) {
	assert.Equal(t, 5, VariantFive.RunLength())
	assert.Equal(t, 6, VariantSix.RunLength())
	assert.Equal(t, 0, Variant(0).RunLength())

	assert.Equal(t, "五", VariantFive.Label())
	assert.Equal(t, "六", VariantSix.Label())
	assert.Equal(t, "", Variant(42).Label())

	assert.Equal(t, "unknown", Variant(42).String())
}

func TestVariant_JSON(t *testing.T) {
	t.Run("Variant travels as text", func(t *testing.T) {
		// Given: a payload with a variant field
		payload := struct {
			Variant Variant `json:"variant"`
		}{Variant: VariantSix}

		// When: marshaling it
		data, err := json.Marshal(payload)
		require.NoError(t, err)

		// Then: the variant is written by name
		assert.JSONEq(t, `{"variant":"six"}`, string(data))
	})

	t.Run("Unknown variant fails to decode", func(t *testing.T) {
		var payload struct {
			Variant Variant `json:"variant"`
		}

		err := json.Unmarshal([]byte(`{"variant":"renju"}`), &payload)

		require.ErrorIs(t, err, apperror.ErrUnknownVariant)
	})
}

func TestNewGameState(t *testing.T) {
	// When: a new game state is created
	state := NewGameState(SizeSmall)

	// Then: it should be an empty board with black to move and one history entry
	require.Len(t, state.History, 1)
	assert.Equal(t, SizeSmall, state.Size)
	assert.Equal(t, SizeSmall, state.Board.Size())
	assert.True(t, state.Board.Equal(state.History[0]))
	assert.Equal(t, ColorBlack, state.CurrentColor)
	assert.Equal(t, EmptyCell, state.PreviousColor)
	assert.Equal(t, EmptyCell, state.WinnerColor)
	assert.False(t, state.IsFinished())
	assert.False(t, state.CanUndo())
	assert.Equal(t, 0, state.MoveCount())
}
