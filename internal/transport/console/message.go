package console

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Message represents a console message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type PlacePayload struct {
	Variant entity.Variant `json:"variant,omitempty"`
	Row     int            `json:"row"`
	Col     int            `json:"col"`
}

type UndoPayload struct {
	Variant entity.Variant `json:"variant,omitempty"`
}

type SizePayload struct {
	Size int `json:"size"`
}

type GameResponse struct {
	Size          int          `json:"size"`
	Board         entity.Board `json:"board"`
	Moves         int          `json:"moves"`
	CurrentColor  entity.Color `json:"current_color"`
	PreviousColor entity.Color `json:"previous_color,omitempty"`
	WinnerColor   entity.Color `json:"winner_color,omitempty"`
}

type ResponsePayload struct {
	Game  *GameResponse `json:"game,omitempty"`
	Grid  string        `json:"grid,omitempty"`
	Error string        `json:"error,omitempty"`
}

func newGameResponse(state entity.GameState) *GameResponse {
	return &GameResponse{
		Size:          state.Size,
		Board:         state.Board,
		Moves:         state.MoveCount(),
		CurrentColor:  state.CurrentColor,
		PreviousColor: state.PreviousColor,
		WinnerColor:   state.WinnerColor,
	}
}

func (that *Server) sendMessage(w io.Writer, action string, payload ResponsePayload) error {
	response := Message{
		Action:  action,
		Payload: json.RawMessage(mustMarshal(payload)),
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	responseBytes = append(responseBytes, '\n')
	if _, err = w.Write(responseBytes); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
