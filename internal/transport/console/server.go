package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	ActionPlace = "game:place"
	ActionUndo  = "game:undo"
	ActionReset = "game:reset"
	ActionSize  = "game:size"
	ActionState = "game:state"
	ActionError = "error"
)

type gameStore interface {
	State() entity.GameState
	Dispatch(cmd gomoku.Command) entity.GameState
}

type handler func(msg *Message) (gomoku.Command, error)

// Server reads one JSON message per line and answers each with the resulting game.
type Server struct {
	logger        *slog.Logger
	store         gameStore
	variant       entity.Variant
	isAllowedSize func(size int) bool
	handlers      map[string]handler
}

// New - variant is used for messages that do not name one; isAllowedSize
// restricts game:size to the sizes offered to players.
func New(logger *slog.Logger, store gameStore, variant entity.Variant, isAllowedSize func(size int) bool) *Server {
	server := &Server{
		logger:        logger.With("component", "console"),
		store:         store,
		variant:       variant,
		isAllowedSize: isAllowedSize,
	}

	server.handlers = map[string]handler{
		ActionPlace: server.handlePlace,
		ActionUndo:  server.handleUndo,
		ActionReset: server.handleReset,
		ActionSize:  server.handleSize,
		ActionState: server.handleState,
	}

	return server
}

// Serve - processes messages from r until EOF or ctx is done.
func (that *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if err := that.processMessage(line, w); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read message: %w", err)
	}

	return nil
}

func (that *Server) processMessage(line []byte, w io.Writer) error {
	var msg Message
	if err := json.Unmarshal(line, &msg); err != nil {
		that.logger.Debug("malformed message", "error", err)
		return that.sendMessage(w, ActionError, ResponsePayload{Error: "malformed message"})
	}

	handle, ok := that.handlers[msg.Action]
	if !ok {
		that.logger.Debug("unknown action", "action", msg.Action)
		return that.sendMessage(w, msg.Action, ResponsePayload{Error: apperror.ErrUnknownCommand.Error()})
	}

	cmd, err := handle(&msg)
	if err != nil {
		return that.sendMessage(w, msg.Action, that.responseFor(that.store.State(), err))
	}

	if cmd == nil {
		return that.sendMessage(w, msg.Action, that.responseFor(that.store.State(), nil))
	}

	reason := gomoku.Check(that.store.State(), cmd)
	state := that.store.Dispatch(cmd)

	return that.sendMessage(w, msg.Action, that.responseFor(state, reason))
}

func (that *Server) responseFor(state entity.GameState, err error) ResponsePayload {
	response := ResponsePayload{
		Game: newGameResponse(state),
		Grid: state.Board.String(),
	}

	if err != nil {
		response.Error = err.Error()
	}

	return response
}

func (that *Server) handlePlace(msg *Message) (gomoku.Command, error) {
	var payload PlacePayload
	if err := decodePayload(msg, &payload); err != nil {
		return nil, err
	}

	return gomoku.PlacePiece{
		Variant: that.variantOrDefault(payload.Variant),
		Row:     payload.Row,
		Col:     payload.Col,
	}, nil
}

func (that *Server) handleUndo(msg *Message) (gomoku.Command, error) {
	var payload UndoPayload
	if len(msg.Payload) > 0 {
		if err := decodePayload(msg, &payload); err != nil {
			return nil, err
		}
	}

	return gomoku.Undo{Variant: that.variantOrDefault(payload.Variant)}, nil
}

func (that *Server) handleReset(_ *Message) (gomoku.Command, error) {
	return gomoku.ResetBoard{}, nil
}

func (that *Server) handleSize(msg *Message) (gomoku.Command, error) {
	var payload SizePayload
	if err := decodePayload(msg, &payload); err != nil {
		return nil, err
	}

	if that.isAllowedSize != nil && !that.isAllowedSize(payload.Size) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, payload.Size)
	}

	return gomoku.SetSize{Size: payload.Size}, nil
}

func (that *Server) handleState(_ *Message) (gomoku.Command, error) {
	return nil, nil
}

func (that *Server) variantOrDefault(variant entity.Variant) entity.Variant {
	if variant.IsValid() {
		return variant
	}
	return that.variant
}

var errMissingPayload = errors.New("missing payload")

func decodePayload(msg *Message, payload interface{}) error {
	if len(msg.Payload) == 0 {
		return errMissingPayload
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	return nil
}
