package usecase

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

// Listener is called after every accepted command with the replaced and the new state.
type Listener func(prev, next entity.GameState)

type listenerEntry struct {
	id       uint64
	listener Listener
}

// GameStore holds the single current game state. Dispatch calls are serialized;
// State may be called from any goroutine and never sees a half-applied command.
type GameStore struct {
	logger *slog.Logger
	id     string

	mu        sync.Mutex
	state     atomic.Pointer[entity.GameState]
	listeners []listenerEntry
	nextID    uint64
}

// NewGameStore - creates a store with an empty board of the given size.
func NewGameStore(logger *slog.Logger, size int) *GameStore {
	if size <= 0 {
		size = entity.SizeSmall
	}

	id := uuid.NewString()
	store := &GameStore{
		logger: logger.With("component", "game_store", "game_id", id),
		id:     id,
	}

	initial := entity.NewGameState(size)
	store.state.Store(&initial)

	return store
}

func (that *GameStore) ID() string {
	return that.id
}

// State - returns the current state. Boards and history in it must be treated as read-only.
func (that *GameStore) State() entity.GameState {
	return *that.state.Load()
}

// Dispatch - applies the command and returns the resulting state.
// Commands that cannot be applied leave the state unchanged.
func (that *GameStore) Dispatch(cmd gomoku.Command) entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("command", commandName(cmd))

	prev := that.State()
	if err := gomoku.Check(prev, cmd); err != nil {
		log.Debug("command ignored", "reason", err)
		return prev
	}

	next := gomoku.Reduce(prev, cmd)
	that.state.Store(&next)

	log.Debug("command applied", "moves", next.MoveCount(), "current_color", next.CurrentColor)
	if next.IsFinished() && !prev.IsFinished() {
		log.Info("game won", "winner", next.WinnerColor, "moves", next.MoveCount())
	}

	for _, entry := range that.listeners {
		entry.listener(prev, next)
	}

	return next
}

func (that *GameStore) Place(variant entity.Variant, row, col int) entity.GameState {
	return that.Dispatch(gomoku.PlacePiece{Variant: variant, Row: row, Col: col})
}

func (that *GameStore) Undo(variant entity.Variant) entity.GameState {
	return that.Dispatch(gomoku.Undo{Variant: variant})
}

func (that *GameStore) Reset() entity.GameState {
	return that.Dispatch(gomoku.ResetBoard{})
}

func (that *GameStore) SetSize(size int) entity.GameState {
	return that.Dispatch(gomoku.SetSize{Size: size})
}

// Subscribe - registers a listener for accepted commands. Listeners run while
// the store is locked, so they must not dispatch. The returned func removes it.
func (that *GameStore) Subscribe(listener Listener) func() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.nextID++
	id := that.nextID
	that.listeners = append(that.listeners, listenerEntry{id: id, listener: listener})

	return func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		for i, entry := range that.listeners {
			if entry.id == id {
				that.listeners = append(that.listeners[:i:i], that.listeners[i+1:]...)
				return
			}
		}
	}
}

func commandName(cmd gomoku.Command) string {
	if cmd == nil {
		return "nil"
	}
	return cmd.Name()
}
