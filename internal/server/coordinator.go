package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nettictactoe/backend/internal/apperror"
	"github.com/nettictactoe/backend/internal/entity"
)

// MatchResult describes one finished match for the archive.
type MatchResult struct {
	RoomID     string    `json:"room_id"`
	RoomName   string    `json:"room_name"`
	Outcome    string    `json:"outcome"`
	Winner     string    `json:"winner,omitempty"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

type resultArchive interface {
	RecordResult(ctx context.Context, result MatchResult) error
}

type monitor interface {
	IncOnlinePlayers()
	DecOnlinePlayers()
	SetActiveRooms(count int)
	IncCommandsProcessed()
	IncMatchesFinished()
}

// Coordinator is the single authority over all sessions and rooms. Its Run
// loop drains the command channel one command at a time, so no two commands
// ever interleave and every turn/duplicate-move check is race-free by
// construction.
type Coordinator struct {
	logger   *slog.Logger
	registry *Registry
	router   *Router

	rooms   map[uuid.UUID]*entity.Room
	players map[uuid.UUID]uuid.UUID // player id -> room id

	commands chan envelope
	finished chan struct{}

	archive resultArchive
	monitor monitor
}

// Option configures optional collaborators.
type Option func(*Coordinator)

// WithArchive records finished matches. Recording is fire-and-forget and
// never blocks command processing.
func WithArchive(archive resultArchive) Option {
	return func(that *Coordinator) {
		that.archive = archive
	}
}

func WithMonitor(m monitor) Option {
	return func(that *Coordinator) {
		that.monitor = m
	}
}

func New(logger *slog.Logger, opts ...Option) *Coordinator {
	registry := NewRegistry()

	coordinator := &Coordinator{
		logger:   logger.With("component", "coordinator"),
		registry: registry,
		router:   NewRouter(registry),
		rooms:    make(map[uuid.UUID]*entity.Room),
		players:  make(map[uuid.UUID]uuid.UUID),
		commands: make(chan envelope),
		finished: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(coordinator)
	}

	return coordinator
}

// Run processes commands until ctx is canceled. It must be running before any
// command method is called.
func (that *Coordinator) Run(ctx context.Context) {
	defer close(that.finished)

	that.logger.Info("coordinator started")

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("coordinator stopped")
			return
		case env := <-that.commands:
			env.cmd.apply(that)
			if that.monitor != nil {
				that.monitor.IncCommandsProcessed()
			}
			close(env.done)
		}
	}
}

// submit hands a command to the loop and blocks until it has been applied.
func (that *Coordinator) submit(ctx context.Context, cmd command) error {
	env := envelope{cmd: cmd, done: make(chan struct{})}

	select {
	case that.commands <- env:
	case <-that.finished:
		return apperror.ErrServerUnavailable
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-env.done:
		return nil
	case <-that.finished:
		return apperror.ErrServerUnavailable
	}
}

// Connect registers a session and acknowledges it. No room membership or
// symbol is assigned at connect time.
func (that *Coordinator) Connect(ctx context.Context, id uuid.UUID, handle Handle) error {
	return that.submit(ctx, &connectCmd{id: id, handle: handle})
}

// Disconnect removes the player from their room (if any) and drops the session.
func (that *Coordinator) Disconnect(ctx context.Context, id uuid.UUID) error {
	return that.submit(ctx, &disconnectCmd{id: id})
}

// CreateMatch allocates a new waiting room with the requester as Cross and
// returns its id.
func (that *Coordinator) CreateMatch(ctx context.Context, playerID uuid.UUID, roomName, playerName string) (uuid.UUID, error) {
	cmd := &createMatchCmd{playerID: playerID, roomName: roomName, playerName: playerName}
	if err := that.submit(ctx, cmd); err != nil {
		return uuid.Nil, err
	}

	return cmd.roomID, nil
}

// JoinMatch adds the requester as Circle to a waiting single-occupant room.
// It returns uuid.Nil when the join was ignored.
func (that *Coordinator) JoinMatch(ctx context.Context, playerID, roomID uuid.UUID, playerName string) (uuid.UUID, error) {
	cmd := &joinMatchCmd{playerID: playerID, roomID: roomID, playerName: playerName}
	if err := that.submit(ctx, cmd); err != nil {
		return uuid.Nil, err
	}

	return cmd.joinedRoomID, nil
}

// LeaveMatch removes the player from their room without dropping the session.
func (that *Coordinator) LeaveMatch(ctx context.Context, playerID uuid.UUID) error {
	return that.submit(ctx, &leaveMatchCmd{playerID: playerID})
}

// ListMatches delivers the current room list to the requester.
func (that *Coordinator) ListMatches(ctx context.Context, playerID uuid.UUID) error {
	return that.submit(ctx, &listMatchesCmd{playerID: playerID})
}

// StartGame moves a full waiting room to started. Only the Cross player may
// start; anything else is ignored.
func (that *Coordinator) StartGame(ctx context.Context, playerID, roomID uuid.UUID, symbol entity.Symbol) error {
	return that.submit(ctx, &startGameCmd{playerID: playerID, roomID: roomID, symbol: symbol})
}

// Turn submits one move. Invalid turns are ignored without any state change
// or notification.
func (that *Coordinator) Turn(ctx context.Context, playerID, roomID uuid.UUID, symbol entity.Symbol, cell entity.Cell) error {
	return that.submit(ctx, &turnCmd{playerID: playerID, roomID: roomID, symbol: symbol, cell: cell})
}

// GameState returns a snapshot of one room.
func (that *Coordinator) GameState(ctx context.Context, roomID uuid.UUID) (entity.Room, bool, error) {
	cmd := &gameStateCmd{roomID: roomID}
	if err := that.submit(ctx, cmd); err != nil {
		return entity.Room{}, false, err
	}

	return cmd.room, cmd.found, nil
}
