package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/nettictactoe/backend/internal/entity"
	"github.com/nettictactoe/backend/internal/server"
)

// gameCoordinator is the authority the session layer submits commands to.
type gameCoordinator interface {
	Connect(ctx context.Context, id uuid.UUID, handle server.Handle) error
	Disconnect(ctx context.Context, id uuid.UUID) error
	CreateMatch(ctx context.Context, playerID uuid.UUID, roomName, playerName string) (uuid.UUID, error)
	JoinMatch(ctx context.Context, playerID, roomID uuid.UUID, playerName string) (uuid.UUID, error)
	LeaveMatch(ctx context.Context, playerID uuid.UUID) error
	ListMatches(ctx context.Context, playerID uuid.UUID) error
	StartGame(ctx context.Context, playerID, roomID uuid.UUID, symbol entity.Symbol) error
	Turn(ctx context.Context, playerID, roomID uuid.UUID, symbol entity.Symbol, cell entity.Cell) error
}

type Server struct {
	logger      *slog.Logger
	coordinator gameCoordinator
	upgrader    websocket.Upgrader
}

func New(logger *slog.Logger, coordinator gameCoordinator) *Server {
	return &Server{
		logger:      logger.With("component", "websocket"),
		coordinator: coordinator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Start - starts the WebSocket server and blocks until it fails or ctx ends.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection upgrades the request and runs the session pumps.
func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	session := newPlayerSession(that.logger, conn, that.coordinator)

	if err := that.coordinator.Connect(ctx, session.id, session); err != nil {
		log.Error("failed to register session", "error", err)
		_ = conn.Close()
		return
	}

	log.Info("WebSocket connection established", "player_id", session.id)

	go session.writePump()
	session.readLoop(ctx)
}
