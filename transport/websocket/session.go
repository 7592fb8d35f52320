package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/nettictactoe/backend/internal/entity"
	"github.com/nettictactoe/backend/internal/server"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBufferSize = 32

	defaultUsername = "anonymous"
)

// playerSession owns one client connection: it turns inbound payloads into
// coordinator commands and pumps coordinator events back out. Its Deliver
// method is the handle registered with the session registry.
type playerSession struct {
	id          uuid.UUID
	logger      *slog.Logger
	conn        *websocket.Conn
	coordinator gameCoordinator

	send      chan []byte
	closeOnce sync.Once

	mu       sync.Mutex
	username string
	symbol   entity.Symbol
	roomID   uuid.UUID
}

func newPlayerSession(logger *slog.Logger, conn *websocket.Conn, coordinator gameCoordinator) *playerSession {
	id := uuid.New()

	return &playerSession{
		id:          id,
		logger:      logger.With("component", "player_session", "player_id", id),
		conn:        conn,
		coordinator: coordinator,
		send:        make(chan []byte, sendBufferSize),
		username:    defaultUsername,
		symbol:      entity.SymbolNone,
	}
}

// Deliver queues a payload for the write pump. It never blocks: when the
// buffer is full the payload is dropped, as required of delivery handles.
func (that *playerSession) Deliver(payload []byte) {
	that.observeDeparture(payload)

	select {
	case that.send <- payload:
	default:
		that.logger.Warn("send buffer full, dropping payload")
	}
}

// observeDeparture mirrors the room reset: when the opponent leaves or
// disconnects the survivor is re-assigned Cross, so the session's claimed
// symbol must follow. Only the envelope category decides; bodies may carry
// arbitrary user-provided strings.
func (that *playerSession) observeDeparture(payload []byte) {
	var event struct {
		Category server.Category `json:"category"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return
	}

	if event.Category != server.CategoryPlayerLeft && event.Category != server.CategoryPlayerDisconnected {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.symbol == entity.SymbolCircle {
		that.symbol = entity.SymbolCross
	}
}

func (that *playerSession) readLoop(ctx context.Context) {
	defer func() {
		if err := that.coordinator.Disconnect(ctx, that.id); err != nil {
			that.logger.Error("failed to dispatch disconnect", "error", err)
		}
		that.closeOnce.Do(func() { close(that.send) })
	}()

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				that.logger.Error("unexpected close", "error", err)
			}
			return
		}

		message, err := ParsePlayerMessage(bytes.TrimSpace(payload))
		if err != nil {
			that.logger.Info("dropping malformed message", "error", err)
			continue
		}

		if err := that.dispatch(ctx, message); err != nil {
			that.logger.Error("failed to dispatch message", "kind", message.Kind, "error", err)
		}
	}
}

func (that *playerSession) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (that *playerSession) dispatch(ctx context.Context, message *PlayerMessage) error {
	switch message.Kind {
	case KindUsername:
		name, err := message.ContentString()
		if err != nil {
			return err
		}

		that.mu.Lock()
		that.username = TruncateUsername(name)
		that.mu.Unlock()

		return nil

	case KindCreate:
		roomName, err := message.ContentString()
		if err != nil {
			return err
		}

		that.mu.Lock()
		username := that.username
		that.mu.Unlock()

		roomID, err := that.coordinator.CreateMatch(ctx, that.id, roomName, username)
		if err != nil {
			return err
		}

		that.mu.Lock()
		that.roomID = roomID
		that.symbol = entity.SymbolCross
		that.mu.Unlock()

		return nil

	case KindJoin:
		roomID, err := message.ContentUUID()
		if err != nil {
			return err
		}

		that.mu.Lock()
		username := that.username
		that.mu.Unlock()

		joinedRoomID, err := that.coordinator.JoinMatch(ctx, that.id, roomID, username)
		if err != nil {
			return err
		}

		if joinedRoomID != uuid.Nil {
			that.mu.Lock()
			that.roomID = joinedRoomID
			that.symbol = entity.SymbolCircle
			that.mu.Unlock()
		}

		return nil

	case KindLeave:
		if err := that.coordinator.LeaveMatch(ctx, that.id); err != nil {
			return err
		}

		that.mu.Lock()
		that.roomID = uuid.Nil
		that.symbol = entity.SymbolNone
		that.mu.Unlock()

		return nil

	case KindList:
		return that.coordinator.ListMatches(ctx, that.id)

	case KindStart:
		that.mu.Lock()
		roomID, symbol := that.roomID, that.symbol
		that.mu.Unlock()

		return that.coordinator.StartGame(ctx, that.id, roomID, symbol)

	case KindTurn:
		move, err := message.ContentString()
		if err != nil {
			return err
		}

		that.mu.Lock()
		roomID, symbol := that.roomID, that.symbol
		that.mu.Unlock()

		return that.coordinator.Turn(ctx, that.id, roomID, symbol, entity.ParseCell(move))

	default:
		that.logger.Info("dropping unknown message", "kind", message.Kind)
		return nil
	}
}
