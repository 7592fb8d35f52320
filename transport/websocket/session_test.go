package websocket

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nettictactoe/backend/internal/entity"
	"github.com/nettictactoe/backend/internal/server"
)

func newTestSession(t *testing.T) *playerSession {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newPlayerSession(logger, nil, nil)
}

func (that *playerSession) claimedSymbol() entity.Symbol {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.symbol
}

func TestPlayerSession_Deliver(t *testing.T) {
	t.Run("Queues the payload for the write pump", func(t *testing.T) {
		// Given: a fresh session
		session := newTestSession(t)
		payload := server.NewEvent(server.CategoryConnected, "").Encode()

		// When: delivering a payload
		session.Deliver(payload)

		// Then: it sits in the send buffer
		require.Len(t, session.send, 1)
		assert.Equal(t, payload, <-session.send)
	})

	t.Run("Drops the payload when the buffer is full", func(t *testing.T) {
		session := newTestSession(t)
		payload := server.NewEvent(server.CategoryConnected, "").Encode()

		for i := 0; i < sendBufferSize; i++ {
			session.Deliver(payload)
		}

		session.Deliver(payload)

		assert.Len(t, session.send, sendBufferSize)
	})
}

func TestPlayerSession_ObserveDeparture(t *testing.T) {
	t.Run("An opponent leaving re-assigns a Circle session Cross", func(t *testing.T) {
		// Given: a session seated as Circle
		session := newTestSession(t)
		session.symbol = entity.SymbolCircle

		// When: the room announces the departure
		session.Deliver(server.NewEvent(server.CategoryPlayerLeft, "").Encode())

		// Then: the claimed symbol follows the room reset
		assert.Equal(t, entity.SymbolCross, session.claimedSymbol())
	})

	t.Run("An opponent disconnecting re-assigns a Circle session Cross", func(t *testing.T) {
		session := newTestSession(t)
		session.symbol = entity.SymbolCircle

		session.Deliver(server.NewEvent(server.CategoryPlayerDisconnected, "some-player-id").Encode())

		assert.Equal(t, entity.SymbolCross, session.claimedSymbol())
	})

	t.Run("A Cross session keeps its symbol on departures", func(t *testing.T) {
		session := newTestSession(t)
		session.symbol = entity.SymbolCross

		session.Deliver(server.NewEvent(server.CategoryPlayerLeft, "").Encode())

		assert.Equal(t, entity.SymbolCross, session.claimedSymbol())
	})

	t.Run("Departure category names inside bodies do not flip the symbol", func(t *testing.T) {
		// Given: a session seated as Circle
		session := newTestSession(t)
		session.symbol = entity.SymbolCircle

		// When: other events carry those strings as user-provided content
		list := server.MatchListBody{Matches: []server.MatchInfo{
			{MatchID: "id", RoomName: "PlayerLeft", Status: entity.StatusWaiting, Occupancy: 1},
		}}
		session.Deliver(server.NewEvent(server.CategoryMatchList, list).Encode())
		session.Deliver(server.NewEvent(server.CategoryPlayerConnected, "PlayerDisconnected").Encode())

		// Then: the claimed symbol is untouched
		assert.Equal(t, entity.SymbolCircle, session.claimedSymbol())
	})

	t.Run("Unparseable payloads are ignored", func(t *testing.T) {
		session := newTestSession(t)
		session.symbol = entity.SymbolCircle

		session.Deliver([]byte("not json"))

		assert.Equal(t, entity.SymbolCircle, session.claimedSymbol())
	})
}
