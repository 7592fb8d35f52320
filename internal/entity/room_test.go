package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_AddPlayer(t *testing.T) {
	t.Run("First occupant is Cross, second is Circle", func(t *testing.T) {
		// Given: a fresh waiting room
		room := NewRoom(uuid.New(), "room")
		first, second := uuid.New(), uuid.New()

		// When: two players take their seats
		firstSymbol := room.AddPlayer(first, "alice")
		secondSymbol := room.AddPlayer(second, "bob")

		// Then: symbols follow arrival order
		assert.Equal(t, SymbolCross, firstSymbol)
		assert.Equal(t, SymbolCircle, secondSymbol)
		assert.Equal(t, SymbolCross, room.PlayerSymbol(first))
		assert.Equal(t, SymbolCircle, room.PlayerSymbol(second))
		assert.Equal(t, 2, room.Occupancy())
	})

	t.Run("A third player is rejected", func(t *testing.T) {
		room := NewRoom(uuid.New(), "room")
		room.AddPlayer(uuid.New(), "alice")
		room.AddPlayer(uuid.New(), "bob")

		symbol := room.AddPlayer(uuid.New(), "carol")

		assert.Equal(t, SymbolNone, symbol)
		assert.Equal(t, 2, room.Occupancy())
	})
}

func TestRoom_RemovePlayer(t *testing.T) {
	t.Run("Removing one of two players resets the room for the survivor", func(t *testing.T) {
		// Given: a started match with moves on the board
		room := NewRoom(uuid.New(), "room")
		cross, circle := uuid.New(), uuid.New()
		room.AddPlayer(cross, "alice")
		room.AddPlayer(circle, "bob")
		room.Status = StatusStarted
		room.CurrentTurn = SymbolCircle
		room.MovesMade[CellMM] = cross

		// When: the cross player leaves
		remaining := room.RemovePlayer(cross)

		// Then: the survivor waits for a new opponent on a clean board as Cross
		require.True(t, remaining)
		assert.Equal(t, StatusWaiting, room.Status)
		assert.Equal(t, SymbolCross, room.CurrentTurn)
		assert.Empty(t, room.MovesMade)
		assert.Equal(t, SymbolCross, room.PlayerSymbol(circle))
	})

	t.Run("Removing the last player empties the room", func(t *testing.T) {
		room := NewRoom(uuid.New(), "room")
		player := uuid.New()
		room.AddPlayer(player, "alice")

		remaining := room.RemovePlayer(player)

		assert.False(t, remaining)
		assert.Zero(t, room.Occupancy())
	})
}

func TestRoom_Lookups(t *testing.T) {
	room := NewRoom(uuid.New(), "room")
	cross, circle := uuid.New(), uuid.New()
	room.AddPlayer(cross, "alice")
	room.AddPlayer(circle, "bob")

	t.Run("OpponentName returns the other participant's name", func(t *testing.T) {
		assert.Equal(t, "bob", room.OpponentName(cross))
		assert.Equal(t, "alice", room.OpponentName(circle))
	})

	t.Run("PlayerWithSymbol finds the holder", func(t *testing.T) {
		id, ok := room.PlayerWithSymbol(SymbolCircle)

		require.True(t, ok)
		assert.Equal(t, circle, id)
	})

	t.Run("Strangers have no symbol", func(t *testing.T) {
		assert.Equal(t, SymbolNone, room.PlayerSymbol(uuid.New()))
		assert.False(t, room.HasPlayer(uuid.New()))
	})
}

func TestRoom_Snapshot(t *testing.T) {
	t.Run("Snapshot is independent of the live room", func(t *testing.T) {
		// Given: a room with one move made
		room := NewRoom(uuid.New(), "room")
		player := uuid.New()
		room.AddPlayer(player, "alice")
		room.MovesMade[CellLL] = player

		// When: taking a snapshot and mutating the original afterwards
		snapshot := room.Snapshot()
		room.MovesMade[CellUR] = player
		room.Players[uuid.New()] = Participant{Name: "bob", Symbol: SymbolCircle}

		// Then: the snapshot keeps the state from before the mutation
		assert.Len(t, snapshot.MovesMade, 1)
		assert.Len(t, snapshot.Players, 1)
	})
}
