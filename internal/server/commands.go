package server

import (
	"github.com/google/uuid"

	"github.com/nettictactoe/backend/internal/entity"
)

// command is one unit of work for the coordinator loop. Every state-changing
// operation is a command; the loop applies them strictly one at a time.
type command interface {
	apply(that *Coordinator)
}

// envelope pairs a command with its completion signal. The loop closes done
// after apply, which is what makes the submitting call synchronous.
type envelope struct {
	cmd  command
	done chan struct{}
}

type connectCmd struct {
	id     uuid.UUID
	handle Handle
}

type disconnectCmd struct {
	id uuid.UUID
}

type createMatchCmd struct {
	playerID   uuid.UUID
	roomName   string
	playerName string

	roomID uuid.UUID // reply
}

type joinMatchCmd struct {
	playerID   uuid.UUID
	roomID     uuid.UUID
	playerName string

	joinedRoomID uuid.UUID // reply, uuid.Nil when the join was ignored
}

type leaveMatchCmd struct {
	playerID uuid.UUID
}

type listMatchesCmd struct {
	playerID uuid.UUID
}

type startGameCmd struct {
	playerID uuid.UUID
	roomID   uuid.UUID
	symbol   entity.Symbol
}

type turnCmd struct {
	playerID uuid.UUID
	roomID   uuid.UUID
	symbol   entity.Symbol
	cell     entity.Cell
}

type gameStateCmd struct {
	roomID uuid.UUID

	room  entity.Room // reply
	found bool
}

func (that *connectCmd) apply(c *Coordinator)     { c.handleConnect(that) }
func (that *disconnectCmd) apply(c *Coordinator)  { c.handleDisconnect(that) }
func (that *createMatchCmd) apply(c *Coordinator) { c.handleCreateMatch(that) }
func (that *joinMatchCmd) apply(c *Coordinator)   { c.handleJoinMatch(that) }
func (that *leaveMatchCmd) apply(c *Coordinator)  { c.handleLeaveMatch(that) }
func (that *listMatchesCmd) apply(c *Coordinator) { c.handleListMatches(that) }
func (that *startGameCmd) apply(c *Coordinator)   { c.handleStartGame(that) }
func (that *turnCmd) apply(c *Coordinator)        { c.handleTurn(that) }
func (that *gameStateCmd) apply(c *Coordinator)   { c.handleGameState(that) }
