package server

import (
	"github.com/google/uuid"

	"github.com/nettictactoe/backend/internal/entity"
)

// Router fans an encoded event out to the sessions of a room's participants.
// Like the registry it is only ever touched by the coordinator goroutine.
type Router struct {
	registry *Registry
}

func NewRouter(registry *Registry) *Router {
	return &Router{registry: registry}
}

// Broadcast delivers payload to every participant of room except skip.
// Pass uuid.Nil to reach everyone.
func (that *Router) Broadcast(room *entity.Room, payload []byte, skip uuid.UUID) {
	for id := range room.Players {
		if id == skip {
			continue
		}

		that.registry.Deliver(id, payload)
	}
}

// Unicast delivers payload to a single session.
func (that *Router) Unicast(id uuid.UUID, payload []byte) {
	that.registry.Deliver(id, payload)
}
