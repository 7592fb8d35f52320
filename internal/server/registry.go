package server

import "github.com/google/uuid"

// Handle is a session's outbound delivery capability. Implementations must
// never block: a slow or dead peer drops the payload instead of stalling the
// coordinator.
type Handle interface {
	Deliver(payload []byte)
}

// Registry maps session ids to their delivery handles. It is owned by the
// coordinator goroutine and carries no locking of its own.
type Registry struct {
	sessions map[uuid.UUID]Handle
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]Handle),
	}
}

// Register inserts or overwrites the handle for id.
func (that *Registry) Register(id uuid.UUID, handle Handle) {
	that.sessions[id] = handle
}

// Unregister removes the mapping and reports whether one existed.
func (that *Registry) Unregister(id uuid.UUID) bool {
	_, ok := that.sessions[id]
	delete(that.sessions, id)

	return ok
}

// Deliver best-effort dispatches payload to id. A missing session is silently
// ignored; it is already gone. Empty payloads (a body that failed to encode)
// are dropped instead of reaching the peer as empty frames.
func (that *Registry) Deliver(id uuid.UUID, payload []byte) {
	if len(payload) == 0 {
		return
	}

	handle, ok := that.sessions[id]
	if !ok {
		return
	}

	handle.Deliver(payload)
}

func (that *Registry) Len() int {
	return len(that.sessions)
}
