package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Inbound message kinds understood by the session layer.
const (
	KindStart    = "Start"
	KindList     = "List"
	KindCreate   = "Create"
	KindJoin     = "Join"
	KindLeave    = "Leave"
	KindTurn     = "Turn"
	KindUsername = "Username"
)

const maxUsernameLength = 30

// PlayerMessage is one parsed client payload. Content is kind-dependent: a
// room name for Create, a room id for Join, a cell name for Turn, a display
// name for Username, absent for Start/List/Leave.
type PlayerMessage struct {
	Kind    string          `json:"message"`
	Content json.RawMessage `json:"content,omitempty"`
}

func ParsePlayerMessage(payload []byte) (*PlayerMessage, error) {
	var message PlayerMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player message: %w", err)
	}

	return &message, nil
}

// ContentString unmarshals the content as a plain string.
func (that *PlayerMessage) ContentString() (string, error) {
	var value string
	if err := json.Unmarshal(that.Content, &value); err != nil {
		return "", fmt.Errorf("failed to unmarshal message content: %w", err)
	}

	return value, nil
}

// ContentUUID unmarshals the content as a uuid.
func (that *PlayerMessage) ContentUUID() (uuid.UUID, error) {
	value, err := that.ContentString()
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse uuid content: %w", err)
	}

	return id, nil
}

// TruncateUsername caps a display name at the protocol limit.
func TruncateUsername(name string) string {
	runes := []rune(name)
	if len(runes) <= maxUsernameLength {
		return name
	}

	return string(runes[:maxUsernameLength])
}
