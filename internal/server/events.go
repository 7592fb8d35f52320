package server

import (
	"encoding/json"

	"github.com/nettictactoe/backend/internal/entity"
)

// Category labels an outbound event.
type Category string

const (
	CategoryConnected          Category = "Connected"
	CategoryPlayerConnected    Category = "PlayerConnected"
	CategoryMatchCreated       Category = "MatchCreated"
	CategoryMatchJoined        Category = "MatchJoined"
	CategoryMatchList          Category = "MatchList"
	CategoryPlayerLeft         Category = "PlayerLeft"
	CategoryPlayerDisconnected Category = "PlayerDisconnected"
	CategoryGameStart          Category = "GameStart"
	CategoryTurn               Category = "Turn"
	CategoryGameOver           Category = "GameOver"
)

const (
	OutcomeVictory = "victory"
	OutcomeTie     = "tie"
)

// Event is the outbound envelope every peer notification is shaped as.
type Event struct {
	Category Category `json:"category"`
	Body     any      `json:"body"`
}

func NewEvent(category Category, body any) Event {
	return Event{Category: category, Body: body}
}

// Encode serializes the event for delivery. A body that cannot be marshaled
// yields nil, which the registry refuses to deliver; the notification is
// dropped rather than sent as an empty frame.
func (that Event) Encode() []byte {
	payload, err := json.Marshal(that)
	if err != nil {
		return nil
	}

	return payload
}

// GameOverBody is broadcast to the whole room when a match finishes.
// Winner is set only for a victory.
type GameOverBody struct {
	Outcome string `json:"outcome"`
	Winner  string `json:"winner,omitempty"`
}

// MatchInfo is one row of a MatchList body.
type MatchInfo struct {
	MatchID   string        `json:"match_id"`
	RoomName  string        `json:"room_name"`
	Status    entity.Status `json:"status"`
	Occupancy int           `json:"occupancy"`
}

type MatchListBody struct {
	Matches []MatchInfo `json:"matches"`
}
