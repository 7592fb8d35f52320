package entity

import "github.com/google/uuid"

// Status is the room lifecycle state. It only advances forward, except for
// the explicit reset back to waiting when a participant departs.
type Status string

const (
	StatusWaiting  Status = "Waiting"
	StatusStarted  Status = "Started"
	StatusFinished Status = "Finished"
)

const MaxPlayers = 2

// Participant is one player's membership in a room.
type Participant struct {
	Name   string
	Symbol Symbol
}

// Room is one match's mutable state. It is owned exclusively by the match
// coordinator; nothing outside the coordinator goroutine mutates it.
type Room struct {
	ID          uuid.UUID
	Name        string
	Players     map[uuid.UUID]Participant
	Status      Status
	CurrentTurn Symbol
	MovesMade   map[Cell]uuid.UUID
}

func NewRoom(id uuid.UUID, name string) *Room {
	return &Room{
		ID:          id,
		Name:        name,
		Players:     make(map[uuid.UUID]Participant),
		Status:      StatusWaiting,
		CurrentTurn: SymbolCross,
		MovesMade:   make(map[Cell]uuid.UUID),
	}
}

// AddPlayer inserts a participant. The first occupant is assigned Cross, the
// second Circle. Returns the assigned symbol, or SymbolNone if the room is full.
func (that *Room) AddPlayer(id uuid.UUID, name string) Symbol {
	if len(that.Players) >= MaxPlayers {
		return SymbolNone
	}

	symbol := SymbolCross
	if len(that.Players) == 1 {
		symbol = SymbolCircle
	}

	that.Players[id] = Participant{Name: name, Symbol: symbol}

	return symbol
}

// RemovePlayer removes a participant and reports whether anyone remains.
// When someone does, the room is reset so the survivor can immediately wait
// for a fresh opponent.
func (that *Room) RemovePlayer(id uuid.UUID) bool {
	delete(that.Players, id)

	if len(that.Players) == 0 {
		return false
	}

	that.Reset()

	return true
}

// Reset clears the board, returns the room to waiting and re-assigns the
// remaining participant Cross so they may start the next match.
func (that *Room) Reset() {
	that.MovesMade = make(map[Cell]uuid.UUID)
	that.Status = StatusWaiting
	that.CurrentTurn = SymbolCross

	for id, player := range that.Players {
		player.Symbol = SymbolCross
		that.Players[id] = player
	}
}

func (that *Room) Occupancy() int {
	return len(that.Players)
}

func (that *Room) HasPlayer(id uuid.UUID) bool {
	_, ok := that.Players[id]
	return ok
}

// PlayerSymbol returns the symbol assigned to a participant, or SymbolNone
// for a stranger.
func (that *Room) PlayerSymbol(id uuid.UUID) Symbol {
	player, ok := that.Players[id]
	if !ok {
		return SymbolNone
	}

	return player.Symbol
}

// PlayerWithSymbol returns the id of the participant holding the symbol.
func (that *Room) PlayerWithSymbol(symbol Symbol) (uuid.UUID, bool) {
	for id, player := range that.Players {
		if player.Symbol == symbol {
			return id, true
		}
	}

	return uuid.Nil, false
}

// OpponentName returns the display name of the participant other than id.
func (that *Room) OpponentName(id uuid.UUID) string {
	for playerID, player := range that.Players {
		if playerID != id {
			return player.Name
		}
	}

	return ""
}

func (that *Room) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Room) IsStarted() bool {
	return that.Status == StatusStarted
}

func (that *Room) IsFinished() bool {
	return that.Status == StatusFinished
}

// Snapshot returns a deep copy safe to hand outside the coordinator.
func (that *Room) Snapshot() Room {
	players := make(map[uuid.UUID]Participant, len(that.Players))
	for id, player := range that.Players {
		players[id] = player
	}

	moves := make(map[Cell]uuid.UUID, len(that.MovesMade))
	for cell, id := range that.MovesMade {
		moves[cell] = id
	}

	return Room{
		ID:          that.ID,
		Name:        that.Name,
		Players:     players,
		Status:      that.Status,
		CurrentTurn: that.CurrentTurn,
		MovesMade:   moves,
	}
}
