package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nettictactoe/backend/internal/apperror"
	"github.com/nettictactoe/backend/internal/entity"
	"github.com/nettictactoe/backend/internal/tictactoe"
)

const archiveTimeout = 5 * time.Second

func (that *Coordinator) handleConnect(cmd *connectCmd) {
	log := that.logger.With("method", "handleConnect", "player_id", cmd.id)

	that.registry.Register(cmd.id, cmd.handle)

	if that.monitor != nil {
		that.monitor.IncOnlinePlayers()
	}

	that.router.Unicast(cmd.id, NewEvent(CategoryConnected, "").Encode())

	log.Info("player connected", "online", that.registry.Len())
}

func (that *Coordinator) handleDisconnect(cmd *disconnectCmd) {
	log := that.logger.With("method", "handleDisconnect", "player_id", cmd.id)

	that.removeFromRoom(cmd.id, CategoryPlayerDisconnected)

	if that.registry.Unregister(cmd.id) && that.monitor != nil {
		that.monitor.DecOnlinePlayers()
	}

	log.Info("player disconnected", "online", that.registry.Len())
}

func (that *Coordinator) handleCreateMatch(cmd *createMatchCmd) {
	log := that.logger.With("method", "handleCreateMatch", "player_id", cmd.playerID)

	// A creator abandoning a previous room leaves it first, so the index
	// never points at two rooms.
	that.removeFromRoom(cmd.playerID, CategoryPlayerLeft)

	roomID := uuid.New()
	room := entity.NewRoom(roomID, cmd.roomName)
	room.AddPlayer(cmd.playerID, cmd.playerName)

	that.rooms[roomID] = room
	that.players[cmd.playerID] = roomID
	that.updateRoomCount()

	that.router.Unicast(cmd.playerID, NewEvent(CategoryMatchCreated, roomID.String()).Encode())

	cmd.roomID = roomID

	log.Info("match created", "room_id", roomID, "room_name", cmd.roomName)
}

func (that *Coordinator) handleJoinMatch(cmd *joinMatchCmd) {
	log := that.logger.With("method", "handleJoinMatch", "player_id", cmd.playerID, "room_id", cmd.roomID)

	room, ok := that.rooms[cmd.roomID]
	if !ok {
		log.Info("ignoring join", "reason", apperror.ErrRoomNotFound)
		return
	}

	if !room.IsWaiting() || room.Occupancy() != 1 || room.HasPlayer(cmd.playerID) {
		log.Info("ignoring join", "reason", apperror.ErrRoomFull)
		return
	}

	that.removeFromRoom(cmd.playerID, CategoryPlayerLeft)

	opponentName := room.OpponentName(cmd.playerID)

	room.AddPlayer(cmd.playerID, cmd.playerName)
	that.players[cmd.playerID] = cmd.roomID

	that.router.Unicast(cmd.playerID, NewEvent(CategoryMatchJoined, opponentName).Encode())
	that.router.Broadcast(room, NewEvent(CategoryPlayerConnected, cmd.playerName).Encode(), cmd.playerID)

	cmd.joinedRoomID = cmd.roomID

	log.Info("match joined", "room_name", room.Name)
}

func (that *Coordinator) handleLeaveMatch(cmd *leaveMatchCmd) {
	log := that.logger.With("method", "handleLeaveMatch", "player_id", cmd.playerID)

	if !that.removeFromRoom(cmd.playerID, CategoryPlayerLeft) {
		log.Info("player is not in any room")
		return
	}

	log.Info("match left")
}

func (that *Coordinator) handleListMatches(cmd *listMatchesCmd) {
	log := that.logger.With("method", "handleListMatches", "player_id", cmd.playerID)

	matches := make([]MatchInfo, 0, len(that.rooms))
	for roomID, room := range that.rooms {
		matches = append(matches, MatchInfo{
			MatchID:   roomID.String(),
			RoomName:  room.Name,
			Status:    room.Status,
			Occupancy: room.Occupancy(),
		})
	}

	that.router.Unicast(cmd.playerID, NewEvent(CategoryMatchList, MatchListBody{Matches: matches}).Encode())

	log.Info("match list sent", "matches", len(matches))
}

func (that *Coordinator) handleStartGame(cmd *startGameCmd) {
	log := that.logger.With("method", "handleStartGame", "player_id", cmd.playerID, "room_id", cmd.roomID)

	room, ok := that.rooms[cmd.roomID]
	if !ok {
		log.Info("ignoring start", "reason", apperror.ErrRoomNotFound)
		return
	}

	if !room.IsWaiting() || room.Occupancy() != entity.MaxPlayers {
		log.Info("ignoring start", "reason", apperror.ErrGameNotReady)
		return
	}

	if cmd.symbol != entity.SymbolCross || room.PlayerSymbol(cmd.playerID) != entity.SymbolCross {
		log.Info("ignoring start", "reason", apperror.ErrOnlyCrossStarts)
		return
	}

	room.Status = entity.StatusStarted

	that.router.Broadcast(room, NewEvent(CategoryGameStart, "").Encode(), uuid.Nil)

	log.Info("game started", "room_name", room.Name)
}

func (that *Coordinator) handleTurn(cmd *turnCmd) {
	log := that.logger.With("method", "handleTurn", "player_id", cmd.playerID, "room_id", cmd.roomID, "move", cmd.cell.String())

	room, ok := that.rooms[cmd.roomID]
	if !ok || !room.IsStarted() {
		log.Info("ignoring turn", "reason", apperror.ErrGameNotStarted)
		return
	}

	if !room.HasPlayer(cmd.playerID) {
		log.Info("ignoring turn", "reason", apperror.ErrNotAParticipant)
		return
	}

	if !cmd.symbol.IsValid() || cmd.symbol != room.CurrentTurn || room.PlayerSymbol(cmd.playerID) != cmd.symbol {
		log.Info("ignoring turn", "reason", apperror.ErrNotYourTurn)
		return
	}

	if !cmd.cell.IsValid() {
		log.Info("ignoring turn", "reason", apperror.ErrInvalidCell)
		return
	}

	if _, taken := room.MovesMade[cmd.cell]; taken {
		log.Info("ignoring turn", "reason", apperror.ErrCellOccupied)
		return
	}

	room.MovesMade[cmd.cell] = cmd.playerID

	switch {
	case tictactoe.IsWinningMove(room.MovesMade, cmd.playerID, cmd.cell):
		room.Status = entity.StatusFinished
		that.router.Broadcast(room, NewEvent(CategoryTurn, cmd.cell.String()).Encode(), cmd.playerID)

		body := GameOverBody{Outcome: OutcomeVictory, Winner: cmd.symbol.String()}
		that.router.Broadcast(room, NewEvent(CategoryGameOver, body).Encode(), uuid.Nil)

		that.recordResult(room, body)
		log.Info("game over", "outcome", OutcomeVictory, "winner", cmd.symbol)

	case tictactoe.IsTie(room.MovesMade):
		room.Status = entity.StatusFinished
		that.router.Broadcast(room, NewEvent(CategoryTurn, cmd.cell.String()).Encode(), cmd.playerID)

		body := GameOverBody{Outcome: OutcomeTie}
		that.router.Broadcast(room, NewEvent(CategoryGameOver, body).Encode(), uuid.Nil)

		that.recordResult(room, body)
		log.Info("game over", "outcome", OutcomeTie)

	default:
		room.CurrentTurn = cmd.symbol.Opponent()
		that.router.Broadcast(room, NewEvent(CategoryTurn, cmd.cell.String()).Encode(), cmd.playerID)

		log.Info("turn accepted", "next", room.CurrentTurn)
	}
}

func (that *Coordinator) handleGameState(cmd *gameStateCmd) {
	room, ok := that.rooms[cmd.roomID]
	if !ok {
		return
	}

	cmd.room = room.Snapshot()
	cmd.found = true
}

// removeFromRoom takes the player out of the room the index points at and
// reports whether they were in one. The survivor (if any) is notified with
// the given category and the room is reset; an emptied room is deleted.
func (that *Coordinator) removeFromRoom(playerID uuid.UUID, category Category) bool {
	roomID, ok := that.players[playerID]
	if !ok {
		return false
	}

	delete(that.players, playerID)

	room, ok := that.rooms[roomID]
	if !ok {
		return false
	}

	if !room.RemovePlayer(playerID) {
		delete(that.rooms, roomID)
		that.updateRoomCount()
		return true
	}

	body := ""
	if category == CategoryPlayerDisconnected {
		body = playerID.String()
	}

	that.router.Broadcast(room, NewEvent(category, body).Encode(), playerID)

	return true
}

func (that *Coordinator) recordResult(room *entity.Room, body GameOverBody) {
	if that.monitor != nil {
		that.monitor.IncMatchesFinished()
	}

	if that.archive == nil {
		return
	}

	result := MatchResult{
		RoomID:     room.ID.String(),
		RoomName:   room.Name,
		Outcome:    body.Outcome,
		Winner:     body.Winner,
		Moves:      len(room.MovesMade),
		FinishedAt: time.Now().UTC(),
	}

	log := that.logger.With("method", "recordResult", "room_id", result.RoomID)

	// Archiving must never stall the command loop.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()

		if err := that.archive.RecordResult(ctx, result); err != nil {
			log.Error("failed to record match result", "error", err)
		}
	}()
}

func (that *Coordinator) updateRoomCount() {
	if that.monitor != nil {
		that.monitor.SetActiveRooms(len(that.rooms))
	}
}
