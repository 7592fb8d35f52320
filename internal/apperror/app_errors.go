package apperror

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room is full")
	ErrGameNotStarted    = errors.New("game is not started")
	ErrGameNotReady      = errors.New("game is not ready to start")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell")
	ErrNotAParticipant   = errors.New("player is not in the room")
	ErrOnlyCrossStarts   = errors.New("only the cross player may start the game")
	ErrServerUnavailable = errors.New("coordinator is not running")
)
