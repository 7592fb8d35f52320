// Package tictactoe decides terminal outcomes for a 3x3 board.
package tictactoe

import (
	"github.com/google/uuid"

	"github.com/nettictactoe/backend/internal/entity"
)

// IsWinningMove reports whether claiming move completes a line for playerID,
// given the moves recorded so far (move itself may or may not be recorded
// yet). A line is the move's row, its column, or the lower-left/middle/
// upper-right diagonal when the move lies on it.
func IsWinningMove(moves map[entity.Cell]uuid.UUID, playerID uuid.UUID, move entity.Cell) bool {
	if !move.IsValid() {
		return false
	}

	owned := make(map[entity.Cell]struct{}, len(moves)+1)
	for cell, id := range moves {
		if id == playerID {
			owned[cell] = struct{}{}
		}
	}
	owned[move] = struct{}{}

	if ownsLine(owned, move.RowCells()) {
		return true
	}

	if ownsLine(owned, move.ColumnCells()) {
		return true
	}

	if move.OnMainDiagonal() && ownsLine(owned, entity.MainDiagonalCells()) {
		return true
	}

	return false
}

// IsTie reports whether the board is full. Callers check IsWinningMove first;
// a full board with a completed line is a victory, not a tie.
func IsTie(moves map[entity.Cell]uuid.UUID) bool {
	return len(moves) == entity.BoardSize
}

func ownsLine(owned map[entity.Cell]struct{}, line [3]entity.Cell) bool {
	for _, cell := range line {
		if _, ok := owned[cell]; !ok {
			return false
		}
	}

	return true
}
