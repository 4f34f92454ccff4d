package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-cli/internal/apperror"
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Outcome classifies the result of an accepted move.
type Outcome string

const (
	OutcomeValid     Outcome = "valid"
	OutcomeWon       Outcome = "won"
	OutcomeStalemate Outcome = "stalemate"
)

// MoveResult reports what a single call to GameMove did.
type MoveResult struct {
	Outcome Outcome
	Winner  Player // set only when Outcome is OutcomeWon
	Row     int    // landing row of the placed token, -1 if none was placed
}

// Board holds the 6x7 grid and the turn cursor. Row 0 is the bottom row,
// so tokens fall toward lower row indices being filled first.
type Board struct {
	Grid          [Rows][Columns]Cell `json:"grid"`
	CurrentPlayer Player              `json:"current_player"`
}

// NewBoard returns an all-empty board with the given starting player.
func NewBoard(starting Player) *Board {
	return &Board{CurrentPlayer: starting}
}

// UpdateCell unconditionally overwrites one cell. It does no gravity
// checking; it exists so tests and replay tooling can build arbitrary
// positions directly.
func (that *Board) UpdateCell(row, col int, cell Cell) {
	that.Grid[row][col] = cell
}

// RowAvailable scans the column bottom to top and returns the lowest empty
// row, or false when all six rows are occupied.
func (that *Board) RowAvailable(col int) (int, bool) {
	for row := 0; row < Rows; row++ {
		if that.Grid[row][col] == EmptyCell {
			return row, true
		}
	}
	return 0, false
}

// ValidMoves returns the columns that still have room for a token.
func (that *Board) ValidMoves() []int {
	moves := []int{}
	for col := 0; col < Columns; col++ {
		if _, ok := that.RowAvailable(col); ok {
			moves = append(moves, col)
		}
	}
	return moves
}

// GameMove drops a token for the current player into the given column.
//
// A full board is reported as OutcomeStalemate before the column is even
// validated, so a stalemate wins over any rejection. A full column or an
// out-of-range index is a rejected move: an error is returned and nothing
// changes. On a win the turn cursor is left on the winner; on a plain valid
// move it flips to the other player.
func (that *Board) GameMove(col int) (MoveResult, error) {
	if len(that.ValidMoves()) == 0 {
		return MoveResult{Outcome: OutcomeStalemate, Row: -1}, nil
	}

	if col < 0 || col >= Columns {
		return MoveResult{Row: -1}, fmt.Errorf("%w: column %d", apperror.ErrColumnOutOfRange, col)
	}

	row, ok := that.RowAvailable(col)
	if !ok {
		return MoveResult{Row: -1}, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, col)
	}

	that.UpdateCell(row, col, that.CurrentPlayer.Cell())

	if that.HasWon(row, col) {
		return MoveResult{Outcome: OutcomeWon, Winner: that.CurrentPlayer, Row: row}, nil
	}

	that.CurrentPlayer = that.CurrentPlayer.Other()

	return MoveResult{Outcome: OutcomeValid, Row: row}, nil
}

// HasWon reports whether a run of four tokens of the current player's color
// passes through (row, col). It scans the whole row and column, and both
// diagonals through the cell, with a running consecutive count that resets
// on any empty or opposing cell.
func (that *Board) HasWon(row, col int) bool {
	target := that.CurrentPlayer.Cell()

	count := 0
	for c := 0; c < Columns; c++ {
		if count = nextCount(count, that.Grid[row][c], target); count == ToWin {
			return true
		}
	}

	count = 0
	for r := 0; r < Rows; r++ {
		if count = nextCount(count, that.Grid[r][col], target); count == ToWin {
			return true
		}
	}

	// Rising diagonal: clamp back to its lower-left end, then scan up-right.
	step := min(row, col)
	count = 0
	for r, c := row-step, col-step; r < Rows && c < Columns; r, c = r+1, c+1 {
		if count = nextCount(count, that.Grid[r][c], target); count == ToWin {
			return true
		}
	}

	// Falling diagonal: clamp to its upper-left end, then scan down-right.
	step = min(Rows-1-row, col)
	count = 0
	for r, c := row+step, col-step; r >= 0 && c < Columns; r, c = r-1, c+1 {
		if count = nextCount(count, that.Grid[r][c], target); count == ToWin {
			return true
		}
	}

	return false
}

func nextCount(count int, cell, target Cell) int {
	if cell != target {
		return 0
	}
	return count + 1
}
