package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-cli/internal/apperror"
	"github.com/rocketscienceinc/connectfour-cli/internal/entity"
)

const (
	StatusOngoing   = "ongoing"
	StatusWon       = "won"
	StatusStalemate = "stalemate"
)

// Game wraps a board with the lifecycle state a session needs: whether it
// is over, who won, and how many tokens were placed.
type Game struct {
	Board  *entity.Board
	Status string
	Winner entity.Player
	Moves  int
}

func NewGame(starting entity.Player) *Game {
	return &Game{
		Board:  entity.NewBoard(starting),
		Status: StatusOngoing,
	}
}

// MakeMove submits a column for the current player. A finished game rejects
// every further move; board-level rejections pass through wrapped.
func (that *Game) MakeMove(col int) (entity.MoveResult, error) {
	if that.IsFinished() {
		return entity.MoveResult{}, apperror.ErrGameFinished
	}

	result, err := that.Board.GameMove(col)
	if err != nil {
		return entity.MoveResult{}, fmt.Errorf("invalid move: %w", err)
	}

	switch result.Outcome {
	case entity.OutcomeWon:
		that.Moves++
		that.Status = StatusWon
		that.Winner = result.Winner
	case entity.OutcomeStalemate:
		that.Status = StatusStalemate
	case entity.OutcomeValid:
		that.Moves++
	}

	return result, nil
}

func (that *Game) IsFinished() bool {
	return that.Status != StatusOngoing
}

// Replay rebuilds a game from a transcript of 0-indexed columns. A move that
// is rejected, or that arrives after the game already ended, fails with its
// position in the transcript.
func Replay(starting entity.Player, cols []int) (*Game, error) {
	game := NewGame(starting)

	for i, col := range cols {
		if _, err := game.MakeMove(col); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}

	return game, nil
}
