package entity

import (
	"testing"

	"github.com/rocketscienceinc/connectfour-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillDrawnBoard fills the whole grid with a known position that contains
// no run of four: rows 0,1,4,5 hold one color pattern and rows 2,3 the
// inverse, alternating by column.
func fillDrawnBoard(board *Board) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			redBase := row%4 < 2
			flip := col%2 == 1
			if redBase != flip {
				board.UpdateCell(row, col, PlayerRed.Cell())
			} else {
				board.UpdateCell(row, col, PlayerYellow.Cell())
			}
		}
	}
}

func TestNewBoard(t *testing.T) {
	t.Run("Starts empty with the chosen starting player", func(t *testing.T) {
		// Given: a fresh board for Red
		board := NewBoard(PlayerRed)

		// Then: the turn cursor is on Red and every cell is empty
		assert.Equal(t, PlayerRed, board.CurrentPlayer)
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				assert.Equal(t, EmptyCell, board.Grid[row][col])
			}
		}
	})
}

func TestBoard_RowAvailable(t *testing.T) {
	t.Run("Empty column offers the bottom row", func(t *testing.T) {
		board := NewBoard(PlayerRed)

		row, ok := board.RowAvailable(3)

		require.True(t, ok)
		assert.Equal(t, 0, row)
	})

	t.Run("Partially filled column offers the first open row", func(t *testing.T) {
		// Given: rows 0..2 of column 5 occupied
		board := NewBoard(PlayerRed)
		board.UpdateCell(0, 5, PlayerRed.Cell())
		board.UpdateCell(1, 5, PlayerYellow.Cell())
		board.UpdateCell(2, 5, PlayerRed.Cell())

		row, ok := board.RowAvailable(5)

		require.True(t, ok)
		assert.Equal(t, 3, row)
	})

	t.Run("Full column has no room", func(t *testing.T) {
		board := NewBoard(PlayerRed)
		for row := 0; row < Rows; row++ {
			board.UpdateCell(row, 2, PlayerYellow.Cell())
		}

		_, ok := board.RowAvailable(2)

		assert.False(t, ok)
	})
}

func TestBoard_GameMove(t *testing.T) {
	t.Run("Token lands on the lowest empty row", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard(PlayerRed)

		// When: Red plays column 4
		result, err := board.GameMove(4)

		// Then: the token sits on row 0 and the turn passes to Yellow
		require.NoError(t, err)
		assert.Equal(t, OutcomeValid, result.Outcome)
		assert.Equal(t, 0, result.Row)
		assert.Equal(t, PlayerRed.Cell(), board.Grid[0][4])
		assert.Equal(t, PlayerYellow, board.CurrentPlayer)
	})

	t.Run("Tokens stack on top of earlier ones", func(t *testing.T) {
		// Given: rows 0..2 of column 1 already filled
		board := NewBoard(PlayerRed)
		board.UpdateCell(0, 1, PlayerYellow.Cell())
		board.UpdateCell(1, 1, PlayerRed.Cell())
		board.UpdateCell(2, 1, PlayerYellow.Cell())

		result, err := board.GameMove(1)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Row)
		assert.Equal(t, PlayerRed.Cell(), board.Grid[3][1])
	})

	t.Run("Full column rejects the move without changing state", func(t *testing.T) {
		// Given: column 6 stacked to the top
		board := NewBoard(PlayerRed)
		for row := 0; row < Rows; row++ {
			board.UpdateCell(row, 6, PlayerYellow.Cell())
		}

		// When: Red tries column 6 anyway
		_, err := board.GameMove(6)

		// Then: the move is rejected and it is still Red's turn
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.Contains(t, err.Error(), "column 6")
		assert.Equal(t, PlayerRed, board.CurrentPlayer)
	})

	t.Run("Out-of-range column is rejected explicitly", func(t *testing.T) {
		board := NewBoard(PlayerRed)

		_, err := board.GameMove(7)
		require.ErrorIs(t, err, apperror.ErrColumnOutOfRange)

		_, err = board.GameMove(-1)
		require.ErrorIs(t, err, apperror.ErrColumnOutOfRange)

		assert.Equal(t, PlayerRed, board.CurrentPlayer)
	})

	t.Run("Winning move freezes the turn cursor", func(t *testing.T) {
		// Given: Red already holds row 0 of columns 0..2
		board := NewBoard(PlayerRed)
		board.UpdateCell(0, 0, PlayerRed.Cell())
		board.UpdateCell(0, 1, PlayerRed.Cell())
		board.UpdateCell(0, 2, PlayerRed.Cell())

		// When: Red completes the run on column 3
		result, err := board.GameMove(3)

		// Then: Red wins and remains the current player
		require.NoError(t, err)
		assert.Equal(t, OutcomeWon, result.Outcome)
		assert.Equal(t, PlayerRed, result.Winner)
		assert.Equal(t, PlayerRed, board.CurrentPlayer)
	})

	t.Run("Full board reports stalemate for any input", func(t *testing.T) {
		// Given: a completely full board with no four-in-a-row
		board := NewBoard(PlayerRed)
		fillDrawnBoard(board)

		// When: a move names a full column, an empty-ish column or an
		// out-of-range index
		for _, col := range []int{0, 3, 42, -5} {
			result, err := board.GameMove(col)

			// Then: stalemate wins over every rejection
			require.NoError(t, err)
			assert.Equal(t, OutcomeStalemate, result.Outcome)
			assert.Equal(t, -1, result.Row)
		}
	})
}

func TestBoard_ValidMoves(t *testing.T) {
	t.Run("Fresh board offers every column", func(t *testing.T) {
		board := NewBoard(PlayerRed)

		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, board.ValidMoves())
	})

	t.Run("Full columns are excluded", func(t *testing.T) {
		board := NewBoard(PlayerRed)
		for row := 0; row < Rows; row++ {
			board.UpdateCell(row, 0, PlayerRed.Cell())
			board.UpdateCell(row, 4, PlayerYellow.Cell())
		}

		assert.Equal(t, []int{1, 2, 3, 5, 6}, board.ValidMoves())
	})

	t.Run("Full board offers nothing", func(t *testing.T) {
		board := NewBoard(PlayerRed)
		fillDrawnBoard(board)

		assert.Empty(t, board.ValidMoves())
	})
}

func TestBoard_HasWon_Horizontal(t *testing.T) {
	t.Run("Run of four is detected from every cell in it", func(t *testing.T) {
		// Given: Red on row 0, columns 1..4
		board := NewBoard(PlayerRed)
		for col := 1; col <= 4; col++ {
			board.UpdateCell(0, col, PlayerRed.Cell())
		}

		// Then: every cell of the run reports the win
		for col := 1; col <= 4; col++ {
			assert.True(t, board.HasWon(0, col), "column %d", col)
		}
	})

	t.Run("Run of three is not a win", func(t *testing.T) {
		board := NewBoard(PlayerRed)
		for col := 1; col <= 3; col++ {
			board.UpdateCell(0, col, PlayerRed.Cell())
		}

		for col := 1; col <= 3; col++ {
			assert.False(t, board.HasWon(0, col), "column %d", col)
		}
	})

	t.Run("Opposing token in the middle breaks the run", func(t *testing.T) {
		// Given: Red on columns 1..6 of row 0 except a Yellow gap at 2
		board := NewBoard(PlayerRed)
		for col := 1; col <= 6; col++ {
			board.UpdateCell(0, col, PlayerRed.Cell())
		}
		board.UpdateCell(0, 2, PlayerYellow.Cell())

		// Then: columns 3..6 still form a run of four
		assert.True(t, board.HasWon(0, 3))
		// And: a shorter row of Red above it does not win
		board.UpdateCell(1, 1, PlayerRed.Cell())
		board.UpdateCell(1, 2, PlayerRed.Cell())
		board.UpdateCell(1, 3, PlayerRed.Cell())
		assert.False(t, board.HasWon(1, 1))
	})
}

func TestBoard_HasWon_Vertical(t *testing.T) {
	t.Run("Stack of four on top of an opposing token", func(t *testing.T) {
		// Given: column 3 holding Yellow, Red, then four Yellow
		board := NewBoard(PlayerYellow)
		board.UpdateCell(0, 3, PlayerYellow.Cell())
		board.UpdateCell(1, 3, PlayerRed.Cell())
		for row := 2; row <= 5; row++ {
			board.UpdateCell(row, 3, PlayerYellow.Cell())
		}

		// Then: the upper four Yellow tokens win
		assert.True(t, board.HasWon(2, 3))
		assert.True(t, board.HasWon(5, 3))
	})

	t.Run("Stack of three is not a win", func(t *testing.T) {
		board := NewBoard(PlayerYellow)
		for row := 0; row <= 2; row++ {
			board.UpdateCell(row, 5, PlayerYellow.Cell())
		}

		assert.False(t, board.HasWon(0, 5))
	})
}

func TestBoard_HasWon_Diagonals(t *testing.T) {
	t.Run("Rising diagonal ending at the grid corner", func(t *testing.T) {
		// Given: Red on the rising diagonal (1,3)..(4,6)
		board := NewBoard(PlayerRed)
		board.UpdateCell(1, 3, PlayerRed.Cell())
		board.UpdateCell(2, 4, PlayerRed.Cell())
		board.UpdateCell(3, 5, PlayerRed.Cell())
		board.UpdateCell(4, 6, PlayerRed.Cell())

		// Then: the win is seen from both ends of the run
		assert.True(t, board.HasWon(2, 4))
		assert.True(t, board.HasWon(1, 3))
		assert.True(t, board.HasWon(4, 6))
	})

	t.Run("Falling diagonal", func(t *testing.T) {
		// Given: Red on the falling diagonal (5,1)..(2,4)
		board := NewBoard(PlayerRed)
		board.UpdateCell(5, 1, PlayerRed.Cell())
		board.UpdateCell(4, 2, PlayerRed.Cell())
		board.UpdateCell(3, 3, PlayerRed.Cell())
		board.UpdateCell(2, 4, PlayerRed.Cell())

		assert.True(t, board.HasWon(3, 3))
		assert.True(t, board.HasWon(5, 1))
		assert.True(t, board.HasWon(2, 4))
	})

	t.Run("Lone far cell with no run through it", func(t *testing.T) {
		// Given: a winning diagonal elsewhere plus one unrelated token
		board := NewBoard(PlayerRed)
		board.UpdateCell(1, 3, PlayerRed.Cell())
		board.UpdateCell(2, 4, PlayerRed.Cell())
		board.UpdateCell(3, 5, PlayerRed.Cell())
		board.UpdateCell(4, 6, PlayerRed.Cell())
		board.UpdateCell(5, 5, PlayerRed.Cell())

		assert.False(t, board.HasWon(5, 5))
	})

	t.Run("Diagonal of three is not a win", func(t *testing.T) {
		board := NewBoard(PlayerYellow)
		board.UpdateCell(0, 0, PlayerYellow.Cell())
		board.UpdateCell(1, 1, PlayerYellow.Cell())
		board.UpdateCell(2, 2, PlayerYellow.Cell())

		assert.False(t, board.HasWon(1, 1))
	})

	t.Run("Only the current player's color counts", func(t *testing.T) {
		// Given: a Yellow run while it is Red's turn
		board := NewBoard(PlayerRed)
		for col := 0; col <= 3; col++ {
			board.UpdateCell(0, col, PlayerYellow.Cell())
		}

		assert.False(t, board.HasWon(0, 1))
	})
}

func TestBoard_HasWon_DrawnBoard(t *testing.T) {
	t.Run("Full drawn position has no winning cell for either color", func(t *testing.T) {
		for _, starting := range []Player{PlayerRed, PlayerYellow} {
			board := NewBoard(starting)
			fillDrawnBoard(board)

			for row := 0; row < Rows; row++ {
				for col := 0; col < Columns; col++ {
					assert.False(t, board.HasWon(row, col), "player %s cell (%d,%d)", starting, row, col)
				}
			}
		}
	})
}
