package viewmodel

import (
	"sync"

	"github.com/rocketscienceinc/connectfour-cli/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-cli/internal/entity"
)

// GameView is the read-only JSON projection served to spectators. Cells are
// listed top row first, the way a board is drawn.
type GameView struct {
	Cells         [][]string `json:"cells"`
	CurrentPlayer string     `json:"current_player,omitempty"`
	Status        string     `json:"status"`
	Winner        string     `json:"winner,omitempty"`
	Moves         int        `json:"moves"`
}

// NewGameView copies the game state into an immutable snapshot. Spectators
// only ever see snapshots; the live board stays with its single driver.
func NewGameView(game *connectfour.Game) GameView {
	view := GameView{
		Cells:  make([][]string, entity.Rows),
		Status: game.Status,
		Winner: string(game.Winner),
		Moves:  game.Moves,
	}

	if !game.IsFinished() {
		view.CurrentPlayer = string(game.Board.CurrentPlayer)
	}

	for i := 0; i < entity.Rows; i++ {
		row := entity.Rows - 1 - i
		view.Cells[i] = make([]string, entity.Columns)
		for col := 0; col < entity.Columns; col++ {
			view.Cells[i][col] = string(game.Board.Grid[row][col])
		}
	}

	return view
}

// Store keeps the latest snapshot for pull-style consumers.
type Store struct {
	mu     sync.RWMutex
	latest GameView
	ready  bool
}

func NewStore() *Store {
	return &Store{}
}

func (that *Store) Publish(view GameView) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.latest = view
	that.ready = true
}

// Latest returns the most recent snapshot, or false when no game has been
// published yet.
func (that *Store) Latest() (GameView, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.latest, that.ready
}
