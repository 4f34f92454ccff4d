package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour-cli/internal/apperror"
	"github.com/rocketscienceinc/connectfour-cli/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-cli/internal/entity"
	"github.com/rocketscienceinc/connectfour-cli/internal/viewmodel"
)

var ErrInputClosed = errors.New("input closed before the game finished")

// Publisher receives a snapshot after every accepted move.
type Publisher interface {
	Publish(view viewmodel.GameView)
}

// Driver runs one interactive game over a line-based reader and writer. It
// makes no assumption about where the lines come from, so a test harness
// can script it with a plain strings.Reader.
type Driver struct {
	logger     *slog.Logger
	game       *connectfour.Game
	glyphs     Glyphs
	in         *bufio.Scanner
	out        io.Writer
	publishers []Publisher
}

func NewDriver(logger *slog.Logger, game *connectfour.Game, glyphs Glyphs, in io.Reader, out io.Writer, publishers ...Publisher) *Driver {
	return &Driver{
		logger:     logger,
		game:       game,
		glyphs:     glyphs,
		in:         bufio.NewScanner(in),
		out:        out,
		publishers: publishers,
	}
}

// Run loops until the game reaches a terminal outcome: render, prompt,
// parse, submit. Bad input re-prompts without consuming a turn.
func (that *Driver) Run(ctx context.Context) error {
	log := that.logger.With("component", "terminal")

	that.publish()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(that.out, Render(that.game.Board, that.glyphs))
		fmt.Fprintf(that.out, "Player %s, enter a move: \n", that.game.Board.CurrentPlayer)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("could not read input: %w", err)
			}
			return ErrInputClosed
		}

		column, err := strconv.Atoi(strings.TrimSpace(that.in.Text()))
		if err != nil {
			fmt.Fprintln(that.out, "Please enter a valid column number")
			continue
		}

		if column < 1 || column > entity.Columns {
			fmt.Fprintf(that.out, "Column %d is invalid\n", column)
			continue
		}

		mover := that.game.Board.CurrentPlayer

		result, err := that.game.MakeMove(column - 1)
		if err != nil {
			if errors.Is(err, apperror.ErrColumnFull) {
				fmt.Fprintf(that.out, "Column %d is full.\n", column)
				log.Info("move rejected", "player", mover, "column", column-1)
				continue
			}
			return fmt.Errorf("could not make move: %w", err)
		}

		that.publish()

		switch result.Outcome {
		case entity.OutcomeWon:
			log.Info("game won", "winner", result.Winner, "moves", that.game.Moves)
			fmt.Fprintf(that.out, "%s has a connect 4!\n\n", result.Winner)
			fmt.Fprint(that.out, Render(that.game.Board, that.glyphs))
			return nil
		case entity.OutcomeStalemate:
			log.Info("game drawn", "moves", that.game.Moves)
			fmt.Fprintln(that.out, "Gameover, Stalemate")
			fmt.Fprint(that.out, Render(that.game.Board, that.glyphs))
			return nil
		default:
			log.Info("move accepted", "player", mover, "column", column-1, "row", result.Row)
		}
	}
}

func (that *Driver) publish() {
	if len(that.publishers) == 0 {
		return
	}

	view := viewmodel.NewGameView(that.game)
	for _, publisher := range that.publishers {
		publisher.Publish(view)
	}
}
