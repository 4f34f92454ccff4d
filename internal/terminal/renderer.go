package terminal

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectfour-cli/internal/entity"
)

// Glyphs holds the symbol drawn for each cell owner.
type Glyphs struct {
	Red    string
	Yellow string
	Empty  string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{
		Red:    "😈",
		Yellow: "😳",
		Empty:  " _",
	}
}

// Render draws the board top row first, one glyph per cell, followed by a
// 1-indexed column legend.
func Render(board *entity.Board, glyphs Glyphs) string {
	var sb strings.Builder

	for row := entity.Rows - 1; row >= 0; row-- {
		for col := 0; col < entity.Columns; col++ {
			switch board.Grid[row][col] {
			case entity.PlayerRed.Cell():
				sb.WriteString(glyphs.Red)
			case entity.PlayerYellow.Cell():
				sb.WriteString(glyphs.Yellow)
			default:
				sb.WriteString(glyphs.Empty)
			}
			sb.WriteString("  ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	for col := 1; col <= entity.Columns; col++ {
		fmt.Fprintf(&sb, " %d  ", col)
	}
	sb.WriteString("\n\n")

	return sb.String()
}
