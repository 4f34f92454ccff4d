package entity

// Player identifies one of the two token colors.
type Player string

const (
	PlayerRed    Player = "red"
	PlayerYellow Player = "yellow"
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == PlayerRed {
		return PlayerYellow
	}
	return PlayerRed
}

// Cell is one slot of the grid: empty, or holding a player's token.
type Cell string

const EmptyCell Cell = ""

// Cell returns the cell value for a token of this player.
func (p Player) Cell() Cell {
	return Cell(p)
}
