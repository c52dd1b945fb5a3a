package game

import "fmt"

// Move is the target cell of a move.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when a player has no legal move to make.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
