package board

import (
	"fmt"
	"isolation/game"
	"isolation/utils"
	"strings"
)

const (
	PlayerOne game.Player = 1
	PlayerTwo game.Player = 2
)

const (
	blank   = 0
	blocked = 1
)

// Knight-style jumps a piece can make
var directions = []game.Move{
	{Row: -2, Col: -1}, {Row: -2, Col: 1}, {Row: -1, Col: -2}, {Row: -1, Col: 2},
	{Row: 1, Col: -2}, {Row: 1, Col: 2}, {Row: 2, Col: -1}, {Row: 2, Col: 1},
}

// Board is an Isolation position: two pieces moving like chess knights on a
// grid where every visited cell stays blocked. A player left without a legal
// move on their turn loses.
type Board struct {
	width     int
	height    int
	cells     []int
	locations map[game.Player]game.Move
	active    game.Player
	inactive  game.Player
	moveCount int
}

type Option func(b *Board)

// WithBlocked marks cells as unavailable before play starts
func WithBlocked(cells ...game.Move) Option {
	return func(b *Board) {
		for _, cell := range cells {
			if b.inBounds(cell) {
				b.cells[b.index(cell)] = blocked
			}
		}
	}
}

// WithLocation places a player's piece, blocking its cell
func WithLocation(player game.Player, cell game.Move) Option {
	return func(b *Board) {
		if b.inBounds(cell) {
			b.locations[player] = cell
			b.cells[b.index(cell)] = blocked
		}
	}
}

// WithActivePlayer sets whose turn it is
func WithActivePlayer(player game.Player) Option {
	return func(b *Board) {
		b.active = player
		b.inactive = b.Opponent(player)
	}
}

func New(width, height int, options ...Option) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", width, height)
	}
	b := &Board{
		width:     width,
		height:    height,
		cells:     make([]int, width*height),
		locations: map[game.Player]game.Move{PlayerOne: game.NoMove, PlayerTwo: game.NoMove},
		active:    PlayerOne,
		inactive:  PlayerTwo,
	}
	for _, option := range options {
		option(b)
	}
	return b, nil
}

func (b *Board) Copy() *Board {
	cellsCopy := make([]int, len(b.cells))
	copy(cellsCopy, b.cells)

	locationsCopy := make(map[game.Player]game.Move, len(b.locations))
	for player, cell := range b.locations {
		locationsCopy[player] = cell
	}

	return &Board{
		width:     b.width,
		height:    b.height,
		cells:     cellsCopy,
		locations: locationsCopy,
		active:    b.active,
		inactive:  b.inactive,
		moveCount: b.moveCount,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// MoveCount is the number of plies played since the board was created
func (b *Board) MoveCount() int { return b.moveCount }

func (b *Board) ActivePlayer() game.Player { return b.active }

func (b *Board) Opponent(player game.Player) game.Player {
	if player == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Location returns the cell a player occupies, game.NoMove before their first move
func (b *Board) Location(player game.Player) game.Move {
	if cell, ok := b.locations[player]; ok {
		return cell
	}
	return game.NoMove
}

func (b *Board) LegalMoves(player game.Player) []game.Move {
	return b.MovesFrom(b.Location(player))
}

// MovesFrom returns the open cells a knight jump away from cell. A piece that
// has not been placed yet may move to any open cell.
func (b *Board) MovesFrom(cell game.Move) []game.Move {
	if cell == game.NoMove {
		return b.openCells()
	}

	moves := make([]game.Move, 0, len(directions))
	for _, d := range directions {
		next := game.Move{Row: cell.Row + d.Row, Col: cell.Col + d.Col}
		if b.isOpen(next) {
			moves = append(moves, next)
		}
	}
	return moves
}

// Forecast returns the board after the active player moves to the given cell.
// The move is not validated.
func (b *Board) Forecast(move game.Move) game.Board {
	next := b.Copy()
	next.apply(move)
	return next
}

// Play is Forecast with legality checking
func (b *Board) Play(move game.Move) (*Board, error) {
	if utils.FindIndex(b.LegalMoves(b.active), move) < 0 {
		return nil, fmt.Errorf("illegal move %s for player %d", move, b.active)
	}
	next := b.Copy()
	next.apply(move)
	return next, nil
}

func (b *Board) IsLoser(player game.Player) bool {
	return player == b.active && len(b.LegalMoves(b.active)) == 0
}

func (b *Board) IsWinner(player game.Player) bool {
	return player == b.inactive && len(b.LegalMoves(b.active)) == 0
}

func (b *Board) apply(move game.Move) {
	b.cells[b.index(move)] = blocked
	b.locations[b.active] = move
	b.active, b.inactive = b.inactive, b.active
	b.moveCount++
}

func (b *Board) openCells() []game.Move {
	cells := []game.Move{}
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[row*b.width+col] == blank {
				cells = append(cells, game.Move{Row: row, Col: col})
			}
		}
	}
	return cells
}

func (b *Board) isOpen(cell game.Move) bool {
	return b.inBounds(cell) && b.cells[b.index(cell)] == blank
}

func (b *Board) inBounds(cell game.Move) bool {
	return cell.Row >= 0 && cell.Row < b.height && cell.Col >= 0 && cell.Col < b.width
}

func (b *Board) index(cell game.Move) int {
	return cell.Row*b.width + cell.Col
}

// String renders the grid, one row per line
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cell := game.Move{Row: row, Col: col}
			switch {
			case cell == b.locations[PlayerOne]:
				sb.WriteString(" 1 ")
			case cell == b.locations[PlayerTwo]:
				sb.WriteString(" 2 ")
			case b.cells[b.index(cell)] == blocked:
				sb.WriteString(" X ")
			default:
				sb.WriteString(" - ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
