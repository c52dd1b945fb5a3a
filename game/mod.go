package game

import "math"

// Player identifies one of the two sides of a game.
type Player int

// Board is the position oracle the searcher plays through.
// Board should be immutable - Forecast always returns a new copy
type Board interface {
	ActivePlayer() Player
	Opponent(player Player) Player
	// LegalMoves returns the moves available to player, empty if none
	LegalMoves(player Player) []Move
	// MovesFrom returns the cells reachable in one move from cell
	MovesFrom(cell Move) []Move
	Forecast(move Move) Board
	IsLoser(player Player) bool
	IsWinner(player Player) bool
}

// Evaluates the board to a score from the given player's perspective: +Inf for
// a won position, -Inf for a lost one and a finite value otherwise.
type Evaluate func(board Board, player Player) float64

// Scores for decided positions
var (
	Win  = math.Inf(1)
	Loss = math.Inf(-1)
)
