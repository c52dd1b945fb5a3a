package game

import "isolation/utils"

// MobilityScore compares how many distinct cells each player could reach two
// moves from now. The score is the ratio of the player's reach to the
// opponent's, +Inf when the opponent has nowhere left to go.
func MobilityScore(b Board, player Player) float64 {
	if score, ok := terminalScore(b, player); ok {
		return score
	}

	myReach := twoPlyReach(b, player)
	opponentReach := twoPlyReach(b, b.Opponent(player))
	if opponentReach == 0 {
		return Win
	}
	return float64(myReach) / float64(opponentReach)
}

// NullScore scores every undecided position as 0
func NullScore(b Board, player Player) float64 {
	if score, ok := terminalScore(b, player); ok {
		return score
	}
	return 0
}

// OpenMoveScore counts the player's legal moves
func OpenMoveScore(b Board, player Player) float64 {
	if score, ok := terminalScore(b, player); ok {
		return score
	}
	return float64(len(b.LegalMoves(player)))
}

// ImprovedScore is the difference between the player's and the opponent's legal move counts
func ImprovedScore(b Board, player Player) float64 {
	if score, ok := terminalScore(b, player); ok {
		return score
	}
	own := len(b.LegalMoves(player))
	opponent := len(b.LegalMoves(b.Opponent(player)))
	return float64(own - opponent)
}

func terminalScore(b Board, player Player) (float64, bool) {
	if b.IsLoser(player) {
		return Loss, true
	}
	if b.IsWinner(player) {
		return Win, true
	}
	return 0, false
}

// twoPlyReach counts the distinct cells reachable from any of the player's
// current legal moves
func twoPlyReach(b Board, player Player) int {
	moves := b.LegalMoves(player)
	reach := make([][]Move, 0, len(moves))
	for _, move := range moves {
		reach = append(reach, b.MovesFrom(move))
	}
	return utils.CountDistinct(reach...)
}
