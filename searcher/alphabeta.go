package searcher

import (
	"isolation/game"
	"math"

	"golang.org/x/exp/slices"
)

// AlphaBeta returns the same score as Minimax while skipping branches that
// cannot change the result. Moves are tried in ranked order, see rankMoves.
func (s *Searcher) AlphaBeta(board game.Board, depth int) (Result, error) {
	if err := checkDepth(depth); err != nil {
		return Result{}, err
	}
	return s.alphaBeta(board, depth, math.Inf(-1), math.Inf(1), Maximizer)
}

func (s *Searcher) alphaBeta(board game.Board, depth int, alpha, beta float64, role Role) (Result, error) {
	best := Result{Score: role.worst(), Move: game.NoMove}

	moves := rankMoves(board, role)
	for i, move := range moves {
		if err := s.deadline.check(); err != nil {
			return Result{}, err
		}
		if cutoff(role, best.Score, alpha, beta) {
			s.metrics.AddCutoff(len(moves) - i)
			break
		}

		score, err := s.expand(board, move, depth, func(child game.Board) (Result, error) {
			if role == Maximizer {
				return s.alphaBeta(child, depth-1, math.Max(alpha, best.Score), beta, role.Next())
			}
			return s.alphaBeta(child, depth-1, alpha, math.Min(beta, best.Score), role.Next())
		})
		if err != nil {
			return Result{}, err
		}

		if best.Move == game.NoMove || role.improves(score, best.Score) {
			best = Result{Score: score, Move: move}
		}
	}

	return best, nil
}

// cutoff reports whether the remaining siblings can no longer affect the parent
func cutoff(role Role, best, alpha, beta float64) bool {
	if role == Maximizer {
		return best >= beta
	}
	return best <= alpha
}

// rankMoves orders the active player's moves by how many cells each one
// leads on to: most first for the maximizer, fewest first for the minimizer.
// Ties keep the board's order.
func rankMoves(board game.Board, role Role) []game.Move {
	moves := board.LegalMoves(board.ActivePlayer())
	options := make(map[game.Move]int, len(moves))
	for _, move := range moves {
		options[move] = len(board.MovesFrom(move))
	}

	ranked := slices.Clone(moves)
	slices.SortStableFunc(ranked, func(a, b game.Move) int {
		if role == Maximizer {
			return options[b] - options[a]
		}
		return options[a] - options[b]
	})
	return ranked
}
