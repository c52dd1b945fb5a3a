package searcher

import "isolation/game"

// Minimax returns the best score attainable for the searching player within
// depth plies, along with the move leading to it. The move is game.NoMove if
// the active player has no legal moves.
func (s *Searcher) Minimax(board game.Board, depth int) (Result, error) {
	if err := checkDepth(depth); err != nil {
		return Result{}, err
	}
	return s.minimax(board, depth, Maximizer)
}

func (s *Searcher) minimax(board game.Board, depth int, role Role) (Result, error) {
	best := Result{Score: role.worst(), Move: game.NoMove}

	for _, move := range board.LegalMoves(board.ActivePlayer()) {
		if err := s.deadline.check(); err != nil {
			return Result{}, err
		}

		score, err := s.expand(board, move, depth, func(child game.Board) (Result, error) {
			return s.minimax(child, depth-1, role.Next())
		})
		if err != nil {
			return Result{}, err
		}

		// The first move always replaces the sentinel so a lost position still yields a move
		if best.Move == game.NoMove || role.improves(score, best.Score) {
			best = Result{Score: score, Move: move}
		}
	}

	return best, nil
}
