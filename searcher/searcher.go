package searcher

import (
	"fmt"
	"isolation/game"
	"isolation/metrics"
)

type Option func(s *Searcher)

// WithDeadline bounds the search, which otherwise runs to completion
func WithDeadline(deadline Deadline) Option {
	return func(s *Searcher) {
		s.deadline = deadline
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// Searcher runs depth-limited searches on behalf of one player. Frontier
// positions are always evaluated from that player's perspective.
type Searcher struct {
	player   game.Player
	evaluate game.Evaluate
	deadline Deadline
	metrics  metrics.Collector
}

func New(player game.Player, evaluate game.Evaluate, options ...Option) *Searcher {
	if evaluate == nil {
		panic("searcher requires an evaluation function")
	}
	s := &Searcher{ // Default values
		player:   player,
		evaluate: evaluate,
		deadline: NoDeadline(),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Search runs the given method to depth plies from board, whose active
// player is treated as the maximizer.
func (s *Searcher) Search(method Method, board game.Board, depth int) (Result, error) {
	switch method {
	case Minimax:
		return s.Minimax(board, depth)
	case AlphaBeta:
		return s.AlphaBeta(board, depth)
	default:
		return Result{}, fmt.Errorf("unknown search method %v", method)
	}
}

func checkDepth(depth int) error {
	if depth < 1 {
		return fmt.Errorf("search depth must be at least 1, got %d", depth)
	}
	return nil
}

// expand forecasts move and scores the resulting position, at the frontier
// with the evaluation function and otherwise with deeper
func (s *Searcher) expand(board game.Board, move game.Move, depth int,
	deeper func(child game.Board) (Result, error)) (float64, error) {
	s.metrics.AddNode()
	child := board.Forecast(move)
	if depth == 1 {
		return s.evaluate(child, s.player), nil
	}
	result, err := deeper(child)
	if err != nil {
		return 0, err
	}
	return result.Score, nil
}
