package agent

import (
	"context"
	"errors"
	"fmt"
	"isolation/game"
	"isolation/metrics"
	"isolation/searcher"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// Defaults for a new Player
const (
	DefaultDepth     = 3
	DefaultIterative = true
	DefaultMethod    = searcher.Minimax
	DefaultThreshold = 10 * time.Millisecond
)

type Agent interface {
	// SelectMove returns a move for the active player of board before timeLeft runs out
	SelectMove(ctx context.Context, board game.Board, legalMoves []game.Move, timeLeft searcher.TimeLeft) game.Move
}

// Player picks moves with a depth-limited minimax or alpha-beta search,
// optionally deepening one ply at a time until the time budget runs low.
type Player struct {
	depth     int
	iterative bool
	method    searcher.Method
	threshold time.Duration
	evaluate  game.Evaluate
	metrics   metrics.Collector
	last      metrics.SearchMetric
}

type Option func(p *Player)

// WithDepth sets the fixed search depth, which is also the deepest an
// iterative search will go
func WithDepth(depth int) Option {
	return func(p *Player) {
		p.depth = depth
	}
}

// WithIterative enables or disables iterative deepening
func WithIterative(iterative bool) Option {
	return func(p *Player) {
		p.iterative = iterative
	}
}

func WithMethod(method searcher.Method) Option {
	return func(p *Player) {
		p.method = method
	}
}

// WithThreshold sets the remaining time below which a search is aborted
func WithThreshold(threshold time.Duration) Option {
	return func(p *Player) {
		p.threshold = threshold
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(p *Player) {
		p.evaluate = evaluate
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(p *Player) {
		p.metrics = collector
	}
}

func NewPlayer(options ...Option) (*Player, error) {
	p := &Player{ // Default values
		depth:     DefaultDepth,
		iterative: DefaultIterative,
		method:    DefaultMethod,
		threshold: DefaultThreshold,
		evaluate:  game.MobilityScore,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(p)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid player configuration: %w", err)
	}
	return p, nil
}

// MustNewPlayer is like NewPlayer but panics on an invalid configuration
func MustNewPlayer(options ...Option) *Player {
	p, err := NewPlayer(options...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Player) validate() error {
	var errs []error
	if p.depth < 1 {
		errs = append(errs, fmt.Errorf("search depth must be at least 1, got %d", p.depth))
	}
	if p.threshold <= 0 {
		errs = append(errs, fmt.Errorf("timeout threshold must be positive, got %s", p.threshold))
	}
	if p.method != searcher.Minimax && p.method != searcher.AlphaBeta {
		errs = append(errs, fmt.Errorf("unknown search method %v", p.method))
	}
	if p.evaluate == nil {
		errs = append(errs, errors.New("evaluation function is required"))
	}
	if p.metrics == nil {
		errs = append(errs, errors.New("metrics collector is required"))
	}
	return errors.Join(errs...)
}

// LastMetrics returns the statistics of the most recent SelectMove call
func (p *Player) LastMetrics() metrics.SearchMetric {
	return p.last
}

// SelectMove searches from board and returns the best move of the deepest
// search that completed in time. It returns game.NoMove if legalMoves is
// empty or if not even a depth-1 search could complete.
func (p *Player) SelectMove(ctx context.Context, board game.Board, legalMoves []game.Move, timeLeft searcher.TimeLeft) game.Move {
	p.metrics.Start(p.method.String())
	defer func() { p.last = p.metrics.Complete() }()

	best := searcher.Result{Score: math.Inf(-1), Move: game.NoMove}
	if len(legalMoves) == 0 {
		return best.Move
	}

	deadline := searcher.NewDeadline(ctx, timeLeft, p.threshold)
	s := searcher.New(board.ActivePlayer(), p.evaluate,
		searcher.WithDeadline(deadline),
		searcher.WithCollector(p.metrics),
	)

	depth := p.depth
	if p.iterative {
		depth = 1
	}
	for deadline.Remains() {
		result, err := s.Search(p.method, board, depth)
		if errors.Is(err, searcher.ErrTimeout) {
			p.metrics.TimedOut()
			log.Debug().Msgf("search timed out at depth %d, keeping move %s", depth, best.Move)
			break
		}
		if err != nil {
			log.Error().Err(err).Msg("search failed")
			break
		}

		// A deeper completed search supersedes a shallower one
		best = result
		p.metrics.CompleteDepth(depth)
		log.Debug().Msgf("completed depth %d: move %s with score %v", depth, best.Move, best.Score)

		if !p.iterative || depth >= p.depth {
			break
		}
		depth++
	}

	return best.Move
}
