package searcher

import (
	"fmt"
	"isolation/game"
	"math"
	"strings"
)

// Result is the value of the best line found and the move that starts it
type Result struct {
	Score float64
	Move  game.Move
}

type Method int

const (
	Minimax Method = iota
	AlphaBeta
)

func (m Method) String() string {
	switch m {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta":
		return AlphaBeta, nil
	default:
		return 0, fmt.Errorf("unknown search method %q", name)
	}
}

// Role is the side a search layer plays for
type Role int

const (
	Maximizer Role = iota
	Minimizer
)

func (r Role) String() string {
	if r == Maximizer {
		return "max"
	}
	return "min"
}

func (r Role) Next() Role {
	if r == Maximizer {
		return Minimizer
	}
	return Maximizer
}

// worst is the starting best score of a layer
func (r Role) worst() float64 {
	if r == Maximizer {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// improves reports whether score strictly beats best, so ties keep the first move seen
func (r Role) improves(score, best float64) bool {
	if r == Maximizer {
		return score > best
	}
	return score < best
}
