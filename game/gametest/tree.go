// Package gametest provides an explicit game tree implementing game.Board,
// with instrumentation for testing searchers.
package gametest

import "isolation/game"

const (
	First  game.Player = 1
	Second game.Player = 2
)

// Node is a position in the tree. Value is what Evaluate returns when the
// position is scored at the search frontier.
type Node struct {
	Value    float64
	Children []*Node
}

func Leaf(value float64) *Node {
	return &Node{Value: value}
}

func Branch(value float64, children ...*Node) *Node {
	return &Node{Value: value, Children: children}
}

// Stats are shared by every board forecast from the same root
type Stats struct {
	Forecasts int
	MaxDepth  int         // Deepest ply forecast
	Visited   []game.Move // Forecast moves in order
}

type Tree struct {
	node   *Node
	depth  int
	active game.Player
	stats  *Stats
}

func NewTree(root *Node) *Tree {
	return &Tree{node: root, active: First, stats: &Stats{}}
}

// MoveTo labels the index-th child of a node at depth plies from the root
func MoveTo(depth, index int) game.Move {
	return game.Move{Row: depth, Col: index}
}

func (t *Tree) Stats() *Stats { return t.stats }

func (t *Tree) Node() *Node { return t.node }

func (t *Tree) ActivePlayer() game.Player { return t.active }

func (t *Tree) Opponent(player game.Player) game.Player {
	if player == First {
		return Second
	}
	return First
}

func (t *Tree) LegalMoves(player game.Player) []game.Move {
	return movesOf(t.node, t.depth)
}

func (t *Tree) MovesFrom(cell game.Move) []game.Move {
	child := t.child(cell)
	if child == nil {
		return []game.Move{}
	}
	return movesOf(child, t.depth+1)
}

func (t *Tree) Forecast(move game.Move) game.Board {
	child := t.child(move)
	if child == nil {
		panic("forecast of a move not in the tree")
	}
	t.stats.Forecasts++
	t.stats.MaxDepth = max(t.stats.MaxDepth, t.depth+1)
	t.stats.Visited = append(t.stats.Visited, move)
	return &Tree{node: child, depth: t.depth + 1, active: t.Opponent(t.active), stats: t.stats}
}

func (t *Tree) IsLoser(player game.Player) bool  { return false }
func (t *Tree) IsWinner(player game.Player) bool { return false }

func (t *Tree) child(move game.Move) *Node {
	if move.Row != t.depth || move.Col < 0 || move.Col >= len(t.node.Children) {
		return nil
	}
	return t.node.Children[move.Col]
}

func movesOf(node *Node, depth int) []game.Move {
	moves := make([]game.Move, len(node.Children))
	for i := range node.Children {
		moves[i] = MoveTo(depth, i)
	}
	return moves
}

// Value evaluates a Tree position to its node's value, regardless of player
func Value(b game.Board, player game.Player) float64 {
	return b.(*Tree).node.Value
}
