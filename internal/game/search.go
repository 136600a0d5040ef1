package game

import (
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"reversi/internal/config"
)

const inf = 1 << 30

// Searcher picks moves with a depth-limited minimax search under
// alpha-beta pruning. The evaluator's sign convention is fixed (White
// positive), so the tree is always framed as White maximizing and Black
// minimizing, whichever side asked for a move.
type Searcher struct {
	depth   int
	weights config.EvalWeights

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSearcher(depth int, w config.EvalWeights, seed int64) *Searcher {
	if depth < 1 {
		depth = 1
	}
	return &Searcher{
		depth:   depth,
		weights: w,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (s *Searcher) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.depth
}

func (s *Searcher) Weights() config.EvalWeights {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weights
}

func (s *Searcher) SetWeights(w config.EvalWeights) {
	s.mu.Lock()
	s.weights = w
	s.mu.Unlock()
}

func (s *Searcher) SetDepth(depth int) {
	if depth < 1 {
		depth = 1
	}
	s.mu.Lock()
	s.depth = depth
	s.mu.Unlock()
}

// BestMove returns the strongest placement for side on b, or ok=false when
// side has no legal move. Each root candidate is scored with a fresh full
// (-inf, +inf) window, so the candidates are independent and searched
// concurrently; the scores are identical to a sequential search. Ties are
// broken uniformly at random so the engine is not exploitable by replaying
// the same opening.
func (s *Searcher) BestMove(b Board, side Cell) (Move, bool) {
	moves := LegalMoves(b, side)
	if len(moves) == 0 {
		return Move{}, false
	}

	s.mu.Lock()
	depth := s.depth
	weights := s.weights
	s.mu.Unlock()

	scores := make([]int, len(moves))
	var g errgroup.Group
	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			child := Apply(b, side, mv.Row, mv.Col)
			scores[i] = minimax(child, depth-1, -inf, inf, side.Opponent() == White, weights)
			return nil
		})
	}
	_ = g.Wait()

	// White wants the maximal score, Black the minimal one.
	best := scores[0]
	for _, sc := range scores[1:] {
		if side == White && sc > best {
			best = sc
		}
		if side == Black && sc < best {
			best = sc
		}
	}
	var tied []Move
	for i, sc := range scores {
		if sc == best {
			tied = append(tied, moves[i])
		}
	}

	s.mu.Lock()
	pick := tied[s.rng.Intn(len(tied))]
	s.mu.Unlock()
	return pick, true
}

// minimax evaluates b to the given remaining depth. A node where the side
// to move has no legal placement is treated as a leaf and statically
// evaluated; forced passes are not searched one ply deeper as the
// opponent. Pruning stops sibling exploration once beta <= alpha; the
// returned value always equals the unpruned minimax value.
func minimax(b Board, depth, alpha, beta int, maximizing bool, w config.EvalWeights) int {
	if depth == 0 {
		return Evaluate(b, w)
	}
	side := Black
	if maximizing {
		side = White
	}
	moves := LegalMoves(b, side)
	if len(moves) == 0 {
		return Evaluate(b, w)
	}
	if maximizing {
		best := -inf
		for _, mv := range moves {
			sc := minimax(Apply(b, side, mv.Row, mv.Col), depth-1, alpha, beta, false, w)
			if sc > best {
				best = sc
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}
	best := inf
	for _, mv := range moves {
		sc := minimax(Apply(b, side, mv.Row, mv.Col), depth-1, alpha, beta, true, w)
		if sc < best {
			best = sc
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
