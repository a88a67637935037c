// Package search implements depth-limited negamax with alpha-beta
// pruning, one-ply-lookahead move ordering, and a position-keyed memo
// table, keyed by board.Position.Key rather than by the Position value
// itself.
package search

import (
	"sort"

	"github.com/robtaussig/mailboxchess/internal/board"
	"github.com/robtaussig/mailboxchess/internal/eval"
	"github.com/robtaussig/mailboxchess/internal/rules"
)

const (
	infinity    = 1 << 30
	negInfinity = -infinity
)

// entry is a memoized search result: the score computed the last time
// this position's key was searched, and the depth it was searched to.
type entry struct {
	depth int
	score int
}

// Searcher runs one depth-limited negamax search. Its memo table is
// process-local to a single BestMove call: construct a fresh Searcher per
// call, or reuse one via Reset.
type Searcher struct {
	memo map[string]entry
}

// NewSearcher returns a Searcher ready for one or more BestMove calls.
func NewSearcher() *Searcher {
	return &Searcher{memo: map[string]entry{}}
}

// Reset discards the memo table so the next BestMove starts cold.
func (s *Searcher) Reset() {
	s.memo = map[string]entry{}
}

// BestMove runs negamax with alpha-beta at the given ply depth and
// returns the root's best move. It returns false when pos.Side has no
// legal move.
func (s *Searcher) BestMove(pos board.Position, depth int) (board.Move, bool) {
	moves := rules.AllLegalMoves(pos)
	if len(moves) == 0 {
		return board.Move{}, false
	}
	ordered := orderMoves(pos, moves)

	alpha, beta := negInfinity, infinity
	best := ordered[0]
	bestScore := negInfinity
	for _, m := range ordered {
		child, err := pos.WithMove(m)
		if err != nil {
			continue
		}
		score := -s.negamax(child, depth-1, -beta, -alpha)
		if score > bestScore {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, true
}

// negamax returns the side-to-move-relative score of pos searched to the
// given depth. At depth 0 it is the static evaluation. At depth>0 it
// expands legal moves, ordering them ascending by their one-ply static
// lookahead score, and negates/swaps alpha-beta across the recursion so
// every node maximises. A position with no legal moves at an internal
// node is treated as terminal and scored statically (mate detection is
// out of scope).
func (s *Searcher) negamax(pos board.Position, depth, alpha, beta int) int {
	if depth <= 0 {
		return eval.Relative(pos)
	}

	if cached, ok := s.memo[pos.Key]; ok && cached.depth >= depth {
		return cached.score
	}

	moves := rules.AllLegalMoves(pos)
	if len(moves) == 0 {
		return eval.Relative(pos)
	}
	ordered := orderMoves(pos, moves)

	best := negInfinity
	for _, m := range ordered {
		child, err := pos.WithMove(m)
		if err != nil {
			continue
		}
		score := -s.negamax(child, depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	s.memo[pos.Key] = entry{depth: depth, score: best}
	return best
}

// orderMoves sorts moves ascending by the side-to-move-relative
// evaluation of pos.WithMove(m), a one-ply static lookahead, using a
// stable sort so ties keep AllLegalMoves's deterministic scan order.
func orderMoves(pos board.Position, moves []board.Move) []board.Move {
	ordered := make([]board.Move, len(moves))
	copy(ordered, moves)
	scores := make(map[board.Move]int, len(moves))
	for _, m := range ordered {
		child, err := pos.WithMove(m)
		if err != nil {
			continue
		}
		scores[m] = eval.Relative(child)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] < scores[ordered[j]]
	})
	return ordered
}
