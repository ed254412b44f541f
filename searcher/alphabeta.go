package searcher

import (
	"math"

	"github.com/AfelipeRamirez1/Blackjack-AI/game"
)

// AlphaBeta runs the same worst-case search as New(WorstCase{}) with alpha
// and beta bounds threaded through the recursion. Pruning only skips branches
// that cannot change the result: the root decision always matches the
// unpruned search.
type AlphaBeta struct {
	Searcher
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{Searcher: *New(WorstCase{}, options...)}
}

// Decide returns the best root action, ties to Stand as in the unpruned
// search. The stand value is banked as alpha before the hit branch expands,
// so the deck may stop on any card that cannot beat it.
func (ab *AlphaBeta) Decide(state game.GameState) game.Action {
	if state.Turn != game.PlayerTurn {
		panic("decision requested out of turn")
	}
	standValue := ab.evaluate(state)
	hitValue := ab.deckValue(state, ab.cutoff-1, standValue, math.Inf(1))
	if standValue >= hitValue {
		return game.Stand
	}
	return game.Hit
}

// maxValue mirrors Searcher.maxValue with bounds. The stand branch raises
// alpha first; the hit branch is skipped once alpha meets beta.
func (ab *AlphaBeta) maxValue(state game.GameState, depth int, alpha, beta float64) float64 {
	if state.Turn == game.GameOver {
		return game.OutcomeValue(state.Outcome)
	}
	if depth == 0 {
		return ab.evaluate(state)
	}
	value := ab.evaluate(state)
	alpha = max(alpha, value)
	if alpha < beta {
		value = max(value, ab.deckValue(state, depth-1, alpha, beta))
	}
	return value
}

// deckValue is the adversarial deck with early exit: once the running minimum
// cannot beat alpha, no remaining card matters to the MAX ancestor.
func (ab *AlphaBeta) deckValue(state game.GameState, depth int, alpha, beta float64) float64 {
	value := math.Inf(1)
	for _, draw := range game.DrawDistribution() {
		value = min(value, ab.maxValue(state.HitWith(draw.Rank), depth, alpha, beta))
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}
