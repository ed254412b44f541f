package searcher

import (
	"github.com/AfelipeRamirez1/Blackjack-AI/game"
)

// DefaultCutoff bounds how many future hits a search simulates before falling
// back to the stand-value heuristic.
const DefaultCutoff = 4

// DeckReducer folds the values of the 13 possible next cards into the value
// of the deck node. This is the single point where the two search models
// differ: the tree walk above and below it is shared.
type DeckReducer interface {
	Reduce(values []float64) float64
}

// WorstCase treats the deck as an adversary that always deals the worst card
// for the player, regardless of its real 1/13 probability.
type WorstCase struct{}

func (WorstCase) Reduce(values []float64) float64 {
	worst := values[0]
	for _, v := range values[1:] {
		worst = min(worst, v)
	}
	return worst
}

// Uniform weighs every rank equally, the infinite-deck chance model. All 13
// branches are always expanded; expectation admits no pruning.
type Uniform struct{}

func (Uniform) Reduce(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	// One division keeps the 13 equal weights exact.
	return sum / float64(len(values))
}

type Option func(*Searcher)

// WithCutoff sets the search depth before the heuristic takes over.
func WithCutoff(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.cutoff = depth
		}
	}
}

// WithEvaluationFn replaces the leaf evaluation function.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// Searcher runs the depth-limited two-ply recursion: the player's MAX node
// alternating with a deck node combined by the configured reducer.
type Searcher struct {
	cutoff   int
	evaluate game.Evaluate
	reduce   DeckReducer
}

func New(reduce DeckReducer, options ...Option) *Searcher {
	if reduce == nil {
		panic("searcher needs a deck reducer")
	}
	s := &Searcher{ // Default values
		cutoff:   DefaultCutoff,
		evaluate: game.StandValue,
		reduce:   reduce,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Decide returns the best root action. Ties go to Stand: standing is the
// deterministic branch, so an equal hit value never justifies drawing.
func (s *Searcher) Decide(state game.GameState) game.Action {
	if state.Turn != game.PlayerTurn {
		panic("decision requested out of turn")
	}
	standValue := s.evaluate(state)
	hitValue := s.deckValue(state, s.cutoff-1)
	if standValue >= hitValue {
		return game.Stand
	}
	return game.Hit
}

// maxValue is the player's node: the better of standing on the heuristic
// value or hitting into a deck node.
func (s *Searcher) maxValue(state game.GameState, depth int) float64 {
	if state.Turn == game.GameOver {
		return game.OutcomeValue(state.Outcome)
	}
	if depth == 0 {
		return s.evaluate(state)
	}
	standValue := s.evaluate(state)
	hitValue := s.deckValue(state, depth-1)
	return max(standValue, hitValue)
}

// deckValue expands all 13 ranks and lets the reducer combine them.
func (s *Searcher) deckValue(state game.GameState, depth int) float64 {
	values := make([]float64, 0, game.NumRanks)
	for _, draw := range game.DrawDistribution() {
		values = append(values, s.maxValue(state.HitWith(draw.Rank), depth))
	}
	return s.reduce.Reduce(values)
}
