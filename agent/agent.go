package agent

import (
	"fmt"

	"github.com/AfelipeRamirez1/Blackjack-AI/game"
	"github.com/AfelipeRamirez1/Blackjack-AI/searcher"
)

// Agent picks the player's next action. Decisions are pure functions of the
// state, so one agent may serve any number of concurrent hands.
type Agent interface {
	Name() string
	Decide(state game.GameState) game.Action
}

// New builds an agent by name: "minimax", "alphabeta" or "expectimax".
func New(name string, options ...searcher.Option) (Agent, error) {
	switch name {
	case "minimax":
		return NewMinimax(options...), nil
	case "alphabeta":
		return NewAlphaBeta(options...), nil
	case "expectimax":
		return NewExpectimax(options...), nil
	default:
		return nil, fmt.Errorf("unknown agent %q", name)
	}
}

type minimax struct {
	search *searcher.Searcher
}

// NewMinimax returns the unpruned worst-case agent: the deck is an adversary
// dealing the worst card every time.
func NewMinimax(options ...searcher.Option) Agent {
	return minimax{search: searcher.New(searcher.WorstCase{}, options...)}
}

func (a minimax) Name() string { return "minimax" }

func (a minimax) Decide(state game.GameState) game.Action {
	return a.search.Decide(state)
}

type alphaBeta struct {
	search *searcher.AlphaBeta
}

// NewAlphaBeta returns the pruned worst-case agent. Same decisions as
// NewMinimax, fewer expanded branches.
func NewAlphaBeta(options ...searcher.Option) Agent {
	return alphaBeta{search: searcher.NewAlphaBeta(options...)}
}

func (a alphaBeta) Name() string { return "alphabeta" }

func (a alphaBeta) Decide(state game.GameState) game.Action {
	return a.search.Decide(state)
}

type expectimax struct {
	search *searcher.Searcher
}

// NewExpectimax returns the chance-model agent: the deck deals every rank
// with probability 1/13 and branches combine by expectation.
func NewExpectimax(options ...searcher.Option) Agent {
	return expectimax{search: searcher.New(searcher.Uniform{}, options...)}
}

func (a expectimax) Name() string { return "expectimax" }

func (a expectimax) Decide(state game.GameState) game.Action {
	return a.search.Decide(state)
}
