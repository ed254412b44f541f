package engine

import (
	"github.com/AfelipeRamirez1/Blackjack-AI/agent"
	"github.com/AfelipeRamirez1/Blackjack-AI/game"

	"github.com/rs/zerolog/log"
)

// Engine plays complete hands between one agent and the house policy.
type Engine struct {
	agent agent.Agent
	rules game.Rules
	draw  func() game.Rank
}

func LocalEngine(a agent.Agent, rules game.Rules, draw func() game.Rank) *Engine {
	if a == nil {
		panic("engine needs an agent")
	}
	if draw == nil {
		panic("engine needs a draw source")
	}
	return &Engine{agent: a, rules: rules, draw: draw}
}

// Run plays a single hand to completion and returns the terminal state along
// with the number of decisions the agent made.
func (e *Engine) Run() (game.GameState, int) {
	state := game.Deal(e.rules, e.draw)
	log.Debug().Msgf("dealt player %d dealer %d", state.Player.Total, state.Dealer.Total)

	decisions := 0
	for state.Turn == game.PlayerTurn {
		action := e.agent.Decide(state)
		decisions++
		log.Debug().Msgf("%s chooses %s on player %d vs dealer %d",
			e.agent.Name(), action, state.Player.Total, state.Dealer.Total)
		state = state.Apply(action, e.draw)
	}
	if state.Turn == game.DealerTurn {
		state = state.ResolveDealer(e.draw)
	}

	log.Debug().Msgf("hand over: player %d dealer %d outcome %s",
		state.Player.Total, state.Dealer.Total, state.Outcome)
	return state, decisions
}
