package engine

import (
	"testing"

	"github.com/AfelipeRamirez1/Blackjack-AI/agent"
	"github.com/AfelipeRamirez1/Blackjack-AI/game"
	"github.com/AfelipeRamirez1/Blackjack-AI/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// thresholdAgent hits below a fixed total, the house policy as a player.
type thresholdAgent struct {
	stand int
}

func (a thresholdAgent) Name() string { return "threshold" }

func (a thresholdAgent) Decide(state game.GameState) game.Action {
	if state.Player.Total < a.stand {
		return game.Hit
	}
	return game.Stand
}

func scriptedDraw(ranks ...game.Rank) func() game.Rank {
	i := 0
	return func() game.Rank {
		r := ranks[i]
		i++
		return r
	}
}

func TestLocalEnginePreconditions(t *testing.T) {
	rules := game.NewStandardRules()

	require.Panics(t, func() { LocalEngine(nil, rules, func() game.Rank { return game.Two }) })
	require.Panics(t, func() { LocalEngine(thresholdAgent{17}, rules, nil) })
}

func TestRunScriptedHand(t *testing.T) {
	rules := game.NewStandardRules()

	// Player: 10+6, hits a 2 (18), stands. Dealer: 9+5, draws a 4 (18). Push.
	draw := scriptedDraw(game.Ten, game.Six, game.Nine, game.Five, game.Two, game.Four)
	e := LocalEngine(thresholdAgent{stand: 17}, rules, draw)

	final, decisions := e.Run()

	require.Equal(t, game.GameOver, final.Turn)
	require.Equal(t, game.Push, final.Outcome)
	require.Equal(t, 18, final.Player.Total)
	require.Equal(t, 18, final.Dealer.Total)
	require.Equal(t, 2, decisions, "one hit and one stand")
}

func TestRunPlayerBustEndsHand(t *testing.T) {
	rules := game.NewStandardRules()

	// Player: 10+6, hits a king and busts. The dealer never draws.
	draw := scriptedDraw(game.Ten, game.Six, game.Two, game.Three, game.King)
	e := LocalEngine(thresholdAgent{stand: 17}, rules, draw)

	final, decisions := e.Run()

	require.Equal(t, game.Lose, final.Outcome)
	require.True(t, final.Player.Busted(rules))
	require.Equal(t, 1, decisions)
}

func TestRunSearchAgentHands(t *testing.T) {
	rules := game.NewStandardRules()
	a, err := agent.New("expectimax", searcher.WithCutoff(2))
	require.NoError(t, err)

	for seed := uint64(1); seed <= 100; seed++ {
		draw := game.NewDraw(rand.New(rand.NewSource(seed)))
		final, decisions := LocalEngine(a, rules, draw).Run()

		require.Equal(t, game.GameOver, final.Turn, "seed %d", seed)
		require.NotEqual(t, game.Undecided, final.Outcome, "seed %d", seed)
		require.GreaterOrEqual(t, decisions, 1, "seed %d", seed)
		require.LessOrEqual(t, final.Player.Total, rules.BustLimit+rules.FaceValue,
			"seed %d: player total beyond a single busting card", seed)
	}
}
