package agent

import (
	"testing"

	"github.com/AfelipeRamirez1/Blackjack-AI/game"
	"github.com/AfelipeRamirez1/Blackjack-AI/searcher"

	"github.com/stretchr/testify/require"
)

func playerState(player, dealer game.Hand) game.GameState {
	return game.GameState{
		Rules:  game.NewStandardRules(),
		Player: player,
		Dealer: dealer,
		Turn:   game.PlayerTurn,
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"minimax", "alphabeta", "expectimax"} {
		a, err := New(name)

		require.NoError(t, err)
		require.Equal(t, name, a.Name())
	}

	_, err := New("montecarlo")
	require.Error(t, err)
}

func TestAllAgentsStandOnTwentyAgainstSix(t *testing.T) {
	state := playerState(game.Hand{Total: 20}, game.Hand{Total: 6})

	for _, name := range []string{"minimax", "alphabeta", "expectimax"} {
		a, err := New(name)
		require.NoError(t, err)

		require.Equal(t, game.Stand, a.Decide(state), name)
	}
}

func TestExpectimaxHitsSixteenAgainstTen(t *testing.T) {
	state := playerState(game.Hand{Total: 16}, game.Hand{Total: 10})

	a := NewExpectimax()
	require.Equal(t, game.Hit, a.Decide(state))
}

func TestMinimaxVariantsAgree(t *testing.T) {
	plain := NewMinimax(searcher.WithCutoff(3))
	pruned := NewAlphaBeta(searcher.WithCutoff(3))

	for playerTotal := 4; playerTotal <= 21; playerTotal++ {
		for dealerTotal := 4; dealerTotal <= 21; dealerTotal++ {
			state := playerState(game.Hand{Total: playerTotal}, game.Hand{Total: dealerTotal})

			require.Equal(t, plain.Decide(state), pruned.Decide(state),
				"player %d vs dealer %d", playerTotal, dealerTotal)
		}
	}
}
