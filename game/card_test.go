package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRanks(t *testing.T) {
	ranks := Ranks()

	require.Len(t, ranks, NumRanks)
	require.Equal(t, Ace, ranks[0])
	require.Equal(t, King, ranks[len(ranks)-1])
}

func TestRankValue(t *testing.T) {
	rules := NewStandardRules()

	require.Equal(t, 11, rules.RankValue(Ace), "Ace should enter high")
	require.Equal(t, 2, rules.RankValue(Two))
	require.Equal(t, 9, rules.RankValue(Nine))
	require.Equal(t, 10, rules.RankValue(Ten))
	require.Equal(t, 10, rules.RankValue(Jack))
	require.Equal(t, 10, rules.RankValue(Queen))
	require.Equal(t, 10, rules.RankValue(King))
}

func TestDrawDistribution(t *testing.T) {
	dist := DrawDistribution()

	require.Len(t, dist, NumRanks)

	sum := 0.0
	for _, draw := range dist {
		require.Equal(t, RankProbability, draw.Probability,
			"every rank should be equally likely on an infinite deck")
		sum += draw.Probability
	}
	require.InDelta(t, 1.0, sum, 1e-12, "branch probabilities should sum to 1")
}

func TestNewDraw(t *testing.T) {
	draw := NewDraw(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		rank := draw()
		require.GreaterOrEqual(t, rank, Ace)
		require.LessOrEqual(t, rank, King)
	}
}

func TestRankString(t *testing.T) {
	require.Equal(t, "A", Ace.String())
	require.Equal(t, "10", Ten.String())
	require.Equal(t, "Q", Queen.String())
	require.Equal(t, "?", Rank(0).String())
}
