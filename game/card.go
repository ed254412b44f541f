package game

import "golang.org/x/exp/rand"

// Rank identifies one of the 13 card ranks. Suits never matter for hand
// values, so a rank is the whole card.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

const NumRanks = 13

// RankProbability is the chance of any single rank on an infinite deck:
// draws are i.i.d. regardless of what has been dealt before.
const RankProbability = 1.0 / NumRanks

// Draw is one branch of the next-card distribution.
type Draw struct {
	Rank        Rank
	Probability float64
}

// Ranks lists the 13 ranks in order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, NumRanks)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// DrawDistribution enumerates the 13 equally likely next cards. The search
// layer expands hit branches through this instead of sampling.
func DrawDistribution() []Draw {
	dist := make([]Draw, 0, NumRanks)
	for _, r := range Ranks() {
		dist = append(dist, Draw{Rank: r, Probability: RankProbability})
	}
	return dist
}

// NewDraw returns an infinite-deck draw function backed by rng, for playing
// real hands outside the search.
func NewDraw(rng *rand.Rand) func() Rank {
	return func() Rank {
		return Rank(rng.Intn(NumRanks) + 1)
	}
}

func (r Rank) String() string {
	names := [...]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	if r < Ace || r > King {
		return "?"
	}
	return names[r-1]
}
