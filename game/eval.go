package game

// Leaf values on the [0,1] win-probability scale.
const (
	WinValue  = 1.0
	LossValue = 0.0
	PushValue = 0.5
)

// Evaluate scores a state as the player's probability of beating the dealer's
// fixed policy, between 0 and 1.
type Evaluate func(GameState) float64

// OutcomeValue maps a decided outcome onto the leaf scale.
func OutcomeValue(o Outcome) float64 {
	switch o {
	case Win:
		return WinValue
	case Lose:
		return LossValue
	case Push:
		return PushValue
	default:
		panic("outcome of an unfinished hand")
	}
}

// StandValue is the canonical heuristic: the player's win probability if they
// stop drawing now. Terminal states score exactly; a busted player scores 0.
// Live states expand the dealer's forced play in full, so the only
// approximation left in a cutoff search is ignoring the player's remaining
// hits.
func StandValue(s GameState) float64 {
	if s.Turn == GameOver {
		return OutcomeValue(s.Outcome)
	}
	if s.Player.Busted(s.Rules) {
		return LossValue
	}
	value := 0.0
	for _, o := range dealerOutcomes(s.Dealer, s.Rules) {
		switch {
		case o.bust || s.Player.Total > o.total:
			value += o.prob * WinValue
		case s.Player.Total == o.total:
			value += o.prob * PushValue
		}
	}
	return value
}

// dealerOutcome is one final dealer result: a standing total, or a bust.
type dealerOutcome struct {
	total int
	bust  bool
	prob  float64
}

const bustKey = -1

// dealerOutcomes computes the exact distribution of the dealer's final total
// under the fixed policy, memoized on the (total, soft) sufficient statistic.
// The memo lives for one call, so concurrent evaluations share nothing.
func dealerOutcomes(dealer Hand, rules Rules) []dealerOutcome {
	return expandDealer(dealer, rules, map[Hand][]dealerOutcome{})
}

func expandDealer(h Hand, rules Rules, memo map[Hand][]dealerOutcome) []dealerOutcome {
	if cached, ok := memo[h]; ok {
		return cached
	}

	var outcomes []dealerOutcome
	switch {
	case h.Busted(rules):
		outcomes = []dealerOutcome{{total: bustKey, bust: true, prob: 1}}
	case h.Total >= rules.DealerStand:
		outcomes = []dealerOutcome{{total: h.Total, prob: 1}}
	default:
		// Forced hit: fold the 13 sub-distributions together.
		probs := map[int]float64{}
		for _, rank := range Ranks() {
			for _, o := range expandDealer(h.Draw(rank, rules), rules, memo) {
				probs[o.total] += o.prob / NumRanks
			}
		}
		outcomes = make([]dealerOutcome, 0, len(probs))
		for total, prob := range probs {
			outcomes = append(outcomes, dealerOutcome{
				total: total,
				bust:  total == bustKey,
				prob:  prob,
			})
		}
	}

	memo[h] = outcomes
	return outcomes
}
