package game

import "fmt"

// Action is a player decision. Only the player decides anything; the dealer
// follows a fixed policy.
type Action int

const (
	Hit Action = iota
	Stand
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// Turn tracks whose move resolves next.
type Turn int

const (
	PlayerTurn Turn = iota
	DealerTurn
	GameOver
)

func (t Turn) String() string {
	switch t {
	case PlayerTurn:
		return "player"
	case DealerTurn:
		return "dealer"
	case GameOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome is the result of a finished hand, from the player's perspective.
// Undecided until Turn reaches GameOver.
type Outcome int

const (
	Undecided Outcome = iota
	Win
	Lose
	Push
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// Hand is the sufficient statistic of a blackjack hand: the running total and
// whether an ace currently counts high. At most one ace can count high at a
// time (two high aces always bust), so a bool covers every reachable hand.
type Hand struct {
	Total int
	Soft  bool
}

// Draw returns the hand after taking one more card, demoting the soft ace
// whenever keeping it high would bust.
func (h Hand) Draw(rank Rank, rules Rules) Hand {
	if rank == Ace && (h.Soft || h.Total+rules.AceHigh > rules.BustLimit) {
		h.Total += rules.AceLow
		return h
	}
	if rank == Ace {
		h.Total += rules.AceHigh
		h.Soft = true
		return h
	}
	h.Total += rules.RankValue(rank)
	if h.Total > rules.BustLimit && h.Soft {
		h.Total -= rules.AceHigh - rules.AceLow
		h.Soft = false
	}
	return h
}

// Busted reports whether the hand is over the limit.
func (h Hand) Busted(rules Rules) bool {
	return h.Total > rules.BustLimit
}

// GameState is an immutable snapshot of one hand in play. Every transition
// returns a fresh value, so sibling branches in a search tree never alias.
type GameState struct {
	Rules   Rules
	Player  Hand
	Dealer  Hand
	Turn    Turn
	Outcome Outcome
}

// Deal starts a new hand: two cards each, player to act.
func Deal(rules Rules, draw func() Rank) GameState {
	var player, dealer Hand
	player = player.Draw(draw(), rules).Draw(draw(), rules)
	dealer = dealer.Draw(draw(), rules).Draw(draw(), rules)
	return GameState{
		Rules:  rules,
		Player: player,
		Dealer: dealer,
		Turn:   PlayerTurn,
	}
}

// LegalActions returns the player's options, empty once the player's turn is
// over.
func (s GameState) LegalActions() []Action {
	if s.Turn != PlayerTurn {
		return nil
	}
	return []Action{Hit, Stand}
}

// Stand ends the player's turn; the dealer resolves next.
func (s GameState) Stand() GameState {
	if s.Turn != PlayerTurn {
		panic("stand out of turn")
	}
	s.Turn = DealerTurn
	return s
}

// HitWith applies one known card to the player's hand. Busting ends the hand
// on the spot. The search layer expands all 13 ranks through this; live play
// passes a sampled rank.
func (s GameState) HitWith(rank Rank) GameState {
	if s.Turn != PlayerTurn {
		panic("hit out of turn")
	}
	s.Player = s.Player.Draw(rank, s.Rules)
	if s.Player.Busted(s.Rules) {
		s.Turn = GameOver
		s.Outcome = Lose
	}
	return s
}

// Apply plays one player action, sampling hit cards from draw.
func (s GameState) Apply(action Action, draw func() Rank) GameState {
	switch action {
	case Hit:
		return s.HitWith(draw())
	case Stand:
		return s.Stand()
	default:
		panic(fmt.Sprintf("illegal action %d", action))
	}
}

// ResolveDealer plays the dealer's fixed policy to completion and scores the
// hand: hit below the stand threshold, stand at or above it, bust loses.
func (s GameState) ResolveDealer(draw func() Rank) GameState {
	if s.Turn != DealerTurn {
		panic("dealer resolution out of turn")
	}
	for s.Dealer.Total < s.Rules.DealerStand {
		s.Dealer = s.Dealer.Draw(draw(), s.Rules)
	}
	s.Turn = GameOver
	s.Outcome = s.ScoreOutcome()
	return s
}

// ScoreOutcome compares finished hands. A busted side loses outright; the
// higher total wins; equal totals push.
func (s GameState) ScoreOutcome() Outcome {
	switch {
	case s.Player.Busted(s.Rules):
		return Lose
	case s.Dealer.Busted(s.Rules):
		return Win
	case s.Player.Total > s.Dealer.Total:
		return Win
	case s.Player.Total < s.Dealer.Total:
		return Lose
	default:
		return Push
	}
}
