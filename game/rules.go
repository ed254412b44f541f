package game

// Rules fixes the table parameters. A Rules value is immutable once
// constructed; rule variants are separate values passed in explicitly, never
// mutations of a shared instance.
type Rules struct {
	BustLimit   int // Totals above this lose immediately
	DealerStand int // Dealer stands at this total or higher
	FaceValue   int // Jack, Queen, King
	AceHigh     int // Ace while it can count high
	AceLow      int // Ace after demotion
}

// NewStandardRules returns the standard table: bust over 21, dealer stands on
// 17, faces count 10, aces count 11 falling back to 1.
func NewStandardRules() Rules {
	return Rules{
		BustLimit:   21,
		DealerStand: 17,
		FaceValue:   10,
		AceHigh:     11,
		AceLow:      1,
	}
}

// RankValue maps a rank to its initial point value. Aces enter high; Hand
// demotes them when the total busts.
func (r Rules) RankValue(rank Rank) int {
	switch {
	case rank == Ace:
		return r.AceHigh
	case rank >= Jack:
		return r.FaceValue
	default:
		return int(rank)
	}
}
