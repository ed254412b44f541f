package metrics

import (
	"sync/atomic"
	"time"

	"github.com/AfelipeRamirez1/Blackjack-AI/game"
)

// AgentConfig identifies one evaluated agent configuration.
type AgentConfig struct {
	ID     int
	Agent  string
	Cutoff int
}

type HandMetric struct {
	Outcome     game.Outcome
	PlayerTotal int
	DealerTotal int
	Decisions   int
	Duration    time.Duration
}

type HandRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	HandMetric
}

type Summary struct {
	Agent     AgentConfig
	Hands     int
	Wins      int
	Pushes    int
	Losses    int
	Decisions int
	Thinking  time.Duration // Total decision time across all hands
}

func (s Summary) WinRate() float64 {
	return rate(s.Wins, s.Hands)
}

func (s Summary) PushRate() float64 {
	return rate(s.Pushes, s.Hands)
}

func (s Summary) LossRate() float64 {
	return rate(s.Losses, s.Hands)
}

// DecisionTime is the mean thinking time per decision.
func (s Summary) DecisionTime() time.Duration {
	if s.Decisions == 0 {
		return 0
	}
	return s.Thinking / time.Duration(s.Decisions)
}

func rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// Collector tallies hand results for one agent. Safe for concurrent use: the
// experiment driver plays hands from many goroutines.
type Collector struct {
	wins      atomic.Int64
	pushes    atomic.Int64
	losses    atomic.Int64
	decisions atomic.Int64
	thinking  atomic.Int64
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) AddHand(m HandMetric) {
	switch m.Outcome {
	case game.Win:
		c.wins.Add(1)
	case game.Push:
		c.pushes.Add(1)
	case game.Lose:
		c.losses.Add(1)
	default:
		panic("recording an unfinished hand")
	}
	c.decisions.Add(int64(m.Decisions))
	c.thinking.Add(int64(m.Duration))
}

func (c *Collector) Complete(config AgentConfig) Summary {
	wins := int(c.wins.Load())
	pushes := int(c.pushes.Load())
	losses := int(c.losses.Load())
	return Summary{
		Agent:     config,
		Hands:     wins + pushes + losses,
		Wins:      wins,
		Pushes:    pushes,
		Losses:    losses,
		Decisions: int(c.decisions.Load()),
		Thinking:  time.Duration(c.thinking.Load()),
	}
}
