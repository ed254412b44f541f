package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/AfelipeRamirez1/Blackjack-AI/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.AddHand(HandMetric{Outcome: game.Win, Decisions: 2, Duration: 2 * time.Millisecond})
	c.AddHand(HandMetric{Outcome: game.Win, Decisions: 1, Duration: time.Millisecond})
	c.AddHand(HandMetric{Outcome: game.Push, Decisions: 1, Duration: time.Millisecond})
	c.AddHand(HandMetric{Outcome: game.Lose, Decisions: 4, Duration: 4 * time.Millisecond})

	summary := c.Complete(AgentConfig{ID: 1, Agent: "expectimax", Cutoff: 4})

	require.Equal(t, 4, summary.Hands)
	require.Equal(t, 2, summary.Wins)
	require.Equal(t, 1, summary.Pushes)
	require.Equal(t, 1, summary.Losses)
	require.Equal(t, 8, summary.Decisions)
	require.Equal(t, 8*time.Millisecond, summary.Thinking)
	require.Equal(t, time.Millisecond, summary.DecisionTime())
	require.Equal(t, 0.5, summary.WinRate())
	require.Equal(t, 0.25, summary.PushRate())
	require.Equal(t, 0.25, summary.LossRate())
}

func TestCollectorRejectsUnfinishedHand(t *testing.T) {
	require.Panics(t, func() {
		NewCollector().AddHand(HandMetric{Outcome: game.Undecided})
	})
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddHand(HandMetric{Outcome: game.Win, Decisions: 1})
		}()
	}
	wg.Wait()

	summary := c.Complete(AgentConfig{ID: 1})
	require.Equal(t, 100, summary.Wins)
	require.Equal(t, 100, summary.Decisions)
}

func TestSummaryZeroValues(t *testing.T) {
	var s Summary

	require.Equal(t, 0.0, s.WinRate())
	require.Equal(t, time.Duration(0), s.DecisionTime())
}
