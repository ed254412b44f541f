package experiments

import (
	"fmt"
	"runtime"
	"time"

	"github.com/AfelipeRamirez1/Blackjack-AI/agent"
	"github.com/AfelipeRamirez1/Blackjack-AI/engine"
	"github.com/AfelipeRamirez1/Blackjack-AI/experiments/metrics"
	"github.com/AfelipeRamirez1/Blackjack-AI/game"
	"github.com/AfelipeRamirez1/Blackjack-AI/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

const DefaultHands = 1000

// Config drives one evaluation run: every named agent plays Hands
// independent hands against the house policy.
type Config struct {
	Agents  []string
	Hands   int
	Cutoff  int
	Seed    uint64 // 0 picks a random seed
	Workers int    // Concurrent hands, 0 for one per CPU
	Rules   game.Rules
	Out     string // Base directory for CSV output, empty to skip
}

// Run evaluates each configured agent and returns its summary. All agents
// replay the same seeded deal sequence, so outcome differences come from the
// decisions alone.
func Run(cfg Config) ([]metrics.Summary, error) {
	if cfg.Hands <= 0 {
		cfg.Hands = DefaultHands
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Rules == (game.Rules{}) {
		cfg.Rules = game.NewStandardRules()
	}
	if cfg.Seed == 0 {
		cfg.Seed = frand.Uint64n(1<<63) + 1
		log.Info().Msgf("picked random seed %d", cfg.Seed)
	}

	configs := make([]metrics.AgentConfig, 0, len(cfg.Agents))
	for i, name := range cfg.Agents {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Agent: name, Cutoff: cfg.Cutoff})
	}

	summaries := make([]metrics.Summary, 0, len(configs))
	handRecords := make([]metrics.HandRecord, 0, len(configs)*cfg.Hands)
	for _, config := range configs {
		log.Info().Msgf("evaluating %s over %d hands...", config.Agent, cfg.Hands)

		summary, records, err := runAgent(cfg, config)
		if err != nil {
			return nil, err
		}

		log.Info().Msgf("completed %s: %d wins, %d pushes, %d losses",
			config.Agent, summary.Wins, summary.Pushes, summary.Losses)
		summaries = append(summaries, summary)
		handRecords = append(handRecords, records...)
	}

	if cfg.Out != "" {
		if err := writeRecords(cfg.Out, configs, summaries, handRecords); err != nil {
			return nil, err
		}
	}
	return summaries, nil
}

// runAgent plays cfg.Hands hands with one agent. Hand i always deals from
// seed+i, independent of scheduling.
func runAgent(cfg Config, config metrics.AgentConfig) (metrics.Summary, []metrics.HandRecord, error) {
	a, err := agent.New(config.Agent, searcher.WithCutoff(config.Cutoff))
	if err != nil {
		return metrics.Summary{}, nil, err
	}

	collector := metrics.NewCollector()
	records := make([]metrics.HandRecord, cfg.Hands)

	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Hands; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + uint64(i)))
			e := engine.LocalEngine(a, cfg.Rules, game.NewDraw(rng))

			start := time.Now()
			final, decisions := e.Run()

			metric := metrics.HandMetric{
				Outcome:     final.Outcome,
				PlayerTotal: final.Player.Total,
				DealerTotal: final.Dealer.Total,
				Decisions:   decisions,
				Duration:    time.Since(start),
			}
			collector.AddHand(metric)
			records[i] = metrics.HandRecord{ID: i + 1, Agent: config.ID, HandMetric: metric}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return metrics.Summary{}, nil, err
	}

	return collector.Complete(config), records, nil
}

func writeRecords(out string, configs []metrics.AgentConfig, summaries []metrics.Summary, records []metrics.HandRecord) error {
	writer, err := metrics.NewWriter(out, "agents")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteSummaries(summaries); err != nil {
		return err
	}
	if err := writer.WriteHandRecords(records); err != nil {
		return err
	}
	log.Info().Msgf("wrote results to %s", writer.BaseDir())
	return nil
}
