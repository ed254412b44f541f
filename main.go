package main

import (
	"fmt"
	"os"

	"github.com/AfelipeRamirez1/Blackjack-AI/experiments"
	"github.com/AfelipeRamirez1/Blackjack-AI/searcher"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type CLI struct {
	Hands   int      `default:"1000" help:"Number of hands to play per agent"`
	Depth   int      `default:"4" help:"Search depth before falling back to the stand-value heuristic"`
	Agents  []string `default:"minimax,alphabeta,expectimax" help:"Agents to evaluate: minimax, alphabeta, expectimax"`
	Seed    uint64   `default:"0" help:"Deal seed (0 picks a random seed)"`
	Workers int      `default:"0" help:"Concurrent hands (0 for one per CPU)"`
	Out     string   `default:"" help:"Directory for CSV results (empty to skip)"`
	Verbose bool     `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Compare minimax and expectimax blackjack agents over simulated hands."))

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cli.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cli.Depth <= 0 {
		cli.Depth = searcher.DefaultCutoff
	}

	summaries, err := experiments.Run(experiments.Config{
		Agents:  cli.Agents,
		Hands:   cli.Hands,
		Cutoff:  cli.Depth,
		Seed:    cli.Seed,
		Workers: cli.Workers,
		Out:     cli.Out,
	})
	ctx.FatalIfErrorf(err)

	fmt.Printf("%-12s %8s %8s %8s %8s %10s %14s\n",
		"agent", "hands", "wins", "pushes", "losses", "win rate", "per decision")
	for _, s := range summaries {
		fmt.Printf("%-12s %8d %8d %8d %8d %9.2f%% %14s\n",
			s.Agent.Agent, s.Hands, s.Wins, s.Pushes, s.Losses,
			s.WinRate()*100, s.DecisionTime())
	}
}
