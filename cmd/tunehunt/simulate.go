package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tunehunt/internal/autoplay"
	"github.com/vovakirdan/tunehunt/internal/engine"
)

var (
	flagSimMode     string
	flagSimReaction time.Duration
	flagSimHitRate  float64
	flagSimFakeRate float64
	flagSimRounds   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless rounds with an autoplayer",
	Long: `Play whole rounds without a screen, as fast as possible, using an
autoplayer that clicks targets after a fixed reaction time. Useful for
tuning spawn frequency, sizes and physics against a reference player.

The autoplayer rolls each target once: real targets are clicked with
--hit-rate, fakes with --fake-rate. Everything else expires.

Examples:
  tunehunt simulate
  tunehunt simulate --mode bouncing --rounds 10
  tunehunt simulate --reaction 800ms --hit-rate 0.7 --fake-rate 0.1
  tunehunt simulate --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", "", "Mode override: classic, bouncing, shooting, gliding")
	simulateCmd.Flags().DurationVar(&flagSimReaction, "reaction", 400*time.Millisecond, "Delay between a spawn and the click")
	simulateCmd.Flags().Float64Var(&flagSimHitRate, "hit-rate", 0.9, "Chance a real target is clicked")
	simulateCmd.Flags().Float64Var(&flagSimFakeRate, "fake-rate", 0.05, "Chance a fake target is clicked")
	simulateCmd.Flags().IntVar(&flagSimRounds, "rounds", 1, "Number of rounds")
}

func runSimulate(_ *cobra.Command, _ []string) {
	a := mustLoad(os.Stderr)
	defer a.close()

	if flagSimMode != "" {
		mode, err := engine.ParseMode(flagSimMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		a.settings.Mode = mode
	}
	if flagSimRounds < 1 {
		fmt.Fprintln(os.Stderr, "Error: --rounds must be at least 1")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.mustStartContent(ctx)

	rng := rand.New(rand.NewSource(a.runtime.Seed))
	session := engine.NewSession(a.settings, a.pool, engine.LogSink{Logger: a.logger}, rng)
	player := autoplay.New(flagSimReaction, flagSimHitRate, flagSimFakeRate, rng)

	fmt.Printf("Simulating %d round(s): mode=%s duration=%s spawn=%s seed=%d\n",
		flagSimRounds, a.settings.Mode, a.settings.Duration, a.settings.SpawnFrequency, a.runtime.Seed)
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-6s  %-4s  %-6s  %-8s  %s\n", "Round", "Points", "Hits", "Missed", "Accuracy", "Spawned")
	fmt.Printf("  %-5s  %-6s  %-4s  %-6s  %-8s  %s\n", "-----", "------", "----", "------", "--------", "-------")

	start := time.Unix(0, 0)
	total := 0
	for round := 1; round <= flagSimRounds; round++ {
		score, err := player.Run(session, start, a.runtime.TickRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in round %d: %v\n", round, err)
			os.Exit(1)
		}
		total += score.Points
		fmt.Printf("  %-5d  %-6d  %-4d  %-6d  %7.2f%%  %d/%d\n",
			round, score.Points, score.Hits, score.Missed, score.Accuracy(), session.Spawned(), session.SpawnBoundaries())
		start = start.Add(a.settings.Duration + time.Second)
	}

	fmt.Println()
	fmt.Printf("High score: %d  Average: %.1f\n", session.HighScore(), float64(total)/float64(flagSimRounds))
}
