package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/registry"
	"github.com/vovakirdan/numguess/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best finished games",
	Long: `Without a variant, summarize the results ledger for every variant.
With a variant, list its best wins (fewest attempts) per difficulty.

Results are only kept across runs when --db points to a file.

Examples:
  numguess scores --db ~/.numguess/results.db
  numguess scores classic --db ~/.numguess/results.db
  numguess scores classic --difficulty hard --db ~/.numguess/results.db
  numguess scores classic --clear --db ~/.numguess/results.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Rows per difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the variant's results")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagDBPath == "" || flagDBPath == storage.MemoryPath {
		fmt.Println("No results database configured.")
		fmt.Println("Pass --db <path> (or set NUMGUESS_DB) when playing to record games.")
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening results database: %w", err)
	}
	defer closeStore(store)

	if len(args) == 0 {
		return printSummary(store)
	}

	variant, err := registry.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'numguess list' to see available variants", err)
	}

	if flagScoresClear {
		if err := store.ClearResults(variant.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", variant.Title)
		return nil
	}

	difficulties := config.Difficulties()
	if flagScoresDifficulty != "" {
		d, ok := config.ParseDifficulty(flagScoresDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", flagScoresDifficulty)
		}
		difficulties = []config.Difficulty{d}
	}

	fmt.Printf("Best Games - %s\n", variant.Title)

	for _, d := range difficulties {
		results, err := store.BestResults(variant.ID, string(d), flagScoresLimit)
		if err != nil {
			return fmt.Errorf("error retrieving results: %w", err)
		}

		p := variant.Profile(d)
		fmt.Println()
		fmt.Printf("%s (1-%d, %d tries)\n", d.Title(), p.Range, p.MaxAttempts)

		if len(results) == 0 {
			fmt.Println("  No wins recorded yet.")
			continue
		}

		fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "Rank", "Attempts", "Date", "Session")
		fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "----", "--------", "----", "-------")
		for i, r := range results {
			fmt.Printf("  %-4d  %-8d  %-16s  %s\n", i+1, r.Attempts, r.CreatedAt.Format("2006-01-02 15:04"), r.Session)
		}
	}

	stats, err := store.Stats(variant.ID)
	if err == nil && stats.Games > 0 {
		fmt.Println()
		fmt.Printf("Played: %d  Wins: %d  Losses: %d\n", stats.Games, stats.Wins, stats.Losses)
	}
	return nil
}

// printSummary prints per-variant totals and the most recent games.
func printSummary(store *storage.Store) error {
	fmt.Printf("  %-12s  %-6s  %-6s  %-6s  %-4s  %s\n", "Variant", "Games", "Wins", "Losses", "Best", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-6s  %-4s  %s\n", "-------", "-----", "----", "------", "----", "-----------")

	for _, v := range registry.List() {
		stats, err := store.Stats(v.ID)
		if err != nil {
			return fmt.Errorf("error retrieving stats: %w", err)
		}

		best, last := "-", "-"
		if stats.BestScore > 0 {
			best = fmt.Sprintf("%d", stats.BestScore)
		}
		if !stats.LastPlayed.IsZero() {
			last = stats.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %-6d  %-4s  %s\n", v.ID, stats.Games, stats.Wins, stats.Losses, best, last)
	}

	recent, err := store.RecentResults(5)
	if err != nil {
		return fmt.Errorf("error retrieving results: %w", err)
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent games:")
	for _, r := range recent {
		outcome := "lost"
		if r.Won {
			outcome = fmt.Sprintf("won in %d", r.Attempts)
		}
		fmt.Printf("  %s  %-8s %-6s  %-10s  target %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Variant, r.Difficulty, outcome, r.Target)
	}
	return nil
}
