package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-dodge/internal/registry"
	"github.com/vovakirdan/rocket-dodge/internal/storage"
)

var (
	flagVersus bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores or versus results",
	Long: `Display the top solo runs, or with --versus the latest two-player
matches and the all-time tally.

Examples:
  dodge scores
  dodge scores --limit 25
  dodge scores --versus`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagVersus, "versus", false, "Show versus match history")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagVersus {
		return printVersus(store)
	}

	gameID := "dodge"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintln(os.Stderr, "Run 'dodge list' to see available games.")
		return fmt.Errorf("unknown game %q", gameID)
	}
	return printScores(store, gameID)
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-3s  %s\n", "Rank", "Score", "Level", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-3s  %s\n", "----", "-----", "-----", "---", "----")

	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-3s  %s\n", i+1, entry.Score, entry.Level, won, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Best level: %d  Victories: %d  Average: %.1f\n",
			stats.GamesCount, stats.HighScore, stats.BestLevel, stats.Victories, stats.AvgScore)
	}
	return nil
}

func printVersus(store *storage.Store) error {
	matches, err := store.RecentVersusResults(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving matches: %w", err)
	}

	fmt.Println("Versus Matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge versus' with a friend!")
		return nil
	}

	fmt.Printf("  %-6s  %-8s  %-8s  %-6s  %-8s  %s\n", "Winner", "P1 lives", "P2 lives", "Passed", "Time", "Date")
	fmt.Printf("  %-6s  %-8s  %-8s  %-6s  %-8s  %s\n", "------", "--------", "--------", "------", "----", "----")
	for _, m := range matches {
		winner := "Draw"
		if m.Winner > 0 {
			winner = fmt.Sprintf("P%d", m.Winner)
		}
		fmt.Printf("  %-6s  %-8d  %-8d  %-6d  %-8s  %s\n", winner, m.P1Lives, m.P2Lives, m.Passed,
			m.Duration.Round(time.Second), m.CreatedAt.Format("2006-01-02 15:04"))
	}

	tally, err := store.Tally()
	if err != nil {
		return fmt.Errorf("tallying matches: %w", err)
	}
	fmt.Println()
	fmt.Printf("P1 wins: %d  P2 wins: %d  Draws: %d\n", tally.P1Wins, tally.P2Wins, tally.Draws)
	return nil
}
