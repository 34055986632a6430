package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-dodge/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every game mode registered with the launcher.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Players", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "-------", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %-7d  %s\n", maxIDLen, g.ID, g.Players, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'dodge play' or 'dodge versus' to start.")
}
