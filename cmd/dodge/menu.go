package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-dodge/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to change the difficulty
and the start level, Enter to play. After a game you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change setting
  Enter/Space     - Play
  Tab             - Scores
  Q               - Quit

Examples:
  dodge menu
  dodge menu --fps 30
  dodge menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	opts := tui.MenuOptions{
		Dodge:      settings.base,
		Difficulty: settings.preset,
		Level:      settings.base.Gameplay.StartLevel,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, opts)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		opts = menuResult.Options(settings.base)

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := menuResult.NewGame()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, tui.Options{
			Logger: settings.logger,
			Hold:   time.Duration(menuResult.Dodge.Terminal.HoldMS) * time.Millisecond,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
