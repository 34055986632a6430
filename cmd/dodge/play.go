package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-dodge/internal/config"
	"github.com/vovakirdan/rocket-dodge/internal/games/dodge"
	"github.com/vovakirdan/rocket-dodge/internal/platform/gfx"
	"github.com/vovakirdan/rocket-dodge/internal/platform/tui"
)

var (
	flagGUI   bool
	flagLevel int
	flagScale float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the solo campaign",
	Long: `Fly through ten levels of falling asteroids. Pass the level's quota of
asteroids to clear it; a hit costs a life and clears the field.

Controls:
  WASD/Arrows  - Thrust
  Space        - Start, continue, fire (with the lasers power-up)
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back (when paused or over)
  Q/Ctrl+C     - Quit

Examples:
  dodge play
  dodge play --level 7
  dodge play --difficulty easy
  dodge play --gui --scale 1.5
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var versusCmd = &cobra.Command{
	Use:   "versus",
	Short: "Play a two-player match on one keyboard",
	Long: `Two rockets share the field, each confined to its half. Asteroids fall
on both; lasers destroy asteroids and hit the other rocket. The last rocket
flying wins.

Controls:
  Player 1     - WASD to thrust, Space to fire
  Player 2     - Arrows to thrust, / to fire
  P/Esc        - Pause
  R            - Rematch (after the match)
  Q/Ctrl+C     - Quit

Examples:
  dodge versus
  dodge versus --gui`,
	Args: cobra.NoArgs,
	RunE: runVersus,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, versusCmd} {
		cmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of using the terminal")
		cmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale for --gui")
	}
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (1-10, 0 = from config)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg := settings.dodge
	if flagLevel != 0 {
		if flagLevel < 1 || flagLevel > config.MaxLevels {
			return fmt.Errorf("--level must be in [1, %d], got %d", config.MaxLevels, flagLevel)
		}
		cfg.Gameplay.StartLevel = flagLevel
	}
	return playMode(dodge.ModeSolo, cfg)
}

func runVersus(_ *cobra.Command, _ []string) error {
	return playMode(dodge.ModeVersus, settings.dodge)
}

// playMode runs one game until the player quits.
func playMode(mode dodge.Mode, cfg config.DodgeConfig) error {
	game := dodge.NewWithConfig(mode, cfg)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagGUI {
		_, err := gfx.Run(game, store, gfx.Options{
			Logger:   settings.logger,
			Seed:     flagSeed,
			TickRate: flagFPS,
			Scale:    flagScale,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}

	_, err := tui.Run(game, store, runtimeConfig(), tui.Options{
		Logger: settings.logger,
		Hold:   time.Duration(cfg.Terminal.HoldMS) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
