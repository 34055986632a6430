// dodge is a rocket dodge arcade game for the terminal, a desktop window or
// an SSH server.
//
// Usage:
//
//	dodge play              - Fly through ten levels of falling asteroids
//	dodge versus            - Two players, one keyboard
//	dodge menu              - Start menu to pick a mode interactively
//	dodge serve             - Start SSH server for remote play
//	dodge scores            - Show high scores and versus results
//	dodge list              - List available game modes
//	dodge config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.dodge/scores.db)
//	--config <path>     - Load a custom game config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard
//	--log <path>        - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocket-dodge/internal/config"
	"github.com/vovakirdan/rocket-dodge/internal/core"
	"github.com/vovakirdan/rocket-dodge/internal/games/dodge"
	"github.com/vovakirdan/rocket-dodge/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

// settings is the configuration every command works from, resolved once in
// the root pre-run hook.
var settings struct {
	base    config.DodgeConfig // As loaded, before the difficulty preset
	dodge   config.DodgeConfig // With the preset applied
	source  config.Source
	preset  config.DifficultyPreset
	logger  *log.Logger
	logFile *os.File
}

func main() {
	err := rootCmd.Execute()
	if settings.logFile != nil {
		settings.logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Rocket Dodge - steer a rocket through falling asteroids",
	Long: `Rocket Dodge is an arcade game: fly a rocket through ten levels of
falling asteroids, or challenge a friend on the same keyboard in versus mode.

Available commands:
  play     - Solo campaign
  versus   - Two-player match
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and match history
  list     - Show all game modes
  config   - Print the effective configuration

Examples:
  dodge play
  dodge play --level 5 --difficulty hard
  dodge versus --gui
  dodge serve --ssh :2222
  dodge scores --versus`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (terminal modes log nowhere by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versusCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings resolves config, difficulty and logging for every command.
func loadSettings(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, err := newLogger(cmd.Name() == "serve")
	if err != nil {
		return err
	}
	settings.logger = logger

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, source, err := config.LoadDodge(flagConfig)
	if err != nil {
		return err
	}
	settings.base = cfg
	settings.source = source
	settings.preset = preset

	settings.dodge = cfg
	config.ApplyDodgePreset(&settings.dodge, preset)
	dodge.SetDefaultConfig(settings.dodge)

	logger.Debug("config loaded", "source", source, "difficulty", preset)
	return nil
}

// newLogger opens the log destination. The terminal belongs to the game, so
// only the server logs to stderr without --log.
func newLogger(toStderr bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogPath != "":
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		settings.logFile = f
		w = f
	case toStderr:
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "dodge",
	}), nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		settings.logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
