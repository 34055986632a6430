package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-dodge/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration the game would use, as YAML, after the search
order and the difficulty preset are applied. Redirect it to a file to start
your own config.

Search order:
  --config <path>
  ~/.dodge/configs/dodge.yaml
  ./configs/dodge.yaml
  built-in defaults

Examples:
  dodge config
  dodge config --difficulty hard
  dodge config --defaults > ~/.dodge/configs/dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	data, err := config.Marshal(settings.dodge)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "# source: %s, difficulty: %s\n", settings.source, settings.preset)
	_, err = os.Stdout.Write(data)
	return err
}
