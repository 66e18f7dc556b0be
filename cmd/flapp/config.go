package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapp/internal/config"
	"github.com/vovakirdan/flapp/internal/games/flapp"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the way 'flapp play' does (custom path, then
~/.flapp/flapp.yaml, then ./configs/flapp.yaml, then built-in defaults),
applies the difficulty preset and prints the result as YAML.

Examples:
  flapp config > ~/.flapp/flapp.yaml
  flapp config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := flapp.LoadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
