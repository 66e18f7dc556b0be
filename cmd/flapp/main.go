// flapp is a terminal side-scroller: flap through the gaps, survive as the
// world speeds up.
//
// Usage:
//
//	flapp play       - Play in the terminal
//	flapp sim        - Run a headless autopilot round and print the result
//	flapp config     - Print the effective configuration as YAML
//	flapp list       - List available games
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load a custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write logs to a file
//	--mute                 - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapp/internal/config"
	"github.com/vovakirdan/flapp/internal/games/flapp"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapp",
	Short: "Flapp - flap through the gaps in your terminal",
	Long: `Flapp is a terminal side-scroller. Flap to stay airborne and pass
through the gaps between obstacle pairs. The world speeds up over time.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless autopilot round
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  flapp play
  flapp play --difficulty hard
  flapp sim --frames 7200 --seed 42
  flapp config --config ./my-flapp.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		flapp.SetConfigPath(flagConfig)
		flapp.SetDifficultyPreset(preset)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
