package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapp/internal/audio"
	"github.com/vovakirdan/flapp/internal/core"
	"github.com/vovakirdan/flapp/internal/games/flapp"
	"github.com/vovakirdan/flapp/internal/platform/tui"
	"github.com/vovakirdan/flapp/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal.

Controls:
  Space/Up/W    - Flap (also starts the round)
  P/Esc         - Pause
  R/Enter       - Retry (once the retry prompt is shown)
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy    - The world speeds up slowly
  normal  - Default ramp
  hard    - Faster and more frequent speed-ups
  fixed   - The world never speeds up

Examples:
  flapp play
  flapp play --difficulty easy
  flapp play --mute --log-file flapp.log
  flapp play --config ./my-flapp.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := flapp.LoadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(flapp.GameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var player audio.Player = audio.Silent{}
	if !flagMute {
		bp := audio.NewBeepPlayer(1)
		if initErr := bp.Initialize(); initErr != nil {
			logger.Warn("audio unavailable, continuing muted", "error", initErr)
		} else {
			defer bp.Close()
			player = bp
		}
	}

	logger.Info("starting", "game", game.ID(), "fps", flagFPS, "difficulty", flagDifficulty)

	err = tui.Run(game, rt, tui.Options{
		Player:     player,
		Logger:     logger,
		MaxDelta:   cfg.World.MaxDelta,
		NominalFPS: cfg.World.FPS,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
