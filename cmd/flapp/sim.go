package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapp/internal/core"
	"github.com/vovakirdan/flapp/internal/games/flapp"
)

var (
	flagFrames  int
	flagRestart bool
	flagRender  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot round",
	Long: `Runs the simulation without a terminal UI, driven by the built-in
autopilot at a fixed delta of one frame per step, and prints the outcome.
With a fixed --seed the result is reproducible.

Examples:
  flapp sim
  flapp sim --frames 20000 --seed 7
  flapp sim --difficulty hard --render`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of steps to simulate")
	simCmd.Flags().BoolVar(&flagRestart, "restart", false, "Retry after each crash until the frame budget runs out")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
}

// simResult summarizes a headless run.
type simResult struct {
	Steps    int
	Rounds   int
	Best     int
	Final    core.GameState
	Snapshot flapp.Snapshot
}

func simulate(cfg core.RuntimeConfig, steps int, restart bool) (simResult, error) {
	flappCfg, err := flapp.LoadConfig()
	if err != nil {
		return simResult{}, err
	}

	game := flapp.NewWithConfig(flappCfg)
	game.Reset(cfg)
	pilot := flapp.NewAutopilot(restart)

	res := simResult{Rounds: 1}
	for res.Steps < steps {
		out := game.Step(1, pilot.Decide(game.Snapshot()))
		res.Steps++
		res.Final = out.State
		res.Best = max(res.Best, out.State.Score)

		for _, e := range out.Events {
			if e.Kind == core.EventReset {
				res.Rounds++
			}
		}
		if out.State.GameOver && !restart {
			break
		}
	}
	res.Snapshot = game.Snapshot()
	return res, nil
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("simulating", "frames", flagFrames, "seed", seed, "difficulty", flagDifficulty)
	res, err := simulate(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed}, flagFrames, flagRestart)
	if err != nil {
		return err
	}
	logger.Info("simulation done", "steps", res.Steps, "score", res.Final.Score, "phase", res.Final.Phase)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:       %d\n", seed)
	fmt.Fprintf(out, "steps:      %d\n", res.Steps)
	fmt.Fprintf(out, "rounds:     %d\n", res.Rounds)
	fmt.Fprintf(out, "phase:      %s\n", res.Final.Phase)
	fmt.Fprintf(out, "frame:      %d\n", res.Final.Frame)
	fmt.Fprintf(out, "score:      %d\n", res.Final.Score)
	fmt.Fprintf(out, "best:       %d\n", res.Best)
	fmt.Fprintf(out, "multiplier: %.3f\n", res.Final.Speed)

	if flagRender {
		screen := core.NewScreen(80, 24)
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && h > 1 {
			screen.Resize(w, h-1)
		}
		flapp.Draw(screen, res.Snapshot)
		fmt.Fprintln(out, screen.String())
	}
	return nil
}
