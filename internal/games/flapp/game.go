// Package flapp implements a side-scrolling gated-obstacle game: the avatar
// falls under gravity and must flap through gaps in obstacle pairs that
// slide in from the right, while the whole world speeds up over time.
package flapp

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flapp/internal/config"
	"github.com/vovakirdan/flapp/internal/core"
	"github.com/vovakirdan/flapp/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "flapp"

// configPath and difficultyPreset are set via CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on load.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig loads the configuration selected via SetConfigPath and applies
// the preset selected via SetDifficultyPreset.
func LoadConfig() (config.FlappConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg, cfg.Validate()
}

// Game is the frame loop driver. It owns the current Round and is the only
// writer of simulation state; Step must not be called concurrently.
type Game struct {
	cfg     *config.FlappConfig
	runtime core.RuntimeConfig
	round   *Round
	seeds   *rand.Rand // Seeds successive rounds deterministically
	paused  bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.FlappConfig) *Game {
	return &Game{cfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flapp"
}

// Config returns the active configuration.
func (g *Game) Config() config.FlappConfig {
	if g.cfg == nil {
		return config.DefaultFlappConfig()
	}
	return *g.cfg
}

// Reset starts over from a fresh READY round seeded from rt.Seed.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	if g.cfg == nil {
		cfg, err := LoadConfig()
		if err != nil {
			cfg = config.DefaultFlappConfig()
		}
		g.cfg = &cfg
	}
	g.seeds = rand.New(rand.NewSource(rt.Seed))
	g.paused = false
	g.newRound()
}

func (g *Game) newRound() {
	g.round = NewRound(*g.cfg, g.seeds.Int63())
}

// Step advances the game by one frame. dt is the elapsed time in nominal
// frames (1.0 at the target FPS).
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.round == nil {
		g.Reset(core.DefaultConfig())
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	r := g.round

	// Handle pause toggle
	if in.Has(core.ActionPause) && r.State != StateDead {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch r.State {
	case StateReady:
		if in.Has(core.ActionFlap) {
			r.Start()
		}
	case StatePlaying:
		if in.Has(core.ActionFlap) {
			r.Flap()
		}
		r.tickPlaying(dt)
	case StateDead:
		if in.Has(core.ActionRestart) && r.RetryReady() {
			g.newRound()
			g.round.emit(core.Event{Kind: core.EventReset})
			return core.StepResult{State: g.State(), Events: g.round.drainEvents()}
		}
		r.tickDead(dt)
	}

	r.scroll(dt)

	return core.StepResult{State: g.State(), Events: r.drainEvents()}
}

// Round returns the current round. Callers must treat it as read-only.
func (g *Game) Round() *Round {
	return g.round
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{Phase: StateReady.String(), Speed: 1}
	}
	r := g.round
	return core.GameState{
		Phase:    r.State.String(),
		Score:    r.Score.Value(),
		GameOver: r.State == StateDead,
		Paused:   g.paused,
		Speed:    r.Difficulty.Multiplier(),
		Frame:    r.Frame,
	}
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot())
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
