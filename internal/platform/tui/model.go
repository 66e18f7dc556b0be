package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapp/internal/audio"
	"github.com/vovakirdan/flapp/internal/core"
	"github.com/vovakirdan/flapp/internal/registry"
)

// Options configures the collaborators of a Model.
type Options struct {
	Player   audio.Player // Defaults to audio.Silent
	Logger   *log.Logger  // Defaults to a logger that discards everything
	MaxDelta float64      // Cap on the frame delta after stalls

	// NominalFPS is the frame rate the simulation is tuned for. Ticks at a
	// different rate produce proportionally larger or smaller deltas.
	// Defaults to the runtime tick rate.
	NominalFPS int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	clock     *core.FrameClock
	interval  time.Duration
	keys      KeyMap
	help      help.Model
	player    audio.Player
	logger    *log.Logger
	input     core.InputFrame
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == nil {
		opts.Player = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.NominalFPS <= 0 {
		opts.NominalFPS = cfg.TickRate
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, footerless(cfg.ScreenH)),
		config:   cfg,
		clock:    core.NewFrameClock(opts.NominalFPS, opts.MaxDelta),
		interval: time.Second / time.Duration(cfg.TickRate),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		player:   opts.Player,
		logger:   opts.Logger,
		input:    core.NewInputFrame(),
	}
}

// footerless reserves the last row for the help footer.
func footerless(h int) int {
	return max(0, h-1)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("round ready", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := MouseAction(msg); a != core.ActionNone {
			m.input.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleResize adapts the screen buffer. The world is resolution
// independent, so the round keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, footerless(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the elapsed delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Advance(now)
	result := m.game.Step(dt, m.input)
	m.gameState = result.State
	m.dispatch(result)

	m.input.Clear()
	return m, tickCmd(m.interval)
}

// dispatch hands frame events to the sound player and the log.
func (m Model) dispatch(result core.StepResult) {
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventCue:
			m.player.Play(e.Cue)
		case core.EventStart:
			m.logger.Debug("round started")
		case core.EventScore:
			m.logger.Debug("scored", "score", int(e.Value))
		case core.EventDifficulty:
			m.logger.Info("difficulty increased", "multiplier", fmt.Sprintf("%.3f", e.Value), "frame", result.State.Frame)
		case core.EventDeath:
			m.logger.Info("round over", "score", int(e.Value), "frame", result.State.Frame)
		case core.EventReset:
			m.logger.Info("round ready", "game", m.game.ID())
		}
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".flapp", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
