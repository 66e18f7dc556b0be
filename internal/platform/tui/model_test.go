package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapp/internal/config"
	"github.com/vovakirdan/flapp/internal/core"
	"github.com/vovakirdan/flapp/internal/games/flapp"
)

type recorder struct {
	cues []string
}

func (r *recorder) Play(cue string) {
	r.cues = append(r.cues, cue)
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{keyMsg(" "), core.ActionFlap},
		{keyMsg("w"), core.ActionFlap},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{keyMsg("r"), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{keyMsg("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{keyMsg("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{keyMsg("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMouseAction(t *testing.T) {
	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if MouseAction(click) != core.ActionFlap {
		t.Error("left click should flap")
	}
	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if MouseAction(release) != core.ActionNone {
		t.Error("release should not flap")
	}
}

func newTestModel(t *testing.T, player *recorder, logs *bytes.Buffer) Model {
	t.Helper()
	game := flapp.NewWithConfig(config.DefaultFlappConfig())
	logger := log.New(logs)
	logger.SetLevel(log.DebugLevel)

	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, Options{
		Player:   player,
		Logger:   logger,
		MaxDelta: 4,
	})
	m.Init()
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelFlapStartsRoundAndPlaysCue(t *testing.T) {
	player := &recorder{}
	var logs bytes.Buffer
	m := newTestModel(t, player, &logs)

	start := time.Unix(0, 0)
	m = step(t, m, keyMsg(" "))
	m = step(t, m, TickMsg(start))

	if m.State().Phase != "playing" {
		t.Fatalf("phase = %q, want playing", m.State().Phase)
	}
	if len(player.cues) != 1 || player.cues[0] != core.CueClick {
		t.Errorf("cues = %v, want [click]", player.cues)
	}
	if !strings.Contains(logs.String(), "round started") {
		t.Errorf("log missing start entry:\n%s", logs.String())
	}

	// Input is consumed by the tick.
	m = step(t, m, TickMsg(start.Add(time.Second/60)))
	if len(player.cues) != 1 {
		t.Errorf("cues after idle tick = %v", player.cues)
	}
}

func TestModelLogsDeath(t *testing.T) {
	player := &recorder{}
	var logs bytes.Buffer
	m := newTestModel(t, player, &logs)

	now := time.Unix(0, 0)
	m = step(t, m, keyMsg(" "))
	for i := 0; i < 200 && !m.State().GameOver; i++ {
		m = step(t, m, TickMsg(now))
		now = now.Add(time.Second / 60)
	}

	if !m.State().GameOver {
		t.Fatal("avatar never crashed")
	}
	if !strings.Contains(logs.String(), "round over") {
		t.Errorf("log missing death entry:\n%s", logs.String())
	}
	joined := strings.Join(player.cues, ",")
	if !strings.Contains(joined, core.CueHit+","+core.CueGameOver) {
		t.Errorf("cues = %v, want hit then gameover", player.cues)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &recorder{}, &bytes.Buffer{})

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("view after quit = %q, want empty", v)
	}
}

func TestModelViewReservesFooter(t *testing.T) {
	m := newTestModel(t, &recorder{}, &bytes.Buffer{})
	m = step(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, want 60x19", m.screen.Width(), m.screen.Height())
	}
	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines < 20 {
		t.Errorf("view has %d lines, want at least 20", lines)
	}
	if !strings.Contains(view, "flap") {
		t.Error("help footer missing")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorPrompt)
	s.DrawText(2, 1, "cd")

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("render has %d newlines, want 1", strings.Count(out, "\n"))
	}
}
