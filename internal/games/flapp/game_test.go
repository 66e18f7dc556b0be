package flapp

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/flapp/internal/config"
	"github.com/vovakirdan/flapp/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultFlappConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(evs []core.Event, want core.Event) bool {
	for _, e := range evs {
		if e == want {
			return true
		}
	}
	return false
}

func hasKind(evs []core.Event, kind core.EventKind) bool {
	for _, e := range evs {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// playUntil steps with the autopilot until done returns true or limit frames pass.
func playUntil(g *Game, ap *Autopilot, limit int, done func(core.StepResult) bool) (core.StepResult, bool) {
	var res core.StepResult
	for i := 0; i < limit; i++ {
		res = g.Step(1, ap.Decide(g.Snapshot()))
		if done(res) {
			return res, true
		}
	}
	return res, false
}

// crash starts a round and lets the avatar fall to the ground.
func crash(t *testing.T, g *Game) {
	t.Helper()
	g.Step(1, input(core.ActionFlap))
	for i := 0; i < 200; i++ {
		if g.Step(1, core.NewInputFrame()).State.GameOver {
			return
		}
	}
	t.Fatal("avatar never hit the ground")
}

func TestReadyIgnoresTimeButScrolls(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 10; i++ {
		g.Step(1, core.NewInputFrame())
	}

	r := g.Round()
	if r.State != StateReady {
		t.Fatalf("state = %v, want ready", r.State)
	}
	if r.Avatar.Y != 360 || r.Avatar.Velocity != 0 {
		t.Errorf("avatar moved in ready: y=%v v=%v", r.Avatar.Y, r.Avatar.Velocity)
	}
	if r.Frame != 0 {
		t.Errorf("frame = %d, want 0", r.Frame)
	}
	if r.BackgroundX != -20 || r.GroundX != -20 {
		t.Errorf("scroll = (%v, %v), want (-20, -20)", r.BackgroundX, r.GroundX)
	}
	if r.Pairs.Pairs()[0].X != 432 {
		t.Errorf("pairs slid in ready: x=%v", r.Pairs.Pairs()[0].X)
	}
}

func TestFlapStartsRound(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(1, input(core.ActionFlap))

	if res.State.Phase != "playing" {
		t.Fatalf("phase = %q, want playing", res.State.Phase)
	}
	r := g.Round()
	if r.Avatar.Velocity != 8 || r.Avatar.Velocity > 9 {
		t.Errorf("velocity = %v, want 8", r.Avatar.Velocity)
	}
	if r.Avatar.Y != 360 {
		t.Errorf("y = %v, physics must start on the next frame", r.Avatar.Y)
	}
	if !hasKind(res.Events, core.EventStart) || !hasEvent(res.Events, core.Cue(core.CueClick)) {
		t.Errorf("events = %v, want start and click", res.Events)
	}

	g.Step(1, core.NewInputFrame())
	if math.Abs(r.Avatar.Velocity-7.7) > 1e-9 || math.Abs(r.Avatar.Y-352.3) > 1e-9 {
		t.Errorf("after one frame: v=%v y=%v, want 7.7 352.3", r.Avatar.Velocity, r.Avatar.Y)
	}
	if r.Frame != 1 {
		t.Errorf("frame = %d, want 1", r.Frame)
	}
}

func TestOverlayFades(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(1, input(core.ActionFlap))

	for i := 0; i < 5; i++ {
		g.Step(1, core.NewInputFrame())
	}
	o := g.Round().Overlay
	if math.Abs(o.Ready-0.5) > 1e-9 || math.Abs(o.HUD-0.5) > 1e-9 {
		t.Errorf("overlay = %+v, want ready 0.5 hud 0.5", o)
	}

	for i := 0; i < 10; i++ {
		g.Step(1, core.NewInputFrame())
	}
	o = g.Round().Overlay
	if o.Ready != 0 || o.HUD != 1 {
		t.Errorf("overlay = %+v, want ready 0 hud 1", o)
	}
}

func TestGroundHitKills(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(1, input(core.ActionFlap))

	var death core.StepResult
	for i := 0; i < 200; i++ {
		res := g.Step(1, core.NewInputFrame())
		if res.State.GameOver {
			death = res
			break
		}
	}

	if !death.State.GameOver {
		t.Fatal("avatar never died")
	}
	if death.State.Frame != 74 {
		t.Errorf("died at frame %d, want 74", death.State.Frame)
	}
	for _, want := range []core.Event{
		core.Cue(core.CueHit),
		core.Cue(core.CueGameOver),
		{Kind: core.EventDeath, Value: 0},
	} {
		if !hasEvent(death.Events, want) {
			t.Errorf("events = %v, missing %v", death.Events, want)
		}
	}
	if g.Round().Avatar.Alive {
		t.Error("avatar still alive after crash")
	}
}

func TestDeadIgnoresFlap(t *testing.T) {
	g := newTestGame(t, 1)
	crash(t, g)

	r := g.Round()
	before := r.Avatar.Velocity
	res := g.Step(1, input(core.ActionFlap))

	if r.Avatar.Velocity >= before {
		t.Errorf("velocity rose from %v to %v while dead", before, r.Avatar.Velocity)
	}
	if hasEvent(res.Events, core.Cue(core.CueClick)) {
		t.Error("click cue while dead")
	}
	if r.State != StateDead {
		t.Errorf("state = %v, want dead", r.State)
	}
}

func TestDeadAvatarComesToRest(t *testing.T) {
	g := newTestGame(t, 1)
	crash(t, g)

	for i := 0; i < 300; i++ {
		g.Step(1, core.NewInputFrame())
	}
	if y := g.Round().Avatar.Y; y != 648 {
		t.Errorf("resting y = %v, want 648", y)
	}
}

func TestRetryRequiresVisibleControl(t *testing.T) {
	g := newTestGame(t, 1)
	crash(t, g)

	res := g.Step(1, input(core.ActionRestart))
	if res.State.Phase != "dead" {
		t.Fatalf("restart accepted before the retry control was visible")
	}

	for i := 0; i < 500 && !g.Round().RetryReady(); i++ {
		g.Step(1, core.NewInputFrame())
	}
	if !g.Round().RetryReady() {
		t.Fatal("retry control never became ready")
	}
	if o := g.Round().Overlay; o.GameOver != 1 || o.Retry != 1 {
		t.Errorf("overlay = %+v, want game over and retry fully visible", o)
	}

	// Flap alone does not retry.
	if g.Step(1, input(core.ActionFlap)).State.Phase != "dead" {
		t.Error("flap restarted the round")
	}

	res = g.Step(1, input(core.ActionRestart))
	if res.State.Phase != "ready" {
		t.Fatalf("phase = %q, want ready", res.State.Phase)
	}
	if !hasKind(res.Events, core.EventReset) {
		t.Errorf("events = %v, want reset", res.Events)
	}

	r := g.Round()
	if r.Score.Value() != 0 || !reflect.DeepEqual(r.Score.Digits(), []int{0}) {
		t.Errorf("score = %d %v, want 0 [0]", r.Score.Value(), r.Score.Digits())
	}
	if r.Difficulty.Multiplier() != 1 {
		t.Errorf("multiplier = %v, want 1", r.Difficulty.Multiplier())
	}
	if r.Pairs.Len() != 1 || r.Pairs.Pairs()[0].X != 432 {
		t.Errorf("pairs = %+v, want one seed pair at x=432", r.Pairs.Pairs())
	}
	if r.Avatar.Y != 360 || !r.Avatar.Alive || r.Frame != 0 {
		t.Errorf("avatar = %+v frame %d, want fresh", r.Avatar, r.Frame)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(1, input(core.ActionFlap))
	g.Step(1, core.NewInputFrame())

	res := g.Step(1, input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause not applied")
	}
	y := g.Round().Avatar.Y
	for i := 0; i < 20; i++ {
		g.Step(1, input(core.ActionFlap))
	}
	if g.Round().Avatar.Y != y || g.Round().Frame != 1 {
		t.Error("simulation advanced while paused")
	}

	res = g.Step(1, input(core.ActionPause))
	if res.State.Paused {
		t.Error("pause not toggled off")
	}
	if g.Round().Frame != 2 {
		t.Errorf("frame = %d, want 2 after resume", g.Round().Frame)
	}
}

func TestAutopilotScores(t *testing.T) {
	g := newTestGame(t, 3)
	ap := NewAutopilot(false)

	res, died := playUntil(g, ap, 3600, func(r core.StepResult) bool { return r.State.GameOver })
	if died {
		t.Fatalf("autopilot crashed at frame %d with score %d", res.State.Frame, res.State.Score)
	}
	if res.State.Score < 20 {
		t.Errorf("score = %d after 3600 frames, want at least 20", res.State.Score)
	}
}

func TestScoreEventsMatchScore(t *testing.T) {
	g := newTestGame(t, 8)
	ap := NewAutopilot(false)

	scored := 0
	var last core.StepResult
	for i := 0; i < 1500; i++ {
		last = g.Step(1, ap.Decide(g.Snapshot()))
		for _, e := range last.Events {
			if e.Kind == core.EventScore {
				scored++
				if int(e.Value) != scored {
					t.Fatalf("score event value %v, want %d", e.Value, scored)
				}
			}
		}
	}
	if scored == 0 || scored != last.State.Score {
		t.Errorf("score events = %d, state score = %d", scored, last.State.Score)
	}
}

func TestDifficultyStepsOnExactFrame(t *testing.T) {
	g := newTestGame(t, 4)
	ap := NewAutopilot(false)

	res, ok := playUntil(g, ap, 7300, func(r core.StepResult) bool {
		return r.State.GameOver || r.State.Frame == 7199
	})
	if !ok || res.State.GameOver {
		t.Fatalf("did not reach frame 7199 alive (frame %d)", res.State.Frame)
	}
	if res.State.Speed != 1 {
		t.Fatalf("speed at frame 7199 = %v, want 1", res.State.Speed)
	}

	res = g.Step(1, ap.Decide(g.Snapshot()))
	if res.State.Frame != 7200 {
		t.Fatalf("frame = %d, want 7200", res.State.Frame)
	}
	if math.Abs(res.State.Speed-1.2) > 1e-9 {
		t.Errorf("speed at frame 7200 = %v, want 1.2", res.State.Speed)
	}
	if !hasKind(res.Events, core.EventDifficulty) {
		t.Errorf("events = %v, want difficulty step", res.Events)
	}
	if got := g.Round().Difficulty.SpawnInterval(); math.Abs(got-4/(2*1.2)) > 1e-9 {
		t.Errorf("spawn interval = %v, want %v", got, 4/(2*1.2))
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	cfg := config.DefaultFlappConfig()
	cfg.Difficulty.IntervalMinutes = 1.0 / 60 // every 60 frames
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 2})
	ap := NewAutopilot(false)

	prev := 1.0
	for i := 0; i < 200; i++ {
		res := g.Step(1, ap.Decide(g.Snapshot()))
		if res.State.Speed < prev {
			t.Fatalf("speed dropped from %v to %v", prev, res.State.Speed)
		}
		prev = res.State.Speed
		if res.State.GameOver {
			break
		}
	}
	if prev <= 1 {
		t.Errorf("speed never rose: %v", prev)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 99)
		ap := NewAutopilot(true)
		for i := 0; i < 2500; i++ {
			g.Step(1, ap.Decide(g.Snapshot()))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	g := newTestGame(t, 6)
	g.Step(1, input(core.ActionFlap))

	s := g.Snapshot()
	x, frame, y := s.Pairs[0].X, s.Frame, s.Avatar.Y

	for i := 0; i < 30; i++ {
		g.Step(1, core.NewInputFrame())
	}
	if s.Pairs[0].X != x || s.Frame != frame || s.Avatar.Y != y {
		t.Error("snapshot changed after later steps")
	}

	s.Pairs[0].X = -999
	if g.Round().Pairs.Pairs()[0].X == -999 {
		t.Error("writing to a snapshot changed the live pool")
	}
}

func TestStepSanitizesDelta(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(1, input(core.ActionFlap))

	g.Step(math.NaN(), core.NewInputFrame())
	g.Step(-3, core.NewInputFrame())

	r := g.Round()
	if math.IsNaN(r.Avatar.Y) || math.IsNaN(r.Avatar.Velocity) {
		t.Fatal("NaN leaked into the avatar")
	}
	if r.Avatar.Velocity != 8 {
		t.Errorf("velocity = %v, want 8 (no gravity for zero delta)", r.Avatar.Velocity)
	}
}

func TestRenderDrawsField(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// Ground top 608/720 of 24 rows.
	if row := screen.Row(20); !strings.ContainsRune(row, GroundChar) {
		t.Errorf("row 20 = %q, want ground", row)
	}
	if !strings.Contains(screen.String(), "GET READY") {
		t.Error("ready prompt not drawn")
	}
	if !strings.ContainsRune(screen.String(), AvatarBody) {
		t.Error("avatar not drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	crash(t, g)
	for i := 0; i < 200; i++ {
		g.Step(1, core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"GAME OVER", "score 0", "[R] retry"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, 1)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen) // must not panic
	}
}

func TestObstacleCollisionKills(t *testing.T) {
	tests := []struct {
		name  string
		gapY  float64 // Bottom of the gap
		alive bool
	}{
		{"avatar inside gap", 440, true},
		{"avatar above gap", 600, false},
		{"avatar below gap", 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			g.Step(1, input(core.ActionFlap))

			// Move the seed pair onto the avatar.
			p := &g.Round().Pairs.pairs[0]
			p.X = 90
			p.Y = tt.gapY

			res := g.Step(1, core.NewInputFrame())
			if got := !res.State.GameOver; got != tt.alive {
				t.Fatalf("alive = %v, want %v (hitbox %+v)", got, tt.alive, g.Round().Avatar.Hitbox())
			}
			if !tt.alive && !hasEvent(res.Events, core.Cue(core.CueHit)) {
				t.Errorf("events = %v, want hit cue", res.Events)
			}
		})
	}
}
