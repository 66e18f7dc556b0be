package flapp

import (
	"math"

	"github.com/vovakirdan/flapp/internal/config"
	"github.com/vovakirdan/flapp/internal/core"
)

// Overlay holds the opacity of every prompt drawn over the field.
type Overlay struct {
	Ready    float64 // "get ready" prompt
	HUD      float64 // score digits
	GameOver float64 // "game over" banner
	Retry    float64 // retry control
}

// Round owns all per-round state. A retry replaces the whole Round, so no
// field ever needs a partial reset.
type Round struct {
	State       State
	Avatar      Avatar
	Pairs       *PairPool
	Score       *Score
	Difficulty  *config.DifficultyManager
	Frame       int // PLAYING frames since the round started
	Overlay     Overlay
	BackgroundX float64
	GroundX     float64

	cfg    config.FlappConfig
	events []core.Event
}

// NewRound creates a READY round with one seed pair.
func NewRound(cfg config.FlappConfig, seed int64) *Round {
	return &Round{
		State:      StateReady,
		Avatar:     NewAvatar(cfg.Avatar, cfg.Physics),
		Pairs:      NewPairPool(seed, cfg.Obstacles, cfg.EffectiveSpawnX(), cfg.Avatar.Y),
		Score:      NewScore(cfg.Score, cfg.World.Width),
		Difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.World.FPS, cfg.Obstacles.BaseSpawnSeconds, cfg.Obstacles.SlideSpeed),
		Overlay:    Overlay{Ready: 1},
		cfg:        cfg,
	}
}

// RetryReady reports whether the retry control is fully visible.
func (r *Round) RetryReady() bool {
	return r.State == StateDead && r.Overlay.Retry >= 1
}

// GroundTop returns the y of the ground strip's top edge.
func (r *Round) GroundTop() float64 {
	return r.cfg.World.Height - r.cfg.Ground.Height
}

// Start moves a READY round into PLAYING with an initial flap.
func (r *Round) Start() bool {
	if r.State != StateReady {
		return false
	}
	r.State = StatePlaying
	r.Avatar.Flap()
	r.emit(core.Event{Kind: core.EventStart}, core.Cue(core.CueClick))
	return true
}

// Flap applies the flap impulse. It is a no-op outside PLAYING.
func (r *Round) Flap() bool {
	if r.State != StatePlaying {
		return false
	}
	r.Avatar.Flap()
	r.emit(core.Cue(core.CueClick))
	return true
}

// tickPlaying runs one PLAYING frame: difficulty, physics, obstacles,
// scoring, collisions and spawning, in that order.
func (r *Round) tickPlaying(dt float64) {
	r.Frame++
	fade := r.cfg.Overlay
	r.Overlay.Ready = math.Max(0, r.Overlay.Ready-fade.ReadyFade)
	r.Overlay.HUD = math.Min(1, r.Overlay.HUD+fade.HUDFade)

	if r.Difficulty.Tick(r.Frame) {
		r.emit(core.Event{Kind: core.EventDifficulty, Value: r.Difficulty.Multiplier()})
	}
	multiplier := r.Difficulty.Multiplier()

	r.Avatar.Integrate(dt, multiplier)
	hb := r.Avatar.Hitbox()

	res := r.Pairs.Tick(dt, multiplier, hb, r.Avatar.X)
	for i := 0; i < res.Passed; i++ {
		r.onPass()
	}

	if res.Collided || r.groundHit(hb) {
		r.die()
		return
	}

	r.Pairs.MaybeSpawn(r.Frame, r.Difficulty.SpawnInterval(), r.cfg.World.FPS)
}

// tickDead lets the avatar fall to rest and fades the game-over prompts in.
func (r *Round) tickDead(dt float64) {
	restY := r.GroundTop() + r.cfg.Ground.RestOffset
	r.Avatar.Fall(dt, r.Difficulty.Multiplier(), restY)

	fade := r.cfg.Overlay
	r.Overlay.GameOver = math.Min(1, r.Overlay.GameOver+fade.GameOverFade)
	if r.Overlay.GameOver >= 1 {
		r.Overlay.Retry = math.Min(1, r.Overlay.Retry+fade.RetryFade)
	}
}

// scroll slides background and ground; it runs in every state.
func (r *Round) scroll(dt float64) {
	gap := r.cfg.EffectiveScrollGap()
	dx := r.cfg.Obstacles.SlideSpeed * dt * r.Difficulty.Multiplier()
	r.BackgroundX = wrap(r.BackgroundX-dx, gap)
	r.GroundX = wrap(r.GroundX-dx, gap)
}

func (r *Round) onPass() {
	r.Score.OnPass()
	r.emit(core.Event{Kind: core.EventScore, Value: float64(r.Score.Value())}, core.Cue(core.CueScore))
}

func (r *Round) groundHit(hb Hitbox) bool {
	return hb.Box.MaxY > r.GroundTop()-r.cfg.Ground.Clearance
}

func (r *Round) die() {
	r.State = StateDead
	r.Avatar.Alive = false
	r.Avatar.Flap()
	r.emit(
		core.Cue(core.CueHit),
		core.Cue(core.CueGameOver),
		core.Event{Kind: core.EventDeath, Value: float64(r.Score.Value())},
	)
}

func (r *Round) emit(evs ...core.Event) {
	r.events = append(r.events, evs...)
}

// drainEvents returns and clears the events emitted since the last call.
func (r *Round) drainEvents() []core.Event {
	evs := r.events
	r.events = nil
	return evs
}

// wrap keeps a scroll offset in (-gap, 0].
func wrap(x, gap float64) float64 {
	if gap <= 0 {
		return 0
	}
	x = math.Mod(x, gap)
	if x > 0 {
		x -= gap
	}
	return x
}
