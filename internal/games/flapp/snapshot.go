package flapp

import "github.com/vovakirdan/flapp/internal/config"

// AvatarView is the drawable state of the avatar.
type AvatarView struct {
	X, Y          float64 // Sprite center
	Width, Height float64
	Angle         float64 // Display angle in degrees, nose-up negative
	Velocity      float64
	Alive         bool
	Hitbox        Hitbox
}

// Snapshot is an immutable copy of everything a renderer needs for one
// frame. Later steps never modify a snapshot already handed out.
type Snapshot struct {
	State      State
	Paused     bool
	RetryReady bool
	Frame      int
	Multiplier float64

	Score  int
	Glyphs []Glyph

	Avatar  AvatarView
	Pairs   []Pair
	Overlay Overlay

	BackgroundX float64
	GroundX     float64
	GroundTop   float64

	World       config.World
	ScoreLayout config.Score
}

// Snapshot copies the current round into a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.round == nil {
		g.Reset(g.runtime)
	}
	r := g.round
	cfg := g.Config()

	return Snapshot{
		State:      r.State,
		Paused:     g.paused,
		RetryReady: r.RetryReady(),
		Frame:      r.Frame,
		Multiplier: r.Difficulty.Multiplier(),
		Score:      r.Score.Value(),
		Glyphs:     r.Score.Glyphs(),
		Avatar: AvatarView{
			X:        r.Avatar.X,
			Y:        r.Avatar.Y,
			Width:    cfg.Avatar.Width,
			Height:   cfg.Avatar.Height,
			Angle:    r.Avatar.DisplayAngle(),
			Velocity: r.Avatar.Velocity,
			Alive:    r.Avatar.Alive,
			Hitbox:   r.Avatar.Hitbox(),
		},
		Pairs:       append([]Pair(nil), r.Pairs.Pairs()...),
		Overlay:     r.Overlay,
		BackgroundX: r.BackgroundX,
		GroundX:     r.GroundX,
		GroundTop:   r.GroundTop(),
		World:       cfg.World,
		ScoreLayout: cfg.Score,
	}
}
