package flapp

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flapp/internal/config"
	"github.com/vovakirdan/flapp/internal/core"
)

// Pair is a gated obstacle: a lower member whose top edge is the bottom of
// the gap, and an upper member mirrored GapLength above it.
type Pair struct {
	X         float64 // Left edge of both members
	Y         float64 // Top edge of the lower member (bottom of the gap)
	Width     float64
	Height    float64
	GapLength float64
	Passed    bool // Whether the avatar has passed this pair (for scoring)
}

// UpperX returns the anchor x of the mirrored upper member (its right edge).
func (p Pair) UpperX() float64 {
	return p.X + p.Width
}

// UpperY returns the anchor y of the upper member (the top of the gap).
func (p Pair) UpperY() float64 {
	return p.Y - p.GapLength
}

// PassLine returns the x the avatar must exceed to score this pair.
func (p Pair) PassLine() float64 {
	return p.UpperX() - p.Width/2
}

// TrailingEdge returns the right edge of the pair.
func (p Pair) TrailingEdge() float64 {
	return p.X + p.Width
}

// Lower returns the box of the lower member.
func (p Pair) Lower() core.Box {
	return core.BoxAt(p.X, p.Y, p.Width, p.Height)
}

// Upper returns the box of the upper member.
func (p Pair) Upper() core.Box {
	return core.BoxAt(p.X, p.UpperY()-p.Height, p.Width, p.Height)
}

// Collides applies the gap policy: a hitbox overlapping the pair
// horizontally must lie fully inside the (inset-widened) gap.
func (p Pair) Collides(hb Hitbox) bool {
	b := hb.Box
	if b.MaxX < p.X+hb.InsetX || b.MinX > p.X+p.Width-hb.InsetX {
		return false
	}
	inside := b.MinY >= p.UpperY()-hb.InsetY && b.MaxY <= p.Y+hb.InsetY
	return !inside
}

// TickResult reports what happened to the pool during one tick.
type TickResult struct {
	Passed   int  // Pairs passed this tick
	Collided bool // Whether the hitbox hit a pair
	Evicted  int  // Pairs removed off the left edge
}

// PairPool is the FIFO queue of live obstacle pairs. Pairs are appended at
// the spawn edge and removed only from the head, so x increases from head
// to tail.
type PairPool struct {
	pairs      []Pair
	rng        *rand.Rand
	cfg        config.Obstacles
	spawnX     float64
	referenceY float64
	lastY      float64 // Gap y of the most recent spawn
}

// NewPairPool creates a pool holding a single seed pair.
// referenceY is the height the seed gap is offset from.
func NewPairPool(seed int64, cfg config.Obstacles, spawnX, referenceY float64) *PairPool {
	pp := &PairPool{
		pairs:      make([]Pair, 0, 8),
		cfg:        cfg,
		spawnX:     spawnX,
		referenceY: referenceY,
	}
	pp.Reset(seed)
	return pp
}

// Reset clears all pairs, reseeds the RNG and spawns the seed pair.
func (pp *PairPool) Reset(seed int64) {
	pp.pairs = pp.pairs[:0]
	pp.rng = rand.New(rand.NewSource(seed))
	pp.SpawnSeed()
}

// SpawnSeed appends a pair at the spawn edge whose gap is offset randomly
// from the reference height.
func (pp *PairPool) SpawnSeed() {
	pp.spawn(pp.referenceY + pp.randomOffset())
}

// Tick slides every pair left, evicts pairs that left the field, then
// checks the hitbox against each pair in order. The first collision ends
// the check; passes found before it still count.
func (pp *PairPool) Tick(dt, multiplier float64, hb Hitbox, avatarX float64) TickResult {
	var res TickResult

	dx := pp.cfg.SlideSpeed * dt * multiplier
	for i := range pp.pairs {
		pp.pairs[i].X -= dx
	}

	for len(pp.pairs) > 0 && pp.pairs[0].TrailingEdge() < 0 {
		pp.pairs = pp.pairs[1:]
		res.Evicted++
	}

	for i := range pp.pairs {
		p := &pp.pairs[i]
		if p.Collides(hb) {
			res.Collided = true
			return res
		}
		if !p.Passed && avatarX > p.PassLine() {
			p.Passed = true
			res.Passed++
		}
	}
	return res
}

// MaybeSpawn appends a pair when the trailing pair is far enough from the
// spawn edge and frame falls on the spawn cadence. Returns true on spawn.
func (pp *PairPool) MaybeSpawn(frame int, intervalSeconds float64, fps int) bool {
	if pp.SpawnDistance() < pp.cfg.MinSeparation {
		return false
	}
	every := int(math.Floor(intervalSeconds * float64(fps)))
	if every < 1 {
		every = 1
	}
	if frame%every != 0 {
		return false
	}
	pp.spawn(pp.lastY + pp.randomOffset())
	return true
}

// SpawnDistance returns the free space between the trailing pair and the
// spawn edge. An empty pool has unlimited space.
func (pp *PairPool) SpawnDistance() float64 {
	if len(pp.pairs) == 0 {
		return math.Inf(1)
	}
	return pp.spawnX - pp.pairs[len(pp.pairs)-1].TrailingEdge()
}

// Collides reports whether the hitbox hits any live pair.
func (pp *PairPool) Collides(hb Hitbox) bool {
	for _, p := range pp.pairs {
		if p.Collides(hb) {
			return true
		}
	}
	return false
}

// Pairs returns the live pairs, head first. Callers must not modify it.
func (pp *PairPool) Pairs() []Pair {
	return pp.pairs
}

// Len returns the number of live pairs.
func (pp *PairPool) Len() int {
	return len(pp.pairs)
}

func (pp *PairPool) spawn(y float64) {
	y = pp.clampGap(y)
	pp.pairs = append(pp.pairs, Pair{
		X:         pp.spawnX,
		Y:         y,
		Width:     pp.cfg.Width,
		Height:    pp.cfg.Height,
		GapLength: pp.cfg.GapLength,
	})
	pp.lastY = y
}

// randomOffset returns an integer offset in [-GapSpacing, +GapSpacing].
func (pp *PairPool) randomOffset() float64 {
	spacing := int(math.Abs(pp.cfg.GapSpacing))
	if spacing == 0 {
		return 0
	}
	return float64(pp.rng.Intn(2*spacing+1) - spacing)
}

// clampGap keeps a gap inside the reachable band, whatever order the
// limits were configured in.
func (pp *PairPool) clampGap(y float64) float64 {
	lo, hi := pp.cfg.UpperLimit, pp.cfg.LowerLimit
	if lo > hi {
		lo, hi = hi, lo
	}
	return core.ClampF(y, lo, hi)
}
