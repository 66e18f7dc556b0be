package flapp

import (
	"math"

	"github.com/vovakirdan/flapp/internal/config"
	"github.com/vovakirdan/flapp/internal/core"
)

// Avatar is the player-controlled sprite. Velocity is positive when moving
// up; screen y grows downward, so position integrates as y -= velocity.
type Avatar struct {
	X, Y     float64 // Sprite center
	Velocity float64 // Vertical velocity, positive = up
	Angle    float64 // Rotation in the physics sign domain, clamped
	Alive    bool

	size    config.Avatar
	physics config.Physics
}

// Hitbox is the collision footprint of the rotated avatar sprite.
// Insets widen the tolerance of obstacle and ground tests to compensate for
// the empty corners a rotated rectangle adds to its bounds.
type Hitbox struct {
	Box    core.Box
	InsetX float64
	InsetY float64
}

// NewAvatar creates an idle avatar at its spawn point.
func NewAvatar(size config.Avatar, physics config.Physics) Avatar {
	a := Avatar{
		X:       size.X,
		Y:       size.Y,
		Alive:   true,
		size:    size,
		physics: physics,
	}
	a.Angle = RotationAngle(0, physics)
	return a
}

// RotationAngle maps a velocity to a rotation with the linear model
// velocity*scale - offset, clamped to [MinAngle, MaxAngle].
func RotationAngle(velocity float64, p config.Physics) float64 {
	raw := velocity*p.RotationScale - p.RotationOffset
	return core.ClampF(raw, p.MinAngle, p.MaxAngle)
}

// DisplayAngle returns the rotation to draw the sprite with. Nose-up is a
// negative display angle.
func (a Avatar) DisplayAngle() float64 {
	return -a.Angle
}

// Flap adds the upward impulse, capped at LimitDY.
func (a *Avatar) Flap() {
	a.Velocity = math.Min(a.Velocity+a.physics.AntiGravity, a.physics.LimitDY)
}

// Integrate applies one tick of gravity, re-derives the rotation and moves
// the avatar.
func (a *Avatar) Integrate(dt, multiplier float64) {
	a.Velocity -= a.physics.Gravity * dt * multiplier
	a.Angle = RotationAngle(a.Velocity, a.physics)
	a.Y -= a.Velocity
}

// Fall is Integrate for a dead avatar: the same physics, but the avatar
// comes to rest at restY instead of falling through the ground.
func (a *Avatar) Fall(dt, multiplier, restY float64) {
	a.Integrate(dt, multiplier)
	if a.Y > restY {
		a.Y = restY
	}
}

// Hitbox returns the floored bounds of the rotated sprite and the
// rotation-compensating insets margin + size/2 * (1 - cos(angle)).
func (a Avatar) Hitbox() Hitbox {
	box := core.RotatedBounds(a.X, a.Y, a.size.Width, a.size.Height, a.DisplayAngle()).Floor()
	diff := 1 - math.Cos(a.Angle*math.Pi/180)
	return Hitbox{
		Box:    box,
		InsetX: a.size.HitboxMargin + a.size.Width/2*diff,
		InsetY: a.size.HitboxMargin + a.size.Height/2*diff,
	}
}
