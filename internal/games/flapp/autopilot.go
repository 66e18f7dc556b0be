package flapp

import "github.com/vovakirdan/flapp/internal/core"

// DefaultLead is how far above the gap bottom the autopilot starts flapping.
const DefaultLead = 8.0

// Autopilot is a simple controller used by the headless simulator and the
// attract mode. It keeps the avatar hovering just above the bottom of the
// next gap.
type Autopilot struct {
	Lead    float64 // Pixels above the gap bottom that trigger a flap
	Restart bool    // Press retry once it becomes available
}

// NewAutopilot creates an autopilot with the default lead.
func NewAutopilot(restart bool) *Autopilot {
	return &Autopilot{Lead: DefaultLead, Restart: restart}
}

// Decide returns the input for the next step.
func (a *Autopilot) Decide(s Snapshot) core.InputFrame {
	in := core.NewInputFrame()

	switch s.State {
	case StateReady:
		in.Set(core.ActionFlap)
	case StateDead:
		if a.Restart && s.RetryReady {
			in.Set(core.ActionRestart)
		}
	case StatePlaying:
		if a.shouldFlap(s) {
			in.Set(core.ActionFlap)
		}
	}
	return in
}

func (a *Autopilot) shouldFlap(s Snapshot) bool {
	hb := s.Avatar.Hitbox
	if s.Avatar.Velocity >= 0 {
		return false
	}

	bottom := s.GroundTop * 0.6
	for _, p := range s.Pairs {
		if p.TrailingEdge() > hb.Box.MinX-hb.InsetX {
			bottom = p.Y
			break
		}
	}
	return hb.Box.MaxY > bottom-a.Lead
}
