package flapp

// State is the phase of a round.
type State int

const (
	StateReady   State = iota // Waiting for the first flap
	StatePlaying              // Full simulation
	StateDead                 // Crashed; waiting for retry
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
