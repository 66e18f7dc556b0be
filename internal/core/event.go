package core

import "fmt"

// EventKind classifies something that happened during a frame.
type EventKind int

const (
	EventCue        EventKind = iota // A named sound clip should play
	EventStart                       // READY -> PLAYING
	EventScore                       // An obstacle pair was passed
	EventDifficulty                  // The difficulty multiplier stepped up
	EventDeath                       // PLAYING -> DEAD
	EventReset                       // A fresh round was constructed
)

// Sound cue names understood by the audio layer.
const (
	CueClick    = "click"
	CueHit      = "hit"
	CueScore    = "score"
	CueGameOver = "gameover"
)

// Event is a fire-and-forget notification produced by the simulation.
// Consumers (sound, logging) must not feed anything back into the frame.
type Event struct {
	Kind  EventKind
	Cue   string  // Set for EventCue
	Value float64 // Score for EventScore/EventDeath, multiplier for EventDifficulty
}

// Cue creates a sound cue event.
func Cue(name string) Event {
	return Event{Kind: EventCue, Cue: name}
}

// String returns a short description, used in logs.
func (e Event) String() string {
	switch e.Kind {
	case EventCue:
		return "cue:" + e.Cue
	case EventStart:
		return "start"
	case EventScore:
		return fmt.Sprintf("score:%d", int(e.Value))
	case EventDifficulty:
		return fmt.Sprintf("difficulty:%.3f", e.Value)
	case EventDeath:
		return fmt.Sprintf("death:%d", int(e.Value))
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}
