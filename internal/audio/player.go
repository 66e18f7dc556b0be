// Package audio turns the simulation's sound cues into short synthesized
// tones played through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays named sound cues. Play must not block the frame loop.
type Player interface {
	Play(cue string)
}

// Silent is a Player that discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(string) {}

// BeepPlayer mixes cue sounds into a single speaker stream.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewBeepPlayer creates a player with the given master volume (0..1).
// Initialize must be called before anything is heard.
func NewBeepPlayer(volume float64) *BeepPlayer {
	return &BeepPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sound for cue. Unknown cues and an uninitialized speaker
// are ignored.
func (p *BeepPlayer) Play(cue string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := Sound(cue, sampleRate, p.volume)
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}
