package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/flapp/internal/core"
)

// Wave selects the oscillator shape of a note.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// Note is one shaped tone of a sound effect.
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Volume   float64 // Linear gain, 0..1
}

// Effects maps each cue to the notes played in sequence.
var Effects = map[string][]Note{
	core.CueClick: {
		{Freq: 660, Duration: 40 * time.Millisecond, Wave: WaveSquare, Volume: 0.25},
	},
	core.CueScore: {
		{Freq: 988, Duration: 70 * time.Millisecond, Wave: WaveSine, Volume: 0.5},
		{Freq: 1319, Duration: 140 * time.Millisecond, Wave: WaveSine, Volume: 0.5},
	},
	core.CueHit: {
		{Freq: 110, Duration: 150 * time.Millisecond, Wave: WaveSquare, Volume: 0.4},
	},
	core.CueGameOver: {
		{Freq: 440, Duration: 120 * time.Millisecond, Wave: WaveTriangle, Volume: 0.5},
		{Freq: 330, Duration: 120 * time.Millisecond, Wave: WaveTriangle, Volume: 0.5},
		{Freq: 220, Duration: 250 * time.Millisecond, Wave: WaveTriangle, Volume: 0.5},
	},
}

// Sound builds the streamer for a cue. Unknown cues return an error.
func Sound(cue string, rate beep.SampleRate, master float64) (beep.Streamer, error) {
	notes, ok := Effects[cue]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %q", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(n, rate)
		if err != nil {
			return nil, fmt.Errorf("audio: cue %q: %w", cue, err)
		}
		parts = append(parts, volume(s, n.Volume*master))
	}
	return beep.Seq(parts...), nil
}

// Length returns the number of samples a cue plays for.
func Length(cue string, rate beep.SampleRate) int {
	total := 0
	for _, n := range Effects[cue] {
		total += rate.N(n.Duration)
	}
	return total
}

func tone(n Note, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		osc beep.Streamer
		err error
	)
	switch n.Wave {
	case WaveSquare:
		osc, err = generators.SquareTone(rate, n.Freq)
	case WaveTriangle:
		osc, err = generators.TriangleTone(rate, n.Freq)
	default:
		osc, err = generators.SineTone(rate, n.Freq)
	}
	if err != nil {
		return nil, err
	}

	samples := rate.N(n.Duration)
	return &fade{
		streamer: beep.Take(samples, osc),
		total:    samples,
		release:  samples / 4,
	}, nil
}

// fade ramps the tail of a note to zero to avoid clicks.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	release  int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.pos >= start && f.release > 0 {
			vol := float64(f.total-f.pos) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// volume applies a linear gain; math.Log2(0) is -Inf, so zero is silent.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
