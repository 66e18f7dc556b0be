package core

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockNominalDelta(t *testing.T) {
	c := NewFrameClock(60, 4)
	start := time.Unix(1000, 0)

	if d := c.Advance(start); d != 1.0 {
		t.Errorf("first Advance = %v, expected 1.0", d)
	}

	d := c.Advance(start.Add(c.Interval()))
	if math.Abs(d-1.0) > 1e-9 {
		t.Errorf("one frame later delta = %v, expected 1.0", d)
	}

	d = c.Advance(start.Add(3 * c.Interval()))
	if math.Abs(d-2.0) > 1e-9 {
		t.Errorf("two dropped frames delta = %v, expected 2.0", d)
	}
}

func TestFrameClockCapsLongStalls(t *testing.T) {
	c := NewFrameClock(60, 4)
	start := time.Unix(1000, 0)
	c.Advance(start)

	if d := c.Advance(start.Add(10 * time.Second)); d != 4 {
		t.Errorf("stalled delta = %v, expected cap 4", d)
	}
}

func TestFrameClockNonMonotonicTick(t *testing.T) {
	c := NewFrameClock(30, 0)
	start := time.Unix(1000, 0)
	c.Advance(start)

	if d := c.Advance(start.Add(-time.Second)); d != 0 {
		t.Errorf("backwards tick delta = %v, expected 0", d)
	}
}

func TestFrameClockReset(t *testing.T) {
	c := NewFrameClock(0, 0) // falls back to 60 FPS
	if c.Interval() != time.Second/60 {
		t.Errorf("Interval() = %v, expected 1/60s", c.Interval())
	}

	start := time.Unix(1000, 0)
	c.Advance(start)
	c.Reset()
	if d := c.Advance(start.Add(time.Hour)); d != 1.0 {
		t.Errorf("Advance after Reset = %v, expected 1.0", d)
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionFlap) {
		t.Fatal("zero InputFrame should be empty")
	}

	f.Set(ActionFlap)
	f.Set(ActionFlap)
	if !f.Has(ActionFlap) || f.Empty() {
		t.Error("Set should mark the action")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev       Event
		expected string
	}{
		{Cue(CueScore), "cue:score"},
		{Event{Kind: EventScore, Value: 12}, "score:12"},
		{Event{Kind: EventDifficulty, Value: 1.2}, "difficulty:1.200"},
		{Event{Kind: EventReset}, "reset"},
	}
	for _, tc := range tests {
		if got := tc.ev.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
