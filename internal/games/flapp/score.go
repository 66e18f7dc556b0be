package flapp

import "github.com/vovakirdan/flapp/internal/config"

// Glyph is one positioned digit of the score display.
type Glyph struct {
	Digit int
	X, Y  float64 // Top-left corner in world pixels
}

// Score counts passed pairs and keeps the digit sequence to display.
type Score struct {
	value      int
	digits     []int
	cfg        config.Score
	worldWidth float64
}

// NewScore creates a zero score centered in a field worldWidth wide.
func NewScore(cfg config.Score, worldWidth float64) *Score {
	return &Score{
		digits:     Digits(0),
		cfg:        cfg,
		worldWidth: worldWidth,
	}
}

// OnPass adds one point and recomputes the digits.
func (s *Score) OnPass() {
	s.value++
	s.digits = Digits(s.value)
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// Digits returns a copy of the current digits, most significant first.
func (s *Score) Digits() []int {
	return append([]int(nil), s.digits...)
}

// Glyphs lays the digits out left to right, centered horizontally.
func (s *Score) Glyphs() []Glyph {
	total := float64(len(s.digits)) * s.cfg.DigitWidth
	x := (s.worldWidth - total) / 2

	glyphs := make([]Glyph, len(s.digits))
	for i, d := range s.digits {
		glyphs[i] = Glyph{Digit: d, X: x, Y: s.cfg.Y}
		x += s.cfg.DigitWidth
	}
	return glyphs
}

// Digits decomposes n into decimal digits, most significant first.
// Zero (and anything negative) yields a single 0.
func Digits(n int) []int {
	if n <= 0 {
		return []int{0}
	}

	var digits []int
	for n > 0 {
		digits = append(digits, n%10)
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}
