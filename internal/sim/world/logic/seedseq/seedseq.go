// Package seedseq provides the deterministic value stream all worldgen
// draws from. Every call site used to hand-roll the same recurrence;
// keeping it in one place keeps the constants from drifting.
package seedseq

const (
	mul = 9301
	inc = 49297
	mod = 233280
)

// Sequence is a linear congruential stream of values in [0,1).
// Two sequences built from the same seed produce identical streams;
// the whole generation pipeline relies on that.
type Sequence struct {
	state int64
}

// New returns a sequence seeded with the given value. Negative seeds
// are folded into range; a seed of 0 is as valid as any other.
func New(seed int64) *Sequence {
	s := seed % mod
	if s < 0 {
		s += mod
	}
	return &Sequence{state: s}
}

// Next advances the stream and returns the next value in [0,1).
// Integer state only: float accumulation would drift across platforms
// and break reproducibility.
func (s *Sequence) Next() float64 {
	s.state = (s.state*mul + inc) % mod
	return float64(s.state) / mod
}

// NextIn returns a value in [lo, hi).
func (s *Sequence) NextIn(lo, hi float64) float64 {
	return lo + s.Next()*(hi-lo)
}

// NextInt returns an integer in [0, n). n must be > 0.
func (s *Sequence) NextInt(n int) int {
	return int(s.Next() * float64(n))
}
