// Package counter holds the dashboard's integer counter.
//
// The value is unbounded: deltas accumulate without clamping or wrapping.
package counter

import "math/rand/v2"

// Random values are drawn from [RandomMin, RandomMax] inclusive.
const (
	RandomMin = -100
	RandomMax = 100
)

// Tone classifies the sign of the value for coloring.
type Tone int

const (
	Neutral Tone = iota
	Positive
	Negative
)

func (t Tone) String() string {
	switch t {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// Counter is the counter widget state.
type Counter struct {
	Value int
}

// Apply returns value+delta.
func Apply(value, delta int) int {
	return value + delta
}

// ToneOf classifies v.
func ToneOf(v int) Tone {
	switch {
	case v > 0:
		return Positive
	case v < 0:
		return Negative
	default:
		return Neutral
	}
}

// ApplyDelta adds d to the value and returns the result.
func (c *Counter) ApplyDelta(d int) int {
	c.Value = Apply(c.Value, d)
	return c.Value
}

// Reset sets the value to zero.
func (c *Counter) Reset() {
	c.Value = 0
}

// Randomize replaces the value with a uniform draw from [RandomMin, RandomMax].
func (c *Counter) Randomize(rng *rand.Rand) int {
	c.Value = RandomMin + rng.IntN(RandomMax-RandomMin+1)
	return c.Value
}

// Tone classifies the current value.
func (c *Counter) Tone() Tone {
	return ToneOf(c.Value)
}
