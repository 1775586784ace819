package shuriken

import (
	"errors"
	"fmt"
)

var (
	// ErrGradientDomain means no key bounds the query time.
	ErrGradientDomain = errors.New("gradient: time outside key range")
	// ErrGradientTooShort means a lookup was attempted on fewer than two keys.
	ErrGradientTooShort = errors.New("gradient: need at least two keys")
)

// Gradient is a piecewise-linear curve over (key, value) pairs. Keys are
// normalized times and must be strictly increasing.
type Gradient struct {
	Keys   []float32
	Values []float32
}

// GradientKey is one (time, value) pair used to build a Gradient.
type GradientKey struct {
	Time  float32
	Value float32
}

func NewGradient(keys ...GradientKey) Gradient {
	g := Gradient{
		Keys:   make([]float32, len(keys)),
		Values: make([]float32, len(keys)),
	}
	for i, k := range keys {
		g.Keys[i] = k.Time
		g.Values[i] = k.Value
	}
	return g
}

func (g Gradient) KeyCount() int {
	if len(g.Values) < len(g.Keys) {
		return len(g.Values)
	}
	return len(g.Keys)
}

func (g Gradient) Key(i int) float32   { return g.Keys[i] }
func (g Gradient) Value(i int) float32 { return g.Values[i] }

// Evaluate returns the value at time t by interpolating against the first
// key at or after t. Index 0 is never a match on its own, so single-key
// gradients always fail, and times past the last key are an error rather
// than being clamped.
func (g Gradient) Evaluate(t float32) (float32, error) {
	n := g.KeyCount()
	if n < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrGradientTooShort, n)
	}
	for i := 1; i < n; i++ {
		key := g.Keys[i]
		if key >= t {
			lastKey := g.Keys[i-1]
			f := (t - lastKey) / (key - lastKey)
			return lerp(g.Values[i-1], g.Values[i], f), nil
		}
	}
	return 0, fmt.Errorf("%w: t=%g, last key %g", ErrGradientDomain, t, g.Keys[n-1])
}

// Validate checks the shape a lifetime gradient needs: matching lengths, at
// least two strictly increasing keys, the first at 0 and the last at 1, so
// every emission time in [0,1] has a bounding key.
func (g Gradient) Validate() error {
	if len(g.Keys) != len(g.Values) {
		return fmt.Errorf("gradient has %d keys but %d values", len(g.Keys), len(g.Values))
	}
	if len(g.Keys) < 2 {
		return fmt.Errorf("%w: got %d", ErrGradientTooShort, len(g.Keys))
	}
	for i, k := range g.Keys {
		if k < 0 || k > 1 {
			return fmt.Errorf("gradient key %d (%g) outside [0,1]", i, k)
		}
		if i > 0 && k <= g.Keys[i-1] {
			return fmt.Errorf("gradient keys not strictly increasing at %d (%g <= %g)", i, k, g.Keys[i-1])
		}
	}
	if first, last := g.Keys[0], g.Keys[len(g.Keys)-1]; first != 0 || last != 1 {
		return fmt.Errorf("gradient keys span [%g,%g], need [0,1]", first, last)
	}
	return nil
}
