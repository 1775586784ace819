package shuriken

import "math/rand/v2"

// Rand is a xorshift128 generator whose whole state can be rebuilt from a
// single 32-bit seed. Seed returns the word a later SetSeed needs to continue
// where the generator left off, which is what lets one generator be shared by
// every slot of a RandomState.
type Rand struct {
	w [4]uint32
}

func NewRand(seed uint32) *Rand {
	r := &Rand{}
	r.SetSeed(seed)
	return r
}

// SetSeed expands seed into the four state words with an LCG step.
func (r *Rand) SetSeed(seed uint32) {
	r.w[0] = seed
	r.w[1] = r.w[0]*0x6C078965 + 1
	r.w[2] = r.w[1]*0x6C078965 + 1
	r.w[3] = r.w[2]*0x6C078965 + 1
}

func (r *Rand) Seed() uint32 {
	return r.w[0]
}

func (r *Rand) Uint32() uint32 {
	t := r.w[0]
	t ^= t << 11
	r.w[0], r.w[1], r.w[2] = r.w[1], r.w[2], r.w[3]
	r.w[3] = r.w[3] ^ (r.w[3] >> 19) ^ t ^ (t >> 8)
	return r.w[3]
}

// Float32 returns a value in [0,1) taken from the low 23 bits of the next word.
func (r *Rand) Float32() float32 {
	return float32(r.Uint32()&0x007FFFFF) * (1.0 / 8388608.0)
}

// RandomState holds one seed per RandomSlot for a single particle system.
// It is owned by the goroutine driving that system.
type RandomState [RandomSlotCount]uint32

// NewRandomState derives every slot from one system seed, in slot order.
func NewRandomState(seed uint32) RandomState {
	var s RandomState
	master := NewRand(seed)
	for i := range s {
		s[i] = master.Uint32()
	}
	return s
}

// AmbientSource is the unseeded randomness used when a system auto-seeds.
type AmbientSource interface {
	Float32() float32
}

type globalSource struct{}

func (globalSource) Float32() float32 { return rand.Float32() }

// GlobalSource draws from math/rand/v2's process-wide generator.
func GlobalSource() AmbientSource { return globalSource{} }

// sampler draws one float per call, either from the ambient source or from a
// RandomState slot. In seeded mode each draw loads the slot into rng, advances
// it once and stores the resulting seed back.
type sampler struct {
	autoSeed bool
	ambient  AmbientSource
	rng      *Rand
	state    *RandomState
}

func (s *sampler) draw(slot RandomSlot) float32 {
	if s.autoSeed {
		return s.ambient.Float32()
	}
	s.rng.SetSeed(s.state[slot])
	v := s.rng.Float32()
	s.state[slot] = s.rng.Seed()
	return v
}
