package shuriken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource is an AmbientSource that always returns the same value.
type constSource float32

func (c constSource) Float32() float32 { return float32(c) }

// seqSource replays a fixed sequence, wrapping at the end.
type seqSource struct {
	vals []float32
	i    int
}

func (s *seqSource) Float32() float32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestRand_KnownSequence(t *testing.T) {
	r := NewRand(1)
	assert.Equal(t, uint32(3690984874), r.Uint32())
	assert.Equal(t, uint32(2346916618), r.Uint32())
	assert.Equal(t, uint32(2899782266), r.Uint32())

	r = NewRand(12345)
	assert.Equal(t, []uint32{692788716, 3673367756, 558115199, 1391799970},
		[]uint32{r.Uint32(), r.Uint32(), r.Uint32(), r.Uint32()})
}

func TestRand_SeedRoundTrip(t *testing.T) {
	r := NewRand(1)
	assert.Equal(t, uint32(1), r.Seed())

	f := r.Float32()
	assert.InDelta(t, 0.9996845722198486, f, 1e-7)
	// After one draw the seed is the next LCG word.
	assert.Equal(t, uint32(1812433254), r.Seed())

	a := NewRand(777)
	b := NewRand(777)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float32(), b.Float32())
	}
}

func TestRand_Float32Range(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 10000; i++ {
		f := r.Float32()
		require.GreaterOrEqual(t, f, float32(0))
		require.Less(t, f, float32(1))
	}
}

func TestNewRandomState_Deterministic(t *testing.T) {
	a := NewRandomState(99)
	b := NewRandomState(99)
	c := NewRandomState(100)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	master := NewRand(99)
	for i := range a {
		assert.Equal(t, master.Uint32(), a[i], "slot %d", i)
	}
}

func TestSampler_SeededTouchesOnlyItsSlot(t *testing.T) {
	state := NewRandomState(5)
	before := state
	s := sampler{rng: &Rand{}, state: &state}

	v := s.draw(SlotStartLifetime)

	ref := NewRand(before[SlotStartLifetime])
	assert.Equal(t, ref.Float32(), v)
	assert.Equal(t, ref.Seed(), state[SlotStartLifetime])
	for i := range state {
		if RandomSlot(i) == SlotStartLifetime {
			continue
		}
		assert.Equal(t, before[i], state[i], "slot %s changed", RandomSlot(i))
	}
}

func TestSampler_AutoSeedUsesAmbient(t *testing.T) {
	state := NewRandomState(5)
	before := state
	s := sampler{autoSeed: true, ambient: constSource(0.25), rng: &Rand{}, state: &state}

	assert.Equal(t, float32(0.25), s.draw(SlotStartColor))
	assert.Equal(t, before, state)
}

func TestRandomSlot_String(t *testing.T) {
	assert.Equal(t, "start-color", SlotStartColor.String())
	assert.Equal(t, "frame-progression", SlotFrameProgression.String())
	assert.Equal(t, "reserved(8)", SlotReserved8.String())
	assert.Equal(t, RandomSlot(3), SlotStartColor)
	assert.Equal(t, RandomSlot(7), SlotStartLifetime)
	assert.Equal(t, RandomSlot(10), SlotColorOverLifetime)
	assert.Equal(t, RandomSlot(13), SlotSheetRow)
	assert.Equal(t, RandomSlot(15), SlotFrameProgression)
}
