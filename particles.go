package shuriken

import (
	"fmt"
	"math"

	"github.com/gekko3d/shuriken/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type SystemId string

func makeSystemId() SystemId {
	return SystemId(uuid.NewString())
}

// SpawnErrorPolicy decides what a system does when a particle cannot be
// resolved.
type SpawnErrorPolicy int

const (
	// SkipParticle drops the particle, logs a warning and keeps emitting.
	SkipParticle SpawnErrorPolicy = iota
	// HaltSystem disables the system and reports the error from Update.
	HaltSystem
)

// EmitterSettings holds the per-system playback and motion parameters that
// sit beside the spawn modules of an EmitterConfig.
type EmitterSettings struct {
	MaxParticles int
	SpawnRate    float32 // particles per second

	// Duration is the length of one playback loop in seconds; emission time
	// is the position within it. Non-looping systems stop emitting at the end.
	Duration float32
	Looping  bool

	StartSpeedRange  [2]float32 // units/sec (min,max)
	Gravity          float32    // positive acceleration downward
	Drag             float32    // per-second linear drag
	ConeAngleDegrees float32    // 0=along emitter up axis

	RenderMode  RenderMode
	Seed        uint32
	ErrorPolicy SpawnErrorPolicy
}

// ParticleSystem is a CPU-simulated emitter. It owns its RandomState and
// Resolver, so distinct systems can be updated from different goroutines;
// a single system must not be.
type ParticleSystem struct {
	Id       SystemId
	Enabled  bool
	Position mgl32.Vec3
	Rotation mgl32.Quat

	emitter  *EmitterConfig
	settings EmitterSettings
	logger   Logger

	resolver *Resolver
	ambient  AmbientSource
	random   RandomState
	scratch  SpawnOutput

	pool     particlePool
	playback float32
	halted   error
}

// Internal pool per system (SoA + swap-remove)
type particlePool struct {
	pos      []mgl32.Vec3
	vel      []mgl32.Vec3
	age      []float32
	life     []float32
	size     []mgl32.Vec3
	rotation []mgl32.Vec3
	color    []mgl32.Vec4
	uv       []mgl32.Vec4

	alive    int
	spawnAcc float32 // fractional spawns accumulator
}

func (p *particlePool) reset(capacity int) {
	p.pos = make([]mgl32.Vec3, capacity)
	p.vel = make([]mgl32.Vec3, capacity)
	p.age = make([]float32, capacity)
	p.life = make([]float32, capacity)
	p.size = make([]mgl32.Vec3, capacity)
	p.rotation = make([]mgl32.Vec3, capacity)
	p.color = make([]mgl32.Vec4, capacity)
	p.uv = make([]mgl32.Vec4, capacity)
	p.alive = 0
	p.spawnAcc = 0
}

// Swap-remove one particle
func (p *particlePool) killAt(i int) {
	last := p.alive - 1
	p.pos[i] = p.pos[last]
	p.vel[i] = p.vel[last]
	p.age[i] = p.age[last]
	p.life[i] = p.life[last]
	p.size[i] = p.size[last]
	p.rotation[i] = p.rotation[last]
	p.color[i] = p.color[last]
	p.uv[i] = p.uv[last]
	p.alive--
}

// NewParticleSystem validates emitter and prepares a stopped-at-zero system.
// ambient may be nil; logger may be nil.
func NewParticleSystem(emitter *EmitterConfig, settings EmitterSettings, ambient AmbientSource, logger Logger) (*ParticleSystem, error) {
	if err := emitter.Validate(); err != nil {
		return nil, err
	}
	if settings.MaxParticles <= 0 {
		settings.MaxParticles = 1
	}
	if ambient == nil {
		ambient = GlobalSource()
	}
	ps := &ParticleSystem{
		Id:       makeSystemId(),
		Enabled:  true,
		Rotation: mgl32.QuatIdent(),
		emitter:  emitter,
		settings: settings,
		logger:   orNop(logger),
		resolver: NewResolver(ambient),
		ambient:  ambient,
	}
	ps.Restart(settings.Seed)
	return ps, nil
}

// Restart clears all particles, rewinds playback and reseeds every random
// slot. Seeded systems replay identically after a Restart with the same seed.
func (ps *ParticleSystem) Restart(seed uint32) {
	ps.settings.Seed = seed
	ps.random = NewRandomState(seed)
	ps.pool.reset(ps.settings.MaxParticles)
	ps.playback = 0
	ps.halted = nil
	ps.Enabled = true
}

func (ps *ParticleSystem) Emitter() *EmitterConfig   { return ps.emitter }
func (ps *ParticleSystem) Settings() EmitterSettings { return ps.settings }
func (ps *ParticleSystem) RandomState() RandomState  { return ps.random }
func (ps *ParticleSystem) AliveCount() int           { return ps.pool.alive }

// EmissionTime is the normalized playback position used for curve sampling.
func (ps *ParticleSystem) EmissionTime() float32 {
	if ps.settings.Duration <= 0 {
		return 0
	}
	t := ps.playback / ps.settings.Duration
	if t > 1 {
		t = 1
	}
	return t
}

// Sample a direction in a cone around the emitter's up axis (0,1,0), then rotate by emitter rotation.
// Uniform distribution over the cone.
func sampleDirection(src AmbientSource, rot mgl32.Quat, coneDeg float32) mgl32.Vec3 {
	axis := mgl32.Vec3{0, 1, 0}
	if coneDeg <= 0.0 {
		return rot.Rotate(axis).Normalize()
	}
	thetaMax := float32(math.Pi) * (coneDeg / 180.0)
	u := src.Float32()
	v := src.Float32()
	cosTheta := lerp(float32(math.Cos(float64(thetaMax))), 1.0, u)
	sinTheta := float32(math.Sqrt(float64(1.0 - cosTheta*cosTheta)))
	phi := 2.0 * float32(math.Pi) * v

	local := mgl32.Vec3{
		float32(math.Cos(float64(phi))) * sinTheta,
		cosTheta,
		float32(math.Sin(float64(phi))) * sinTheta,
	}
	return rot.Rotate(local).Normalize()
}

func (ps *ParticleSystem) emitting() bool {
	if ps.settings.Looping || ps.settings.Duration <= 0 {
		return true
	}
	return ps.playback < ps.settings.Duration
}

// Update advances playback by dt seconds: spawns, integrates and retires
// particles. It returns an error only when a spawn fails under HaltSystem.
func (ps *ParticleSystem) Update(dt float32) error {
	if !ps.Enabled {
		return nil
	}
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	st := &ps.settings
	pl := &ps.pool

	if ps.emitting() {
		pl.spawnAcc += st.SpawnRate * dt
		spawnCount := int(pl.spawnAcc)
		if spawnCount > 0 {
			pl.spawnAcc -= float32(spawnCount)
		}
		if spawnCount > (st.MaxParticles - pl.alive) {
			spawnCount = st.MaxParticles - pl.alive
		}
		for i := 0; i < spawnCount; i++ {
			if err := ps.spawnOne(); err != nil {
				if st.ErrorPolicy == HaltSystem {
					ps.Enabled = false
					ps.halted = err
					ps.logger.Errorf("particle system %s halted: %v", ps.Id, err)
					return fmt.Errorf("particle system %s: %w", ps.Id, err)
				}
				ps.logger.Warnf("particle system %s skipped spawn: %v", ps.Id, err)
			}
		}
	}

	ps.playback += dt
	if st.Looping && st.Duration > 0 && ps.playback >= st.Duration {
		ps.playback = float32(math.Mod(float64(ps.playback), float64(st.Duration)))
	}

	ps.integrate(dt)
	return nil
}

func (ps *ParticleSystem) spawnOne() error {
	st := &ps.settings
	if err := ps.resolver.Resolve(ps.emitter, st.RenderMode, ps.EmissionTime(), &ps.random, &ps.scratch); err != nil {
		return err
	}
	pl := &ps.pool
	idx := pl.alive
	pl.alive++

	out := ps.scratch
	pl.pos[idx] = ps.Position
	dir := sampleDirection(ps.ambient, ps.Rotation, st.ConeAngleDegrees)
	speed := lerp(st.StartSpeedRange[0], st.StartSpeedRange[1], ps.ambient.Float32())
	pl.vel[idx] = dir.Mul(speed)
	pl.age[idx] = 0
	pl.life[idx] = out.Lifetime
	pl.size[idx] = out.Size
	pl.rotation[idx] = out.Rotation
	pl.color[idx] = out.Color
	pl.uv[idx] = out.UV
	return nil
}

func (ps *ParticleSystem) integrate(dt float32) {
	pl := &ps.pool
	drag := float32(math.Max(0, float64(1.0-ps.settings.Drag*dt)))
	grav := ps.settings.Gravity
	i := 0
	for i < pl.alive {
		age := pl.age[i] + dt
		if age >= pl.life[i] {
			pl.killAt(i)
			continue
		}
		v := pl.vel[i]
		// gravity downward (negative Y axis)
		v = v.Add(mgl32.Vec3{0, -grav * dt, 0})
		v = v.Mul(drag)
		pl.vel[i] = v
		pl.pos[i] = pl.pos[i].Add(v.Mul(dt))
		pl.age[i] = age
		i++
	}
}

// Err returns the error that halted the system, if any.
func (ps *ParticleSystem) Err() error { return ps.halted }

// AppendInstances packs every live particle onto dst.
func (ps *ParticleSystem) AppendInstances(dst []core.ParticleInstance) []core.ParticleInstance {
	pl := &ps.pool
	for i := 0; i < pl.alive; i++ {
		var age float32
		if pl.life[i] > 0 {
			age = pl.age[i] / pl.life[i]
		}
		dst = append(dst, core.ParticleInstance{
			Pos:      pl.pos[i],
			Age:      age,
			Size:     pl.size[i],
			Rotation: pl.rotation[i],
			Color:    pl.color[i],
			UV:       pl.uv[i],
		})
	}
	return dst
}
