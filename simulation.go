package shuriken

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/gekko3d/shuriken/core"
	"golang.org/x/sync/errgroup"
)

// Simulation steps a set of independent particle systems. Each system is
// updated by exactly one goroutine per Step, so no system state is shared.
type Simulation struct {
	mu      sync.RWMutex
	systems map[SystemId]*ParticleSystem
	logger  Logger
}

func NewSimulation(logger Logger) *Simulation {
	return &Simulation{
		systems: make(map[SystemId]*ParticleSystem),
		logger:  orNop(logger),
	}
}

func (s *Simulation) Add(ps *ParticleSystem) SystemId {
	s.mu.Lock()
	s.systems[ps.Id] = ps
	s.mu.Unlock()
	s.logger.Debugf("added particle system %s (%s)", ps.Id, ps.emitter.Name)
	return ps.Id
}

func (s *Simulation) Remove(id SystemId) {
	s.mu.Lock()
	delete(s.systems, id)
	s.mu.Unlock()
}

func (s *Simulation) Get(id SystemId) (*ParticleSystem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ps, ok := s.systems[id]
	return ps, ok
}

func (s *Simulation) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.systems)
}

// snapshot returns systems ordered by id so Collect output is stable.
func (s *Simulation) snapshot() []*ParticleSystem {
	s.mu.RLock()
	out := make([]*ParticleSystem, 0, len(s.systems))
	for _, ps := range s.systems {
		out = append(out, ps)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}

// Step updates every system by dt seconds in parallel. A system halting does
// not stop its siblings: every system still advances, and the first halt
// error is returned afterwards. Only cancelling ctx skips systems that have
// not started yet.
func (s *Simulation) Step(ctx context.Context, dt float32) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, ps := range s.snapshot() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return ps.Update(dt)
		})
	}
	return g.Wait()
}

// Collect packs the live particles of every enabled or draining system.
func (s *Simulation) Collect() []core.ParticleInstance {
	instances := make([]core.ParticleInstance, 0, 1024)
	for _, ps := range s.snapshot() {
		instances = ps.AppendInstances(instances)
	}
	return instances
}
