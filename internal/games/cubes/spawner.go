package cubes

import (
	"math/rand"

	"github.com/vovakirdan/thecubes/internal/config"
	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/entity"
)

// cube is a live non-player entity plus its age in ticks.
type cube struct {
	*entity.Entity
	age int
}

// Spawner handles spawning, movement, and removal of the non-player cubes.
type Spawner struct {
	cubes      []cube
	rng        *rand.Rand
	factory    *entity.Factory
	policy     entity.Policy
	cfg        *config.CubesConfig
	difficulty *config.DifficultyManager
	countdown  int // Ticks until the next spawn attempt
}

// NewSpawner creates a spawner that builds cubes with factory and applies
// policy to them after every move.
func NewSpawner(factory *entity.Factory, policy entity.Policy, cfg *config.CubesConfig, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		cubes:      make([]cube, 0, cfg.Gameplay.MaxEntities),
		rng:        factory.RNG,
		factory:    factory,
		policy:     policy,
		cfg:        cfg,
		difficulty: diff,
		countdown:  cfg.Gameplay.SpawnInterval,
	}
}

// spawnAttempts bounds the re-rolls of a hazard that lands in the keep-out zone.
const spawnAttempts = 8

// Update moves every cube, applies the boundary policy, expires old rocks
// and spawns a new cube when the countdown runs out. Hazards are never
// placed over keepOut, usually the area around the player. It returns what
// happened as events.
func (s *Spawner) Update(score, ticks int, keepOut core.Rect) ([]core.Event, error) {
	var events []core.Event

	kept := s.cubes[:0]
	for _, c := range s.cubes {
		c.age++
		c.Move()

		outcome := s.policy.Apply(c.Entity, s.factory.Viewport)
		expired := c.Kind == entity.KindRock && s.cfg.Gameplay.RockLifetime > 0 && c.age >= s.cfg.Gameplay.RockLifetime

		switch {
		case outcome == entity.Despawned || expired:
			events = append(events, newEvent(core.EventDespawn, c.Entity))
			continue
		case outcome == entity.Wrapped:
			events = append(events, newEvent(core.EventWrap, c.Entity))
		}
		kept = append(kept, c)
	}
	s.cubes = kept

	s.countdown--
	if s.countdown > 0 {
		return events, nil
	}
	s.countdown = s.difficulty.Interval(s.cfg.Gameplay.SpawnInterval, score, ticks)

	if len(s.cubes) >= s.cfg.Gameplay.MaxEntities {
		return events, nil
	}

	kind := s.pickKind()
	base := s.cfg.Gameplay.CubeSpeed
	if kind == entity.KindDiamond {
		base = s.cfg.Gameplay.DiamondSpeed
	}
	e, err := s.spawn(kind, s.difficulty.Speed(base, score, ticks), keepOut)
	if err != nil || e == nil {
		return events, err
	}
	s.cubes = append(s.cubes, cube{Entity: e})
	events = append(events, newEvent(core.EventSpawn, e))

	return events, nil
}

// spawn builds a cube of kind, re-rolling hazards that overlap keepOut. It
// returns nil without error when no free spot was found; the spawn is
// then skipped until the next countdown.
func (s *Spawner) spawn(kind entity.Kind, speed int, keepOut core.Rect) (*entity.Entity, error) {
	for i := 0; i < spawnAttempts; i++ {
		e, err := s.factory.New(kind, speed)
		if err != nil {
			return nil, err
		}
		if !kind.Hazard() || !e.Rect.Intersects(keepOut) {
			return e, nil
		}
	}
	return nil, nil
}

// pickKind chooses a kind with probability proportional to its weight.
func (s *Spawner) pickKind() entity.Kind {
	w := s.cfg.Gameplay.Weights
	table := []struct {
		kind   entity.Kind
		weight int
	}{
		{entity.KindHorizontalLeft, w.HoriLeft},
		{entity.KindHorizontalRight, w.HoriRight},
		{entity.KindVerticalTop, w.VertiTop},
		{entity.KindVerticalBottom, w.VertiBottom},
		{entity.KindRock, w.Rock},
		{entity.KindDiamond, w.Diamond},
	}

	roll := s.rng.Intn(w.Total())
	for _, row := range table {
		if roll < row.weight {
			return row.kind
		}
		roll -= row.weight
	}
	return entity.KindRock
}

// Remove drops the cube at index i.
func (s *Spawner) Remove(i int) {
	s.cubes = append(s.cubes[:i], s.cubes[i+1:]...)
}

// Cubes returns the live cubes.
func (s *Spawner) Cubes() []*entity.Entity {
	out := make([]*entity.Entity, len(s.cubes))
	for i, c := range s.cubes {
		out[i] = c.Entity
	}
	return out
}

// Len returns the number of live cubes.
func (s *Spawner) Len() int {
	return len(s.cubes)
}

func newEvent(kind core.EventKind, e *entity.Entity) core.Event {
	x, y := e.Center()
	return core.Event{Kind: kind, Entity: e.Kind.String(), X: x, Y: y}
}
