package system

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/milk9111/blobdrop/common"
	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
	"github.com/milk9111/blobdrop/softbody"
)

var ErrNoArena = errors.New("system: no arena entity")

// SpawnSpec describes a body to create.
type SpawnSpec struct {
	X      float64
	Y      float64
	Radius float64
	Color  string
}

// Spawner chooses where, how big and which color the next body is.
type Spawner interface {
	Next(bounds common.Bounds, palette []string) (SpawnSpec, error)
}

// Seeder is implemented by spawners that keep their own random source. The
// spawn system reseeds them from its rng so a seeded arena replays exactly.
type Seeder interface {
	Reseed(seed int64)
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(bounds common.Bounds, palette []string) (SpawnSpec, error)

func (f SpawnerFunc) Next(bounds common.Bounds, palette []string) (SpawnSpec, error) {
	return f(bounds, palette)
}

// SpawnBody builds a body from spec, registers it and makes it the only
// active body.
func SpawnBody(w *ecs.World, spec SpawnSpec, rng *rand.Rand) (ecs.Entity, error) {
	arena, ok := w.First(component.ArenaTagComponent.Kind())
	if !ok {
		return 0, ErrNoArena
	}
	params := softbody.DefaultParams()
	if p, ok := ecs.Get(w, arena, component.PhysicsParamsComponent); ok {
		params = *p
	}

	var bodyRNG *rand.Rand
	if rng != nil {
		bodyRNG = rand.New(rand.NewSource(rng.Int63()))
	}
	body, err := softbody.New(common.V(spec.X, spec.Y), spec.Radius, spec.Color, params, bodyRNG)
	if err != nil {
		return 0, fmt.Errorf("spawn %s body r=%v: %w", spec.Color, spec.Radius, err)
	}

	for _, e := range w.Query(component.ActiveTagComponent.Kind()) {
		ecs.Remove(w, e, component.ActiveTagComponent)
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.SoftBodyComponent, body); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SettleDwellComponent, &component.SettleDwell{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ActiveTagComponent, &component.ActiveTag{}); err != nil {
		return 0, err
	}
	return e, nil
}

// SpawnSystem creates a new active body whenever the arena carries a
// SpawnRequest. Failed spawns leave the request in place and retry next tick.
type SpawnSystem struct {
	spawner Spawner
	rng     *rand.Rand
}

func NewSpawnSystem(spawner Spawner, rng *rand.Rand) *SpawnSystem {
	s := &SpawnSystem{rng: rng}
	s.SetSpawner(spawner)
	return s
}

// SetSpawner swaps the spawner used for future requests.
func (s *SpawnSystem) SetSpawner(spawner Spawner) {
	s.spawner = spawner
	if seeder, ok := spawner.(Seeder); ok && s.rng != nil {
		seeder.Reseed(s.rng.Int63())
	}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || s.spawner == nil || w == nil {
		return
	}
	arena, ok := w.First(component.ArenaTagComponent.Kind())
	if !ok || !ecs.Has(w, arena, component.SpawnRequestComponent) {
		return
	}

	bounds, ok := ecs.Get(w, arena, component.ArenaBoundsComponent)
	if !ok {
		return
	}
	var palette []string
	if rules, ok := ecs.Get(w, arena, component.RulesComponent); ok {
		palette = rules.Palette
	}

	spec, err := s.spawner.Next(bounds.Bounds, palette)
	if err != nil {
		log.Printf("spawn: spawner: %v", err)
		return
	}
	if _, err := SpawnBody(w, spec, s.rng); err != nil {
		log.Printf("spawn: %v", err)
		return
	}
	ecs.Remove(w, arena, component.SpawnRequestComponent)
}
