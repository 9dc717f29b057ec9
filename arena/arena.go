package arena

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/blobdrop/common"
	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
	"github.com/milk9111/blobdrop/ecs/system"
	"github.com/milk9111/blobdrop/softbody"
)

// ClearEvent reports the bodies removed by one connectivity pass.
type ClearEvent = system.ClearEvent

// Intent is the directional input applied to the active body.
type Intent = component.Input

// SpawnSpec places a single body.
type SpawnSpec = system.SpawnSpec

// BodyView is a read-only snapshot of one body for rendering and tests.
type BodyView struct {
	ID      ecs.Entity
	Color   string
	Settled bool
	Active  bool
	Center  common.Vec2
	Radius  float64
	Points  []common.Vec2
}

type Option func(*Arena)

// WithSeed makes the spawn script, edge shuffling and collision fallbacks
// reproducible: two arenas with the same seed, spawner script and inputs
// play out identically.
func WithSeed(seed int64) Option {
	return func(a *Arena) {
		a.seed = seed
	}
}

// Arena drives the soft-body world one tick at a time.
type Arena struct {
	cfg     Config
	spawner system.Spawner
	seed    int64
	rng     *rand.Rand

	world     *ecs.World
	scheduler *ecs.Scheduler
	spawns    *system.SpawnSystem
	root      ecs.Entity

	paused bool
	ticks  uint64
	events []ClearEvent
}

// New builds an arena. A nil spawner means bodies only arrive through Spawn.
func New(cfg Config, spawner system.Spawner, opts ...Option) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Arena{
		cfg:     cfg,
		spawner: spawner,
		seed:    time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.build(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Arena) build() error {
	rng := rand.New(rand.NewSource(a.seed))
	w := ecs.NewWorld()
	root := w.CreateEntity()

	rules := a.cfg.Rules
	rules.Palette = append([]string(nil), a.cfg.Rules.Palette...)
	physics := a.cfg.Physics

	if err := ecs.Add(w, root, component.ArenaTagComponent, &component.ArenaTag{}); err != nil {
		return err
	}
	if err := ecs.Add(w, root, component.ArenaBoundsComponent, &component.ArenaBounds{Bounds: a.cfg.Bounds}); err != nil {
		return err
	}
	if err := ecs.Add(w, root, component.PhysicsParamsComponent, &physics); err != nil {
		return err
	}
	if err := ecs.Add(w, root, component.RulesComponent, &rules); err != nil {
		return err
	}
	if err := ecs.Add(w, root, component.InputComponent, &component.Input{}); err != nil {
		return err
	}
	if err := ecs.Add(w, root, component.ScoreComponent, &component.Score{}); err != nil {
		return err
	}
	if err := ecs.Add(w, root, component.SpawnRequestComponent, &component.SpawnRequest{}); err != nil {
		return err
	}

	a.rng = rng
	a.world = w
	a.root = root
	a.spawns = system.NewSpawnSystem(a.spawner, rng)
	a.scheduler = ecs.NewScheduler(
		ecs.Stage{Name: "spawn", System: a.spawns},
		ecs.Stage{Name: "control", System: system.NewControlSystem()},
		ecs.Stage{Name: "collision", System: system.NewCollisionSystem(rng)},
		ecs.Stage{Name: "softbody", System: system.NewSoftBodySystem()},
		ecs.Stage{Name: "drop", System: system.NewDropCycleSystem()},
		ecs.Stage{Name: "connectivity", System: system.NewConnectivitySystem()},
		ecs.Stage{Name: "clear", System: system.NewClearSystem()},
	)
	a.ticks = 0
	a.events = nil
	return nil
}

// Tick runs one simulation step unless the arena is paused.
func (a *Arena) Tick() {
	if a == nil || a.paused {
		return
	}
	a.scheduler.Update(a.world)
	a.ticks++

	for _, evt := range a.world.Events().DrainType(system.EventBodiesCleared) {
		cleared, ok := evt.Data.(system.ClearEvent)
		if !ok {
			continue
		}
		log.Printf("arena: tick %d cleared %d bodies for %d points", a.ticks, cleared.Count, cleared.Points)
		a.events = append(a.events, cleared)
	}
}

// Stages names the per-tick systems in run order.
func (a *Arena) Stages() []string {
	return a.scheduler.Names()
}

// Ticks returns how many unpaused ticks have run since the last reset.
func (a *Arena) Ticks() uint64 {
	return a.ticks
}

// SetIntent replaces the held directional input. It stays in effect until
// the next call.
func (a *Arena) SetIntent(in Intent) {
	if _, input, ok := ecs.Singleton(a.world, component.InputComponent); ok {
		*input = in
	}
}

// Spawn places a body immediately, makes it the active body and satisfies
// any pending spawn request.
func (a *Arena) Spawn(spec SpawnSpec) (ecs.Entity, error) {
	e, err := system.SpawnBody(a.world, spec, a.rng)
	if err != nil {
		return 0, fmt.Errorf("arena: %w", err)
	}
	ecs.Remove(a.world, a.root, component.SpawnRequestComponent)
	return e, nil
}

// Bodies returns a snapshot of every body.
func (a *Arena) Bodies() []BodyView {
	views := make([]BodyView, 0)
	ecs.ForEach(a.world, component.SoftBodyComponent, func(e ecs.Entity, body *softbody.Body) {
		views = append(views, BodyView{
			ID:      e,
			Color:   body.Color,
			Settled: body.Settled,
			Active:  ecs.Has(a.world, e, component.ActiveTagComponent),
			Center:  body.Center,
			Radius:  body.Radius,
			Points:  body.Points(),
		})
	})
	return views
}

// Active returns the body currently under player control.
func (a *Arena) Active() (ecs.Entity, bool) {
	return a.world.First(component.ActiveTagComponent.Kind())
}

// DrainEvents returns and forgets the clear events since the last call.
func (a *Arena) DrainEvents() []ClearEvent {
	out := a.events
	a.events = nil
	return out
}

func (a *Arena) Score() component.Score {
	if _, score, ok := ecs.Singleton(a.world, component.ScoreComponent); ok {
		return *score
	}
	return component.Score{}
}

func (a *Arena) Config() Config {
	return a.cfg
}

func (a *Arena) Bounds() common.Bounds {
	return a.cfg.Bounds
}

// SetTuning swaps physics and rules between ticks. Existing bodies keep
// their node count; the other parameters apply from the next tick.
func (a *Arena) SetTuning(physics softbody.Params, rules component.Rules) error {
	if err := physics.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := validateRules(rules); err != nil {
		return err
	}
	rules.Palette = append([]string(nil), rules.Palette...)
	a.cfg.Physics = physics
	a.cfg.Rules = rules

	if p, ok := ecs.Get(a.world, a.root, component.PhysicsParamsComponent); ok {
		*p = physics
	}
	if r, ok := ecs.Get(a.world, a.root, component.RulesComponent); ok {
		*r = rules
	}
	return nil
}

// SetSpawner replaces the spawner for every later spawn request.
func (a *Arena) SetSpawner(spawner system.Spawner) {
	a.spawner = spawner
	a.spawns.SetSpawner(spawner)
}

// Reset discards every body and the score and starts a fresh drop cycle.
func (a *Arena) Reset() error {
	a.paused = false
	return a.build()
}

func (a *Arena) SetPaused(paused bool) {
	a.paused = paused
}

func (a *Arena) Paused() bool {
	return a.paused
}
