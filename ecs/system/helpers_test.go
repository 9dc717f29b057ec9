package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/blobdrop/common"
	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
	"github.com/milk9111/blobdrop/softbody"
)

var testBounds = common.Bounds{Left: 0, Right: 400, Top: 0, Bottom: 600}

// newArenaWorld returns a world holding only the arena singletons.
func newArenaWorld(t *testing.T, rules component.Rules) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	arena := w.CreateEntity()
	params := softbody.DefaultParams()
	add := func(err error) {
		if err != nil {
			t.Fatalf("arena setup: %v", err)
		}
	}
	add(ecs.Add(w, arena, component.ArenaTagComponent, &component.ArenaTag{}))
	add(ecs.Add(w, arena, component.ArenaBoundsComponent, &component.ArenaBounds{Bounds: testBounds}))
	add(ecs.Add(w, arena, component.PhysicsParamsComponent, &params))
	add(ecs.Add(w, arena, component.RulesComponent, &rules))
	add(ecs.Add(w, arena, component.InputComponent, &component.Input{}))
	add(ecs.Add(w, arena, component.ScoreComponent, &component.Score{}))
	return w, arena
}

// addSettled places a settled, inactive body at the given center.
func addSettled(t *testing.T, w *ecs.World, x, y, r float64, color string) ecs.Entity {
	t.Helper()
	body, err := softbody.New(common.V(x, y), r, color, softbody.DefaultParams(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("softbody.New: %v", err)
	}
	body.Settled = true
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.SoftBodyComponent, body); err != nil {
		t.Fatalf("add body: %v", err)
	}
	if err := ecs.Add(w, e, component.SettleDwellComponent, &component.SettleDwell{}); err != nil {
		t.Fatalf("add dwell: %v", err)
	}
	return e
}
