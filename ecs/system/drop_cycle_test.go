package system

import (
	"testing"

	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
)

func TestDropCycle(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, w *ecs.World, arena ecs.Entity) ecs.Entity
		wantRequest bool
		wantActive  bool
	}{
		{
			name: "falling_active_body_waits",
			setup: func(t *testing.T, w *ecs.World, arena ecs.Entity) ecs.Entity {
				e := addSettled(t, w, 200, 100, 30, "red")
				body, _ := ecs.Get(w, e, component.SoftBodyComponent)
				body.Settled = false
				_ = ecs.Add(w, e, component.ActiveTagComponent, &component.ActiveTag{})
				return e
			},
			wantRequest: false,
			wantActive:  true,
		},
		{
			name: "settled_active_body_released",
			setup: func(t *testing.T, w *ecs.World, arena ecs.Entity) ecs.Entity {
				e := addSettled(t, w, 200, 560, 30, "red")
				_ = ecs.Add(w, e, component.ActiveTagComponent, &component.ActiveTag{})
				return e
			},
			wantRequest: true,
			wantActive:  false,
		},
		{
			name: "no_active_all_resting",
			setup: func(t *testing.T, w *ecs.World, arena ecs.Entity) ecs.Entity {
				return addSettled(t, w, 200, 560, 30, "red")
			},
			wantRequest: true,
		},
		{
			name: "no_active_pile_moving",
			setup: func(t *testing.T, w *ecs.World, arena ecs.Entity) ecs.Entity {
				e := addSettled(t, w, 200, 560, 30, "red")
				body, _ := ecs.Get(w, e, component.SoftBodyComponent)
				body.Settled = false
				return e
			},
			wantRequest: false,
		},
		{
			name: "no_active_spawn_pending",
			setup: func(t *testing.T, w *ecs.World, arena ecs.Entity) ecs.Entity {
				_ = ecs.Add(w, arena, component.SpawnRequestComponent, &component.SpawnRequest{})
				return addSettled(t, w, 200, 560, 30, "red")
			},
			wantRequest: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, arena := newArenaWorld(t, component.DefaultRules())
			e := tc.setup(t, w, arena)

			NewDropCycleSystem().Update(w)

			if got := ecs.Has(w, arena, component.ConnectivityRequestComponent); got != tc.wantRequest {
				t.Fatalf("connectivity request: expected %v, got %v", tc.wantRequest, got)
			}
			if tc.wantRequest && !ecs.Has(w, arena, component.SpawnRequestComponent) {
				t.Fatalf("expected a spawn request alongside the connectivity request")
			}
			if got := ecs.Has(w, e, component.ActiveTagComponent); got != tc.wantActive {
				t.Fatalf("active: expected %v, got %v", tc.wantActive, got)
			}
		})
	}
}
