package system

import (
	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
	"github.com/milk9111/blobdrop/softbody"
)

// DropCycleSystem releases the active body once it settles, then asks for a
// connectivity pass and the next spawn. Without an active body it waits for
// the whole pile to settle before doing the same.
type DropCycleSystem struct{}

func NewDropCycleSystem() *DropCycleSystem {
	return &DropCycleSystem{}
}

func (d *DropCycleSystem) Update(w *ecs.World) {
	if d == nil || w == nil {
		return
	}
	arena, ok := w.First(component.ArenaTagComponent.Kind())
	if !ok {
		return
	}

	if active, ok := w.First(component.ActiveTagComponent.Kind()); ok {
		body, ok := ecs.Get(w, active, component.SoftBodyComponent)
		if !ok || !body.Settled {
			return
		}
		ecs.Remove(w, active, component.ActiveTagComponent)
		d.finish(w, arena, "landed")
		return
	}

	if ecs.Has(w, arena, component.SpawnRequestComponent) {
		return
	}

	resting := true
	ecs.ForEach(w, component.SoftBodyComponent, func(_ ecs.Entity, body *softbody.Body) {
		if !body.Settled {
			resting = false
		}
	})
	if resting {
		d.finish(w, arena, "resting")
	}
}

func (d *DropCycleSystem) finish(w *ecs.World, arena ecs.Entity, reason string) {
	if err := ecs.Add(w, arena, component.ConnectivityRequestComponent, &component.ConnectivityRequest{Reason: reason}); err != nil {
		panic("drop cycle system: request connectivity: " + err.Error())
	}
	if err := ecs.Add(w, arena, component.SpawnRequestComponent, &component.SpawnRequest{}); err != nil {
		panic("drop cycle system: request spawn: " + err.Error())
	}
}
