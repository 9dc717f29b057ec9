package system

import (
	"github.com/milk9111/blobdrop/connectivity"
	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
	"github.com/milk9111/blobdrop/softbody"
)

// ConnectivitySystem answers a ConnectivityRequest by marking every settled
// body whose same-colored chain bridges the left and right walls. Removal is
// left to ClearSystem so no body disappears while the graph is walked.
type ConnectivitySystem struct{}

func NewConnectivitySystem() *ConnectivitySystem {
	return &ConnectivitySystem{}
}

func (c *ConnectivitySystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	arena, ok := w.First(component.ArenaTagComponent.Kind())
	if !ok || !ecs.Has(w, arena, component.ConnectivityRequestComponent) {
		return
	}
	bounds, ok := ecs.Get(w, arena, component.ArenaBoundsComponent)
	if !ok {
		return
	}
	rules := component.DefaultRules()
	if r, ok := ecs.Get(w, arena, component.RulesComponent); ok {
		rules = *r
	}

	candidates := make([]connectivity.Body[ecs.Entity], 0)
	dwelling := false
	ecs.ForEach(w, component.SoftBodyComponent, func(e ecs.Entity, body *softbody.Body) {
		if !body.Settled {
			return
		}
		if dwell, ok := ecs.Get(w, e, component.SettleDwellComponent); ok && dwell.Ticks < rules.SettleDwellTicks {
			dwelling = true
			return
		}
		candidates = append(candidates, connectivity.Body[ecs.Entity]{
			ID:     e,
			Center: body.Center,
			Radius: body.Radius,
			Color:  body.Color,
		})
	})
	if dwelling {
		// retry once every settled body has rested long enough
		return
	}
	ecs.Remove(w, arena, component.ConnectivityRequestComponent)

	for _, e := range connectivity.Analyze(candidates, bounds.Bounds, rules.TouchBuffer) {
		if err := ecs.Add(w, e, component.ClearMarkComponent, &component.ClearMark{}); err != nil {
			panic("connectivity system: mark body: " + err.Error())
		}
	}
}
