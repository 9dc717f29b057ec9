package system

import (
	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
	"github.com/milk9111/blobdrop/softbody"
)

// SoftBodySystem runs the force and integration pass of every body and
// tracks how long each has been settled.
type SoftBodySystem struct{}

func NewSoftBodySystem() *SoftBodySystem {
	return &SoftBodySystem{}
}

func (s *SoftBodySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	params := softbody.DefaultParams()
	if _, p, ok := ecs.Singleton(w, component.PhysicsParamsComponent); ok {
		params = *p
	}

	ecs.ForEach(w, component.SoftBodyComponent, func(e ecs.Entity, body *softbody.Body) {
		body.Step(params)

		dwell, ok := ecs.Get(w, e, component.SettleDwellComponent)
		if !ok {
			return
		}
		if body.Settled {
			dwell.Ticks++
		} else {
			dwell.Ticks = 0
		}
	})
}
