package system

import (
	"math/rand"

	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
	"github.com/milk9111/blobdrop/softbody"
)

// CollisionSystem keeps bodies inside the arena walls and pushes overlapping
// bodies apart. Body pairs are resolved at the bounding-circle level.
type CollisionSystem struct {
	rng *rand.Rand
}

func NewCollisionSystem(rng *rand.Rand) *CollisionSystem {
	return &CollisionSystem{rng: rng}
}

func (cs *CollisionSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	_, bounds, ok := ecs.Singleton(w, component.ArenaBoundsComponent)
	if !ok {
		return
	}
	params := softbody.DefaultParams()
	if _, p, ok := ecs.Singleton(w, component.PhysicsParamsComponent); ok {
		params = *p
	}

	list := make([]*softbody.Body, 0)
	ecs.ForEach(w, component.SoftBodyComponent, func(_ ecs.Entity, body *softbody.Body) {
		list = append(list, body)
	})

	for _, body := range list {
		body.CollideWalls(bounds.Bounds, params.WallMargin, params.Restitution)
	}

	n := len(list)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			softbody.Repel(list[i], list[j], params.RepulsionGain, cs.rng)
		}
	}
}
