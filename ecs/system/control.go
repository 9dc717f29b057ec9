package system

import (
	"github.com/milk9111/blobdrop/common"
	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
)

// ControlSystem turns the arena's directional intent into a uniform
// acceleration on every node of the active body while it is still falling.
type ControlSystem struct{}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{}
}

func (c *ControlSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	_, input, ok := ecs.Singleton(w, component.InputComponent)
	if !ok {
		return
	}
	_, rules, ok := ecs.Singleton(w, component.RulesComponent)
	if !ok {
		return
	}
	active, ok := w.First(component.ActiveTagComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, active, component.SoftBodyComponent)
	if !ok || body.Settled {
		return
	}

	accel := common.V(input.MoveX()*rules.MoveForce, 0)
	if input.Down {
		accel.Y = rules.MoveForce * rules.DownFactor
	}
	if accel.IsZero() {
		return
	}
	body.Accelerate(accel)
}
