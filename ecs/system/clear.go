package system

import (
	"github.com/milk9111/blobdrop/ecs"
	"github.com/milk9111/blobdrop/ecs/component"
)

// ClearSystem destroys every body marked for clearing in one step, awards
// points and publishes a ClearEvent.
type ClearSystem struct{}

func NewClearSystem() *ClearSystem {
	return &ClearSystem{}
}

func (c *ClearSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	marked := w.Query(component.ClearMarkComponent.Kind())
	if len(marked) == 0 {
		return
	}

	perBody := component.DefaultRules().PointsPerBody
	if _, rules, ok := ecs.Singleton(w, component.RulesComponent); ok {
		perBody = rules.PointsPerBody
	}

	cleared := make([]ecs.Entity, 0, len(marked))
	for _, e := range marked {
		if w.DestroyEntity(e) {
			cleared = append(cleared, e)
		}
	}
	if len(cleared) == 0 {
		return
	}

	evt := ClearEvent{IDs: cleared, Count: len(cleared), Points: len(cleared) * perBody}
	if _, score, ok := ecs.Singleton(w, component.ScoreComponent); ok {
		score.Points += evt.Points
		score.Cleared += evt.Count
	}
	w.Events().Push(ecs.Event{Type: EventBodiesCleared, Data: evt})
}
