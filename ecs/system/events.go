package system

import "github.com/milk9111/blobdrop/ecs"

// EventBodiesCleared is pushed once per connectivity pass that removed bodies.
const EventBodiesCleared = "bodies_cleared"

// ClearEvent is the payload of EventBodiesCleared.
type ClearEvent struct {
	IDs    []ecs.Entity
	Count  int
	Points int
}
