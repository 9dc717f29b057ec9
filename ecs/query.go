package ecs

import "github.com/milk9111/blobdrop/ecs/component"

// Query returns the entities that carry every listed component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	// iterate the smallest store
	var smallest store
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok || s.size() == 0 {
			return nil
		}
		if smallest == nil || s.size() < smallest.size() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.size())
	for _, e := range smallest.entities() {
		match := true
		for _, k := range kinds {
			if !w.stores[k.ID()].has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns any entity carrying the component kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok || s.size() == 0 {
		return 0, false
	}
	return s.entities()[0], true
}
