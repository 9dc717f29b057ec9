package ecs

import (
	"fmt"

	"github.com/milk9111/blobdrop/ecs/component"
)

func storeOf[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		return s.(*SparseSet[T])
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	s := &SparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("%w: add %s to %s", component.ErrEntityNotAlive, handle.Kind().Name(), e)
	}
	storeOf(w, handle.Kind(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return storeOf(w, handle.Kind(), false).Remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return storeOf(w, handle.Kind(), false).Has(e)
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	v := storeOf(w, handle.Kind(), false).Get(e)
	return v, v != nil
}

// ForEach calls fn for every entity with the component. Entities destroyed or
// stripped of the component during iteration are skipped.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	s := storeOf(w, handle.Kind(), false)
	for _, e := range s.Entities() {
		if v := s.Get(e); v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every entity that has both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	sa := storeOf(w, ha.Kind(), false)
	sb := storeOf(w, hb.Kind(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range sa.Entities() {
		a := sa.Get(e)
		b := sb.Get(e)
		if a != nil && b != nil {
			fn(e, a, b)
		}
	}
}

// Singleton returns the value of the first entity carrying the component.
func Singleton[T any](w *World, handle component.ComponentHandle[T]) (Entity, *T, bool) {
	s := storeOf(w, handle.Kind(), false)
	if s.Len() == 0 {
		return 0, nil, false
	}
	e := s.denseEntities[0]
	return e, s.denseValues[0], true
}
