// Package component holds the data attached to arena entities. Each type is
// paired with a package-level handle created by NewComponent.
package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component type within the process. Zero is
// reserved for the unregistered kind.
type ComponentID uint32

var lastComponentID atomic.Uint32

// Kind is the type-erased view of a ComponentKind used by queries.
type Kind interface {
	ID() ComponentID
	Name() string
}

// ComponentKind is the registered identity of component type T.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }
func (k ComponentKind[T]) Name() string    { return k.name }
func (k ComponentKind[T]) Valid() bool     { return k.id != 0 }

// ComponentHandle is what systems pass to ecs.Add, ecs.Get and friends.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers T under a fresh id. Call it once per type, from a
// package-level var.
func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{kind: ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
