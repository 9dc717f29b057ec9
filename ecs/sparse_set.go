package ecs

// SparseSet is a cache-friendly component store keyed by entity slot.
type SparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []*T
	sparse        []int
}

// Has returns true if e currently owns a value in the set.
func (s *SparseSet[T]) Has(e Entity) bool {
	if s == nil {
		return false
	}
	id := int(e.slot())
	if id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == e
}

// Get returns the value for e, or nil.
func (s *SparseSet[T]) Get(e Entity) *T {
	if !s.Has(e) {
		return nil
	}
	return s.denseValues[s.sparse[e.slot()-1]]
}

// Set inserts or replaces the value for e.
func (s *SparseSet[T]) Set(e Entity, v *T) {
	if s == nil || !e.Valid() {
		return
	}
	id := int(e.slot())
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(e) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the value for e if present.
func (s *SparseSet[T]) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	idx := s.sparse[e.slot()-1]
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.slot()-1] = idx

	s.denseEntities[last] = 0
	s.denseValues[last] = nil
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e.slot()-1] = -1
	return true
}

// Len returns the number of stored values.
func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns a copy of the dense entity list.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return append([]Entity(nil), s.denseEntities...)
}

func (s *SparseSet[T]) has(e Entity) bool { return s.Has(e) }
func (s *SparseSet[T]) remove(e Entity) bool { return s.Remove(e) }
func (s *SparseSet[T]) entities() []Entity { return s.Entities() }
func (s *SparseSet[T]) size() int { return s.Len() }
