package ecs

// entityStore hands out slots, recycling freed ones with a bumped version.
type entityStore struct {
	versions []slotVersion
	alive    []bool
	free     []slotIndex
	live     int
}

func (s *entityStore) create() Entity {
	var slot slotIndex
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.versions = append(s.versions, 0)
		s.alive = append(s.alive, false)
		slot = slotIndex(len(s.versions))
	}
	s.alive[slot-1] = true
	s.live++
	return newEntity(slot, s.versions[slot-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	slot := e.slot()
	s.versions[slot-1]++
	s.alive[slot-1] = false
	s.free = append(s.free, slot)
	s.live--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	slot := e.slot()
	if slot == 0 || int(slot) > len(s.versions) {
		return false
	}
	return s.alive[slot-1] && s.versions[slot-1] == e.version()
}

func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, s.live)
	for i, ok := range s.alive {
		if ok {
			out = append(out, newEntity(slotIndex(i+1), s.versions[i]))
		}
	}
	return out
}
