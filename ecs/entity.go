package ecs

import "fmt"

// Entity is a handle to a slot in a World. The low half holds the 1-based
// slot index and the high half the slot's version, so a handle kept across a
// destroy never matches the slot's next occupant. The zero Entity is never
// handed out.
type Entity uint64

type slotIndex uint32
type slotVersion uint32

func newEntity(slot slotIndex, ver slotVersion) Entity {
	return Entity(uint64(ver)<<32 | uint64(slot))
}

func (e Entity) slot() slotIndex {
	return slotIndex(e & 0xffffffff)
}

func (e Entity) version() slotVersion {
	return slotVersion(e >> 32)
}

// String formats the handle as slot/version, e.g. "3v1".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.slot(), e.version())
}

func (e Entity) Valid() bool {
	return e.slot() != 0
}
