package ecs

import "fmt"

// EntityId packs the archetype ID (upper 32 bits) and the slot index inside
// that archetype (lower 32 bits).
type EntityId uint64

// NewEntityId creates an EntityId from an archetype ID and entity index
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId extracts the archetype ID from the entity ID
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index extracts the entity index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// String renders the id as "<index>v<archetype>" so log lines stay short.
func (e EntityId) String() string {
	return fmt.Sprintf("%dv%08x", e.Index(), e.ArchetypeId())
}
