package stash

import (
	"cmp"
	"fmt"

	"github.com/TheBitDrifter/mask"
)

// EntityID identifies an entity. The generation lets the store tell a stale
// id apart from a newer entity that reuses the same slot.
//
// Generations are 32 bits and restart at 1 after wrapping, so an id kept
// across 2^32-1 deletions of the same slot can alias the entity living there.
type EntityID struct {
	index      uint32
	generation uint32
}

// Index returns the slot the entity occupies.
func (id EntityID) Index() uint32 {
	return id.index
}

// Generation returns the generation the slot had when the entity was created.
func (id EntityID) Generation() uint32 {
	return id.generation
}

// IsZero reports whether id is the zero value, which is never live.
func (id EntityID) IsZero() bool {
	return id.generation == 0
}

// Compare orders ids by slot index, then by generation.
func (id EntityID) Compare(other EntityID) int {
	if c := cmp.Compare(id.index, other.index); c != 0 {
		return c
	}
	return cmp.Compare(id.generation, other.generation)
}

func (id EntityID) String() string {
	return fmt.Sprintf("EntityID(%d:%d)", id.index, id.generation)
}

type entitySlot struct {
	generation uint32
	alive      bool
	mask       mask.Mask
}

type entities struct {
	slots []entitySlot
	free  []uint32
	alive int
}

func (en *entities) create() EntityID {
	var index uint32
	if n := len(en.free); n > 0 {
		index = en.free[n-1]
		en.free = en.free[:n-1]
	} else {
		index = uint32(len(en.slots))
		en.slots = append(en.slots, entitySlot{generation: 1})
	}
	slot := &en.slots[index]
	slot.alive = true
	en.alive++
	return EntityID{index: index, generation: slot.generation}
}

// slot returns the live slot for id, or nil if id is unknown, dead or stale.
func (en *entities) slot(id EntityID) *entitySlot {
	if id.IsZero() || int(id.index) >= len(en.slots) {
		return nil
	}
	slot := &en.slots[id.index]
	if !slot.alive || slot.generation != id.generation {
		return nil
	}
	return slot
}

func (en *entities) exists(id EntityID) bool {
	return en.slot(id) != nil
}

func (en *entities) release(id EntityID) {
	slot := &en.slots[id.index]
	var cleared mask.Mask
	slot.alive = false
	slot.mask = cleared
	slot.generation++
	if slot.generation == 0 {
		slot.generation = 1
	}
	en.free = append(en.free, id.index)
	en.alive--
}
