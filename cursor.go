package stash

import (
	"iter"
)

var _ iCursor = &Cursor{}

// Cursor walks the live entities of a store that match a filter. The store
// stays locked from the first Next until the walk ends or Reset is called,
// so deletions made during the walk must go through the Enqueue methods.
type Cursor struct {
	filter FilterNode
	store  *Store

	index       int
	current     EntityID
	initialized bool
	err         error
}

func newCursor(filter FilterNode, sto *Store) *Cursor {
	return &Cursor{
		filter: filter,
		store:  sto,
	}
}

func (c *Cursor) Next() bool {
	if !c.initialized {
		c.store.Lock()
		c.initialized = true
		c.err = nil
	}
	slots := &c.store.entities.slots
	for c.index < len(*slots) {
		i := c.index
		c.index++
		slot := (*slots)[i]
		if !slot.alive {
			continue
		}
		id := EntityID{index: uint32(i), generation: slot.generation}
		if c.filter == nil || c.filter.Evaluate(c.store, id) {
			c.current = id
			return true
		}
	}
	c.Reset()
	return false
}

// Entity returns the entity the cursor is positioned on.
func (c *Cursor) Entity() EntityID {
	return c.current
}

func (c *Cursor) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		defer c.Reset()
		for c.Next() {
			if !yield(c.current) {
				return
			}
		}
	}
}

// Reset rewinds the cursor and releases its lock on the store. Operations
// queued during the walk are applied here; their error is kept in Err.
func (c *Cursor) Reset() {
	if c.initialized {
		c.initialized = false
		if err := c.store.Unlock(); err != nil {
			c.err = err
		}
	}
	c.index = 0
	c.current = EntityID{}
}

// Err returns the error of the operations flushed by the last Reset.
func (c *Cursor) Err() error {
	return c.err
}

func (c *Cursor) TotalMatched() int {
	total := 0
	for id := range c.store.Entities() {
		if c.filter == nil || c.filter.Evaluate(c.store, id) {
			total++
		}
	}
	return total
}
