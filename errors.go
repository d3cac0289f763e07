package stash

import "fmt"

// EntityNotFoundError reports an id that is not live: never created,
// already deleted, or a stale generation of a recycled slot.
type EntityNotFoundError struct {
	Entity EntityID
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity not found: %v", e.Entity)
}

// ComponentNotFoundError reports a live entity without the requested component.
type ComponentNotFoundError struct {
	Entity    EntityID
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity %v: %s", e.Entity, componentName(e.Component))
}

// AccessConflictError reports an access that would break the
// single-writer/multiple-reader rule of one (entity, component) slot.
type AccessConflictError struct {
	Entity    EntityID
	Component Component
	// Mutable is set when the slot is held by a mutable borrow.
	Mutable bool
}

func (e AccessConflictError) Error() string {
	held := "shared"
	if e.Mutable {
		held = "mutable"
	}
	return fmt.Sprintf("component %s of entity %v is under a %s borrow", componentName(e.Component), e.Entity, held)
}

// ComponentLimitError reports a component type that would exceed the number
// of types a single store can track.
type ComponentLimitError struct {
	Component Component
	Limit     int
}

func (e ComponentLimitError) Error() string {
	return fmt.Sprintf("store already holds the maximum of %d component types, cannot add %s", e.Limit, componentName(e.Component))
}

type LockedStoreError struct{}

func (e LockedStoreError) Error() string {
	return "store is currently locked"
}

type CacheCapacityError struct {
	Capacity int
}

func (e CacheCapacityError) Error() string {
	return fmt.Sprintf("cache at maximum capacity (%d)", e.Capacity)
}
