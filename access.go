package stash

import "errors"

// Set attaches value to id as its T component, replacing any previous T.
// It fails without side effects if id is not live or its T is borrowed.
func Set[T any](sto *Store, id EntityID, value T) error {
	return sto.insert(id, ComponentOf[T](), newBox(value))
}

// Replace works like Set and also returns the T value it displaced, with
// false when id held no T before.
func Replace[T any](sto *Store, id EntityID, value T) (T, bool, error) {
	var prev T
	comp := ComponentOf[T]()
	b, err := sto.lookup(id, comp)
	var notFound EntityNotFoundError
	if errors.As(err, &notFound) {
		return prev, false, err
	}
	found := err == nil
	if found {
		if err := b.checkWrite(id, comp); err != nil {
			return prev, false, err
		}
		prev = *unbox[T](b)
	}
	if err := sto.insert(id, comp, newBox(value)); err != nil {
		var zero T
		return zero, false, err
	}
	return prev, found, nil
}

// Get returns a copy of the T component of id.
func Get[T any](sto *Store, id EntityID) (T, error) {
	var zero T
	comp := ComponentOf[T]()
	b, err := sto.lookup(id, comp)
	if err != nil {
		return zero, err
	}
	if b.writer {
		return zero, AccessConflictError{Entity: id, Component: comp, Mutable: true}
	}
	return *unbox[T](b), nil
}

// Has reports whether id is live and holds a T component.
func Has[T any](sto *Store, id EntityID) bool {
	return sto.has(id, ComponentOf[T]())
}

// Remove detaches the T component from id. The entity stays live.
func Remove[T any](sto *Store, id EntityID) error {
	if sto.Locked() {
		return LockedStoreError{}
	}
	return sto.removeComponent(id, ComponentOf[T]())
}
