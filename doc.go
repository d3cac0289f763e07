/*
Package stash provides a type-erased entity/component store.

A Store associates values of arbitrary Go types ("components") with opaque
entity identifiers. Component types need no common interface and no
registration: the Go type itself is the key.

Core Concepts:

  - Entity: an EntityID with no data of its own. Ids carry a generation, so
    an id kept after DeleteEntity never resolves to a later entity that
    reuses the same slot.
  - Component: any Go value. An entity holds at most one value per type.
  - Borrow: a handle onto a stored value. A slot admits many shared borrows
    or a single mutable one; conflicting accesses fail with
    AccessConflictError instead of aliasing.

Basic Usage:

	store := stash.Factory.NewStore()
	e := store.CreateEntity()

	stash.Set(store, e, Age{Years: 22})
	age, _ := stash.Get[Age](store, e)

	stash.Update(store, e, func(a *Age) {
		a.Years++
	})

	store.DeleteEntity(e)
	_, err := stash.Get[Age](store, e) // EntityNotFoundError

Filters select entities by the component types they hold:

	filter := stash.Factory.NewFilter().
		With(stash.ComponentOf[Position](), stash.ComponentOf[Velocity]())
	cursor := stash.Factory.NewCursor(filter, store)
	for e := range cursor.Entities() {
		stash.Update(store, e, func(p *Position) { p.X++ })
	}

A Store is not safe for concurrent use.
*/
package stash
