package stash

import (
	"fmt"
	"reflect"
)

// column holds every value of one component type in a store.
type column struct {
	comp  Component
	typ   reflect.Type
	row   uint32
	boxes map[EntityID]*box
}

// box owns a single component value behind a *T stored as any.
type box struct {
	typ     reflect.Type
	value   any
	readers int
	writer  bool
}

func (b *box) borrowed() bool {
	return b.readers > 0 || b.writer
}

// checkWrite fails while any borrow of the slot is outstanding.
func (b *box) checkWrite(id EntityID, comp Component) error {
	if b.borrowed() {
		return AccessConflictError{Entity: id, Component: comp, Mutable: b.writer}
	}
	return nil
}

func newBox[T any](value T) *box {
	v := value
	return &box{typ: reflect.TypeFor[T](), value: &v}
}

// unbox recovers the typed pointer. Columns are keyed by type, so a mismatch
// means the store itself is corrupt.
func unbox[T any](b *box) *T {
	ptr, ok := b.value.(*T)
	if !ok || b.typ != reflect.TypeFor[T]() {
		panic(fmt.Sprintf("stash: internal downcast error: stored %v, requested %v", b.typ, reflect.TypeFor[T]()))
	}
	return ptr
}
