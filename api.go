package stash

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/table"
)

// Component identifies one kind of component data. Each Go type maps to
// exactly one Component for the lifetime of the process.
type Component interface {
	table.ElementType
	reflectType() reflect.Type
}

// FilterNode decides whether a live entity of a store matches.
type FilterNode interface {
	Evaluate(sto *Store, id EntityID) bool
}

type iCursor interface {
	Entities() iter.Seq[EntityID]
	Next() bool
	Entity() EntityID
}

type Cache[K comparable, T any] interface {
	GetIndex(K) (int, bool)
	GetItem(int) *T
	Register(K, T) (int, error)
}
