package stash

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// MaxComponentTypes bounds how many distinct component types one store can
// hold. It is the width of the entity masks, which depends on the mask build
// tags (64 by default).
const MaxComponentTypes = int(mask.MaxBits)

// maxRegisteredTypes bounds the process-wide registry shared by all stores.
const maxRegisteredTypes = 1 << 16

var _ Component = &componentType{}

type componentType struct {
	table.ElementType
	typ reflect.Type
}

func (c *componentType) reflectType() reflect.Type {
	return c.typ
}

func (c *componentType) String() string {
	return c.typ.String()
}

// componentRegistry hands out one Component per Go type. Stores share it so
// that a Component obtained anywhere is valid in every store.
type componentRegistry struct {
	mu    sync.RWMutex
	types Cache[reflect.Type, Component]
}

var globalRegistry = &componentRegistry{
	types: FactoryNewCache[reflect.Type, Component](maxRegisteredTypes),
}

// ComponentOf returns the Component for T, registering T on first use.
func ComponentOf[T any]() Component {
	typ := reflect.TypeFor[T]()

	globalRegistry.mu.RLock()
	comp, ok := globalRegistry.lookup(typ)
	globalRegistry.mu.RUnlock()
	if ok {
		return comp
	}

	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	if comp, ok := globalRegistry.lookup(typ); ok {
		return comp
	}
	comp = &componentType{
		ElementType: table.FactoryNewElementType[T](),
		typ:         typ,
	}
	if _, err := globalRegistry.types.Register(typ, comp); err != nil {
		panic(fmt.Sprintf("stash: cannot register component %v: %v", typ, err))
	}
	return comp
}

// lookup must be called with mu held.
func (r *componentRegistry) lookup(typ reflect.Type) (Component, bool) {
	index, ok := r.types.GetIndex(typ)
	if !ok {
		return nil, false
	}
	return *r.types.GetItem(index), true
}

// componentName renders c for error messages.
func componentName(c Component) string {
	if c == nil {
		return "<nil>"
	}
	return c.reflectType().String()
}
