package stash

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// Store maps (entity, component type) pairs to values of any Go type.
//
// A Store is meant for a single owner and is not safe for concurrent use.
type Store struct {
	locks    int
	schema   table.Schema
	entities entities
	columns  map[reflect.Type]*column
	opQueue  opQueue
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		schema:  table.Factory.NewSchema(),
		columns: make(map[reflect.Type]*column),
		opQueue: newOpQueue(),
	}
}

// CreateEntity allocates a new live entity with no components.
func (sto *Store) CreateEntity() EntityID {
	return sto.entities.create()
}

// EntityExists reports whether id was created and has not been deleted since.
func (sto *Store) EntityExists(id EntityID) bool {
	return sto.entities.exists(id)
}

// DeleteEntity destroys id together with every component attached to it.
// Nothing is removed if any of its components is currently borrowed.
func (sto *Store) DeleteEntity(id EntityID) error {
	if sto.Locked() {
		return LockedStoreError{}
	}
	if !sto.entities.exists(id) {
		return EntityNotFoundError{Entity: id}
	}
	return sto.deleteEntity(id)
}

func (sto *Store) deleteEntity(id EntityID) error {
	slot := sto.entities.slot(id)
	for _, col := range sto.columns {
		if !hasRow(slot.mask, col.row) {
			continue
		}
		if err := col.boxes[id].checkWrite(id, col.comp); err != nil {
			return err
		}
	}
	removed := 0
	for _, col := range sto.columns {
		if _, ok := col.boxes[id]; ok {
			delete(col.boxes, id)
			removed++
		}
	}
	sto.entities.release(id)
	Config.log().Debug("stash: entity deleted", "entity", id, "components", removed)
	return nil
}

// Len returns the number of live entities.
func (sto *Store) Len() int {
	return sto.entities.alive
}

// Entities yields every live entity in slot order.
func (sto *Store) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for i := 0; i < len(sto.entities.slots); i++ {
			slot := sto.entities.slots[i]
			if !slot.alive {
				continue
			}
			if !yield(EntityID{index: uint32(i), generation: slot.generation}) {
				return
			}
		}
	}
}

// Collect empties dest and fills it with every live entity.
func (sto *Store) Collect(dest []EntityID) []EntityID {
	return append(dest[:0], iter_util.Collect(sto.Entities())...)
}

// CollectWith empties dest and fills it with the live entities matching f.
func (sto *Store) CollectWith(f FilterNode, dest []EntityID) []EntityID {
	dest = dest[:0]
	for id := range sto.Entities() {
		if f.Evaluate(sto, id) {
			dest = append(dest, id)
		}
	}
	return dest
}

// HasAll reports whether id satisfies f.
func (sto *Store) HasAll(id EntityID, f FilterNode) (bool, error) {
	if !sto.entities.exists(id) {
		return false, EntityNotFoundError{Entity: id}
	}
	return f.Evaluate(sto, id), nil
}

// Locked reports whether structural changes are currently refused.
func (sto *Store) Locked() bool {
	return sto.locks > 0
}

// Lock refuses entity deletion and component removal until the matching
// Unlock. Locks nest.
func (sto *Store) Lock() {
	sto.locks++
}

// Unlock releases one Lock. The last Unlock applies the queued operations.
func (sto *Store) Unlock() error {
	if sto.locks == 0 {
		return nil
	}
	sto.locks--
	if sto.locks > 0 {
		return nil
	}
	return sto.processOperationQueue()
}

// columnFor returns the column of comp, creating it on first use. A store
// holds at most MaxComponentTypes columns; the schema is left untouched when
// the limit is hit.
func (sto *Store) columnFor(comp Component) (*column, error) {
	typ := comp.reflectType()
	if col, ok := sto.columns[typ]; ok {
		return col, nil
	}
	if len(sto.columns) >= MaxComponentTypes {
		return nil, ComponentLimitError{Component: comp, Limit: MaxComponentTypes}
	}
	sto.schema.Register(comp)
	row := sto.schema.RowIndexFor(comp)
	if int(row) >= MaxComponentTypes {
		return nil, ComponentLimitError{Component: comp, Limit: MaxComponentTypes}
	}
	col := &column{
		comp:  comp,
		typ:   typ,
		row:   row,
		boxes: make(map[EntityID]*box),
	}
	sto.columns[typ] = col
	return col, nil
}

// lookup resolves the box of comp on id.
func (sto *Store) lookup(id EntityID, comp Component) (*box, error) {
	if !sto.entities.exists(id) {
		return nil, EntityNotFoundError{Entity: id}
	}
	col, ok := sto.columns[comp.reflectType()]
	if !ok {
		return nil, ComponentNotFoundError{Entity: id, Component: comp}
	}
	b, ok := col.boxes[id]
	if !ok {
		return nil, ComponentNotFoundError{Entity: id, Component: comp}
	}
	return b, nil
}

func (sto *Store) has(id EntityID, comp Component) bool {
	slot := sto.entities.slot(id)
	if slot == nil {
		return false
	}
	col, ok := sto.columns[comp.reflectType()]
	if !ok {
		return false
	}
	return hasRow(slot.mask, col.row)
}

// insert stores b as the comp value of id, replacing any previous value.
func (sto *Store) insert(id EntityID, comp Component, b *box) error {
	slot := sto.entities.slot(id)
	if slot == nil {
		return EntityNotFoundError{Entity: id}
	}
	col, err := sto.columnFor(comp)
	if err != nil {
		return err
	}
	if old, ok := col.boxes[id]; ok {
		if err := old.checkWrite(id, comp); err != nil {
			return err
		}
	}
	col.boxes[id] = b
	slot.mask.Mark(col.row)
	return nil
}

func (sto *Store) removeComponent(id EntityID, comp Component) error {
	b, err := sto.lookup(id, comp)
	if err != nil {
		return err
	}
	if err := b.checkWrite(id, comp); err != nil {
		return err
	}
	col := sto.columns[comp.reflectType()]
	delete(col.boxes, id)
	sto.entities.slot(id).mask.Unmark(col.row)
	return nil
}

func hasRow(m mask.Mask, row uint32) bool {
	var bit mask.Mask
	bit.Mark(row)
	return m.ContainsAll(bit)
}
