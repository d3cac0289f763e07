package stash

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/bark"
)

type operation struct {
	typ    operationType
	entity EntityID
	comp   Component
}

type operationType int

const (
	opNone operationType = iota
	opRemoveComponent
	opDestroy
)

type opKey struct {
	entity EntityID
	typ    reflect.Type
}

type opQueue struct {
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[EntityID]struct{}
	pendingMods    map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[EntityID]struct{}),
		pendingMods:    make(map[opKey]int),
	}
}

func (q *opQueue) len() int {
	return len(q.componentOps) + len(q.destroyOps)
}

func (q *opQueue) EnqueueDestroy(id EntityID) {
	if _, exists := q.pendingDestroy[id]; exists {
		return
	}
	q.pendingDestroy[id] = struct{}{}

	// Pending removals are moot once the entity goes.
	for key, idx := range q.pendingMods {
		if key.entity == id {
			q.componentOps[idx].typ = opNone
			delete(q.pendingMods, key)
		}
	}
	q.destroyOps = append(q.destroyOps, operation{typ: opDestroy, entity: id})
}

func (q *opQueue) EnqueueComponentOp(typ operationType, id EntityID, comp Component) {
	if _, isDestroyed := q.pendingDestroy[id]; isDestroyed {
		return
	}
	key := opKey{entity: id, typ: comp.reflectType()}
	if _, exists := q.pendingMods[key]; exists {
		return
	}
	q.pendingMods[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: id,
		comp:   comp,
	})
}

func (q *opQueue) clear() {
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
	clear(q.pendingMods)
}

// processOperationQueue applies removals, then deletions. Operations whose
// target vanished in the meantime are skipped.
func (sto *Store) processOperationQueue() error {
	if sto.opQueue.len() == 0 {
		return nil
	}
	log := Config.log()
	log.Debug("stash: flushing queued operations",
		"removals", len(sto.opQueue.componentOps),
		"deletions", len(sto.opQueue.destroyOps),
	)

	var errs []error
	for _, op := range sto.opQueue.componentOps {
		if op.typ != opRemoveComponent || !sto.has(op.entity, op.comp) {
			continue
		}
		if err := sto.removeComponent(op.entity, op.comp); err != nil {
			log.Warn("stash: queued component removal failed", "entity", op.entity, "error", bark.AddTrace(err))
			errs = append(errs, fmt.Errorf("failed to remove queued component: %w", err))
		}
	}
	for _, op := range sto.opQueue.destroyOps {
		if !sto.entities.exists(op.entity) {
			continue
		}
		if err := sto.deleteEntity(op.entity); err != nil {
			log.Warn("stash: queued entity deletion failed", "entity", op.entity, "error", bark.AddTrace(err))
			errs = append(errs, fmt.Errorf("failed to delete queued entity: %w", err))
		}
	}
	sto.opQueue.clear()
	return errors.Join(errs...)
}

// EnqueueDeleteEntity deletes id now, or once the store unlocks.
func (sto *Store) EnqueueDeleteEntity(id EntityID) error {
	if !sto.Locked() {
		return sto.DeleteEntity(id)
	}
	if !sto.entities.exists(id) {
		return EntityNotFoundError{Entity: id}
	}
	sto.opQueue.EnqueueDestroy(id)
	return nil
}

// EnqueueRemove removes the T component of id now, or once the store unlocks.
func EnqueueRemove[T any](sto *Store, id EntityID) error {
	if !sto.Locked() {
		return Remove[T](sto, id)
	}
	comp := ComponentOf[T]()
	if _, err := sto.lookup(id, comp); err != nil {
		return err
	}
	sto.opQueue.EnqueueComponentOp(opRemoveComponent, id, comp)
	return nil
}
