package stash

import (
	"errors"
	"testing"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

type Age struct {
	Years uint32
}

type Iq struct {
	Points int32
}

func TestEntityCreation(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"Single entity", 1},
		{"Small batch", 10},
		{"Large batch", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := Factory.NewStore()
			seen := make(map[EntityID]struct{}, tt.count)

			for i := 0; i < tt.count; i++ {
				id := store.CreateEntity()
				if id.IsZero() {
					t.Fatalf("CreateEntity() returned the zero id")
				}
				if _, dup := seen[id]; dup {
					t.Fatalf("CreateEntity() returned duplicate id %v", id)
				}
				seen[id] = struct{}{}
				if !store.EntityExists(id) {
					t.Errorf("EntityExists(%v) = false, want true", id)
				}
			}

			if store.Len() != tt.count {
				t.Errorf("Len() = %d, want %d", store.Len(), tt.count)
			}
		})
	}
}

func TestEntityDeletion(t *testing.T) {
	store := Factory.NewStore()
	id := store.CreateEntity()

	if err := store.DeleteEntity(id); err != nil {
		t.Fatalf("DeleteEntity() error = %v", err)
	}
	if store.EntityExists(id) {
		t.Errorf("EntityExists() = true after delete")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}

	err := store.DeleteEntity(id)
	var notFound EntityNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("second DeleteEntity() error = %v, want EntityNotFoundError", err)
	}
	if notFound.Entity != id {
		t.Errorf("EntityNotFoundError.Entity = %v, want %v", notFound.Entity, id)
	}

	if err := store.DeleteEntity(EntityID{}); !errors.As(err, &notFound) {
		t.Errorf("DeleteEntity(zero) error = %v, want EntityNotFoundError", err)
	}
	if err := store.DeleteEntity(EntityID{index: 42, generation: 1}); !errors.As(err, &notFound) {
		t.Errorf("DeleteEntity(never created) error = %v, want EntityNotFoundError", err)
	}
}

func TestStaleEntityID(t *testing.T) {
	store := Factory.NewStore()
	old := store.CreateEntity()
	if err := Set(store, old, Age{Years: 30}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.DeleteEntity(old); err != nil {
		t.Fatalf("DeleteEntity() error = %v", err)
	}

	reused := store.CreateEntity()
	if reused.Index() != old.Index() {
		t.Fatalf("slot was not recycled: old %v, new %v", old, reused)
	}
	if reused.Generation() == old.Generation() {
		t.Fatalf("recycled slot kept generation %d", old.Generation())
	}
	if err := Set(store, reused, Age{Years: 1}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if store.EntityExists(old) {
		t.Errorf("stale id %v reported as live", old)
	}
	if Has[Age](store, old) {
		t.Errorf("Has() on stale id = true")
	}
	var notFound EntityNotFoundError
	if _, err := Get[Age](store, old); !errors.As(err, &notFound) {
		t.Errorf("Get() on stale id error = %v, want EntityNotFoundError", err)
	}
	if err := Set(store, old, Age{Years: 99}); !errors.As(err, &notFound) {
		t.Errorf("Set() on stale id error = %v, want EntityNotFoundError", err)
	}
	if err := store.DeleteEntity(old); !errors.As(err, &notFound) {
		t.Errorf("DeleteEntity() on stale id error = %v, want EntityNotFoundError", err)
	}

	age, err := Get[Age](store, reused)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if age.Years != 1 {
		t.Errorf("Age = %d, want 1", age.Years)
	}
}

func TestGenerationWrapSkipsZero(t *testing.T) {
	store := Factory.NewStore()
	id := store.CreateEntity()
	store.entities.slots[id.index].generation = ^uint32(0)
	id.generation = ^uint32(0)

	if err := store.DeleteEntity(id); err != nil {
		t.Fatalf("DeleteEntity() error = %v", err)
	}
	next := store.CreateEntity()
	if next.IsZero() {
		t.Fatalf("recycled id after wrap is the zero id")
	}
	if next.Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", next.Generation())
	}
}

func TestEntityIDOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b EntityID
		want int
	}{
		{"Equal", EntityID{1, 1}, EntityID{1, 1}, 0},
		{"Lower index", EntityID{0, 5}, EntityID{1, 1}, -1},
		{"Higher index", EntityID{2, 1}, EntityID{1, 9}, 1},
		{"Same index older generation", EntityID{3, 1}, EntityID{3, 2}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if got := (EntityID{index: 3, generation: 2}).String(); got != "EntityID(3:2)" {
		t.Errorf("String() = %q, want %q", got, "EntityID(3:2)")
	}
}

func TestEntitiesIteration(t *testing.T) {
	store := Factory.NewStore()
	var ids []EntityID
	for i := 0; i < 5; i++ {
		ids = append(ids, store.CreateEntity())
	}
	if err := store.DeleteEntity(ids[1]); err != nil {
		t.Fatalf("DeleteEntity() error = %v", err)
	}
	if err := store.DeleteEntity(ids[3]); err != nil {
		t.Fatalf("DeleteEntity() error = %v", err)
	}

	got := store.Collect([]EntityID{ids[1]})
	want := []EntityID{ids[0], ids[2], ids[4]}
	if len(got) != len(want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Collect()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	count := 0
	for range store.Entities() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("Entities() did not stop after break")
	}
}
