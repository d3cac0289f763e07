package stash

// AccessibleComponent pairs a Component with typed accessors for T, so a
// single value can serve both in filters and for data access.
type AccessibleComponent[T any] struct {
	Component
}

func (c AccessibleComponent[T]) Set(sto *Store, id EntityID, value T) error {
	return Set(sto, id, value)
}

func (c AccessibleComponent[T]) Replace(sto *Store, id EntityID, value T) (T, bool, error) {
	return Replace(sto, id, value)
}

func (c AccessibleComponent[T]) Get(sto *Store, id EntityID) (T, error) {
	return Get[T](sto, id)
}

func (c AccessibleComponent[T]) Has(sto *Store, id EntityID) bool {
	return Has[T](sto, id)
}

func (c AccessibleComponent[T]) Remove(sto *Store, id EntityID) error {
	return Remove[T](sto, id)
}

func (c AccessibleComponent[T]) Borrow(sto *Store, id EntityID) (*Ref[T], error) {
	return Borrow[T](sto, id)
}

func (c AccessibleComponent[T]) BorrowMut(sto *Store, id EntityID) (*RefMut[T], error) {
	return BorrowMut[T](sto, id)
}

// View runs fn against a shared borrow of the component.
func (c AccessibleComponent[T]) View(sto *Store, id EntityID, fn func(*T)) error {
	return View(sto, id, fn)
}

// Update runs fn against a mutable borrow of the component.
func (c AccessibleComponent[T]) Update(sto *Store, id EntityID, fn func(*T)) error {
	return Update(sto, id, fn)
}

// EnqueueRemove removes the component now, or once the store unlocks.
func (c AccessibleComponent[T]) EnqueueRemove(sto *Store, id EntityID) error {
	return EnqueueRemove[T](sto, id)
}
