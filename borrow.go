package stash

// Ref is a shared borrow of one component slot. The value must not be
// modified through it. Call Release once done.
type Ref[T any] struct {
	box      *box
	ptr      *T
	released bool
}

// Borrow hands out a shared reference to the T component of id. Any number
// of shared borrows may coexist; they exclude mutable borrows and writes.
func Borrow[T any](sto *Store, id EntityID) (*Ref[T], error) {
	comp := ComponentOf[T]()
	b, err := sto.lookup(id, comp)
	if err != nil {
		return nil, err
	}
	if b.writer {
		return nil, AccessConflictError{Entity: id, Component: comp, Mutable: true}
	}
	b.readers++
	return &Ref[T]{box: b, ptr: unbox[T](b)}, nil
}

// Value returns the borrowed value. It panics after Release.
func (r *Ref[T]) Value() *T {
	if r.released {
		panic("stash: use of released borrow")
	}
	return r.ptr
}

// Release ends the borrow. Further calls are no-ops.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.box.readers--
	r.ptr = nil
}

// RefMut is the exclusive borrow of one component slot.
type RefMut[T any] struct {
	box      *box
	ptr      *T
	released bool
}

// BorrowMut hands out an exclusive reference to the T component of id.
// While it is held every other access to that slot fails.
func BorrowMut[T any](sto *Store, id EntityID) (*RefMut[T], error) {
	comp := ComponentOf[T]()
	b, err := sto.lookup(id, comp)
	if err != nil {
		return nil, err
	}
	if b.borrowed() {
		return nil, AccessConflictError{Entity: id, Component: comp, Mutable: b.writer}
	}
	b.writer = true
	return &RefMut[T]{box: b, ptr: unbox[T](b)}, nil
}

// Value returns the borrowed value for in-place mutation. It panics after Release.
func (r *RefMut[T]) Value() *T {
	if r.released {
		panic("stash: use of released borrow")
	}
	return r.ptr
}

// Release ends the borrow. Further calls are no-ops.
func (r *RefMut[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.box.writer = false
	r.ptr = nil
}

// View calls fn with a shared borrow of the T component of id, released
// when fn returns.
func View[T any](sto *Store, id EntityID, fn func(*T)) error {
	ref, err := Borrow[T](sto, id)
	if err != nil {
		return err
	}
	defer ref.Release()
	fn(ref.Value())
	return nil
}

// Update calls fn with a mutable borrow of the T component of id, released
// when fn returns.
func Update[T any](sto *Store, id EntityID, fn func(*T)) error {
	ref, err := BorrowMut[T](sto, id)
	if err != nil {
		return err
	}
	defer ref.Release()
	fn(ref.Value())
	return nil
}
