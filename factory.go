package stash

type factory struct{}

var Factory factory

func (f factory) NewStore() *Store {
	return NewStore()
}

func (f factory) NewFilter() *Filter {
	return newFilter()
}

func (f factory) NewCursor(filter FilterNode, sto *Store) *Cursor {
	return newCursor(filter, sto)
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{Component: ComponentOf[T]()}
}

func FactoryNewCache[K comparable, T any](cap int) *SimpleCache[K, T] {
	return &SimpleCache[K, T]{
		itemIndices: make(map[K]int),
		maxCapacity: cap,
	}
}
