package ecs

// Store is a dense component store indexed by entity index.
// A slot remembers the full EntityID it was set for, so a stale handle
// never reads a component that belongs to a recycled index.
type Store[T any] struct {
	slots []slot[T]
	count int
}

type slot[T any] struct {
	id    EntityID
	value T
	set   bool
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{slots: make([]slot[T], 0, 64)}
}

// Set attaches (or replaces) the component for id.
func (s *Store[T]) Set(id EntityID, v T) {
	idx := int(id.Index())
	for len(s.slots) <= idx {
		s.slots = append(s.slots, slot[T]{})
	}
	if !s.slots[idx].set {
		s.count++
	}
	s.slots[idx] = slot[T]{id: id, value: v, set: true}
}

// Get returns a pointer to the component for id, valid until the next Set
// that grows the store.
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	idx := int(id.Index())
	if idx >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[idx]
	if !sl.set || sl.id != id {
		return nil, false
	}
	return &sl.value, true
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.Get(id)
	return ok
}

// Remove detaches the component for id.
func (s *Store[T]) Remove(id EntityID) {
	idx := int(id.Index())
	if idx >= len(s.slots) {
		return
	}
	if sl := &s.slots[idx]; sl.set && sl.id == id {
		var zero T
		sl.value = zero
		sl.set = false
		s.count--
	}
}

func (s *Store[T]) Len() int {
	return s.count
}

// IDs returns the ids holding a component, in ascending index order.
// The returned slice is a copy and is safe to keep while the store mutates.
func (s *Store[T]) IDs() []EntityID {
	ids := make([]EntityID, 0, s.count)
	for i := range s.slots {
		if s.slots[i].set {
			ids = append(ids, s.slots[i].id)
		}
	}
	return ids
}

// Each calls fn for every component in ascending index order.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i := range s.slots {
		if s.slots[i].set {
			fn(s.slots[i].id, &s.slots[i].value)
		}
	}
}

// Clear removes every component.
func (s *Store[T]) Clear() {
	s.slots = s.slots[:0]
	s.count = 0
}

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Registry tracks all component stores and supports bulk cleanup on entity destroy.
type Registry struct {
	stores []Removable
}

func NewRegistry() *Registry {
	return &Registry{stores: make([]Removable, 0, 8)}
}

// Register adds a component store to the registry.
func (r *Registry) Register(store Removable) {
	r.stores = append(r.stores, store)
}

// RemoveAll clears the given entity from every registered component store.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}
